package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/baronet2/FirstCyclingScraper/internal/models"
)

// ParseRanking extracts the rider rows of a rankings page. A page without a
// rankings table carries no data (normal past the last page) and yields an
// empty result.
func ParseRanking(doc *goquery.Document) []models.RankingEntry {
	table := doc.Find("table.tablesorter.sort").First()
	if table.Length() == 0 {
		return nil
	}

	var entries []models.RankingEntry
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		if entry := parseRankingRow(row); entry != nil {
			entries = append(entries, *entry)
		}
	})
	return entries
}

func parseRankingRow(row *goquery.Selection) *models.RankingEntry {
	cells := row.Find("td")
	if cells.Length() < 4 {
		return nil
	}

	riderLink := row.Find(`a[href*="rider.php"]`).First()
	id := linkQueryInt(riderLink, "r")
	if id == nil {
		return nil
	}

	entry := &models.RankingEntry{
		RiderID:   *id,
		RiderName: cleanText(riderLink.Text()),
		Nation:    countryCode(row.Find("img").First()),
	}
	if rank := parseOptionalInt(cells.Eq(0).Text()); rank != nil {
		entry.Rank = *rank
	}
	if teamLink := row.Find(`a[href*="team.php"]`).First(); teamLink.Length() > 0 {
		entry.Team = strPtr(cleanText(teamLink.Text()))
	}
	if points, err := decimal.NewFromString(strings.TrimSpace(cells.Last().Text())); err == nil {
		entry.Points = points
	}
	return entry
}
