package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"golang.org/x/net/html"

	"github.com/baronet2/FirstCyclingScraper/internal/models"
)

// classificationNames is the closed set of recognized classification-leader
// keys; any other key in the side table is ignored.
var classificationNames = []string{
	models.ClassificationLeader,
	models.ClassificationYouth,
	models.ClassificationPoints,
	models.ClassificationMountain,
	models.ClassificationCombative,
}

// ParseRaceMetadata parses the side-panel key/value table of a race page.
// year is the edition year, appended to the table's partial dates. Absent
// keys leave the corresponding fields absent.
func ParseRaceMetadata(doc *goquery.Document, year int) (*models.RaceMetadata, error) {
	table := doc.Find("table.tablesorter.notOddEven").First()
	if table.Length() == 0 {
		return nil, models.ErrInfoTableMissing
	}

	cells := infoCells(table)
	meta := &models.RaceMetadata{Year: year}

	// Nation comes from the flag image of the Nation row, falling back to
	// the Where row for older editions.
	nationCell, hasNationKey := cells["Nation"], true
	if nationCell == nil {
		nationCell, hasNationKey = cells["Where"], false
	}
	if nationCell != nil {
		meta.Nation = countryCode(nationCell.Find("img").First())
	}

	if whereCell := cells["Where"]; whereCell != nil {
		where := cleanText(whereCell.Text())
		if start, end, found := strings.Cut(where, " -> "); found {
			meta.StartCity, meta.EndCity = strPtr(start), strPtr(end)
		} else {
			meta.StartCity, meta.EndCity = strPtr(where), strPtr(where)
		}
	}

	// Multi-nation events (observed for the Olympics) list several flags in
	// the Nation row; the last flag and the text right after it override
	// nation and both cities.
	if hasNationKey && nationCell != nil {
		if imgs := nationCell.Find("img"); imgs.Length() > 1 {
			last := imgs.Last()
			meta.Nation = countryCode(last)
			if after := textAfter(last); after != "" {
				meta.StartCity, meta.EndCity = strPtr(after), strPtr(after)
			}
		}
	}

	if dateCell := cells["Date"]; dateCell != nil {
		text := cleanText(dateCell.Text())
		if start, end, found := strings.Cut(text, " - "); found {
			meta.StartDate = parseInfoDate(start, year)
			meta.EndDate = parseInfoDate(end, year)
		} else {
			date := parseInfoDate(text, year)
			meta.StartDate, meta.EndDate = date, date
		}
	}

	if distanceCell := cells["Distance"]; distanceCell != nil {
		if fields := strings.Fields(distanceCell.Text()); len(fields) > 0 {
			if d, err := decimal.NewFromString(fields[0]); err == nil {
				meta.Distance = &d
			}
		}
	}

	if catCell := cells["CAT"]; catCell != nil {
		meta.Category = strPtr(cleanText(catCell.Text()))
	}

	if whatCell := cells["What"]; whatCell != nil {
		what := whatCell.Text()
		if digits := digitRun(what); digits != "" {
			if n, err := strconv.Atoi(digits); err == nil {
				meta.StageNumber = &n
			}
		}
		// A prologue is stage zero regardless of any digits in the value.
		if strings.Contains(what, "Prologue") {
			zero := 0
			meta.StageNumber = &zero
		}
	}

	// The profile icon sits in the Distance row when that row exists, else
	// in the What row.
	if distanceCell := cells["Distance"]; distanceCell != nil {
		meta.Profile = profileFromCell(distanceCell)
	} else if whatCell := cells["What"]; whatCell != nil {
		meta.Profile = profileFromCell(whatCell)
	}

	for _, name := range classificationNames {
		cell := cells[name]
		if cell == nil {
			continue
		}
		if id := linkQueryInt(cell.Find("a").First(), "r"); id != nil {
			if meta.ClassificationLeaders == nil {
				meta.ClassificationLeaders = make(map[string]int)
			}
			meta.ClassificationLeaders[name] = *id
		}
	}

	return meta, nil
}

// infoCells maps side-table keys to their value cells. Rows without a
// key/value pair (such as the header) are skipped; on duplicate keys the
// first row wins.
func infoCells(table *goquery.Selection) map[string]*goquery.Selection {
	cells := make(map[string]*goquery.Selection)
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		tds := row.Find("td")
		if tds.Length() < 2 {
			return
		}
		key := strings.TrimSpace(tds.Eq(0).Text())
		if key == "" {
			return
		}
		if _, seen := cells[key]; !seen {
			cells[key] = tds.Eq(1)
		}
	})
	return cells
}

// textAfter returns the trimmed text node immediately following the
// selection's first node, if any.
func textAfter(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	next := sel.Get(0).NextSibling
	if next == nil || next.Type != html.TextNode {
		return ""
	}
	return strings.TrimSpace(next.Data)
}

func profileFromCell(cell *goquery.Selection) *string {
	code := imageCode(cell)
	if code == nil {
		return nil
	}
	if profile, ok := profileIcons[*code]; ok {
		return &profile
	}
	return nil
}

var infoDateLayouts = []string{
	"2 January 2006",
	"January 2 2006",
	"2 Jan 2006",
	"Jan 2 2006",
}

// parseInfoDate parses a day-and-month value from the side table with the
// edition year appended. Unparsable values decode to absent.
func parseInfoDate(s string, year int) *models.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	candidate := fmt.Sprintf("%s %d", s, year)
	for _, layout := range infoDateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			date := models.DateOf(t)
			return &date
		}
	}
	// Numeric day.month form.
	if t, err := time.Parse("2.1.2006", fmt.Sprintf("%s.%d", strings.TrimSuffix(s, "."), year)); err == nil {
		date := models.DateOf(t)
		return &date
	}
	return nil
}
