package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"golang.org/x/net/html"

	"github.com/baronet2/FirstCyclingScraper/internal/models"
)

// ParseRiderDetails parses the header, sidebar details table and year
// selector of a rider page. A page without the header or details table is a
// structural failure; individual missing keys decode to absent fields.
func ParseRiderDetails(doc *goquery.Document, riderID int) (*models.RiderDetails, error) {
	name := cleanText(doc.Find("h1").First().Text())
	if name == "" {
		return nil, models.ErrRiderHeaderMissing
	}

	table := doc.Find("table.tablesorter.notOddEven").First()
	if table.Length() == 0 {
		return nil, models.ErrInfoTableMissing
	}
	cells := infoCells(table)

	details := &models.RiderDetails{ID: riderID, Name: name}

	if team := cleanText(doc.Find("p").First().Text()); team != "" {
		details.CurrentTeam = strPtr(team)
	}
	if handle := twitterHandle(doc); handle != "" {
		details.TwitterHandle = strPtr(handle)
	}

	if cell := cells["Nationality"]; cell != nil {
		if nation := cleanText(cell.Text()); nation != "" {
			details.Nation = strPtr(nation)
		}
	}
	if cell := cells["Born"]; cell != nil {
		details.DateOfBirth = parseBirthDate(cell.Text())
	}
	if cell := cells["Height"]; cell != nil {
		// Value carries a trailing unit token, e.g. "1.82 m".
		if value, _ := splitLastToken(cell.Text()); value != "" {
			if height, err := decimal.NewFromString(value); err == nil {
				details.Height = &height
			}
		}
	}
	details.WorldTourWins = leadingInt(cells["WorldTour"])
	details.UCIWins = leadingInt(cells["UCI"])
	if cell := cells["UCI Ranking"]; cell != nil {
		details.UCIRank = parseOptionalInt(cell.Text())
	}
	if cell := cells["Agency"]; cell != nil {
		if agency := cleanText(cell.Text()); agency != "" {
			details.Agency = strPtr(agency)
		}
	}
	if cell := cells["Strengths"]; cell != nil {
		details.Strengths = textNodes(cell)
	}

	details.YearsActive = yearsActive(doc)
	return details, nil
}

// twitterHandle pulls the handle from the profile link in the header, e.g.
// "https://twitter.com/handle".
func twitterHandle(doc *goquery.Document) string {
	href, ok := doc.Find("p.left a").First().Attr("href")
	if !ok {
		return ""
	}
	parts := strings.Split(href, "/")
	if len(parts) < 4 {
		return ""
	}
	return parts[3]
}

var birthDateLayouts = []string{
	"2 January 2006",
	"January 2 2006",
	"January 2, 2006",
	"2006-01-02",
}

// parseBirthDate parses a "Born" value whose last token is the rider's
// current age, e.g. "12 March 1990 (34)".
func parseBirthDate(s string) *models.Date {
	value, _ := splitLastToken(s)
	if value == "" {
		return nil
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			date := models.DateOf(t)
			return &date
		}
	}
	return nil
}

// splitLastToken splits off the final whitespace-separated token. A value
// without whitespace is returned whole with an empty tail.
func splitLastToken(s string) (string, string) {
	s = cleanText(s)
	i := strings.LastIndex(s, " ")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// leadingInt decodes the leading numeric token of a cell ("5 wins" -> 5),
// defaulting to zero for absent or malformed values.
func leadingInt(cell *goquery.Selection) int {
	if cell == nil {
		return 0
	}
	fields := strings.Fields(cell.Text())
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}

// textNodes collects the trimmed immediate text-node children of a cell;
// the strengths cell lists its entries as bare text separated by <br>.
func textNodes(sel *goquery.Selection) []string {
	var out []string
	for _, node := range sel.Nodes {
		for n := node.FirstChild; n != nil; n = n.NextSibling {
			if n.Type != html.TextNode {
				continue
			}
			if text := strings.TrimSpace(n.Data); text != "" {
				out = append(out, text)
			}
		}
	}
	return out
}

// yearsActive lists the non-empty option values of the page's year selector.
func yearsActive(doc *goquery.Document) []int {
	var years []int
	doc.Find("select").First().Find("option").Each(func(_ int, option *goquery.Selection) {
		value, ok := option.Attr("value")
		if !ok || value == "" {
			return
		}
		if year, err := strconv.Atoi(value); err == nil {
			years = append(years, year)
		}
	})
	return years
}
