// Package parser extracts normalized domain records from firstcycling.com
// markup trees. Extraction is pure and total over well-formed input:
// per-field ambiguity is absorbed as typed absence, and only a missing
// structural element (a results or info table) surfaces as an error.
package parser

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/baronet2/FirstCyclingScraper/internal/models"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// cleanText collapses whitespace runs (including newlines, tabs and carriage
// returns) to single spaces and strips the surrounding whitespace.
func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// digitRun concatenates every numeric character of s.
func digitRun(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseResultDate parses a YYYY-MM-DD results-table date. The source encodes
// uncertain dates with zero month or day components; those default to
// January and the 1st respectively rather than failing.
func parseResultDate(s string) (models.Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return models.DateOf(t), nil
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return models.Date{}, fmt.Errorf("unparsable date %q", s)
	}
	month, day := parts[1], parts[2]
	if n, err := strconv.Atoi(month); err == nil && n == 0 {
		month = "01"
	}
	if n, err := strconv.Atoi(day); err == nil && n == 0 {
		day = "01"
	}
	t, err := time.Parse("2006-01-02", parts[0]+"-"+month+"-"+day)
	if err != nil {
		return models.Date{}, fmt.Errorf("unparsable date %q: %w", s, err)
	}
	return models.DateOf(t), nil
}

// parsePosition decodes a finishing position: a purely numeric cell is a
// rank, anything else is kept verbatim as a status label ("DNF", "OTL").
func parsePosition(s string) models.Position {
	s = strings.TrimSpace(s)
	if isDigits(s) {
		n, _ := strconv.Atoi(s)
		return models.RankedPosition(n)
	}
	return models.LabelPosition(s)
}

// parseOptionalInt decodes an integer cell where emptiness means absence.
func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// parsePoints decodes a UCI points cell. A literal dash means zero points
// were awarded, which is distinct from the column being absent entirely.
func parsePoints(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "-" {
		zero := decimal.Zero
		return &zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// imageCode returns the filename (with extension) of the first embedded
// image in the selection; this is the raw icon code.
func imageCode(sel *goquery.Selection) *string {
	src, ok := sel.Find("img").First().Attr("src")
	if !ok {
		return nil
	}
	code := path.Base(src)
	if code == "" || code == "." {
		return nil
	}
	return &code
}

// countryCode resolves a country code from a flag image's filename stem.
func countryCode(img *goquery.Selection) *string {
	src, ok := img.Attr("src")
	if !ok {
		return nil
	}
	stem := strings.TrimSuffix(path.Base(src), path.Ext(src))
	if stem == "" || stem == "." {
		return nil
	}
	return &stem
}

// linkQueryInt extracts an integer query parameter from a link's href, e.g.
// the rider or race identifier in "rider.php?r=12345".
func linkQueryInt(a *goquery.Selection, param string) *int {
	href, ok := a.Attr("href")
	if !ok {
		return nil
	}
	u, err := url.Parse(href)
	if err != nil {
		return nil
	}
	value := u.Query().Get(param)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}

func strPtr(s string) *string { return &s }
