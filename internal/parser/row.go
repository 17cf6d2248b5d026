package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/baronet2/FirstCyclingScraper/internal/models"
)

// Results-table column indexes. The second column repeats the date in an
// alternate format for client-side sorting and is not decoded.
const (
	colDate      = 0
	colResult    = 2
	colGC        = 3
	colIcon      = 4
	colRace      = 5
	colCategory  = 6
	colUCIPoints = 7

	// minResultCells is the pre-2018 layout width; rows narrower than this
	// carry no result at all.
	minResultCells = 7
)

// ParseResults extracts every normalized result record from the results
// table of a rider-year or race page. Rows with fewer than seven cells carry
// no data and are dropped silently; a page without a results table is a
// structural failure.
func ParseResults(doc *goquery.Document) ([]models.ResultRecord, error) {
	table := doc.Find("table.tablesorter").Not(".notOddEven").First()
	if table.Length() == 0 {
		return nil, models.ErrResultsTableMissing
	}

	var records []models.ResultRecord
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		if record, ok := buildResultRecord(row); ok {
			records = append(records, *record)
		}
	})
	return records, nil
}

// buildResultRecord decodes one results-table row into a fully-populated
// record. It returns ok=false for structurally empty rows and for rows whose
// date or race link cannot be decoded.
func buildResultRecord(row *goquery.Selection) (*models.ResultRecord, bool) {
	cells := row.Find("td")
	if cells.Length() < minResultCells {
		return nil, false
	}

	date, err := parseResultDate(cells.Eq(colDate).Text())
	if err != nil {
		return nil, false
	}

	cell := classifyRaceCell(cells.Eq(colRace))
	if cell.raceID == nil {
		return nil, false
	}

	record := models.ResultRecord{
		Date:               date,
		Position:           parsePosition(cells.Eq(colResult).Text()),
		GCStanding:         parseOptionalInt(cells.Eq(colGC).Text()),
		Icon:               imageCode(cells.Eq(colIcon)),
		Category:           strings.TrimSpace(cells.Eq(colCategory).Text()),
		RaceID:             *cell.raceID,
		RaceCountryCode:    cell.countryCode,
		FullName:           cell.fullName,
		RaceName:           cell.name,
		Kind:               cell.kind,
		EditionCountryCode: cell.editionCountryCode,
		EditionCity:        cell.editionCity,
		StageNumber:        cell.stageNumber,
		Classification:     cell.classification,
	}

	// Exactly seven cells is the pre-2018 layout: the UCI points column is
	// structurally absent, distinct from present-but-zero.
	if cells.Length() > colUCIPoints {
		record.UCIPoints = parsePoints(cells.Eq(colUCIPoints).Text())
	}

	record.Flags = DeriveFlags(record.Category, record.RaceName, record.Icon)
	return &record, true
}

// raceCell is the decoded race-name cell. kind selects which of the optional
// field groups is populated; the decision is made once here and never
// re-derived from raw cell shape.
type raceCell struct {
	kind               models.RaceNameKind
	raceID             *int
	countryCode        *string
	fullName           string
	name               string
	editionCountryCode *string
	editionCity        *string
	stageNumber        *int
	classification     *string
}

// classifyRaceCell decodes the race-name cell by a priority cascade:
// championship (two flag images) over stage (two links) over secondary
// classification (a second |-delimited token) over plain. Championship rows
// may also carry two links, so the image test must come first.
func classifyRaceCell(td *goquery.Selection) raceCell {
	links := td.Find("a")
	imgs := td.Find("img")

	cell := raceCell{
		kind:        models.RaceNamePlain,
		raceID:      linkQueryInt(links.First(), "r"),
		countryCode: countryCode(imgs.First()),
		fullName:    cleanText(td.Text()),
	}

	tokens := strings.Split(cell.fullName, "|")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	cell.name = tokens[0]

	switch {
	case imgs.Length() == 2:
		cell.kind = models.RaceNameChampionship
		cell.editionCountryCode = countryCode(imgs.Eq(1))
		if len(tokens) > 1 {
			cell.editionCity = strPtr(tokens[1])
		}
	case links.Length() == 2:
		cell.kind = models.RaceNameStage
		cell.stageNumber = linkQueryInt(links.Eq(1), "e")
	case len(tokens) == 2:
		cell.kind = models.RaceNameClassification
		cell.classification = strPtr(tokens[1])
	}
	return cell
}
