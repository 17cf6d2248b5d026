package models

import "github.com/shopspring/decimal"

// Classification-leader names recognized in a race's side panel. The set is
// closed: any other name in the source table is ignored.
const (
	ClassificationLeader    = "Leader"
	ClassificationYouth     = "Youth"
	ClassificationPoints    = "Points"
	ClassificationMountain  = "Mountain"
	ClassificationCombative = "Combative"
)

// RaceMetadata holds one race edition's context, parsed from the side-panel
// key/value table. Absent keys yield absent fields, never empty-string or
// zero defaults.
type RaceMetadata struct {
	Year        int              `json:"year"`
	Nation      *string          `json:"nation,omitempty"`
	StartCity   *string          `json:"start_city,omitempty"`
	EndCity     *string          `json:"end_city,omitempty"`
	StartDate   *Date            `json:"start_date,omitempty"`
	EndDate     *Date            `json:"end_date,omitempty"`
	Distance    *decimal.Decimal `json:"distance,omitempty"`
	Category    *string          `json:"cat,omitempty"`
	StageNumber *int             `json:"stage_num,omitempty"`
	Profile     *string          `json:"profile,omitempty"`

	// ClassificationLeaders maps a recognized classification name to the
	// leading rider's identifier.
	ClassificationLeaders map[string]int `json:"classification_leaders,omitempty"`
}

// Race aggregates one race edition: its metadata and the normalized result
// records from its results table.
type Race struct {
	ID       int            `json:"race_id"`
	Year     int            `json:"year"`
	Metadata *RaceMetadata  `json:"metadata,omitempty"`
	Results  []ResultRecord `json:"results"`
}
