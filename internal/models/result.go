package models

import "github.com/shopspring/decimal"

// RaceNameKind identifies which variant of the race-name cell a result row
// carries. Exactly one variant applies per row and the kind is decided once,
// by the row classifier, never re-derived from raw cell shape.
type RaceNameKind string

const (
	// RaceNamePlain is a one-day race or GC result with no extra encoding.
	RaceNamePlain RaceNameKind = "plain"
	// RaceNameChampionship is a championship edition carrying a host country
	// flag and city alongside the race name.
	RaceNameChampionship RaceNameKind = "championship"
	// RaceNameStage is a single stage of a stage race.
	RaceNameStage RaceNameKind = "stage"
	// RaceNameClassification is a secondary classification result (points,
	// mountains, ...) distinct from the stage/GC result.
	RaceNameClassification RaceNameKind = "classification"
)

// Position is a finishing position: either a numeric rank or, for riders who
// did not finish normally, the literal status label from the source ("DNF",
// "DNS", "OTL").
type Position struct {
	Rank  *int   `json:"rank,omitempty"`
	Label string `json:"label,omitempty"`
}

// RankedPosition builds a numeric finishing position.
func RankedPosition(rank int) Position {
	return Position{Rank: &rank}
}

// LabelPosition builds a status-label position.
func LabelPosition(label string) Position {
	return Position{Label: label}
}

// Ranked reports whether the position is a numeric rank.
func (p Position) Ranked() bool { return p.Rank != nil }

// ResultRecord is one rider's outcome in one race or stage, normalized from a
// single results-table row. Records are immutable once built.
type ResultRecord struct {
	Date            Date             `json:"date"`
	Position        Position         `json:"result"`
	GCStanding      *int             `json:"gc_standing,omitempty"`
	Icon            *string          `json:"icon,omitempty"`
	Category        string           `json:"cat"`
	UCIPoints       *decimal.Decimal `json:"uci_points,omitempty"`
	RaceID          int              `json:"race_id"`
	RaceCountryCode *string          `json:"race_country_code,omitempty"`
	FullName        string           `json:"full_name"`
	RaceName        string           `json:"name"`

	// Kind selects which of the four variant field groups below is populated.
	Kind               RaceNameKind `json:"kind"`
	EditionCountryCode *string      `json:"edition_country_code,omitempty"`
	EditionCity        *string      `json:"edition_city,omitempty"`
	StageNumber        *int         `json:"stage_num,omitempty"`
	Classification     *string      `json:"classification,omitempty"`

	Flags DerivedFlags `json:"flags"`
}

// DerivedFlags are race-type attributes inferred from the category code, race
// name and icon code. The time-trial and terrain flags are three-valued: nil
// means the profile is unknown, which is distinct from a known false.
type DerivedFlags struct {
	UCIRace      bool `json:"uci_race"`
	Championship bool `json:"championship"`
	U23          bool `json:"u23"`
	CX           bool `json:"cx"`
	Juniors      bool `json:"juniors"`
	OneDay       bool `json:"one_day"`

	// JerseyColour and Profile are mutually exclusive readings of the same
	// icon; at most one is ever set.
	JerseyColour *string `json:"jersey_colour,omitempty"`
	Profile      *string `json:"profile,omitempty"`

	TTT      *bool `json:"ttt,omitempty"`
	ITT      *bool `json:"itt,omitempty"`
	TT       *bool `json:"tt,omitempty"`
	MTF      *bool `json:"mtf,omitempty"`
	Mountain *bool `json:"mountain,omitempty"`
	Hilly    *bool `json:"hilly,omitempty"`
	Flat     *bool `json:"flat,omitempty"`
	Cobbled  *bool `json:"cobbled,omitempty"`
}
