package models

import "github.com/shopspring/decimal"

// RiderDetails is a rider's profile information from the sidebar table and
// page header of their rider page.
type RiderDetails struct {
	ID            int              `json:"rider_id"`
	Name          string           `json:"name"`
	CurrentTeam   *string          `json:"current_team,omitempty"`
	TwitterHandle *string          `json:"twitter_handle,omitempty"`
	Nation        *string          `json:"nation,omitempty"`
	DateOfBirth   *Date            `json:"date_of_birth,omitempty"`
	Height        *decimal.Decimal `json:"height,omitempty"`
	WorldTourWins int              `json:"wt_wins"`
	UCIWins       int              `json:"uci_wins"`
	UCIRank       *int             `json:"uci_rank,omitempty"`
	Agency        *string          `json:"agency,omitempty"`
	Strengths     []string         `json:"strengths,omitempty"`

	// YearsActive lists the years with available result data, from the
	// page's year-selector control, most recent first.
	YearsActive []int `json:"years_active,omitempty"`
}

// Rider aggregates a rider's profile with their normalized results per year.
type Rider struct {
	ID      int                    `json:"rider_id"`
	Details *RiderDetails          `json:"details,omitempty"`
	Results map[int][]ResultRecord `json:"results,omitempty"`
}
