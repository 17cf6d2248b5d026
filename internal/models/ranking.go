package models

import "github.com/shopspring/decimal"

// RankingEntry is one row of a rankings table.
type RankingEntry struct {
	Rank      int             `json:"rank"`
	RiderID   int             `json:"rider_id"`
	RiderName string          `json:"rider_name"`
	Nation    *string         `json:"nation,omitempty"`
	Team      *string         `json:"team,omitempty"`
	Points    decimal.Decimal `json:"points"`
}

// Ranking is one page of a rankings listing. An empty Entries slice means the
// page carried no data, which is a normal occurrence past the last page.
type Ranking struct {
	URL     string         `json:"url"`
	Entries []RankingEntry `json:"entries"`
}
