package fetcher

import (
	"net/url"
	"strconv"
)

// Ranking type selectors.
const (
	RankingWorld       = 1
	RankingOneDay      = 2
	RankingStageRace   = 3
	RankingAfricaTour  = 4
	RankingAmericaTour = 5
	RankingEuropeTour  = 6
	RankingAsiaTour    = 7
	RankingOceaniaTour = 8
	RankingWomen       = 99
)

// Ranking category selectors.
const (
	RankingRiders  = 1
	RankingTeams   = 2
	RankingNations = 3
)

// RankingQuery selects one page of a rankings listing.
type RankingQuery struct {
	// Type is one of the Ranking* type selectors.
	Type int
	// Category is riders, teams or nations.
	Category int
	// Year is a year ("2021") or a year-week pair ("2021-7").
	Year string
	// Country optionally filters to a three-letter country code.
	Country string
	// U23 restricts to under-23 riders.
	U23 bool
	// Page is the 1-based result page.
	Page int
}

func (c *Client) riderURL(riderID, year int) string {
	q := url.Values{}
	q.Set("r", strconv.Itoa(riderID))
	if year > 0 {
		q.Set("y", strconv.Itoa(year))
	}
	return c.baseURL + "/rider.php?" + q.Encode()
}

func (c *Client) raceURL(raceID, year int) string {
	q := url.Values{}
	q.Set("r", strconv.Itoa(raceID))
	if year > 0 {
		q.Set("y", strconv.Itoa(year))
	}
	return c.baseURL + "/race.php?" + q.Encode()
}

func (c *Client) rankingURL(query RankingQuery) string {
	q := url.Values{}
	q.Set("rank", strconv.Itoa(query.Type))
	q.Set("h", strconv.Itoa(query.Category))
	q.Set("y", query.Year)
	if query.Country != "" {
		q.Set("cnat", query.Country)
	}
	if query.U23 {
		q.Set("u23", "1")
	}
	q.Set("page", strconv.Itoa(query.Page))
	return c.baseURL + "/ranking.php?" + q.Encode()
}
