package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultRecordRoundTripPreservesAbsence(t *testing.T) {
	stage := 5
	falsy := false
	truthy := true
	points := decimal.Zero
	icon := "p7.gif"
	profile := "ITT"

	record := ResultRecord{
		Date:        NewDate(2021, time.July, 7),
		Position:    RankedPosition(1),
		Icon:        &icon,
		Category:    "2.UWT",
		UCIPoints:   &points,
		RaceID:      13,
		FullName:    "Tour de France | Stage 5",
		RaceName:    "Tour de France",
		Kind:        RaceNameStage,
		StageNumber: &stage,
		Flags: DerivedFlags{
			UCIRace: true,
			Profile: &profile,
			TTT:     &falsy,
			ITT:     &truthy,
			TT:      &truthy,
			MTF:     &falsy,
		},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded ResultRecord
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, record.Date, decoded.Date)
	require.True(t, decoded.Position.Ranked())
	assert.Equal(t, 1, *decoded.Position.Rank)
	assert.Equal(t, RaceNameStage, decoded.Kind)
	require.NotNil(t, decoded.StageNumber)
	assert.Equal(t, 5, *decoded.StageNumber)

	// Zero points stay present-and-zero, not absent.
	require.NotNil(t, decoded.UCIPoints)
	assert.True(t, decoded.UCIPoints.IsZero())

	// Absent optionals stay absent.
	assert.Nil(t, decoded.GCStanding)
	assert.Nil(t, decoded.RaceCountryCode)
	assert.Nil(t, decoded.EditionCountryCode)
	assert.Nil(t, decoded.EditionCity)
	assert.Nil(t, decoded.Classification)
	assert.Nil(t, decoded.Flags.JerseyColour)
	assert.Nil(t, decoded.Flags.Mountain)

	// Known-false flags stay false rather than collapsing to absent.
	require.NotNil(t, decoded.Flags.TTT)
	assert.False(t, *decoded.Flags.TTT)
	require.NotNil(t, decoded.Flags.TT)
	assert.True(t, *decoded.Flags.TT)
}

func TestResultRecordPre2018PointsStayAbsent(t *testing.T) {
	record := ResultRecord{
		Date:     NewDate(2015, time.July, 26),
		Position: LabelPosition("DNF"),
		Category: "2.UWT",
		RaceID:   13,
		RaceName: "Tour de France",
		Kind:     RaceNamePlain,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "uci_points")

	var decoded ResultRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded.UCIPoints)
	assert.Equal(t, "DNF", decoded.Position.Label)
	assert.False(t, decoded.Position.Ranked())
}

func TestRaceMetadataRoundTrip(t *testing.T) {
	nation := "fr"
	city := "Paris"
	start := NewDate(2021, time.June, 26)
	end := NewDate(2021, time.July, 18)
	distance := decimal.RequireFromString("3414.4")

	meta := RaceMetadata{
		Year:      2021,
		Nation:    &nation,
		StartCity: &city,
		EndCity:   &city,
		StartDate: &start,
		EndDate:   &end,
		Distance:  &distance,
		ClassificationLeaders: map[string]int{
			ClassificationLeader: 16973,
			ClassificationYouth:  21145,
		},
	}

	data, err := json.Marshal(meta)
	require.NoError(t, err)

	var decoded RaceMetadata
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, meta.ClassificationLeaders, decoded.ClassificationLeaders)
	require.NotNil(t, decoded.Distance)
	assert.True(t, decoded.Distance.Equal(distance))
	assert.Equal(t, "2021-06-26", decoded.StartDate.String())
	assert.Equal(t, "2021-07-18", decoded.EndDate.String())
	// Fields that were absent remain absent after the round trip.
	assert.Nil(t, decoded.Category)
	assert.Nil(t, decoded.StageNumber)
	assert.Nil(t, decoded.Profile)
}
