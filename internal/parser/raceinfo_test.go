package parser

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baronet2/FirstCyclingScraper/internal/models"
)

func infoDoc(t *testing.T, rows string) *goquery.Document {
	t.Helper()
	return docFromHTML(t, `<html><body><table class="tablesorter notOddEven">`+rows+`</table></body></html>`)
}

func TestParseRaceMetadataMissingTable(t *testing.T) {
	doc := docFromHTML(t, `<html><body></body></html>`)
	_, err := ParseRaceMetadata(doc, 2021)
	assert.ErrorIs(t, err, models.ErrInfoTableMissing)
}

func TestParseRaceMetadataOneDayRace(t *testing.T) {
	doc := infoDoc(t, `
		<tr><td>Nation</td><td><img src="/images/flags/fr.png"> France</td></tr>
		<tr><td>Where</td><td>Paris -> Roubaix</td></tr>
		<tr><td>Date</td><td>11 April</td></tr>
		<tr><td>Distance</td><td><img src="/images/icons/p6.gif"> 257.5 km</td></tr>
		<tr><td>CAT</td><td>1.UWT</td></tr>`)

	meta, err := ParseRaceMetadata(doc, 2021)
	require.NoError(t, err)

	require.NotNil(t, meta.Nation)
	assert.Equal(t, "fr", *meta.Nation)
	require.NotNil(t, meta.StartCity)
	assert.Equal(t, "Paris", *meta.StartCity)
	require.NotNil(t, meta.EndCity)
	assert.Equal(t, "Roubaix", *meta.EndCity)
	require.NotNil(t, meta.StartDate)
	assert.Equal(t, "2021-04-11", meta.StartDate.String())
	assert.Equal(t, meta.StartDate.String(), meta.EndDate.String())
	require.NotNil(t, meta.Distance)
	assert.Equal(t, "257.5", meta.Distance.String())
	require.NotNil(t, meta.Category)
	assert.Equal(t, "1.UWT", *meta.Category)
	require.NotNil(t, meta.Profile)
	assert.Equal(t, "Cobbles", *meta.Profile)
	assert.Nil(t, meta.StageNumber)
}

func TestParseRaceMetadataSingleCity(t *testing.T) {
	doc := infoDoc(t, `
		<tr><td>Where</td><td>Roubaix</td></tr>`)

	meta, err := ParseRaceMetadata(doc, 2021)
	require.NoError(t, err)
	require.NotNil(t, meta.StartCity)
	require.NotNil(t, meta.EndCity)
	assert.Equal(t, "Roubaix", *meta.StartCity)
	assert.Equal(t, "Roubaix", *meta.EndCity)
}

func TestParseRaceMetadataAbsentKeysStayAbsent(t *testing.T) {
	doc := infoDoc(t, `
		<tr><td>CAT</td><td>2.1</td></tr>`)

	meta, err := ParseRaceMetadata(doc, 2021)
	require.NoError(t, err)
	assert.Nil(t, meta.Nation)
	assert.Nil(t, meta.StartCity)
	assert.Nil(t, meta.EndCity)
	assert.Nil(t, meta.StartDate)
	assert.Nil(t, meta.EndDate)
	assert.Nil(t, meta.Distance)
	assert.Nil(t, meta.StageNumber)
	assert.Nil(t, meta.Profile)
	assert.Empty(t, meta.ClassificationLeaders)
}

func TestParseRaceMetadataDateRange(t *testing.T) {
	doc := infoDoc(t, `
		<tr><td>Nation</td><td><img src="/images/flags/fr.png"> France</td></tr>
		<tr><td>Date</td><td>26 June - 18 July</td></tr>`)

	meta, err := ParseRaceMetadata(doc, 2021)
	require.NoError(t, err)
	require.NotNil(t, meta.StartDate)
	require.NotNil(t, meta.EndDate)
	assert.Equal(t, "2021-06-26", meta.StartDate.String())
	assert.Equal(t, "2021-07-18", meta.EndDate.String())
}

func TestParseRaceMetadataStageNumber(t *testing.T) {
	doc := infoDoc(t, `
		<tr><td>What</td><td>Stage 5</td></tr>`)

	meta, err := ParseRaceMetadata(doc, 2021)
	require.NoError(t, err)
	require.NotNil(t, meta.StageNumber)
	assert.Equal(t, 5, *meta.StageNumber)
}

func TestParseRaceMetadataPrologueIsStageZero(t *testing.T) {
	// Prologue forces stage zero even when the value carries digits.
	doc := infoDoc(t, `
		<tr><td>What</td><td>Prologue (6.1 km)</td></tr>`)

	meta, err := ParseRaceMetadata(doc, 2021)
	require.NoError(t, err)
	require.NotNil(t, meta.StageNumber)
	assert.Equal(t, 0, *meta.StageNumber)
}

func TestParseRaceMetadataProfileFallsBackToWhatRow(t *testing.T) {
	doc := infoDoc(t, `
		<tr><td>What</td><td><img src="/images/icons/p7.gif"> Stage 20</td></tr>`)

	meta, err := ParseRaceMetadata(doc, 2021)
	require.NoError(t, err)
	require.NotNil(t, meta.Profile)
	assert.Equal(t, "ITT", *meta.Profile)
}

func TestParseRaceMetadataMultiNationEvent(t *testing.T) {
	// Multi-nation events list several flags; the last one and the text
	// after it win.
	doc := infoDoc(t, `
		<tr><td>Nation</td><td><img src="/images/flags/world.png"> <img src="/images/flags/jp.png">Tokyo</td></tr>
		<tr><td>Where</td><td>Musashinonomori -> Fuji Speedway</td></tr>`)

	meta, err := ParseRaceMetadata(doc, 2021)
	require.NoError(t, err)
	require.NotNil(t, meta.Nation)
	assert.Equal(t, "jp", *meta.Nation)
	require.NotNil(t, meta.StartCity)
	require.NotNil(t, meta.EndCity)
	assert.Equal(t, "Tokyo", *meta.StartCity)
	assert.Equal(t, "Tokyo", *meta.EndCity)
}

func TestParseRaceMetadataClassificationLeaders(t *testing.T) {
	doc := infoDoc(t, `
		<tr><td>Leader</td><td><a href="rider.php?r=16973">T. Pogacar</a></td></tr>
		<tr><td>Youth</td><td><a href="rider.php?r=21145">R. Evenepoel</a></td></tr>
		<tr><td>Points</td><td><a href="rider.php?r=18655">W. van Aert</a></td></tr>
		<tr><td>Combine</td><td><a href="rider.php?r=99999">Ignored Rider</a></td></tr>`)

	meta, err := ParseRaceMetadata(doc, 2021)
	require.NoError(t, err)

	expected := map[string]int{
		models.ClassificationLeader: 16973,
		models.ClassificationYouth:  21145,
		models.ClassificationPoints: 18655,
	}
	assert.Equal(t, expected, meta.ClassificationLeaders)
}

func TestParseInfoDateNumericForm(t *testing.T) {
	date := parseInfoDate("11.4", 2021)
	require.NotNil(t, date)
	assert.Equal(t, "2021-04-11", date.String())

	assert.Nil(t, parseInfoDate("not a date", 2021))
	assert.Nil(t, parseInfoDate("", 2021))
}
