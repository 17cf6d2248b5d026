package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baronet2/FirstCyclingScraper/internal/config"
)

func testConfig(baseURL string) config.FetcherConfig {
	return config.FetcherConfig{
		BaseURL:           baseURL,
		UserAgent:         "FirstCyclingScraper/test",
		RequestsPerSecond: 100,
		Burst:             100,
		TimeoutSeconds:    5,
		RetryMax:          0,
		CacheTTLSeconds:   60,
	}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

func TestRiderPageBuildsExpectedURL(t *testing.T) {
	var requested atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested.Store(r.URL.String())
		_, _ = w.Write([]byte(`<html><body><h1>Rider</h1></body></html>`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL), testLogger())
	doc, err := client.RiderPage(context.Background(), 12345, 2021)
	require.NoError(t, err)
	assert.Equal(t, "Rider", doc.Find("h1").Text())
	assert.Equal(t, "/rider.php?r=12345&y=2021", requested.Load())
}

func TestRiderPageOmitsZeroYear(t *testing.T) {
	var requested atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested.Store(r.URL.String())
		_, _ = w.Write([]byte(`<html></html>`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL), testLogger())
	_, err := client.RiderPage(context.Background(), 12345, 0)
	require.NoError(t, err)
	assert.Equal(t, "/rider.php?r=12345", requested.Load())
}

func TestRankingPageBuildsExpectedURL(t *testing.T) {
	var requested atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested.Store(r.URL.Query())
		_, _ = w.Write([]byte(`<html></html>`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL), testLogger())
	_, pageURL, err := client.RankingPage(context.Background(), RankingQuery{
		Type:     RankingWorld,
		Category: RankingRiders,
		Year:     "2021-7",
		Country:  "BEL",
		U23:      true,
		Page:     2,
	})
	require.NoError(t, err)
	assert.Contains(t, pageURL, "/ranking.php?")

	query := requested.Load().(url.Values)
	assert.Equal(t, []string{"1"}, query["rank"])
	assert.Equal(t, []string{"1"}, query["h"])
	assert.Equal(t, []string{"2021-7"}, query["y"])
	assert.Equal(t, []string{"BEL"}, query["cnat"])
	assert.Equal(t, []string{"1"}, query["u23"])
	assert.Equal(t, []string{"2"}, query["page"])
}

func TestDocumentCachesPages(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`<html><body><h1>Cached</h1></body></html>`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL), testLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		doc, err := client.RacePage(ctx, 13, 2021)
		require.NoError(t, err)
		assert.Equal(t, "Cached", doc.Find("h1").Text())
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestDocumentRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := New(testConfig(server.URL), testLogger())
	_, err := client.RacePage(context.Background(), 13, 2021)
	assert.Error(t, err)
}
