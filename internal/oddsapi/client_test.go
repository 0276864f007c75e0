package oddsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/prop-edge/internal/config"
	"github.com/yourusername/prop-edge/internal/models"
)

func testOddsClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewClient(config.OddsAPIConfig{
		BaseURL:            server.URL,
		APIKey:             "test-key",
		Sport:              "basketball_nba",
		Regions:            "us",
		OddsFormat:         "american",
		TimeoutSeconds:     5,
		RateLimitPerSecond: 100,
		CacheTTLSeconds:    300,
		BookPriority:       []string{"fanduel", "bet365"},
	}, log)
}

func TestListEvents(t *testing.T) {
	var gotPath, gotKey string
	client := testOddsClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("apiKey")
		fmt.Fprint(w, `[
			{"id":"ev1","sport_key":"basketball_nba","commence_time":"2026-01-16T00:10:00Z","home_team":"Boston Celtics","away_team":"Miami Heat"}
		]`)
	})
	defer client.Close()

	events, err := client.ListEvents(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/sports/basketball_nba/events", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, events, 1)
	assert.Equal(t, "ev1", events[0].ID)
	assert.Equal(t, "Boston Celtics", events[0].HomeTeam)
}

func TestFetchMarketsCachesPerEvent(t *testing.T) {
	requests := 0
	client := testOddsClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "player_points", r.URL.Query().Get("markets"))
		fmt.Fprint(w, samplePayload)
	})
	defer client.Close()

	event := Event{ID: "ev1", CommenceTime: time.Now().Add(6 * time.Hour)}

	first, err := client.FetchMarkets(context.Background(), event, models.StatPoints)
	require.NoError(t, err)
	second, err := client.FetchMarkets(context.Background(), event, models.StatPoints)
	require.NoError(t, err)

	assert.Equal(t, 1, requests, "second fetch served from cache")
	assert.Equal(t, first, second)
}

func TestFetchMarketsWrapsFailures(t *testing.T) {
	client := testOddsClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exhausted", http.StatusUnauthorized)
	})
	defer client.Close()

	_, err := client.FetchMarkets(context.Background(), Event{ID: "ev1"}, models.StatPoints)
	require.Error(t, err)

	var fetchErr *MarketFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "odds-api", fetchErr.Source)
	assert.Equal(t, "ev1", fetchErr.EventID)
	assert.False(t, fetchErr.Timestamp.IsZero())
}

func TestFetchMarketsRejectsUnknownStat(t *testing.T) {
	client := testOddsClient(t, func(w http.ResponseWriter, r *http.Request) {})
	defer client.Close()

	_, err := client.FetchMarkets(context.Background(), Event{ID: "ev1"}, models.StatType("steals"))
	assert.ErrorIs(t, err, models.ErrDataGap)
}
