package nbastats

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
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewClient(config.StatsAPIConfig{
		BaseURL:            server.URL,
		APIKey:             "test-key",
		TimeoutSeconds:     5,
		RateLimitPerSecond: 100,
		Season:             2025,
		PageSize:           2,
	}, log)
}

func TestGetGameLogsWalksCursor(t *testing.T) {
	pages := map[string]string{
		"": `{"data":[
			{"min":"30","pts":20,"player":{"id":1,"first_name":"A","last_name":"One"},"team":{"id":2,"abbreviation":"BOS"},"game":{"id":100,"date":"2026-01-10","home_team_id":2}},
			{"min":"28","pts":18,"player":{"id":2,"first_name":"B","last_name":"Two"},"team":{"id":3,"abbreviation":"MIA"},"game":{"id":100,"date":"2026-01-10","home_team_id":2}}
		],"meta":{"next_cursor":200}}`,
		"200": `{"data":[
			{"min":"31:30","pts":25,"player":{"id":1,"first_name":"A","last_name":"One"},"team":{"id":2,"abbreviation":"BOS"},"game":{"id":101,"date":"2026-01-12","home_team_id":4}}
		],"meta":{"next_cursor":null}}`,
	}

	var authHeader string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		fmt.Fprint(w, pages[r.URL.Query().Get("cursor")])
	})
	defer client.Close()

	logs, err := client.GetGameLogs(context.Background(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "test-key", authHeader)
	require.Len(t, logs, 3)
	assert.Equal(t, int64(1), logs[0].PlayerID)
	assert.True(t, logs[0].Home)
	assert.False(t, logs[2].Home, "away game on the second page")
	assert.InDelta(t, 31.5, logs[2].Minutes, 1e-9)
}

func TestGetGameLogsSkipsBadRows(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"min":"garbage","player":{"id":1},"game":{"id":100,"date":"2026-01-10"}},
			{"min":"30","pts":20,"player":{"id":2,"first_name":"B","last_name":"Two"},"team":{"id":3,"abbreviation":"MIA"},"game":{"id":100,"date":"2026-01-10","home_team_id":2}}
		],"meta":{"next_cursor":null}}`)
	})
	defer client.Close()

	logs, err := client.GetGameLogs(context.Background(), time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, int64(2), logs[0].PlayerID)
}

func TestGetActiveRoster(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"id":1,"first_name":"Jayson","last_name":"Tatum","team":{"abbreviation":"BOS"}},
			{"id":2,"first_name":"Free","last_name":"Agent","team":{"abbreviation":""}}
		],"meta":{"next_cursor":null}}`)
	})
	defer client.Close()

	roster, err := client.GetActiveRoster(context.Background())
	require.NoError(t, err)

	// Players without a team are skipped
	require.Len(t, roster, 1)
	assert.Equal(t, "Jayson Tatum", roster[0].PlayerName)
	assert.Equal(t, "BOS", roster[0].TeamAbbr)
}

func TestGetGameLogsServerError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})
	defer client.Close()

	_, err := client.GetGameLogs(context.Background(), time.Now())
	assert.Error(t, err)
}
