// Package nbastats fetches player game logs and rosters from the stats feed.
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-edge/internal/config"
	"github.com/yourusername/prop-edge/internal/httpclient"
	"github.com/yourusername/prop-edge/internal/models"
)

// Client fetches box score stats from the paginated stats API
type Client struct {
	cfg    config.StatsAPIConfig
	http   *httpclient.RateLimited
	logger *logrus.Logger
}

// NewClient creates a stats API client
func NewClient(cfg config.StatsAPIConfig, logger *logrus.Logger) *Client {
	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.StatsTimeout()
	httpCfg.RateLimit = cfg.RateLimitPerSecond

	return &Client{
		cfg:    cfg,
		http:   httpclient.NewRateLimited(httpCfg, logger),
		logger: logger,
	}
}

// statRow is one box score line from the feed
type statRow struct {
	Min    string  `json:"min"`
	Pts    float64 `json:"pts"`
	Ast    float64 `json:"ast"`
	Reb    float64 `json:"reb"`
	FGA    float64 `json:"fga"`
	FTA    float64 `json:"fta"`
	FG3A   float64 `json:"fg3a"`
	TOV    float64 `json:"turnover"`
	Player struct {
		ID        int64  `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	} `json:"player"`
	Team struct {
		ID           int64  `json:"id"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
	Game struct {
		ID         int64  `json:"id"`
		Date       string `json:"date"`
		HomeTeamID int64  `json:"home_team_id"`
	} `json:"game"`
}

type statsPage struct {
	Data []statRow `json:"data"`
	Meta struct {
		NextCursor *int64 `json:"next_cursor"`
	} `json:"meta"`
}

// GetGameLogs fetches all game logs since the given date, walking the
// cursor until the feed is exhausted
func (c *Client) GetGameLogs(ctx context.Context, since time.Time) ([]*models.PlayerGameLog, error) {
	var logs []*models.PlayerGameLog
	var cursor *int64

	for page := 0; ; page++ {
		q := url.Values{}
		q.Set("seasons[]", strconv.Itoa(c.cfg.Season))
		q.Set("per_page", strconv.Itoa(c.cfg.PageSize))
		q.Set("start_date", since.Format("2006-01-02"))
		if cursor != nil {
			q.Set("cursor", strconv.FormatInt(*cursor, 10))
		}

		var payload statsPage
		if err := c.getJSON(ctx, "/stats?"+q.Encode(), &payload); err != nil {
			return nil, fmt.Errorf("fetching game logs page %d: %w", page, err)
		}

		for _, row := range payload.Data {
			gameLog, err := row.toGameLog()
			if err != nil {
				c.logger.WithError(err).WithField("player_id", row.Player.ID).
					Debug("Skipping unparseable stat row")
				continue
			}
			logs = append(logs, gameLog)
		}

		if payload.Meta.NextCursor == nil {
			break
		}
		cursor = payload.Meta.NextCursor
	}

	c.logger.WithFields(logrus.Fields{
		"since": since.Format("2006-01-02"),
		"logs":  len(logs),
	}).Info("Fetched game logs")
	return logs, nil
}

type playerRow struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Team      struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
}

type playersPage struct {
	Data []playerRow `json:"data"`
	Meta struct {
		NextCursor *int64 `json:"next_cursor"`
	} `json:"meta"`
}

// GetActiveRoster fetches the current player-to-team assignments
func (c *Client) GetActiveRoster(ctx context.Context) ([]*models.RosterEntry, error) {
	var entries []*models.RosterEntry
	var cursor *int64
	now := time.Now()

	for page := 0; ; page++ {
		q := url.Values{}
		q.Set("per_page", strconv.Itoa(c.cfg.PageSize))
		if cursor != nil {
			q.Set("cursor", strconv.FormatInt(*cursor, 10))
		}

		var payload playersPage
		if err := c.getJSON(ctx, "/players/active?"+q.Encode(), &payload); err != nil {
			return nil, fmt.Errorf("fetching roster page %d: %w", page, err)
		}

		for _, row := range payload.Data {
			if row.Team.Abbreviation == "" {
				continue
			}
			entries = append(entries, &models.RosterEntry{
				PlayerID:   row.ID,
				PlayerName: row.FirstName + " " + row.LastName,
				TeamAbbr:   row.Team.Abbreviation,
				UpdatedAt:  now,
			})
		}

		if payload.Meta.NextCursor == nil {
			break
		}
		cursor = payload.Meta.NextCursor
	}

	c.logger.WithField("players", len(entries)).Info("Fetched active roster")
	return entries, nil
}

// Close releases HTTP resources
func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.cfg.APIKey)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
