// Package oddsapi fetches player prop markets from The Odds API v4.
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-edge/internal/config"
	"github.com/yourusername/prop-edge/internal/httpclient"
	"github.com/yourusername/prop-edge/internal/models"
)

// MarketFetchError wraps a failed market fetch with its source and time
type MarketFetchError struct {
	Source    string
	EventID   string
	Timestamp time.Time
	Err       error
}

func (e *MarketFetchError) Error() string {
	return fmt.Sprintf("market fetch from %s (event %s) at %s: %v",
		e.Source, e.EventID, e.Timestamp.Format(time.RFC3339), e.Err)
}

func (e *MarketFetchError) Unwrap() error { return e.Err }

// Event is an upcoming game as listed by the odds feed
type Event struct {
	ID           string    `json:"id"`
	SportKey     string    `json:"sport_key"`
	CommenceTime time.Time `json:"commence_time"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
}

// eventOdds is the per-event odds payload
type eventOdds struct {
	ID           string    `json:"id"`
	CommenceTime time.Time `json:"commence_time"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	Bookmakers   []struct {
		Key     string `json:"key"`
		Title   string `json:"title"`
		Markets []struct {
			Key      string `json:"key"`
			Outcomes []struct {
				Name        string  `json:"name"`
				Description string  `json:"description"`
				Price       int     `json:"price"`
				Point       float64 `json:"point"`
			} `json:"outcomes"`
		} `json:"markets"`
	} `json:"bookmakers"`
}

// Client fetches events and player prop odds
type Client struct {
	cfg    config.OddsAPIConfig
	http   *httpclient.RateLimited
	cache  *MarketCache
	logger *logrus.Logger
	now    func() time.Time
}

// NewClient creates an odds API client. The cache keeps per-event responses
// for the configured TTL so repeated runs within a few minutes do not burn
// through the request quota.
func NewClient(cfg config.OddsAPIConfig, logger *logrus.Logger) *Client {
	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.OddsTimeout()
	httpCfg.RateLimit = cfg.RateLimitPerSecond

	return &Client{
		cfg:    cfg,
		http:   httpclient.NewRateLimited(httpCfg, logger),
		cache:  NewMarketCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
		logger: logger,
		now:    time.Now,
	}
}

// ListEvents returns the upcoming events for the configured sport
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	u := fmt.Sprintf("%s/sports/%s/events?apiKey=%s",
		c.cfg.BaseURL, c.cfg.Sport, url.QueryEscape(c.cfg.APIKey))

	body, resp, err := c.http.GetJSON(ctx, u)
	if err != nil {
		return nil, &MarketFetchError{Source: "odds-api", Timestamp: c.now(), Err: err}
	}
	c.logQuota(resp.Header.Get("X-Requests-Remaining"))

	var events []Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, &MarketFetchError{Source: "odds-api", Timestamp: c.now(),
			Err: fmt.Errorf("decoding events: %w", err)}
	}

	c.logger.WithField("events", len(events)).Debug("Fetched event list")
	return events, nil
}

// FetchMarkets returns the player prop lines for one event and stat. Cached
// responses are served without touching the network.
func (c *Client) FetchMarkets(ctx context.Context, event Event, stat models.StatType) ([]*models.MarketLine, error) {
	marketKey := stat.MarketKey()
	if marketKey == "" {
		return nil, fmt.Errorf("%w: unsupported stat %q", models.ErrDataGap, stat)
	}

	cacheKey := event.ID + ":" + marketKey
	if lines, ok := c.cache.Get(cacheKey); ok {
		return lines, nil
	}

	u := fmt.Sprintf("%s/sports/%s/events/%s/odds?apiKey=%s&regions=%s&markets=%s&oddsFormat=%s",
		c.cfg.BaseURL, c.cfg.Sport, url.PathEscape(event.ID),
		url.QueryEscape(c.cfg.APIKey), url.QueryEscape(c.cfg.Regions),
		url.QueryEscape(marketKey), url.QueryEscape(c.cfg.OddsFormat))

	body, resp, err := c.http.GetJSON(ctx, u)
	if err != nil {
		return nil, &MarketFetchError{Source: "odds-api", EventID: event.ID, Timestamp: c.now(), Err: err}
	}
	c.logQuota(resp.Header.Get("X-Requests-Remaining"))

	var payload eventOdds
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &MarketFetchError{Source: "odds-api", EventID: event.ID, Timestamp: c.now(),
			Err: fmt.Errorf("decoding odds: %w", err)}
	}

	lines := normalizeEventOdds(&payload, stat, c.now())
	c.cache.Set(cacheKey, lines)

	c.logger.WithFields(logrus.Fields{
		"event_id": event.ID,
		"market":   marketKey,
		"lines":    len(lines),
	}).Debug("Fetched player prop markets")
	return lines, nil
}

// Close releases HTTP resources
func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) logQuota(remaining string) {
	if remaining != "" {
		c.logger.WithField("requests_remaining", remaining).Debug("Odds API quota")
	}
}
