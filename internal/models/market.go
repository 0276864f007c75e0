package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookQuote holds one sportsbook's two-sided American prices for a line
type BookQuote struct {
	BookKey    string `json:"book_key"`
	BookTitle  string `json:"book_title"`
	OverPrice  int    `json:"over_price"`
	UnderPrice int    `json:"under_price"`
}

// MarketLine represents one player/stat/line market for a single game, with
// quotes from every book that posted both sides. Fetched fresh each run and
// never persisted beyond the run archive.
type MarketLine struct {
	EventID      string          `json:"event_id"`
	CommenceTime time.Time       `json:"commence_time"`
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	Player       string          `json:"player"`
	Stat         StatType        `json:"stat"`
	Line         decimal.Decimal `json:"line"`
	Quotes       []BookQuote     `json:"quotes"`
	FetchedAt    time.Time       `json:"fetched_at"`
}

// BestQuote returns the highest-priority book quote, or nil when no priority
// book posted the line
func (m *MarketLine) BestQuote(priority []string) *BookQuote {
	for _, key := range priority {
		for i := range m.Quotes {
			if m.Quotes[i].BookKey == key {
				return &m.Quotes[i]
			}
		}
	}
	return nil
}

// QuoteFor returns the quote for a specific book, or nil
func (m *MarketLine) QuoteFor(bookKey string) *BookQuote {
	for i := range m.Quotes {
		if m.Quotes[i].BookKey == bookKey {
			return &m.Quotes[i]
		}
	}
	return nil
}
