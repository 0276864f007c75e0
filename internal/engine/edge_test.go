package engine

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/prop-edge/internal/models"
)

var bookPriority = []string{"fanduel", "bet365"}

func testMarket(quotes ...models.BookQuote) *models.MarketLine {
	return &models.MarketLine{
		EventID:      "ev1",
		CommenceTime: time.Now().Add(3 * time.Hour),
		HomeTeam:     "Boston Celtics",
		AwayTeam:     "Miami Heat",
		Player:       "Jayson Tatum",
		Stat:         models.StatPoints,
		Line:         decimal.NewFromFloat(26.5),
		Quotes:       quotes,
		FetchedAt:    time.Now(),
	}
}

func TestScorePropBothSides(t *testing.T) {
	market := testMarket(models.BookQuote{BookKey: "fanduel", BookTitle: "FanDuel", OverPrice: -110, UnderPrice: -110})

	candidates, err := ScoreProp(Prop{
		Market:     market,
		PlayerID:   42,
		PlayerName: "Jayson Tatum",
		PlayerTeam: "BOS",
		Mean:       29.0,
		Alpha:      5.0,
	}, bookPriority)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	over, under := candidates[0], candidates[1]
	assert.Equal(t, models.SideOver, over.Side)
	assert.Equal(t, models.SideUnder, under.Side)

	// Model probabilities complement each other
	assert.InDelta(t, 1.0, over.ModelProb+under.ModelProb, 1e-12)
	// De-vigged implied pair sums to one
	assert.InDelta(t, 1.0, over.ImpliedProb+under.ImpliedProb, 1e-12)

	// Mean well above the line: the over carries the edge
	assert.Greater(t, over.ModelProb, 0.5)
	assert.Greater(t, over.Edge, 0.0)
	assert.Less(t, under.Edge, 0.0)

	// Rating is the edge scaled for display
	assert.InDelta(t, over.Edge*100, over.Rating, 0.05)
}

func TestScorePropBookPriority(t *testing.T) {
	market := testMarket(
		models.BookQuote{BookKey: "bet365", BookTitle: "Bet365", OverPrice: 100, UnderPrice: -120},
		models.BookQuote{BookKey: "fanduel", BookTitle: "FanDuel", OverPrice: -105, UnderPrice: -115},
	)

	candidates, err := ScoreProp(Prop{Market: market, PlayerID: 1, Mean: 25, Alpha: 5}, bookPriority)
	require.NoError(t, err)

	// FanDuel outranks Bet365 regardless of quote order
	assert.Equal(t, -105, candidates[0].Price)
	assert.Equal(t, -115, candidates[1].Price)
}

func TestScorePropNoPriorityBook(t *testing.T) {
	market := testMarket(models.BookQuote{BookKey: "draftkings", OverPrice: -110, UnderPrice: -110})

	_, err := ScoreProp(Prop{Market: market, PlayerID: 1, Mean: 25, Alpha: 5}, bookPriority)
	assert.ErrorIs(t, err, models.ErrDataGap)
}

func TestScorePropDegenerateAlpha(t *testing.T) {
	market := testMarket(models.BookQuote{BookKey: "fanduel", OverPrice: -110, UnderPrice: -110})

	_, err := ScoreProp(Prop{Market: market, PlayerID: 1, Mean: 25, Alpha: 0}, bookPriority)
	assert.ErrorIs(t, err, models.ErrDegenerate)
}

func TestFilterCandidates(t *testing.T) {
	nan := candidate(5, models.SideOver, 10)
	nan.ModelProb = math.NaN()

	candidates := []models.EdgeCandidate{
		candidate(1, models.SideOver, 12),   // kept
		candidate(2, models.SideOver, 0),    // zero edge dropped
		candidate(3, models.SideUnder, -4),  // negative edge dropped
		nan,                                 // non-finite dropped
		candidate(4, models.SideUnder, 0.1), // kept
	}

	kept := FilterCandidates(candidates)

	require.Len(t, kept, 2)
	assert.Equal(t, int64(1), kept[0].PlayerID)
	assert.Equal(t, int64(4), kept[1].PlayerID)
}
