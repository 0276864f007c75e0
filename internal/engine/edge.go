package engine

import (
	"fmt"
	"math"

	"github.com/yourusername/prop-edge/internal/models"
)

// Prop pairs a market line with the model's point estimate for the player
type Prop struct {
	Market       *models.MarketLine
	PlayerID     int64
	PlayerName   string
	PlayerTeam   string
	OpponentTeam string
	Mean         float64
	Alpha        float64
}

// ScoreProp scores both sides of a prop market against the model. OVER and
// UNDER are scored independently: de-vigging splits the margin between the
// sides, so either side can carry positive edge.
//
// Returns models.ErrDegenerate wrapped errors for invalid numeric inputs and
// models.ErrDataGap when no priority book posted the line.
func ScoreProp(prop Prop, bookPriority []string) ([]models.EdgeCandidate, error) {
	quote := prop.Market.BestQuote(bookPriority)
	if quote == nil {
		return nil, fmt.Errorf("%w: no priority book quote for %s", models.ErrDataGap, prop.PlayerName)
	}

	line, _ := prop.Market.Line.Float64()

	pOver, err := ProbOver(prop.Mean, line, prop.Alpha)
	if err != nil {
		return nil, err
	}
	pUnder := 1 - pOver

	impliedOver, impliedUnder, err := ImpliedPair(quote)
	if err != nil {
		return nil, err
	}

	base := models.EdgeCandidate{
		PlayerID:     prop.PlayerID,
		PlayerName:   prop.PlayerName,
		PlayerTeam:   prop.PlayerTeam,
		OpponentTeam: prop.OpponentTeam,
		Stat:         prop.Market.Stat,
		Line:         line,
		Book:         quote.BookKey,
		BookName:     quote.BookTitle,
		Quotes:       prop.Market.Quotes,
	}

	over := base
	over.Side = models.SideOver
	over.Price = quote.OverPrice
	over.ModelProb = pOver
	over.ImpliedProb = impliedOver
	over.Edge = pOver - impliedOver
	over.Rating = rating(over.Edge)

	under := base
	under.Side = models.SideUnder
	under.Price = quote.UnderPrice
	under.ModelProb = pUnder
	under.ImpliedProb = impliedUnder
	under.Edge = pUnder - impliedUnder
	under.Rating = rating(under.Edge)

	return []models.EdgeCandidate{over, under}, nil
}

// FilterCandidates drops candidates with no advantage: non-positive edge or
// any non-finite field that would poison ranking.
func FilterCandidates(candidates []models.EdgeCandidate) []models.EdgeCandidate {
	kept := make([]models.EdgeCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Edge <= 0 {
			continue
		}
		if !finite(c.Edge) || !finite(c.ModelProb) || !finite(c.ImpliedProb) || !finite(c.Rating) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// rating is the display-scaled ranking score: edge times 100, one decimal
func rating(edge float64) float64 {
	return math.Round(edge*1000) / 10
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
