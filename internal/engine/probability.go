package engine

import (
	"fmt"
	"math"

	"github.com/yourusername/prop-edge/internal/models"
)

// ProbOver returns P(actual > line) under a normal model centered on mean with
// spread alpha: 1 - Phi((line - mean) / alpha).
//
// The result is clamped to [0,1] so extreme z-scores never leak NaN or
// out-of-range values into ranking.
func ProbOver(mean, line, alpha float64) (float64, error) {
	if alpha <= 0 {
		return 0, fmt.Errorf("%w: alpha %v", models.ErrDegenerate, alpha)
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(line) || math.IsInf(line, 0) {
		return 0, fmt.Errorf("%w: mean %v line %v", models.ErrDegenerate, mean, line)
	}

	z := (line - mean) / alpha
	return clamp01(1 - normCDF(z)), nil
}

// Alpha resolves the spread parameter for a player: the rolling stat standard
// deviation clamped below at floor, or fallback when volatility is unknown.
func Alpha(statStd, floor, fallback float64) float64 {
	if math.IsNaN(statStd) || statStd <= 0 {
		return fallback
	}
	return math.Max(statStd, floor)
}

// AmericanToImplied converts an American price to its raw implied probability,
// vig included.
func AmericanToImplied(price int) (float64, error) {
	if price > -100 && price < 100 {
		return 0, fmt.Errorf("%w: american price %d", models.ErrDegenerate, price)
	}
	odds := float64(price)
	if odds > 0 {
		return 100.0 / (odds + 100.0), nil
	}
	return -odds / (-odds + 100.0), nil
}

// Devig normalizes a two-sided raw implied pair so the fair probabilities sum
// to exactly 1, splitting the bookmaker margin between both sides.
func Devig(rawOver, rawUnder float64) (float64, float64, error) {
	if rawOver <= 0 || rawUnder <= 0 {
		return 0, 0, fmt.Errorf("%w: raw implied pair (%v, %v)", models.ErrDegenerate, rawOver, rawUnder)
	}
	total := rawOver + rawUnder
	return rawOver / total, rawUnder / total, nil
}

// ImpliedPair converts a book quote's two American prices into de-vigged
// over/under probabilities.
func ImpliedPair(quote *models.BookQuote) (float64, float64, error) {
	rawOver, err := AmericanToImplied(quote.OverPrice)
	if err != nil {
		return 0, 0, err
	}
	rawUnder, err := AmericanToImplied(quote.UnderPrice)
	if err != nil {
		return 0, 0, err
	}
	return Devig(rawOver, rawUnder)
}

func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

func clamp01(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
