// Package minutes predicts expected playing time from a trained booster
// artifact.
package minutes

import (
	"github.com/yourusername/prop-edge/internal/models"
)

// Predictor produces an expected minutes estimate from a feature row.
// Implementations must be safe for concurrent use.
type Predictor interface {
	Predict(features *models.PlayerGameFeatures) (float64, error)
}
