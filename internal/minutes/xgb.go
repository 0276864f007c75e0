package minutes

import (
	"fmt"
	"math"

	"github.com/dmitryikh/leaves"

	"github.com/yourusername/prop-edge/internal/models"
)

// XGBPredictor runs a gradient-boosted minutes model exported from training.
// Predictions are clamped to [0, maxMinutes]; the booster can extrapolate
// past a plausible NBA workload for outlier feature rows.
type XGBPredictor struct {
	ensemble   *leaves.Ensemble
	maxMinutes float64
}

// NewXGBPredictor loads the booster artifact from disk. A missing or corrupt
// artifact is fatal for the run, reported as ErrModelLoad.
func NewXGBPredictor(artifactPath string, maxMinutes float64) (*XGBPredictor, error) {
	ensemble, err := leaves.XGEnsembleFromFile(artifactPath, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrModelLoad, artifactPath, err)
	}

	if got, want := ensemble.NFeatures(), len(models.MinutesFeatureNames); got != want {
		return nil, fmt.Errorf("%w: artifact expects %d features, pipeline builds %d",
			models.ErrModelLoad, got, want)
	}

	return &XGBPredictor{ensemble: ensemble, maxMinutes: maxMinutes}, nil
}

// Predict returns expected minutes for one feature row
func (p *XGBPredictor) Predict(features *models.PlayerGameFeatures) (float64, error) {
	raw := p.ensemble.PredictSingle(features.MinutesVector(), 0)
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, fmt.Errorf("%w: non-finite prediction for player %d",
			models.ErrDegenerate, features.PlayerID)
	}
	return clamp(raw, 0, p.maxMinutes), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
