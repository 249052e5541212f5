package inference

import (
	"context"

	"github.com/jbeshir/tumorcheck-frontend/data"
)

// Predictor is a trained binary classifier over data.FeatureNames.
// Implementations must be safe for concurrent use.
type Predictor interface {
	Predict(ctx context.Context, v data.FeatureVector) (int, error)
	PredictProba(ctx context.Context, v data.FeatureVector) ([]float64, error)
}

// RawInput maps form field names to the values the user submitted.
type RawInput map[string]string
