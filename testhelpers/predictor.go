package testhelpers

import (
	"context"
	"testing"

	"github.com/jbeshir/tumorcheck-frontend/data"
)

type Predictor struct {
	PredictFunc      func(ctx context.Context, v data.FeatureVector) (int, error)
	PredictProbaFunc func(ctx context.Context, v data.FeatureVector) ([]float64, error)
}

func NewPredictor(t *testing.T) *Predictor {
	return &Predictor{
		PredictFunc: func(ctx context.Context, v data.FeatureVector) (int, error) {
			t.Error("Predict should not be called")
			return 0, nil
		},
		PredictProbaFunc: func(ctx context.Context, v data.FeatureVector) ([]float64, error) {
			t.Error("PredictProba should not be called")
			return nil, nil
		},
	}
}

// NewFixedPredictor returns a Predictor that always answers with class and
// proba.
func NewFixedPredictor(class int, proba []float64) *Predictor {
	return &Predictor{
		PredictFunc: func(ctx context.Context, v data.FeatureVector) (int, error) {
			return class, nil
		},
		PredictProbaFunc: func(ctx context.Context, v data.FeatureVector) ([]float64, error) {
			return proba, nil
		},
	}
}

func (p *Predictor) Predict(ctx context.Context, v data.FeatureVector) (int, error) {
	return p.PredictFunc(ctx, v)
}

func (p *Predictor) PredictProba(ctx context.Context, v data.FeatureVector) ([]float64, error) {
	return p.PredictProbaFunc(ctx, v)
}
