package model

import (
	"context"
	"math"

	"github.com/jbeshir/tumorcheck-frontend/data"
	"github.com/pkg/errors"
)

// Pipeline is a deserialized classifier: zero or more transformers followed
// by one estimator. It is never mutated after loading.
type Pipeline struct {
	transformers []transformer
	estimator    estimator
}

type transformer interface {
	transform(x []float64) ([]float64, error)
}

type estimator interface {
	predictProba(x []float64) ([]float64, error)
}

func (p *Pipeline) Predict(ctx context.Context, v data.FeatureVector) (int, error) {
	proba, err := p.PredictProba(ctx, v)
	if err != nil {
		return 0, err
	}

	// First maximum wins on ties.
	best := 0
	for i := range proba {
		if proba[i] > proba[best] {
			best = i
		}
	}
	return best, nil
}

func (p *Pipeline) PredictProba(ctx context.Context, v data.FeatureVector) ([]float64, error) {
	x := v.Values()
	for _, t := range p.transformers {
		var err error
		x, err = t.transform(x)
		if err != nil {
			return nil, err
		}
	}
	return p.estimator.predictProba(x)
}

type standardScaler struct {
	mean  []float64
	scale []float64
}

func (s *standardScaler) transform(x []float64) ([]float64, error) {
	if len(s.mean) != len(x) || len(s.scale) != len(x) {
		return nil, errors.Errorf("scaler fitted on %d/%d columns, got %d", len(s.mean), len(s.scale), len(x))
	}

	out := make([]float64, len(x))
	for i := range x {
		scale := s.scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (x[i] - s.mean[i]) / scale
	}
	return out, nil
}

type logisticRegression struct {
	coef      []float64
	intercept float64
}

func (m *logisticRegression) predictProba(x []float64) ([]float64, error) {
	if len(m.coef) != len(x) {
		return nil, errors.Errorf("logistic regression has %d coefficients, got %d columns", len(m.coef), len(x))
	}

	z := m.intercept
	for i := range x {
		z += m.coef[i] * x[i]
	}
	p1 := 1 / (1 + math.Exp(-z))
	return []float64{1 - p1, p1}, nil
}

type decisionTree struct {
	nodes []treeNode
}

func (m *decisionTree) predictProba(x []float64) ([]float64, error) {
	idx := 0
	// A well-formed tree reaches a leaf in at most len(nodes) steps.
	for steps := 0; steps <= len(m.nodes); steps++ {
		if idx < 0 || idx >= len(m.nodes) {
			return nil, errors.Errorf("decision tree node index %d out of range", idx)
		}

		node := &m.nodes[idx]
		if node.isLeaf() {
			total := node.Value[0] + node.Value[1]
			if total <= 0 {
				return nil, errors.Errorf("decision tree leaf %d has no samples", idx)
			}
			return []float64{node.Value[0] / total, node.Value[1] / total}, nil
		}

		if node.Feature < 0 || node.Feature >= len(x) {
			return nil, errors.Errorf("decision tree feature index %d out of range", node.Feature)
		}
		if x[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
	return nil, errors.New("decision tree contains a cycle")
}
