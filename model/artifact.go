package model

import (
	"encoding/json"

	"github.com/jbeshir/tumorcheck-frontend/data"
	"github.com/pkg/errors"
)

const ArtifactFormat = "tumorcheck.pipeline/v1"

const (
	KindStandardScaler     = "standard_scaler"
	KindLogisticRegression = "logistic_regression"
	KindDecisionTree       = "decision_tree"
)

type artifact struct {
	Format       string   `json:"format"`
	FeatureNames []string `json:"feature_names"`
	Classes      []int    `json:"classes"`
	Steps        []step   `json:"steps"`
}

type step struct {
	Kind string `json:"kind"`

	// standard_scaler
	Mean  []float64 `json:"mean,omitempty"`
	Scale []float64 `json:"scale,omitempty"`

	// logistic_regression
	Coef      []float64 `json:"coef,omitempty"`
	Intercept float64   `json:"intercept,omitempty"`

	// decision_tree
	Nodes []treeNode `json:"nodes,omitempty"`
}

type treeNode struct {
	Feature   int        `json:"feature"`
	Threshold float64    `json:"threshold"`
	Left      int        `json:"left"`
	Right     int        `json:"right"`
	Value     [2]float64 `json:"value"`
}

func (n *treeNode) isLeaf() bool {
	return n.Left < 0 && n.Right < 0
}

func decodeArtifact(content []byte) (*Pipeline, error) {
	var a artifact
	if err := json.Unmarshal(content, &a); err != nil {
		return nil, errors.Wrap(err, "couldn't decode model artifact")
	}

	if a.Format != ArtifactFormat {
		return nil, errors.Errorf("unsupported model artifact format %q", a.Format)
	}

	if len(a.FeatureNames) != len(data.FeatureNames) {
		return nil, errors.Errorf("model expects %d features, schema has %d", len(a.FeatureNames), len(data.FeatureNames))
	}
	for i, name := range data.FeatureNames {
		if a.FeatureNames[i] != name {
			return nil, errors.Errorf("model feature %d is %q, schema expects %q", i, a.FeatureNames[i], name)
		}
	}

	if len(a.Classes) != 2 || a.Classes[0] != 0 || a.Classes[1] != 1 {
		return nil, errors.Errorf("model classes must be [0 1], got %v", a.Classes)
	}

	if len(a.Steps) == 0 {
		return nil, errors.New("model artifact has no steps")
	}

	p := &Pipeline{}
	for i, s := range a.Steps {
		last := i == len(a.Steps)-1
		switch s.Kind {
		case KindStandardScaler:
			if last {
				return nil, errors.New("model artifact ends in a transformer, expected an estimator")
			}
			p.transformers = append(p.transformers, &standardScaler{mean: s.Mean, scale: s.Scale})
		case KindLogisticRegression, KindDecisionTree:
			if !last {
				return nil, errors.Errorf("estimator %q must be the final step", s.Kind)
			}
			if s.Kind == KindLogisticRegression {
				p.estimator = &logisticRegression{coef: s.Coef, intercept: s.Intercept}
			} else {
				if len(s.Nodes) == 0 {
					return nil, errors.New("decision tree has no nodes")
				}
				p.estimator = &decisionTree{nodes: s.Nodes}
			}
		default:
			return nil, errors.Errorf("unknown pipeline step kind %q", s.Kind)
		}
	}

	return p, nil
}
