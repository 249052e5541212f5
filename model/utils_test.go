package model

import (
	"context"

	"github.com/jbeshir/tumorcheck-frontend/data"
)

const testLogisticArtifact = `{
	"format": "tumorcheck.pipeline/v1",
	"feature_names": ["radius_mean", "texture_mean", "perimeter_mean", "concavity_mean", "smoothness_mean"],
	"classes": [0, 1],
	"steps": [
		{"kind": "standard_scaler", "mean": [14, 19, 92, 0.09, 0.1], "scale": [3.5, 4.3, 24, 0.08, 0.014]},
		{"kind": "logistic_regression", "coef": [1.2, 0.9, 1.1, 1.6, 0.8], "intercept": -0.4}
	]
}`

const testTreeArtifact = `{
	"format": "tumorcheck.pipeline/v1",
	"feature_names": ["radius_mean", "texture_mean", "perimeter_mean", "concavity_mean", "smoothness_mean"],
	"classes": [0, 1],
	"steps": [
		{"kind": "decision_tree", "nodes": [
			{"feature": 3, "threshold": 0.1, "left": 1, "right": 2},
			{"feature": -1, "left": -1, "right": -1, "value": [88, 12]},
			{"feature": -1, "left": -1, "right": -1, "value": [5, 95]}
		]}
	]
}`

func malignantSample() data.FeatureVector {
	return data.FeatureVector{
		RadiusMean:     17.99,
		TextureMean:    10.38,
		PerimeterMean:  122.8,
		ConcavityMean:  0.3001,
		SmoothnessMean: 0.1184,
	}
}

func benignSample() data.FeatureVector {
	return data.FeatureVector{
		RadiusMean:     11.42,
		TextureMean:    20.38,
		PerimeterMean:  77.58,
		ConcavityMean:  0.02,
		SmoothnessMean: 0.08,
	}
}

func mustDecode(content string) *Pipeline {
	p, err := decodeArtifact([]byte(content))
	if err != nil {
		panic(err)
	}
	return p
}

var background = context.Background()
