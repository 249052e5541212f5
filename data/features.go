package data

// FeatureNames is the column order the classifier was trained on.
var FeatureNames = [...]string{
	"radius_mean",
	"texture_mean",
	"perimeter_mean",
	"concavity_mean",
	"smoothness_mean",
}

// FeatureVector is a single row of input for a Predictor.
type FeatureVector struct {
	RadiusMean     float64 `json:"radius_mean"`
	TextureMean    float64 `json:"texture_mean"`
	PerimeterMean  float64 `json:"perimeter_mean"`
	ConcavityMean  float64 `json:"concavity_mean"`
	SmoothnessMean float64 `json:"smoothness_mean"`
}

// Values returns the features in FeatureNames order.
func (v FeatureVector) Values() []float64 {
	return []float64{
		v.RadiusMean,
		v.TextureMean,
		v.PerimeterMean,
		v.ConcavityMean,
		v.SmoothnessMean,
	}
}
