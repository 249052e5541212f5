package inference

import (
	"math"
	"strconv"
	"strings"

	"github.com/jbeshir/tumorcheck-frontend/data"
)

// ParseFeatures validates raw and assembles a FeatureVector from it. Only
// the keys in data.FeatureNames are consulted.
func ParseFeatures(raw RawInput) (data.FeatureVector, error) {
	var values [len(data.FeatureNames)]float64
	for i, name := range data.FeatureNames {
		str, ok := raw[name]
		if !ok {
			return data.FeatureVector{}, &Error{Kind: RejectedInput, Reason: ReasonMissingField, Field: name}
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return data.FeatureVector{}, &Error{Kind: RejectedInput, Reason: ReasonInvalidNumber, Field: name, Cause: err}
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return data.FeatureVector{}, &Error{Kind: RejectedInput, Reason: ReasonInvalidNumber, Field: name}
		}

		values[i] = f
	}

	return data.FeatureVector{
		RadiusMean:     values[0],
		TextureMean:    values[1],
		PerimeterMean:  values[2],
		ConcavityMean:  values[3],
		SmoothnessMean: values[4],
	}, nil
}
