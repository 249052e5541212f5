package mlclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/jbeshir/tumorcheck-frontend/data"
)

type testHttpClientMaker struct {
	MakeClientFunc func(ctx context.Context) (*http.Client, error)
}

func newTestHttpClientMaker(t *testing.T) *testHttpClientMaker {
	return &testHttpClientMaker{
		MakeClientFunc: func(ctx context.Context) (*http.Client, error) {
			t.Error("MakeClient should not be called")
			return nil, nil
		},
	}
}

func (cm *testHttpClientMaker) MakeClient(ctx context.Context) (*http.Client, error) {
	return cm.MakeClientFunc(ctx)
}

type testRoundTripper struct {
	RoundTripFunc func(*http.Request) (*http.Response, error)
}

func (rt *testRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	return rt.RoundTripFunc(r)
}

const testModelName = "projects/tumorcheck/models/BreastCancer"

func testFeatures() data.FeatureVector {
	return data.FeatureVector{
		RadiusMean:     17.99,
		TextureMean:    10.38,
		PerimeterMean:  122.8,
		ConcavityMean:  0.3001,
		SmoothnessMean: 0.1184,
	}
}
