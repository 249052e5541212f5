package mlclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"strings"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/tumorcheck-frontend/data"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"google.golang.org/api/ml/v1"
)

// PredictionMaker is a Predictor backed by a model deployed on Cloud ML
// Engine. Predict and PredictProba share one remote call per distinct
// input through CacheStorage.
type PredictionMaker struct {
	CacheStorage    CacheStorage
	HttpClientMaker HttpClientMaker

	// ModelName is the full resource name, projects/<project>/models/<model>.
	ModelName string

	// Limiter, if set, throttles remote predict calls.
	Limiter *rate.Limiter
}

type cachedPrediction struct {
	Label int64
	Proba [2]float64
}

func (pm *PredictionMaker) Predict(ctx context.Context, v data.FeatureVector) (int, error) {
	p, err := pm.predict(ctx, v)
	if err != nil {
		return 0, err
	}
	return int(p.Label), nil
}

func (pm *PredictionMaker) PredictProba(ctx context.Context, v data.FeatureVector) ([]float64, error) {
	p, err := pm.predict(ctx, v)
	if err != nil {
		return nil, err
	}
	return []float64{p.Proba[0], p.Proba[1]}, nil
}

func (pm *PredictionMaker) predict(ctx context.Context, v data.FeatureVector) (p cachedPrediction, err error) {
	l := ctxlogrus.Get(ctx)
	l.Debugf("Predicting from inputs: %+v", v)

	cacheKey := generatePredictionCacheKey(v.Values())
	req, err := newMLRequest(v)
	if err != nil {
		return p, errors.Wrap(err, "makePrediction couldn't create request")
	}

	err = pm.CacheStorage.Get(ctx, cacheKey, &p)
	if err == nil {
		return
	}
	l.Info("Can't read prediction from cache: " + err.Error())

	if pm.Limiter != nil {
		if err = pm.Limiter.Wait(ctx); err != nil {
			return p, errors.Wrap(err, "makePrediction couldn't wait for rate limiter")
		}
	}

	client, err := pm.HttpClientMaker.MakeClient(ctx)
	if err != nil {
		return p, errors.Wrap(err, "makePrediction couldn't create client")
	}

	s, err := ml.New(client)
	if err != nil {
		return p, errors.Wrap(err, "makePrediction couldn't create service")
	}

	l.Info("Making predict call...")
	mlPredictCall := s.Projects.Predict(pm.ModelName, req)
	r, err := mlPredictCall.Context(ctx).Do()
	if err != nil {
		return p, errors.Wrap(err, "makePrediction couldn't run request")
	}

	var result result
	_ = json.NewDecoder(strings.NewReader(r.Data)).Decode(&result)
	if len(result.Predictions) != 1 || len(result.Predictions[0].Probabilities) != 2 {
		l.Warn("Got a malformed predict call response")
		return cachedPrediction{}, errors.New("makePrediction got malformed predict response: Did not get one prediction with two probabilities")
	}
	p.Label = result.Predictions[0].Label
	copy(p.Proba[:], result.Predictions[0].Probabilities)

	// We ignore failures in writing to cache.
	cacheWriteErr := pm.CacheStorage.Set(ctx, cacheKey, &p)
	if cacheWriteErr != nil {
		l.Warn("Can't write prediction to cache: " + cacheWriteErr.Error())
	}

	return
}

type request struct {
	Instances []data.FeatureVector `json:"instances"`
}

type result struct {
	Predictions []resultPrediction `json:"predictions"`
}

type resultPrediction struct {
	Label         int64     `json:"label"`
	Probabilities []float64 `json:"probabilities"`
}

func newMLRequest(v data.FeatureVector) (*ml.GoogleCloudMlV1__PredictRequest, error) {
	jsonreq := request{
		Instances: []data.FeatureVector{v},
	}

	payload, err := json.Marshal(&jsonreq)
	if err != nil {
		return nil, errors.Wrap(err, "mkreq could not marshal JSON")
	}

	req := ml.GoogleCloudMlV1__PredictRequest{
		HttpBody: &ml.GoogleApi__HttpBody{
			ContentType: "application/json",
			Data:        string(payload),
		},
	}

	return &req, nil
}

func generatePredictionCacheKey(values []float64) string {
	var buf bytes.Buffer
	for _, v := range values {
		binary.Write(&buf, binary.BigEndian, v)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
