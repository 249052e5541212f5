package inference

import (
	"context"
	"fmt"
	"math"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/tumorcheck-frontend/data"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Service turns submitted measurements into a Verdict. A nil Predictor
// means the model failed to load, and every request is refused.
type Service struct {
	Predictor Predictor
}

func (s *Service) Ready() error {
	if s.Predictor == nil {
		return ErrModelUnavailable
	}
	return nil
}

// Infer always returns a Verdict. On failure the Verdict carries only the
// user message and the returned error is an *Error describing what went
// wrong.
func (s *Service) Infer(ctx context.Context, raw RawInput) (*data.Verdict, error) {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"service": "Inference",
	})
	l := ctxlogrus.Get(ctx)

	if err := s.Ready(); err != nil {
		l.Warn("Refusing inference request, no model loaded")
		return failed(ErrModelUnavailable)
	}

	v, err := ParseFeatures(raw)
	if err != nil {
		l.Infof("Rejected inference input: %s", err)
		return failed(err.(*Error))
	}

	class, confidence, err := s.predict(ctx, v)
	if err != nil {
		l.Errorf("Unable to run prediction: %s", err)
		return failed(internalError(err))
	}

	return format(class, confidence), nil
}

func (s *Service) predict(ctx context.Context, v data.FeatureVector) (int, float64, error) {
	class, err := s.Predictor.Predict(ctx, v)
	if err != nil {
		return 0, 0, errors.Wrap(err, "predict failed")
	}
	if class != 0 && class != 1 {
		return 0, 0, errors.Errorf("predictor returned unknown class %d", class)
	}

	proba, err := s.Predictor.PredictProba(ctx, v)
	if err != nil {
		return 0, 0, errors.Wrap(err, "predict proba failed")
	}
	if len(proba) != 2 {
		return 0, 0, errors.Errorf("predictor returned %d probabilities, expected 2", len(proba))
	}

	confidence := proba[class]
	if math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return 0, 0, errors.Errorf("predictor returned confidence %g outside [0,1]", confidence)
	}

	return class, confidence, nil
}

func format(class int, confidence float64) *data.Verdict {
	if class == 1 {
		return &data.Verdict{
			Label:         data.Malignant,
			Confidence:    confidence,
			SeverityClass: data.Danger,
			Message:       fmt.Sprintf("High Risk Detected (%.1f%% confidence). Consult a specialist immediately.", confidence*100),
		}
	}
	return &data.Verdict{
		Label:         data.Benign,
		Confidence:    confidence,
		SeverityClass: data.Safe,
		Message:       fmt.Sprintf("Tumor appears safe (%.1f%% confidence).", confidence*100),
	}
}

func failed(e *Error) (*data.Verdict, error) {
	return &data.Verdict{Message: e.UserMessage()}, e
}
