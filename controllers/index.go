package controllers

import (
	"context"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/tumorcheck-frontend/data"
	"github.com/jbeshir/tumorcheck-frontend/inference"
	"github.com/sirupsen/logrus"
)

type Index struct {
	Inferrer Inferrer
}

type IndexInput struct {
	Submitted bool
	Values    inference.RawInput
}

type IndexResult struct {
	Values     inference.RawInput
	Verdict    *data.Verdict
	VerdictErr error
}

type WebIndexResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnResult(w http.ResponseWriter, r *IndexResult)
}

func (c *Index) HandleFunc(cm ContextMaker, resp WebIndexResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		input := &IndexInput{
			Submitted: r.Method == http.MethodPost,
			Values:    make(inference.RawInput),
		}
		if input.Submitted {
			if err := r.ParseForm(); err != nil {
				ctxlogrus.Get(ctx).Infof("Unable to parse submitted form: %s", err)
			}
			for _, name := range data.FeatureNames {
				if values, ok := r.PostForm[name]; ok && len(values) > 0 {
					input.Values[name] = values[0]
				}
			}
		}

		result := c.handle(ctx, input)
		resp.OnResult(w, result)
	}
}

func (c *Index) handle(ctx context.Context, input *IndexInput) *IndexResult {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Index",
	})

	result := &IndexResult{
		Values: input.Values,
	}
	if !input.Submitted {
		return result
	}

	result.Verdict, result.VerdictErr = c.Inferrer.Infer(ctx, input.Values)
	if result.VerdictErr != nil {
		l := ctxlogrus.Get(ctx)
		l.Infof("Unable to produce verdict: %s", result.VerdictErr)
	}
	return result
}
