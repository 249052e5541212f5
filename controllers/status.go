package controllers

import (
	"context"
	"net/http"
)

// Status reports whether the service can answer inference requests.
type Status struct {
	Checker ReadinessChecker
}

type WebStatusResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnError(ctx context.Context, w http.ResponseWriter, err error)
	OnSuccess(w http.ResponseWriter)
}

func (c *Status) HandleFunc(cm ContextMaker, resp WebStatusResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		err = c.handle(ctx)
		if err != nil {
			resp.OnError(ctx, w, err)
		} else {
			resp.OnSuccess(w)
		}
	}
}

func (c *Status) handle(ctx context.Context) error {
	return c.Checker.Ready()
}
