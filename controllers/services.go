package controllers

import (
	"context"
	"net/http"

	"github.com/jbeshir/tumorcheck-frontend/data"
	"github.com/jbeshir/tumorcheck-frontend/inference"
)

type ContextMaker interface {
	MakeContext(r *http.Request) (context.Context, error)
}

type Inferrer interface {
	Infer(ctx context.Context, raw inference.RawInput) (*data.Verdict, error)
}

type ReadinessChecker interface {
	Ready() error
}
