package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/jbeshir/tumorcheck-frontend/data"
	"github.com/jbeshir/tumorcheck-frontend/inference"
)

func newTestInferrer(t *testing.T) *testInferrer {
	return &testInferrer{
		InferFunc: func(ctx context.Context, raw inference.RawInput) (*data.Verdict, error) {
			t.Error("InferFunc should not be called")
			return nil, nil
		},
	}
}

type testInferrer struct {
	InferFunc func(ctx context.Context, raw inference.RawInput) (*data.Verdict, error)
}

func (i *testInferrer) Infer(ctx context.Context, raw inference.RawInput) (*data.Verdict, error) {
	return i.InferFunc(ctx, raw)
}

func newTestReadinessChecker(t *testing.T) *testReadinessChecker {
	return &testReadinessChecker{
		ReadyFunc: func() error {
			t.Error("ReadyFunc should not be called")
			return nil
		},
	}
}

type testReadinessChecker struct {
	ReadyFunc func() error
}

func (c *testReadinessChecker) Ready() error {
	return c.ReadyFunc()
}

func newTestWebIndexResponder(t *testing.T) *testWebIndexResponder {
	return &testWebIndexResponder{
		OnContextErrorFunc: func(w http.ResponseWriter, err error) {
			t.Error("OnContextErrorFunc should not be called")
		},
		OnResultFunc: func(w http.ResponseWriter, r *IndexResult) {
			t.Error("OnResultFunc should not be called")
		},
	}
}

type testWebIndexResponder struct {
	OnContextErrorFunc func(w http.ResponseWriter, err error)
	OnResultFunc       func(w http.ResponseWriter, r *IndexResult)
}

func (r *testWebIndexResponder) OnContextError(w http.ResponseWriter, err error) {
	r.OnContextErrorFunc(w, err)
}

func (r *testWebIndexResponder) OnResult(w http.ResponseWriter, result *IndexResult) {
	r.OnResultFunc(w, result)
}

func newTestWebStatusResponder(t *testing.T) *testWebStatusResponder {
	return &testWebStatusResponder{
		OnContextErrorFunc: func(w http.ResponseWriter, err error) {
			t.Error("OnContextErrorFunc should not be called")
		},
		OnErrorFunc: func(ctx context.Context, w http.ResponseWriter, err error) {
			t.Error("OnErrorFunc should not be called")
		},
		OnSuccessFunc: func(w http.ResponseWriter) {
			t.Error("OnSuccessFunc should not be called")
		},
	}
}

type testWebStatusResponder struct {
	OnContextErrorFunc func(w http.ResponseWriter, err error)
	OnErrorFunc        func(ctx context.Context, w http.ResponseWriter, err error)
	OnSuccessFunc      func(w http.ResponseWriter)
}

func (r *testWebStatusResponder) OnContextError(w http.ResponseWriter, err error) {
	r.OnContextErrorFunc(w, err)
}

func (r *testWebStatusResponder) OnError(ctx context.Context, w http.ResponseWriter, err error) {
	r.OnErrorFunc(ctx, w, err)
}

func (r *testWebStatusResponder) OnSuccess(w http.ResponseWriter) {
	r.OnSuccessFunc(w)
}
