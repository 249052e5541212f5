package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jbeshir/moonbird-auth-frontend/testhelpers"
	"github.com/jbeshir/tumorcheck-frontend/inference"
)

func TestStatus_HandleFunc_Ready(t *testing.T) {
	t.Parallel()

	calledReady := false
	rc := newTestReadinessChecker(t)
	rc.ReadyFunc = func() error {
		calledReady = true
		return nil
	}

	calledOnSuccess := false
	r := newTestWebStatusResponder(t)
	r.OnSuccessFunc = func(w http.ResponseWriter) {
		calledOnSuccess = true
	}

	cm := testhelpers.NewContextMaker(t)
	cm.MakeContextFunc = func(r *http.Request) (i context.Context, e error) {
		return context.Background(), nil
	}

	c := &Status{
		Checker: rc,
	}
	handler := c.HandleFunc(cm, r)
	handler(nil, &http.Request{})

	if !calledReady {
		t.Error("Expected ready to be called, was not called")
	}
	if !calledOnSuccess {
		t.Error("Expected responder's OnSuccess method to be called, was not called")
	}
}

func TestStatus_HandleFunc_Unavailable(t *testing.T) {
	t.Parallel()

	rc := newTestReadinessChecker(t)
	rc.ReadyFunc = func() error {
		return inference.ErrModelUnavailable
	}

	calledOnError := false
	r := newTestWebStatusResponder(t)
	r.OnErrorFunc = func(ctx context.Context, w http.ResponseWriter, err error) {
		calledOnError = true
		if inference.KindOf(err) != inference.ModelUnavailable {
			t.Errorf("Expected ModelUnavailable in OnError, got %v", err)
		}
	}

	cm := testhelpers.NewContextMaker(t)
	cm.MakeContextFunc = func(r *http.Request) (i context.Context, e error) {
		return context.Background(), nil
	}

	c := &Status{
		Checker: rc,
	}
	handler := c.HandleFunc(cm, r)
	handler(nil, &http.Request{})

	if !calledOnError {
		t.Error("Expected responder's OnError method to be called, was not called")
	}
}

func TestStatus_HandleFunc_ContextError(t *testing.T) {
	t.Parallel()

	calledOnContextError := false
	r := newTestWebStatusResponder(t)
	r.OnContextErrorFunc = func(w http.ResponseWriter, err error) {
		calledOnContextError = true
	}
	cm := testhelpers.NewContextMaker(t)
	cm.MakeContextFunc = func(r *http.Request) (i context.Context, e error) {
		return nil, errors.New("bluh")
	}

	c := &Status{
		Checker: newTestReadinessChecker(t),
	}
	handler := c.HandleFunc(cm, r)
	handler(nil, &http.Request{})

	if !calledOnContextError {
		t.Error("Expected responder's OnContextError method to be called, was not called")
	}
}
