package main

import (
	"context"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
	"google.golang.org/appengine"
)

type AppEngineContextMaker struct{}

func (cm *AppEngineContextMaker) MakeContext(r *http.Request) (context.Context, error) {
	ctx, err := appengine.Namespace(appengine.NewContext(r), "tumorcheck-frontend")
	if err != nil {
		return nil, err
	}
	return withRequestFields(ctx, r), nil
}

type RequestContextMaker struct{}

func (cm *RequestContextMaker) MakeContext(r *http.Request) (context.Context, error) {
	return withRequestFields(r.Context(), r), nil
}

func withRequestFields(ctx context.Context, r *http.Request) context.Context {
	fields := logrus.Fields{
		"method": r.Method,
		"remote": r.RemoteAddr,
	}
	if r.URL != nil {
		fields["path"] = r.URL.Path
	}
	return ctxlogrus.WithFields(ctx, fields)
}
