package model

import (
	"context"
	"sync"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Loader deserializes a model artifact. The first call to Load does the
// work; every later call returns the same pipeline or error, whatever path
// it is given.
type Loader struct {
	FileStore FileStore

	once     sync.Once
	pipeline *Pipeline
	err      error
}

func (l *Loader) Load(ctx context.Context, path string) (*Pipeline, error) {
	l.once.Do(func() {
		l.pipeline, l.err = l.load(ctx, path)
	})
	return l.pipeline, l.err
}

func (l *Loader) load(ctx context.Context, path string) (*Pipeline, error) {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"model_path": path,
	})
	log := ctxlogrus.Get(ctx)

	content, err := l.FileStore.Load(ctx, path)
	if err != nil {
		log.Errorf("Model not found: %s", err)
		return nil, errors.Wrapf(err, "couldn't read model artifact %s", path)
	}

	p, err := decodeArtifact(content)
	if err != nil {
		log.Errorf("Model artifact unusable: %s", err)
		return nil, errors.Wrapf(err, "couldn't load model artifact %s", path)
	}

	log.Info("Model loaded")
	return p, nil
}
