package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/jbeshir/tumorcheck-frontend/cache"
	"github.com/jbeshir/tumorcheck-frontend/config"
	"github.com/jbeshir/tumorcheck-frontend/controllers"
	"github.com/jbeshir/tumorcheck-frontend/filestore"
	"github.com/jbeshir/tumorcheck-frontend/inference"
	"github.com/jbeshir/tumorcheck-frontend/mlclient"
	"github.com/jbeshir/tumorcheck-frontend/model"
	"github.com/jbeshir/tumorcheck-frontend/responders"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/appengine"
)

func main() {
	c, err := config.Load()
	if err != nil {
		logrus.Fatalf("Unable to load config: %s", err)
	}
	if err := configureLogging(c.Log); err != nil {
		logrus.Fatalf("Unable to configure logging: %s", err)
	}

	// A nil predictor leaves the service answering every request with
	// ModelUnavailable until the process is restarted.
	ctx := context.Background()
	predictor, err := newPredictor(ctx, c)
	if err != nil {
		logrus.Errorf("Error: model unavailable: %s", err)
	}
	service := &inference.Service{Predictor: predictor}

	var cm controllers.ContextMaker = &RequestContextMaker{}
	if c.AppEngine {
		cm = &AppEngineContextMaker{}
	}

	index := &controllers.Index{Inferrer: service}
	http.HandleFunc("/", index.HandleFunc(cm, &responders.WebIndexResponder{}))

	status := &controllers.Status{Checker: service}
	http.HandleFunc("/status", status.HandleFunc(cm, &responders.WebSimpleResponder{
		ExposeErrors: c.Errors.Expose,
	}))

	if c.AppEngine {
		appengine.Main()
		return
	}

	logrus.Infof("Listening on port %s", c.Port)
	logrus.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", c.Port), nil))
}

func configureLogging(c config.Log) error {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)

	switch c.Format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return errors.Errorf("unknown log format %q", c.Format)
	}
	return nil
}

func newPredictor(ctx context.Context, c *config.Config) (inference.Predictor, error) {
	switch c.Model.Backend {
	case config.BackendMLEngine:
		cs, err := cache.NewLRUStore(c.Cache.Size)
		if err != nil {
			return nil, err
		}
		return &mlclient.PredictionMaker{
			CacheStorage:    cs,
			HttpClientMaker: &mlclient.GoogleClientMaker{},
			ModelName:       c.MLEngine.Model,
			Limiter:         rate.NewLimiter(rate.Limit(c.MLEngine.Rate), c.MLEngine.Burst),
		}, nil

	default:
		router := &filestore.Router{Local: &filestore.Local{}}
		if strings.HasPrefix(c.Model.Path, "gs://") {
			client, err := storage.NewClient(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "couldn't create gcs client")
			}
			router.GCS = &filestore.GCS{Client: client}
		}

		loader := &model.Loader{FileStore: router}
		p, err := loader.Load(ctx, c.Model.Path)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}
