package filestore

import (
	"context"
	"io/ioutil"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
)

const gcsScheme = "gs://"

type GCS struct {
	Client *storage.Client
}

func (fs *GCS) Load(ctx context.Context, path string) ([]byte, error) {
	bucket, object, err := splitGCSPath(path)
	if err != nil {
		return nil, err
	}

	r, err := fs.Client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "gcs file store couldn't open %s", path)
	}
	defer r.Close()

	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "gcs file store couldn't read %s", path)
	}
	return content, nil
}

func splitGCSPath(path string) (bucket, object string, err error) {
	if !strings.HasPrefix(path, gcsScheme) {
		return "", "", errors.Errorf("not a gcs path: %s", path)
	}

	parts := strings.SplitN(strings.TrimPrefix(path, gcsScheme), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("gcs path must be gs://bucket/object, got %s", path)
	}
	return parts[0], parts[1], nil
}
