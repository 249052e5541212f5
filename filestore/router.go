package filestore

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

type Loader interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

// Router sends gs:// paths to GCS and everything else to Local.
type Router struct {
	Local Loader
	GCS   Loader
}

func (r *Router) Load(ctx context.Context, path string) ([]byte, error) {
	if strings.HasPrefix(path, gcsScheme) {
		if r.GCS == nil {
			return nil, errors.Errorf("no gcs file store configured for %s", path)
		}
		return r.GCS.Load(ctx, path)
	}

	if r.Local == nil {
		return nil, errors.Errorf("no local file store configured for %s", path)
	}
	return r.Local.Load(ctx, path)
}
