package filestore

import (
	"context"
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"
)

// Local reads files from disk. Relative paths resolve against Root, or the
// working directory if Root is empty.
type Local struct {
	Root string
}

func (fs *Local) Load(ctx context.Context, path string) ([]byte, error) {
	if !filepath.IsAbs(path) && fs.Root != "" {
		path = filepath.Join(fs.Root, path)
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "local file store couldn't read file")
	}
	return content, nil
}
