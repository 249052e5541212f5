package testhelpers

import (
	"context"
	"testing"
)

type FileStore struct {
	LoadFunc func(ctx context.Context, path string) ([]byte, error)
}

func NewFileStore(t *testing.T) *FileStore {
	return &FileStore{
		LoadFunc: func(ctx context.Context, path string) ([]byte, error) {
			t.Error("Load should not be called")
			return nil, nil
		},
	}
}

func (fs *FileStore) Load(ctx context.Context, path string) ([]byte, error) {
	return fs.LoadFunc(ctx, path)
}
