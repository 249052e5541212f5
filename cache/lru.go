package cache

import (
	"bytes"
	"context"
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

var ErrCacheMiss = errors.New("cache: key not found")

// LRUStore is an in-process cache of fixed-size values, as defined by the
// encoding/binary package. It is safe for concurrent use.
type LRUStore struct {
	entries *lru.Cache[string, []byte]
}

func NewLRUStore(size int) (*LRUStore, error) {
	entries, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't create lru cache")
	}
	return &LRUStore{entries: entries}, nil
}

func (s *LRUStore) Get(ctx context.Context, key string, v interface{}) error {
	content, ok := s.entries.Get(key)
	if !ok {
		return ErrCacheMiss
	}
	return binaryUnmarshal(content, v)
}

func (s *LRUStore) Set(ctx context.Context, key string, v interface{}) error {
	content, err := binaryMarshal(v)
	if err != nil {
		return err
	}
	s.entries.Add(key, content)
	return nil
}

func (s *LRUStore) Delete(ctx context.Context, key string) error {
	s.entries.Remove(key)
	return nil
}

// Can only marshal fixed-size data as defined by the encoding/binary package.
func binaryMarshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	err := binary.Write(&buf, binary.BigEndian, v)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't encode cache value")
	}
	return buf.Bytes(), nil
}

// Can only unmarshal fixed-size data as defined by the encoding/binary package.
func binaryUnmarshal(content []byte, v interface{}) error {
	err := binary.Read(bytes.NewReader(content), binary.BigEndian, v)
	if err != nil {
		return errors.Wrap(err, "couldn't decode cache value")
	}
	return nil
}
