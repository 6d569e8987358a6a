// Package objectstore keeps uploaded posting images.
package objectstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"marketplace-bidding/internal/biddingerrors"
)

// ObjectStore uploads and deletes objects addressed by path
type ObjectStore interface {
	// Upload stores data at path and returns its public download URL
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
	// Delete removes the object at path
	Delete(ctx context.Context, path string) error
}

type object struct {
	contentType string
	data        []byte
}

// MemoryStore is an in-process ObjectStore used for development and tests
type MemoryStore struct {
	mu      sync.RWMutex
	baseURL *url.URL
	objects map[string]object // key: object path
}

// NewMemoryStore creates a store whose URLs are rooted at publicBaseURL
func NewMemoryStore(publicBaseURL string) (*MemoryStore, error) {
	base, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("objectstore: parse public base url: %w", err)
	}
	return &MemoryStore{baseURL: base, objects: make(map[string]object)}, nil
}

func (s *MemoryStore) Upload(_ context.Context, path, contentType string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[path] = object{contentType: contentType, data: append([]byte(nil), data...)}
	return publicURL(s.baseURL, path), nil
}

func (s *MemoryStore) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[path]; !ok {
		return fmt.Errorf("objectstore: delete %s: %w", path, biddingerrors.ErrObjectNotFound)
	}
	delete(s.objects, path)
	return nil
}

// Get returns a stored object and its content type
func (s *MemoryStore) Get(path string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[path]
	return obj.data, obj.contentType, ok
}

// publicURL joins the object path onto the bucket's public endpoint
func publicURL(base *url.URL, path string) string {
	uri := *base
	uri.Path = strings.TrimSuffix(base.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	return uri.String()
}
