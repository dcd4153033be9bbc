package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"offer_agent/internal/usecase/interfaces"
)

// PublicPrefix is the URL path documents are served under.
const PublicPrefix = "/offers"

// LocalStore writes documents to a directory served at PublicPrefix.
type LocalStore struct {
	dir string
}

var _ interfaces.IDocumentStore = (*LocalStore)(nil)

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Save(_ context.Context, name string, data []byte) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create offers dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return PublicURL(name), nil
}

func (s *LocalStore) Open(_ context.Context, name string) ([]byte, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, interfaces.ErrDocumentNotFound
	}
	return data, err
}

// PublicURL returns the path a stored document is served at.
func PublicURL(name string) string {
	return PublicPrefix + "/" + name
}

// NameFromURL extracts the document name from a URL produced by PublicURL.
// ok is false for any other URL.
func NameFromURL(u string) (string, bool) {
	dir, file := path.Split(u)
	if dir != PublicPrefix+"/" || file == "" {
		return "", false
	}
	return file, true
}

func cleanName(name string) (string, error) {
	base := filepath.Base(name)
	if base != name || base == "." || base == ".." || base == "" {
		return "", fmt.Errorf("invalid document name %q", name)
	}
	return base, nil
}
