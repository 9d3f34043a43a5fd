package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// FileStore keeps each snapshot in its own directory, one file per document:
// {dir}/{snapshot}/{name}
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(snapshot, name string) string {
	return filepath.Join(f.dir, snapshot, name)
}

func (f *FileStore) Write(_ context.Context, snapshot, name string, data []byte) error {
	if err := ValidateKey(snapshot, name); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Join(f.dir, snapshot), 0755); err != nil {
		return fmt.Errorf("creating snapshot directory %s: %w", snapshot, err)
	}

	// write to a temp file then rename so readers never see a partial document
	target := f.path(snapshot, name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s/%s: %w", snapshot, name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming %s/%s: %w", snapshot, name, err)
	}
	return nil
}

func (f *FileStore) Read(_ context.Context, snapshot, name string) ([]byte, error) {
	if err := ValidateKey(snapshot, name); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path(snapshot, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s/%s: %w", snapshot, name, ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("reading %s/%s: %w", snapshot, name, err)
	}
	return data, nil
}

func (f *FileStore) List(_ context.Context, snapshot string) ([]string, error) {
	if err := ValidatePath(snapshot); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(f.dir, snapshot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing snapshot %s: %w", snapshot, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), ".tmp") {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

func (f *FileStore) Close() error {
	return nil
}
