package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each slot as a JSON file in a directory. This is the
// durable client-side storage: values survive process restarts within the
// same machine but are never synced anywhere.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get decodes the slot into v. A missing file and undecodable content both
// return ErrNotFound.
func (f *FileStore) Get(key string, v interface{}) error {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return ErrNotFound
	}
	return unmarshal(data, v)
}

// Set overwrites the slot with the JSON encoding of v.
func (f *FileStore) Set(key string, v interface{}) error {
	data, err := marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := os.WriteFile(f.path(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Clear removes every slot file.
func (f *FileStore) Clear() error {
	for _, key := range []string{KeyPrediction, KeyBirthDetails} {
		if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}
