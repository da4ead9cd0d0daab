package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps the snapshot in a single JSON document on disk, the
// single-machine equivalent of the browser's local storage.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Load(_ context.Context) (Entries, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: nothing persisted yet.
			return Entries{}, nil
		}
		return nil, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	entries := make(Entries, len(doc))
	for key, val := range doc {
		entries[key] = []byte(val)
	}
	return entries, nil
}

func (b *FileBackend) Save(_ context.Context, entries Entries) error {
	doc := make(map[string]json.RawMessage, len(entries))
	for key, val := range entries {
		doc[key] = json.RawMessage(val)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	// Write to a sibling temp file first so a crash mid-write cannot leave a
	// truncated snapshot behind.
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path)
}
