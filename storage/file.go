package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nmoretto/fieldops/types"
)

// FileStore keeps the save record as one indented JSON document on disk.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(ctx context.Context, rec types.PlayerRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save record: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating save directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) (types.PlayerRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.PlayerRecord{}, ErrNoSave
		}
		return types.PlayerRecord{}, fmt.Errorf("reading save file: %w", err)
	}
	var rec types.PlayerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return types.PlayerRecord{}, fmt.Errorf("decoding save file %s: %w", s.path, err)
	}
	return rec, nil
}
