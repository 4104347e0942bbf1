package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

// FileStore keeps the snapshot in a single JSON envelope file.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// DefaultDataFilePath resolves the JSON data file location:
// DATA_FILE_PATH, then $RAILWAY_VOLUME_MOUNT_PATH/data.json, then ./data.json.
func DefaultDataFilePath() string {
	if p := os.Getenv("DATA_FILE_PATH"); p != "" {
		return p
	}
	if dir := os.Getenv("RAILWAY_VOLUME_MOUNT_PATH"); dir != "" {
		return filepath.Join(dir, "data.json")
	}
	return "data.json"
}

// Load reads the snapshot file. A missing file yields the default snapshot;
// a malformed one is an error.
func (f *FileStore) Load(ctx context.Context) (model.Snapshot, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.DefaultSnapshot(), nil
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return DecodeSnapshot(data)
}

// Save rewrites the whole file through a temp file and rename.
func (f *FileStore) Save(ctx context.Context, snap model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename data file: %w", err)
	}
	return nil
}

// Ping reports whether the directory holding the data file is reachable.
// The file itself may not exist yet.
func (f *FileStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(f.Path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
