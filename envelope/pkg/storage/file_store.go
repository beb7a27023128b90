package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore writes each envelope to <dir>/envelope_<uuid>.json. The file is
// plain text; the extension is what CI tooling globs for.
type FileStore struct {
	dir    string
	create func(path string) (envelopeFile, error)
}

type envelopeFile interface {
	io.StringWriter
	io.Closer
}

func createExclusive(path string) (envelopeFile, error) {
	// A fresh UUID never exists, so a collision is a bug worth failing on.
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("envelope directory is empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve envelope directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create envelope directory: %w", err)
	}
	return &FileStore{dir: abs, create: createExclusive}, nil
}

// Dir returns the absolute directory envelopes are written to.
func (s *FileStore) Dir() string {
	return s.dir
}

// FileName returns the file name used for envelope id.
func FileName(id string) string {
	return "envelope_" + id + ".json"
}

func (s *FileStore) Save(ctx context.Context, text string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	id := uuid.New().String()
	path := filepath.Join(s.dir, FileName(id))

	f, err := s.create(path)
	if err != nil {
		return Record{}, fmt.Errorf("create envelope file: %w", err)
	}
	// A half-written envelope would be read back as a real one.
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(path)
		return Record{}, fmt.Errorf("write envelope file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return Record{}, fmt.Errorf("close envelope file: %w", err)
	}

	return Record{ID: id, Path: path, Size: len(text)}, nil
}

// Load reads a stored envelope back.
func (s *FileStore) Load(id string) (string, error) {
	if err := checkID(id); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, FileName(id)))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read envelope file: %w", err)
	}
	return string(data), nil
}
