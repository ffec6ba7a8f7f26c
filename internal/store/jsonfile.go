package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/llehouerou/quickquotes/internal/quote"
)

// JSONFile stores quotes as a JSON array in a single text file.
// Load and Save are serialized, so a save never interleaves with a read.
type JSONFile struct {
	path string
	mu   sync.Mutex
}

// NewJSONFile creates a store backed by the file at path.
// The folder and file are created on first use.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the data file location.
func (s *JSONFile) Path() string {
	return s.path
}

// Close implements Store. The file is not held open between calls.
func (s *JSONFile) Close() error {
	return nil
}

// Load reads and decodes the data file, creating it if it does not exist.
// Empty, null or malformed content yields no quotes and no error.
func (s *JSONFile) Load(ctx context.Context) ([]quote.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ensureFile(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return decode(data, s.path), nil
}

// Save overwrites the data file with the JSON encoding of quotes.
// The content is written to a temporary file first and renamed into place.
func (s *JSONFile) Save(ctx context.Context, quotes []quote.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ensureFile(); err != nil {
		return err
	}

	data, err := encode(quotes)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".quotations-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Last chance to give up before the visible file changes.
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	slog.Debug("saved quotes", "path", s.path, "count", len(quotes))
	return nil
}

// ensureFile creates the folder and an empty data file if they are missing.
func (s *JSONFile) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data folder: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	return f.Close()
}

func encode(quotes []quote.Quote) ([]byte, error) {
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	data, err := json.Marshal(quotes)
	if err != nil {
		return nil, fmt.Errorf("encode quotes: %w", err)
	}
	return data, nil
}

func decode(data []byte, source string) []quote.Quote {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var quotes []quote.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		slog.Warn("ignoring malformed quotes file", "path", source, "error", err)
		return nil
	}
	return quotes
}
