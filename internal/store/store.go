// Package store persists the quote list of a collection.
package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/llehouerou/quickquotes/internal/quote"
)

const (
	// FolderName is the application-private folder holding the data file.
	FolderName = "QuickQuotes"

	jsonFileName   = "quotations.json"
	sqliteFileName = "quotations.db"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Store loads and saves an ordered list of quotes.
type Store interface {
	// Load returns the persisted quotes. A nil slice with a nil error means
	// there is no usable data (missing, empty or unreadable content).
	Load(ctx context.Context) ([]quote.Quote, error)

	// Save replaces the persisted quotes with the given list.
	Save(ctx context.Context, quotes []quote.Quote) error

	// Path returns the location of the underlying file.
	Path() string

	Close() error
}

// Open creates the store for backend inside dataDir.
// An empty dataDir resolves to the XDG data home.
func Open(backend, dataDir string) (Store, error) {
	switch backend {
	case BackendJSON, "":
		path, err := filePath(dataDir, jsonFileName)
		if err != nil {
			return nil, err
		}
		return NewJSONFile(path), nil
	case BackendSQLite:
		path, err := filePath(dataDir, sqliteFileName)
		if err != nil {
			return nil, err
		}
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func filePath(dataDir, name string) (string, error) {
	if dataDir != "" {
		return filepath.Join(dataDir, FolderName, name), nil
	}
	return xdg.DataFile(filepath.Join(FolderName, name))
}
