package driven

import (
	"context"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
)

// DocumentSource enumerates and reads the documents to index.
type DocumentSource interface {
	// List returns the names of all matching documents in a stable, sorted order.
	// Returns domain.ErrDocsDirNotFound if the location does not exist.
	List(ctx context.Context) ([]string, error)

	// Read loads the full content of the named document.
	Read(ctx context.Context, name string) (*domain.Document, error)

	// Location describes where documents are read from, for reporting.
	Location() string
}
