package driven

import (
	"context"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
)

// Chunker splits a document into chunks ready for upload.
// Every returned chunk carries its zero-based index and the document's chunk total.
type Chunker interface {
	// Name returns the chunker name for logging.
	Name() string

	// Chunk splits the document content. Empty content yields no chunks.
	Chunk(ctx context.Context, doc *domain.Document) ([]domain.Chunk, error)
}
