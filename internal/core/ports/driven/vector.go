package driven

import (
	"context"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
)

// VectorStoreClient talks to the remote indexing service.
// The service owns embedding and persistence; the client only names collections
// and hands over chunk text with its metadata.
type VectorStoreClient interface {
	// ListStores returns every vector store the service knows about.
	ListStores(ctx context.Context) ([]domain.VectorStore, error)

	// CreateStore creates an empty vector store with the given name.
	// Errors wrap domain.ErrStoreCreation when the service refuses.
	CreateStore(ctx context.Context, name string) (*domain.VectorStore, error)

	// InsertChunk submits one chunk to the store identified by storeID.
	// Errors wrap domain.ErrInsertFailed.
	InsertChunk(ctx context.Context, storeID string, chunk domain.Chunk) error
}
