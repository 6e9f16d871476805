package driving

import (
	"context"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
)

// Indexer runs document indexing against a vector store.
type Indexer interface {
	// Run performs one complete indexing run.
	// A non-nil error means the run aborted; per-chunk failures are only counted.
	// The returned result is never nil and reflects progress up to the abort.
	Run(ctx context.Context) (*domain.RunResult, error)

	// ResolveStore returns the id of the named store, creating it when absent.
	ResolveStore(ctx context.Context, name string) (*domain.VectorStore, error)
}
