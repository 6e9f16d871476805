package driven

import "github.com/custodia-labs/rag-indexer/internal/core/domain"

// Reporter receives human-readable progress for an indexing run.
// Implementations decide how to render it (console, tests, ...).
type Reporter interface {
	// RunStarted is called once before anything else.
	RunStarted(location string)

	// StoreLookup is called before existing stores are listed.
	StoreLookup(name string)

	// StoreCreating is called before a new store is requested.
	StoreCreating(name string)

	// StoreResolved is called once the target store is known.
	StoreResolved(store domain.VectorStore, created bool)

	// DocumentsDiscovered is called with the number of documents to index.
	DocumentsDiscovered(count int)

	// DocumentStarted is called after a document has been chunked.
	DocumentStarted(name string, chunks int)

	// ChunkFailed is called for every chunk that could not be indexed.
	ChunkFailed(document string, index int, err error)

	// DocumentFinished is called after all chunks of a document were attempted.
	DocumentFinished(result domain.DocumentResult)

	// RunFinished is called with the final counters of a completed run.
	RunFinished(result *domain.RunResult)

	// RunAborted is called when a fatal error stops the run.
	RunAborted(err error)
}
