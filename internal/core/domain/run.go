package domain

// RunState tracks where an indexing run is in its lifecycle.
type RunState string

// Run lifecycle states.
// A run moves Init -> StoreResolved -> DocsDiscovered -> (Chunking -> Uploading)* -> Summarized,
// or ends in Aborted when store resolution or document discovery fails.
const (
	RunStateInit           RunState = "init"
	RunStateStoreResolved  RunState = "store_resolved"
	RunStateDocsDiscovered RunState = "docs_discovered"
	RunStateChunking       RunState = "chunking"
	RunStateUploading      RunState = "uploading"
	RunStateSummarized     RunState = "summarized"
	RunStateAborted        RunState = "aborted"
)

// String returns the string representation.
func (s RunState) String() string {
	return string(s)
}

// DocumentResult holds the upload outcome for a single document.
type DocumentResult struct {
	// Name is the document identifier.
	Name string

	// Chunks is the number of chunks produced and attempted.
	Chunks int

	// Indexed is the number of chunks the remote service accepted.
	Indexed int

	// Err is set when the document could not be read or chunked.
	Err error
}

// Failed returns the number of chunks that were attempted but not indexed.
func (r DocumentResult) Failed() int {
	return r.Chunks - r.Indexed
}

// RunResult aggregates counters for one indexing run.
// It is built incrementally and never persisted.
type RunResult struct {
	// RunID correlates log lines of a single run.
	RunID string

	// StoreID is the vector store the run indexed into.
	StoreID string

	// State is the last lifecycle state reached.
	State RunState

	// DocumentsFound is the number of matching files discovered.
	DocumentsFound int

	// DocumentsProcessed is the number of documents the run went through.
	DocumentsProcessed int

	// ChunksAttempted is the number of chunk uploads attempted.
	ChunksAttempted int

	// ChunksIndexed is the number of chunk uploads that succeeded.
	ChunksIndexed int

	// Documents holds per-document outcomes in processing order.
	Documents []DocumentResult
}

// Record folds a finished document into the run totals.
func (r *RunResult) Record(doc DocumentResult) {
	r.DocumentsProcessed++
	r.ChunksAttempted += doc.Chunks
	r.ChunksIndexed += doc.Indexed
	r.Documents = append(r.Documents, doc)
}

// ChunksFailed returns the number of attempted chunks that were not indexed.
func (r *RunResult) ChunksFailed() int {
	return r.ChunksAttempted - r.ChunksIndexed
}
