package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidChunkConfig indicates chunk size and overlap cannot produce
	// a forward-moving window (size <= 0, overlap < 0 or overlap >= size).
	ErrInvalidChunkConfig = errors.New("invalid chunk configuration")

	// Run-fatal errors. Any of these aborts the run with a non-zero exit.

	// ErrStoreCreation indicates the remote service refused to create the vector store.
	ErrStoreCreation = errors.New("vector store creation failed")

	// ErrDocsDirNotFound indicates the configured documents directory does not exist.
	ErrDocsDirNotFound = errors.New("documents directory not found")

	// ErrNoDocuments indicates the documents directory holds no matching files.
	ErrNoDocuments = errors.New("no documents found")

	// Per-chunk errors. These are reported and the run continues.

	// ErrInsertFailed indicates a chunk insertion was rejected or never reached the service.
	ErrInsertFailed = errors.New("chunk insert failed")
)
