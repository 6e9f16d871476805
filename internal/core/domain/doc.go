// Package domain defines the core business entities for the RAG indexer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A plain-text file read from the corpus directory
//   - Chunk: An overlapping word window of a document, ready for upload
//   - VectorStore: A named collection in the remote indexing service
//   - RunResult: Counters accumulated during one indexing run
//   - IndexerConfig: Everything a run needs to know up front
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
