// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - VectorStoreClient: Remote vector store lookup, creation and chunk insertion
//   - DocumentSource: Corpus enumeration and whole-file reads
//   - Chunker: Splits documents into overlapping word windows
//   - Reporter: Human-readable run progress
//   - ConfigStore: File-based configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or postprocessor package
package driven
