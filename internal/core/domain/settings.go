package domain

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	DefaultBaseURL       = "http://localhost:8321"
	DefaultDocsDir       = "/tmp/sample-docs"
	DefaultExtension     = ".txt"
	DefaultChunkSize     = 500
	DefaultChunkOverlap  = 50
	DefaultStoreTimeout  = 10 * time.Second
	DefaultInsertTimeout = 30 * time.Second
)

// IndexerConfig holds everything an indexing run needs.
// It is passed explicitly to the components that need it rather than read from globals.
type IndexerConfig struct {
	// Server holds the remote indexing service settings.
	Server ServerSettings

	// Index describes what to index and where.
	Index IndexSettings

	// Chunking holds the word window parameters.
	Chunking ChunkSettings

	// Upload controls how chunks are sent.
	Upload UploadSettings
}

// ServerSettings holds the remote indexing service settings.
type ServerSettings struct {
	// BaseURL is the service root (e.g. http://localhost:8321).
	BaseURL string

	// StoreTimeout bounds vector store lookup and creation calls.
	StoreTimeout time.Duration

	// InsertTimeout bounds each chunk insertion call.
	InsertTimeout time.Duration
}

// IndexSettings describes the corpus and the destination collection.
type IndexSettings struct {
	// DocsDir is the directory scanned for documents.
	DocsDir string

	// Extension filters documents by file extension, including the dot.
	Extension string

	// StoreName is the vector store to resolve or create.
	StoreName string
}

// ChunkSettings holds the word window parameters.
type ChunkSettings struct {
	// Size is the number of words per chunk.
	Size int

	// Overlap is the number of words shared by consecutive chunks.
	Overlap int
}

// Validate checks that the window advances on every step.
func (c ChunkSettings) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidChunkConfig, c.Size)
	}
	if c.Overlap < 0 {
		return fmt.Errorf("%w: overlap must not be negative, got %d", ErrInvalidChunkConfig, c.Overlap)
	}
	if c.Overlap >= c.Size {
		return fmt.Errorf("%w: overlap %d must be smaller than chunk size %d",
			ErrInvalidChunkConfig, c.Overlap, c.Size)
	}
	return nil
}

// UploadSettings controls how chunks are sent.
type UploadSettings struct {
	// Concurrency bounds in-flight chunk uploads per document. 1 means sequential.
	Concurrency int

	// RequestsPerSecond paces insert calls. 0 disables pacing.
	RequestsPerSecond float64
}

// DefaultIndexerConfig returns the configuration used when nothing is overridden.
func DefaultIndexerConfig() IndexerConfig {
	return IndexerConfig{
		Server: ServerSettings{
			BaseURL:       DefaultBaseURL,
			StoreTimeout:  DefaultStoreTimeout,
			InsertTimeout: DefaultInsertTimeout,
		},
		Index: IndexSettings{
			DocsDir:   DefaultDocsDir,
			Extension: DefaultExtension,
			StoreName: DefaultStoreName,
		},
		Chunking: ChunkSettings{
			Size:    DefaultChunkSize,
			Overlap: DefaultChunkOverlap,
		},
		Upload: UploadSettings{
			Concurrency: 1,
		},
	}
}

// Validate returns an error describing the first invalid setting.
func (c IndexerConfig) Validate() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("%w: base URL is required", ErrInvalidInput)
	}
	if c.Server.StoreTimeout <= 0 || c.Server.InsertTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidInput)
	}
	if c.Index.DocsDir == "" {
		return fmt.Errorf("%w: documents directory is required", ErrInvalidInput)
	}
	if c.Index.StoreName == "" {
		return fmt.Errorf("%w: vector store name is required", ErrInvalidInput)
	}
	if c.Upload.Concurrency < 1 {
		return fmt.Errorf("%w: upload concurrency must be at least 1, got %d", ErrInvalidInput, c.Upload.Concurrency)
	}
	if c.Upload.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests per second must not be negative", ErrInvalidInput)
	}
	return c.Chunking.Validate()
}
