// Package chunker provides a fixed-size word window chunking processor.
package chunker

import (
	"context"
	"strings"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
	"github.com/custodia-labs/rag-indexer/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.Chunker = (*Processor)(nil)

// DefaultChunkSize is the default number of words per chunk.
const DefaultChunkSize = domain.DefaultChunkSize

// DefaultChunkOverlap is the default number of words shared by consecutive chunks.
const DefaultChunkOverlap = domain.DefaultChunkOverlap

// Processor splits document content into overlapping word windows.
type Processor struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the chunk size in words.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		p.chunkSize = size
	}
}

// WithOverlap sets the overlap between chunks in words.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		p.overlap = overlap
	}
}

// New creates a new chunker processor with the given options.
// It fails with domain.ErrInvalidChunkConfig unless 0 <= overlap < size.
func New(opts ...Option) (*Processor, error) {
	p := &Processor{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	settings := domain.ChunkSettings{Size: p.chunkSize, Overlap: p.overlap}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Chunk splits the document content into chunks tagged with the document name.
func (p *Processor) Chunk(ctx context.Context, doc *domain.Document) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	windows := split(doc.Content, p.chunkSize, p.overlap)
	if len(windows) == 0 {
		return nil, nil
	}

	chunks := make([]domain.Chunk, len(windows))
	for i, content := range windows {
		chunks[i] = domain.Chunk{
			Content:    content,
			DocumentID: doc.Name,
			Source:     doc.Name,
			Index:      i,
			Total:      len(windows),
		}
	}

	return chunks, nil
}

// Split breaks text into windows of up to size words that advance by size-overlap words.
// Words are separated by any whitespace and re-joined with single spaces.
func Split(text string, size, overlap int) ([]string, error) {
	settings := domain.ChunkSettings{Size: size, Overlap: overlap}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return split(text, size, overlap), nil
}

// split assumes validated parameters.
func split(text string, size, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	stride := size - overlap
	chunks := make([]string, 0, Count(len(words), size, overlap))

	for start := 0; start < len(words); start += stride {
		end := start + size
		if end > len(words) {
			end = len(words)
		}

		chunks = append(chunks, strings.Join(words[start:end], " "))

		// The tail is covered; a further window would repeat words already emitted.
		if end == len(words) {
			break
		}
	}

	return chunks
}

// Count returns how many chunks a text of n words produces.
// It assumes 0 <= overlap < size.
func Count(n, size, overlap int) int {
	if n <= 0 {
		return 0
	}
	if n <= size {
		return 1
	}
	stride := size - overlap
	return 1 + (n-size+stride-1)/stride
}
