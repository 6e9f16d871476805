package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
	"github.com/custodia-labs/rag-indexer/internal/core/ports/driven"
	"github.com/custodia-labs/rag-indexer/internal/core/ports/driving"
	"github.com/custodia-labs/rag-indexer/internal/logger"
)

// Ensure Indexer implements the interface.
var _ driving.Indexer = (*Indexer)(nil)

// IndexerOptions holds the run-level settings of an Indexer.
type IndexerOptions struct {
	// StoreName is the vector store to resolve or create.
	StoreName string

	// Concurrency bounds in-flight chunk uploads per document (default: 1).
	Concurrency int
}

// Indexer chunks every document from a source and uploads the chunks to a vector store.
// Documents are processed one at a time. Chunk uploads within a document are sequential
// unless Concurrency is raised.
type Indexer struct {
	client      driven.VectorStoreClient
	source      driven.DocumentSource
	chunker     driven.Chunker
	reporter    driven.Reporter
	storeName   string
	concurrency int
}

// NewIndexer creates a new indexer.
// A nil reporter discards progress output.
func NewIndexer(
	client driven.VectorStoreClient,
	source driven.DocumentSource,
	chunker driven.Chunker,
	reporter driven.Reporter,
	opts IndexerOptions,
) *Indexer {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if opts.StoreName == "" {
		opts.StoreName = domain.DefaultStoreName
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	return &Indexer{
		client:      client,
		source:      source,
		chunker:     chunker,
		reporter:    reporter,
		storeName:   opts.StoreName,
		concurrency: opts.Concurrency,
	}
}

// Run performs one indexing run.
// Store resolution and document discovery failures abort the run; chunk failures do not.
func (ix *Indexer) Run(ctx context.Context) (*domain.RunResult, error) {
	result := &domain.RunResult{
		RunID: uuid.NewString(),
		State: domain.RunStateInit,
	}
	log := logger.Logger().With("run_id", result.RunID)

	ix.reporter.RunStarted(ix.source.Location())
	log.Debug("run started", "location", ix.source.Location(), "store", ix.storeName,
		"chunker", ix.chunker.Name(), "concurrency", ix.concurrency)

	store, err := ix.ResolveStore(ctx, ix.storeName)
	if err != nil {
		return ix.abort(result, err)
	}
	result.StoreID = store.ID
	result.State = domain.RunStateStoreResolved

	names, err := ix.source.List(ctx)
	if err != nil {
		return ix.abort(result, fmt.Errorf("discover documents: %w", err))
	}
	if len(names) == 0 {
		return ix.abort(result, fmt.Errorf("%w in %s", domain.ErrNoDocuments, ix.source.Location()))
	}
	result.DocumentsFound = len(names)
	result.State = domain.RunStateDocsDiscovered
	ix.reporter.DocumentsDiscovered(len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return ix.abort(result, err)
		}

		docResult := ix.indexDocument(ctx, log, result, store.ID, name)
		result.Record(docResult)
		ix.reporter.DocumentFinished(docResult)
	}

	if err := ctx.Err(); err != nil {
		return ix.abort(result, err)
	}

	result.State = domain.RunStateSummarized
	log.Debug("run finished", "documents", result.DocumentsProcessed,
		"attempted", result.ChunksAttempted, "indexed", result.ChunksIndexed)
	ix.reporter.RunFinished(result)
	return result, nil
}

// ResolveStore returns the first store with the given name, creating one if none exists.
// A failed listing is treated as "no match" and falls through to creation.
func (ix *Indexer) ResolveStore(ctx context.Context, name string) (*domain.VectorStore, error) {
	ix.reporter.StoreLookup(name)

	stores, err := ix.client.ListStores(ctx)
	if err != nil {
		logger.Warn("Listing vector stores failed, will try to create %q: %v", name, err)
	}

	for _, store := range stores {
		if store.Name == name {
			ix.reporter.StoreResolved(store, false)
			return &store, nil
		}
	}

	ix.reporter.StoreCreating(name)
	store, err := ix.client.CreateStore(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrStoreCreation) {
			err = fmt.Errorf("%w: %q: %w", domain.ErrStoreCreation, name, err)
		}
		return nil, err
	}

	ix.reporter.StoreResolved(*store, true)
	return store, nil
}

// indexDocument reads, chunks and uploads one document.
func (ix *Indexer) indexDocument(
	ctx context.Context,
	log *slog.Logger,
	result *domain.RunResult,
	storeID, name string,
) domain.DocumentResult {
	result.State = domain.RunStateChunking

	doc, err := ix.source.Read(ctx, name)
	if err != nil {
		log.Debug("read failed", "document", name, "error", err)
		return domain.DocumentResult{Name: name, Err: err}
	}

	chunks, err := ix.chunker.Chunk(ctx, doc)
	if err != nil {
		log.Debug("chunking failed", "document", name, "error", err)
		return domain.DocumentResult{Name: name, Err: err}
	}
	ix.reporter.DocumentStarted(name, len(chunks))

	result.State = domain.RunStateUploading
	indexed := ix.upload(ctx, log, storeID, chunks)

	return domain.DocumentResult{
		Name:    name,
		Chunks:  len(chunks),
		Indexed: indexed,
	}
}

// upload inserts chunks with at most ix.concurrency requests in flight
// and returns how many succeeded. Failures are reported, never returned.
func (ix *Indexer) upload(ctx context.Context, log *slog.Logger, storeID string, chunks []domain.Chunk) int {
	var indexed atomic.Int64

	var g errgroup.Group
	g.SetLimit(ix.concurrency)

	for _, chunk := range chunks {
		g.Go(func() error {
			if err := ix.client.InsertChunk(ctx, storeID, chunk); err != nil {
				log.Debug("insert failed", "document", chunk.DocumentID, "chunk", chunk.Index, "error", err)
				ix.reporter.ChunkFailed(chunk.DocumentID, chunk.Index, err)
				return nil
			}
			indexed.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(indexed.Load())
}

func (ix *Indexer) abort(result *domain.RunResult, err error) (*domain.RunResult, error) {
	logger.Debug("run %s aborted in state %s: %v", result.RunID, result.State.String(), err)
	result.State = domain.RunStateAborted
	ix.reporter.RunAborted(err)
	return result, err
}

// nopReporter discards progress output.
type nopReporter struct{}

func (nopReporter) RunStarted(string)                      {}
func (nopReporter) StoreLookup(string)                     {}
func (nopReporter) StoreCreating(string)                   {}
func (nopReporter) StoreResolved(domain.VectorStore, bool) {}
func (nopReporter) DocumentsDiscovered(int)                {}
func (nopReporter) DocumentStarted(string, int)            {}
func (nopReporter) ChunkFailed(string, int, error)         {}
func (nopReporter) DocumentFinished(domain.DocumentResult) {}
func (nopReporter) RunFinished(*domain.RunResult)          {}
func (nopReporter) RunAborted(error)                       {}
