package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
	"github.com/custodia-labs/rag-indexer/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStoreClient = (*VectorStore)(nil)

// VectorStore is an in-memory implementation of driven.VectorStoreClient.
// It keeps stores in creation order and records every inserted chunk.
type VectorStore struct {
	mu          sync.RWMutex
	stores      []domain.VectorStore
	chunks      map[string][]domain.Chunk
	createCalls int
}

// NewVectorStore creates a new in-memory vector store client.
// Seed stores are visible to ListStores immediately.
func NewVectorStore(seed ...domain.VectorStore) *VectorStore {
	return &VectorStore{
		stores: append([]domain.VectorStore(nil), seed...),
		chunks: make(map[string][]domain.Chunk),
	}
}

// ListStores returns all stores in creation order.
func (s *VectorStore) ListStores(_ context.Context) ([]domain.VectorStore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.VectorStore, len(s.stores))
	copy(result, s.stores)
	return result, nil
}

// CreateStore adds a new store with a generated id.
// Duplicate names are allowed, as they are by the remote service.
func (s *VectorStore) CreateStore(_ context.Context, name string) (*domain.VectorStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCalls++
	store := domain.VectorStore{ID: "vs_" + uuid.NewString(), Name: name}
	s.stores = append(s.stores, store)
	return &store, nil
}

// InsertChunk records a chunk against an existing store.
func (s *VectorStore) InsertChunk(_ context.Context, storeID string, chunk domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasStore(storeID) {
		return fmt.Errorf("%w: chunk %d: store %s: %w", domain.ErrInsertFailed, chunk.Index, storeID, domain.ErrNotFound)
	}
	s.chunks[storeID] = append(s.chunks[storeID], chunk)
	return nil
}

// Chunks returns the chunks inserted into a store, in insertion order.
func (s *VectorStore) Chunks(storeID string) []domain.Chunk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Chunk, len(s.chunks[storeID]))
	copy(result, s.chunks[storeID])
	return result
}

// CreateCalls returns how many times CreateStore was called.
func (s *VectorStore) CreateCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.createCalls
}

// hasStore reports whether id names a known store (caller must hold lock).
func (s *VectorStore) hasStore(id string) bool {
	for _, store := range s.stores {
		if store.ID == id {
			return true
		}
	}
	return false
}
