package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
)

func TestVectorStore_SeedAndList(t *testing.T) {
	s := NewVectorStore(domain.VectorStore{ID: "vs_1", Name: "rhoai-docs"})

	stores, err := s.ListStores(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.VectorStore{{ID: "vs_1", Name: "rhoai-docs"}}, stores)
	assert.Zero(t, s.CreateCalls())
}

func TestVectorStore_Create(t *testing.T) {
	s := NewVectorStore()
	ctx := context.Background()

	store, err := s.CreateStore(ctx, "rhoai-docs")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(store.ID, "vs_"))
	assert.Equal(t, "rhoai-docs", store.Name)
	assert.Equal(t, 1, s.CreateCalls())

	stores, err := s.ListStores(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.VectorStore{*store}, stores)
}

func TestVectorStore_InsertChunk(t *testing.T) {
	s := NewVectorStore(domain.VectorStore{ID: "vs_1", Name: "docs"})
	ctx := context.Background()

	require.NoError(t, s.InsertChunk(ctx, "vs_1", domain.Chunk{Content: "a", Index: 0, Total: 2}))
	require.NoError(t, s.InsertChunk(ctx, "vs_1", domain.Chunk{Content: "b", Index: 1, Total: 2}))

	chunks := s.Chunks("vs_1")
	require.Len(t, chunks, 2)
	assert.Equal(t, "a", chunks[0].Content)
	assert.Equal(t, "b", chunks[1].Content)
}

func TestVectorStore_InsertChunk_UnknownStore(t *testing.T) {
	s := NewVectorStore()

	err := s.InsertChunk(context.Background(), "vs_missing", domain.Chunk{})

	assert.ErrorIs(t, err, domain.ErrInsertFailed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.Chunks("vs_missing"))
}
