package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIndexerConfig(t *testing.T) {
	cfg := DefaultIndexerConfig()

	assert.Equal(t, "http://localhost:8321", cfg.Server.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Server.StoreTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.InsertTimeout)
	assert.Equal(t, "/tmp/sample-docs", cfg.Index.DocsDir)
	assert.Equal(t, ".txt", cfg.Index.Extension)
	assert.Equal(t, "rhoai-docs", cfg.Index.StoreName)
	assert.Equal(t, 500, cfg.Chunking.Size)
	assert.Equal(t, 50, cfg.Chunking.Overlap)
	assert.Equal(t, 1, cfg.Upload.Concurrency)
	assert.Zero(t, cfg.Upload.RequestsPerSecond)
	assert.NoError(t, cfg.Validate())
}

func TestChunkSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		wantErr bool
	}{
		{"defaults", 500, 50, false},
		{"no overlap", 10, 0, false},
		{"overlap one below size", 10, 9, false},
		{"overlap equals size", 10, 10, true},
		{"overlap exceeds size", 10, 15, true},
		{"negative overlap", 10, -1, true},
		{"zero size", 0, 0, true},
		{"negative size", -5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ChunkSettings{Size: tt.size, Overlap: tt.overlap}.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidChunkConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIndexerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*IndexerConfig)
		wantErr error
	}{
		{"empty base URL", func(c *IndexerConfig) { c.Server.BaseURL = "" }, ErrInvalidInput},
		{"zero store timeout", func(c *IndexerConfig) { c.Server.StoreTimeout = 0 }, ErrInvalidInput},
		{"zero insert timeout", func(c *IndexerConfig) { c.Server.InsertTimeout = 0 }, ErrInvalidInput},
		{"empty docs dir", func(c *IndexerConfig) { c.Index.DocsDir = "" }, ErrInvalidInput},
		{"empty store name", func(c *IndexerConfig) { c.Index.StoreName = "" }, ErrInvalidInput},
		{"zero concurrency", func(c *IndexerConfig) { c.Upload.Concurrency = 0 }, ErrInvalidInput},
		{"negative rps", func(c *IndexerConfig) { c.Upload.RequestsPerSecond = -1 }, ErrInvalidInput},
		{"bad chunking", func(c *IndexerConfig) { c.Chunking.Overlap = c.Chunking.Size }, ErrInvalidChunkConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultIndexerConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}
