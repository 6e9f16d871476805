package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rag-indexer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rag-indexer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/rag-indexer/internal/core/domain"
)

func envMap(m map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestSettingsService_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(), nil)

	cfg, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultIndexerConfig(), *cfg)
}

func TestSettingsService_NilStore(t *testing.T) {
	cfg, err := NewSettingsService(nil, envMap(map[string]string{EnvStoreName: "x"})).Get()

	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Index.StoreName)
}

func TestSettingsService_ConfigStoreOverridesDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	store.Set("server.base_url", "http://llama:8321")
	store.Set("server.store_timeout", "5s")
	store.Set("server.insert_timeout", int64(90))
	store.Set("index.docs_dir", "/srv/docs")
	store.Set("index.extension", ".md")
	store.Set("index.store_name", "product-docs")
	store.Set("chunking.chunk_size", int64(200))
	store.Set("chunking.overlap", int64(20))
	store.Set("upload.concurrency", int64(3))
	store.Set("upload.requests_per_second", 1.5)

	cfg, err := NewSettingsService(store, nil).Get()

	require.NoError(t, err)
	assert.Equal(t, "http://llama:8321", cfg.Server.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Server.StoreTimeout)
	assert.Equal(t, 90*time.Second, cfg.Server.InsertTimeout)
	assert.Equal(t, "/srv/docs", cfg.Index.DocsDir)
	assert.Equal(t, ".md", cfg.Index.Extension)
	assert.Equal(t, "product-docs", cfg.Index.StoreName)
	assert.Equal(t, 200, cfg.Chunking.Size)
	assert.Equal(t, 20, cfg.Chunking.Overlap)
	assert.Equal(t, 3, cfg.Upload.Concurrency)
	assert.Equal(t, 1.5, cfg.Upload.RequestsPerSecond)
}

func TestSettingsService_EnvOverridesConfigStore(t *testing.T) {
	store := memory.NewConfigStore()
	store.Set("server.base_url", "http://from-file:8321")
	store.Set("chunking.chunk_size", int64(200))

	env := envMap(map[string]string{
		EnvBaseURL:       "http://from-env:8321",
		EnvDocsDir:       "/env/docs",
		EnvExtension:     ".rst",
		EnvStoreName:     "env-store",
		EnvStoreTimeout:  "3",
		EnvInsertTimeout: "1m",
		EnvChunkSize:     "100",
		EnvChunkOverlap:  "10",
		EnvConcurrency:   "8",
		EnvRPS:           "0.5",
	})

	cfg, err := NewSettingsService(store, env).Get()

	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8321", cfg.Server.BaseURL)
	assert.Equal(t, "/env/docs", cfg.Index.DocsDir)
	assert.Equal(t, ".rst", cfg.Index.Extension)
	assert.Equal(t, "env-store", cfg.Index.StoreName)
	assert.Equal(t, 3*time.Second, cfg.Server.StoreTimeout)
	assert.Equal(t, time.Minute, cfg.Server.InsertTimeout)
	assert.Equal(t, 100, cfg.Chunking.Size)
	assert.Equal(t, 10, cfg.Chunking.Overlap)
	assert.Equal(t, 8, cfg.Upload.Concurrency)
	assert.Equal(t, 0.5, cfg.Upload.RequestsPerSecond)
}

func TestSettingsService_BlankEnvIgnored(t *testing.T) {
	cfg, err := NewSettingsService(nil, envMap(map[string]string{EnvBaseURL: "  "})).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBaseURL, cfg.Server.BaseURL)
}

func TestSettingsService_InvalidEnv(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvChunkSize, "big"},
		{EnvChunkOverlap, "1.5"},
		{EnvConcurrency, "many"},
		{EnvStoreTimeout, "soon"},
		{EnvInsertTimeout, "later"},
		{EnvRPS, "fast"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, err := NewSettingsService(nil, envMap(map[string]string{tt.key: tt.value})).Get()
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestSettingsService_RejectsOverlapNotBelowSize(t *testing.T) {
	env := envMap(map[string]string{EnvChunkSize: "50", EnvChunkOverlap: "50"})

	_, err := NewSettingsService(nil, env).Get()

	assert.ErrorIs(t, err, domain.ErrInvalidChunkConfig)
}

func TestSettingsService_ExplicitZeroInFileIsRejected(t *testing.T) {
	store := memory.NewConfigStore()
	store.Set("upload.concurrency", int64(0))

	_, err := NewSettingsService(store, nil).Get()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_WrongTypeInStoreIsRejected(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{"chunking.overlap", "50"},
		{"chunking.chunk_size", 12.5},
		{"upload.concurrency", true},
		{"upload.requests_per_second", "5"},
		{"server.store_timeout", "ten seconds"},
		{"server.insert_timeout", 1.5},
		{"index.store_name", int64(7)},
		{"server.base_url", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			store := memory.NewConfigStore()
			store.Set(tt.key, tt.value)

			cfg, err := NewSettingsService(store, nil).Get()

			assert.Nil(t, cfg)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestSettingsService_WrongTypeInTOMLFileIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indexer.toml")
	require.NoError(t, os.WriteFile(path, []byte("[chunking]\noverlap = \"50\"\n"), 0o600))
	store, err := file.NewConfigStore(path)
	require.NoError(t, err)

	_, err = NewSettingsService(store, nil).Get()

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "chunking.overlap")
}

func TestSettingsService_EnvDoesNotMaskInvalidStoreValue(t *testing.T) {
	store := memory.NewConfigStore()
	store.Set("upload.requests_per_second", "5")

	_, err := NewSettingsService(store, envMap(map[string]string{EnvRPS: "5"})).Get()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_ExplicitZeroDurationInStoreIsRejected(t *testing.T) {
	store := memory.NewConfigStore()
	store.Set("server.store_timeout", "0s")

	_, err := NewSettingsService(store, nil).Get()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_EmptyStringInStoreKeepsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	store.Set("index.docs_dir", "")

	cfg, err := NewSettingsService(store, nil).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDocsDir, cfg.Index.DocsDir)
}
