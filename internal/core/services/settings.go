package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
	"github.com/custodia-labs/rag-indexer/internal/core/ports/driven"
)

// Config keys for settings storage.
const (
	keyBaseURL       = "server.base_url"
	keyStoreTimeout  = "server.store_timeout"
	keyInsertTimeout = "server.insert_timeout"
	keyDocsDir       = "index.docs_dir"
	keyExtension     = "index.extension"
	keyStoreName     = "index.store_name"
	keyChunkSize     = "chunking.chunk_size"
	keyChunkOverlap  = "chunking.overlap"
	keyConcurrency   = "upload.concurrency"
	keyRPS           = "upload.requests_per_second"
)

// Environment variables, which take precedence over the config file.
const (
	EnvBaseURL       = "LLAMA_STACK_URL"
	EnvStoreTimeout  = "STORE_TIMEOUT"
	EnvInsertTimeout = "INSERT_TIMEOUT"
	EnvDocsDir       = "DOCS_DIR"
	EnvExtension     = "DOCS_EXTENSION"
	EnvStoreName     = "VECTOR_STORE_NAME"
	EnvChunkSize     = "CHUNK_SIZE"
	EnvChunkOverlap  = "CHUNK_OVERLAP"
	EnvConcurrency   = "UPLOAD_CONCURRENCY"
	EnvRPS           = "UPLOAD_RPS"
)

// LookupEnv matches os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// SettingsService builds the indexer configuration.
// Values resolve in order: defaults, config store, environment.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   LookupEnv
}

// NewSettingsService creates a new settings service.
// A nil lookupEnv ignores the environment.
func NewSettingsService(configStore driven.ConfigStore, lookupEnv LookupEnv) *SettingsService {
	if lookupEnv == nil {
		lookupEnv = func(string) (string, bool) { return "", false }
	}
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   lookupEnv,
	}
}

// Get resolves and validates the indexer configuration.
func (s *SettingsService) Get() (*domain.IndexerConfig, error) {
	cfg := domain.DefaultIndexerConfig()

	if s.configStore != nil {
		if err := s.applyStore(&cfg); err != nil {
			return nil, err
		}
	}
	if err := s.applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

//nolint:gocyclo // Flat list of independent overrides
func (s *SettingsService) applyStore(cfg *domain.IndexerConfig) error {
	var err error

	if cfg.Server.BaseURL, err = s.storeString(keyBaseURL, cfg.Server.BaseURL); err != nil {
		return err
	}
	if cfg.Server.StoreTimeout, err = s.storeDuration(keyStoreTimeout, cfg.Server.StoreTimeout); err != nil {
		return err
	}
	if cfg.Server.InsertTimeout, err = s.storeDuration(keyInsertTimeout, cfg.Server.InsertTimeout); err != nil {
		return err
	}
	if cfg.Index.DocsDir, err = s.storeString(keyDocsDir, cfg.Index.DocsDir); err != nil {
		return err
	}
	if cfg.Index.Extension, err = s.storeString(keyExtension, cfg.Index.Extension); err != nil {
		return err
	}
	if cfg.Index.StoreName, err = s.storeString(keyStoreName, cfg.Index.StoreName); err != nil {
		return err
	}
	if cfg.Chunking.Size, err = s.storeInt(keyChunkSize, cfg.Chunking.Size); err != nil {
		return err
	}
	if cfg.Chunking.Overlap, err = s.storeInt(keyChunkOverlap, cfg.Chunking.Overlap); err != nil {
		return err
	}
	if cfg.Upload.Concurrency, err = s.storeInt(keyConcurrency, cfg.Upload.Concurrency); err != nil {
		return err
	}
	if cfg.Upload.RequestsPerSecond, err = s.storeFloat(keyRPS, cfg.Upload.RequestsPerSecond); err != nil {
		return err
	}

	return nil
}

//nolint:gocyclo // Flat list of independent overrides
func (s *SettingsService) applyEnv(cfg *domain.IndexerConfig) error {
	var err error

	if v, ok := s.env(EnvBaseURL); ok {
		cfg.Server.BaseURL = v
	}
	if v, ok := s.env(EnvDocsDir); ok {
		cfg.Index.DocsDir = v
	}
	if v, ok := s.env(EnvExtension); ok {
		cfg.Index.Extension = v
	}
	if v, ok := s.env(EnvStoreName); ok {
		cfg.Index.StoreName = v
	}
	if v, ok := s.env(EnvStoreTimeout); ok {
		if cfg.Server.StoreTimeout, err = parseDuration(EnvStoreTimeout, v); err != nil {
			return err
		}
	}
	if v, ok := s.env(EnvInsertTimeout); ok {
		if cfg.Server.InsertTimeout, err = parseDuration(EnvInsertTimeout, v); err != nil {
			return err
		}
	}
	if v, ok := s.env(EnvChunkSize); ok {
		if cfg.Chunking.Size, err = parseInt(EnvChunkSize, v); err != nil {
			return err
		}
	}
	if v, ok := s.env(EnvChunkOverlap); ok {
		if cfg.Chunking.Overlap, err = parseInt(EnvChunkOverlap, v); err != nil {
			return err
		}
	}
	if v, ok := s.env(EnvConcurrency); ok {
		if cfg.Upload.Concurrency, err = parseInt(EnvConcurrency, v); err != nil {
			return err
		}
	}
	if v, ok := s.env(EnvRPS); ok {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", domain.ErrInvalidInput, EnvRPS, v)
		}
		cfg.Upload.RequestsPerSecond = rps
	}

	return nil
}

// env returns a trimmed, non-empty environment value.
func (s *SettingsService) env(key string) (string, bool) {
	v, ok := s.lookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// storeString returns the stored string or defaultVal when the key is absent or empty.
func (s *SettingsService) storeString(key, defaultVal string) (string, error) {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal, nil
	}
	str, ok := val.(string)
	if !ok {
		return "", typeError(key, val, "a string")
	}
	if str == "" {
		return defaultVal, nil
	}
	return str, nil
}

// storeInt returns the stored integer or defaultVal when the key is absent.
// An explicit zero is kept so it can be rejected by validation.
func (s *SettingsService) storeInt(key string, defaultVal int) (int, error) {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal, nil
	}
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, typeError(key, val, "an integer")
	}
}

func (s *SettingsService) storeFloat(key string, defaultVal float64) (float64, error) {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal, nil
	}
	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, typeError(key, val, "a number")
	}
}

// storeDuration accepts a time.Duration, a duration string or whole seconds.
func (s *SettingsService) storeDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal, nil
	}
	switch v := val.(type) {
	case time.Duration:
		return v, nil
	case int:
		return time.Duration(v) * time.Second, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case string:
		return parseDuration(key, strings.TrimSpace(v))
	default:
		return 0, typeError(key, val, "a duration")
	}
}

func typeError(key string, val any, want string) error {
	return fmt.Errorf("%w: %s=%v (%T) is not %s", domain.ErrInvalidInput, key, val, val, want)
}

func parseInt(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", domain.ErrInvalidInput, key, v)
	}
	return n, nil
}

// parseDuration accepts Go duration strings ("10s") and bare seconds ("10").
func parseDuration(key, v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a duration", domain.ErrInvalidInput, key, v)
	}
	return d, nil
}
