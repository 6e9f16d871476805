// Package llamastack provides a vector store client for the Llama Stack API.
package llamastack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
	"github.com/custodia-labs/rag-indexer/internal/core/ports/driven"
	"github.com/custodia-labs/rag-indexer/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.VectorStoreClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL       = domain.DefaultBaseURL
	DefaultStoreTimeout  = domain.DefaultStoreTimeout
	DefaultInsertTimeout = domain.DefaultInsertTimeout
)

// API paths.
const (
	vectorStoresPath = "/v1/vector_stores"
	insertPath       = "/v1/vector-io/insert"
)

// maxErrorBody caps how much of an error response is kept for reporting.
const maxErrorBody = 4 << 10

// Config holds configuration for the Llama Stack client.
type Config struct {
	// BaseURL is the service root (default: http://localhost:8321).
	BaseURL string

	// StoreTimeout bounds list and create vector store calls (default: 10s).
	StoreTimeout time.Duration

	// InsertTimeout bounds each chunk insertion (default: 30s).
	InsertTimeout time.Duration

	// RequestsPerSecond paces insert calls. Zero disables pacing.
	RequestsPerSecond float64

	// HTTPClient overrides the transport. Useful for testing.
	HTTPClient *http.Client
}

// Client talks to the Llama Stack vector store and vector-io endpoints.
type Client struct {
	client        *http.Client
	baseURL       string
	storeTimeout  time.Duration
	insertTimeout time.Duration
	limiter       *rate.Limiter
}

// StatusError is returned when the service answers with an unexpected HTTP status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// vectorStoreResponse is a single store as returned by the API.
type vectorStoreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// listStoresResponse is the GET /v1/vector_stores response format.
type listStoresResponse struct {
	Data []vectorStoreResponse `json:"data"`
}

// createStoreRequest is the POST /v1/vector_stores request format.
type createStoreRequest struct {
	Name    string   `json:"name"`
	FileIDs []string `json:"file_ids"`
}

// insertRequest is the POST /v1/vector-io/insert request format.
type insertRequest struct {
	VectorDBID string        `json:"vector_db_id"`
	Chunks     []insertChunk `json:"chunks"`
}

type insertChunk struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// NewClient creates a new Llama Stack client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}
	if cfg.InsertTimeout <= 0 {
		cfg.InsertTimeout = DefaultInsertTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		client:        cfg.HTTPClient,
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		storeTimeout:  cfg.StoreTimeout,
		insertTimeout: cfg.InsertTimeout,
		limiter:       limiter,
	}
}

// ListStores returns every vector store known to the service.
func (c *Client) ListStores(ctx context.Context) ([]domain.VectorStore, error) {
	ctx, cancel := context.WithTimeout(ctx, c.storeTimeout)
	defer cancel()

	var resp listStoresResponse
	if err := c.do(ctx, http.MethodGet, vectorStoresPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("list vector stores: %w", err)
	}

	stores := make([]domain.VectorStore, 0, len(resp.Data))
	for _, s := range resp.Data {
		stores = append(stores, domain.VectorStore{ID: s.ID, Name: s.Name})
	}
	return stores, nil
}

// CreateStore creates an empty vector store with the given name.
func (c *Client) CreateStore(ctx context.Context, name string) (*domain.VectorStore, error) {
	ctx, cancel := context.WithTimeout(ctx, c.storeTimeout)
	defer cancel()

	req := createStoreRequest{Name: name, FileIDs: []string{}}

	var resp vectorStoreResponse
	if err := c.do(ctx, http.MethodPost, vectorStoresPath, req, &resp); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", domain.ErrStoreCreation, name, err)
	}
	if resp.ID == "" {
		return nil, fmt.Errorf("%w: %q: response carried no id", domain.ErrStoreCreation, name)
	}

	if resp.Name == "" {
		resp.Name = name
	}
	return &domain.VectorStore{ID: resp.ID, Name: resp.Name}, nil
}

// InsertChunk submits one chunk to the given store.
func (c *Client) InsertChunk(ctx context.Context, storeID string, chunk domain.Chunk) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: chunk %d: %w", domain.ErrInsertFailed, chunk.Index, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.insertTimeout)
	defer cancel()

	req := insertRequest{
		VectorDBID: storeID,
		Chunks: []insertChunk{{
			Content:  chunk.Content,
			Metadata: chunk.Metadata(),
		}},
	}

	if err := c.do(ctx, http.MethodPost, insertPath, req, nil); err != nil {
		return fmt.Errorf("%w: chunk %d: %w", domain.ErrInsertFailed, chunk.Index, err)
	}
	return nil
}

// do sends a JSON request and decodes a JSON response into out when out is non-nil.
// Only HTTP 200 counts as success.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("%s %s", method, req.URL)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
