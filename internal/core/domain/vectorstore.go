package domain

// DefaultStoreName is the collection the indexer populates unless configured otherwise.
const DefaultStoreName = "rhoai-docs"

// VectorStore is a handle to a collection in the remote indexing service.
// The ID is assigned by the service and stays stable for the store's lifetime.
type VectorStore struct {
	ID   string
	Name string
}
