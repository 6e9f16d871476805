package domain

// Document is a single corpus file.
// Its Name doubles as the document identifier and the source tag on every chunk.
type Document struct {
	// Name is the file's base name (e.g. "install-guide.txt").
	Name string

	// Path is the location the document was read from.
	Path string

	// Content is the full file body.
	Content string
}

// Chunk is one overlapping word window of a Document.
// Chunks are transient: they live between chunking and upload only.
type Chunk struct {
	// Content is the window's words joined by single spaces.
	Content string

	// DocumentID identifies the owning document.
	DocumentID string

	// Source tags where the chunk came from.
	Source string

	// Index is the zero-based position of the chunk within its document.
	Index int

	// Total is the number of chunks produced for the owning document.
	Total int
}

// Metadata returns the key-value pairs sent alongside the chunk content.
func (c Chunk) Metadata() map[string]any {
	return map[string]any{
		"document_id":  c.DocumentID,
		"source":       c.Source,
		"chunk_index":  c.Index,
		"total_chunks": c.Total,
	}
}
