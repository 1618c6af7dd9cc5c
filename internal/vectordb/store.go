package vectordb

import "context"

// VectorStore defines the interface for storing and searching documents by
// embeddings. Implementations must be safe for concurrent readers; the write
// path (DeleteCollection + AddDocuments) is expected to run as a singleton
// maintenance job and is not designed for concurrent indexing runs.
type VectorStore interface {
	// AddDocuments adds or updates documents in the store.
	AddDocuments(ctx context.Context, docs []Document) error

	// Search performs a semantic search using the query text, returning up
	// to limit results ordered by descending similarity.
	Search(ctx context.Context, query string, limit int, filter *SearchFilter) ([]SearchResult, error)

	// DeleteCollection removes all documents. It is not an error if the
	// collection is already empty or was never created.
	DeleteCollection(ctx context.Context) error

	// Persist saves the store's data to the given directory.
	Persist(ctx context.Context, dir string) error

	// Load restores the store's data from the given directory.
	Load(ctx context.Context, dir string) error

	// Count returns the total number of documents in the store.
	Count() int
}
