package vectorstore

import "context"

// Point is a vector with its payload, ready for indexing.
type Point struct {
	ID      string
	Vector  []float32
	Payload map[string]interface{}
}

// Hit is a single nearest-neighbor search result. Score is a similarity
// (higher = more relevant).
type Hit struct {
	ID      string
	Score   float64
	Payload map[string]interface{}
}

// Store abstracts the vector index. Collections isolate the knowledge base
// from the product catalog.
type Store interface {
	EnsureCollection(ctx context.Context, collection string, dimension int) error
	Upsert(ctx context.Context, collection string, points []Point) error
	Search(ctx context.Context, collection string, vector []float32, limit int) ([]Hit, error)
	Delete(ctx context.Context, collection string, ids []string) error
}
