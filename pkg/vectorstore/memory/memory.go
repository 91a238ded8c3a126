package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore"
)

// Store is a simple in-memory vector store using brute-force cosine
// similarity. Used for tests and local development without Qdrant.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

type collection struct {
	dimension int
	points    map[string]vectorstore.Point
}

var _ vectorstore.Store = &Store{}

func NewStore() *Store {
	return &Store{
		collections: make(map[string]*collection),
	}
}

func (s *Store) EnsureCollection(_ context.Context, name string, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid dimension %d", dimension)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[name]; !ok {
		s.collections[name] = &collection{
			dimension: dimension,
			points:    make(map[string]vectorstore.Point),
		}
	}
	return nil
}

func (s *Store) Upsert(_ context.Context, name string, points []vectorstore.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		return fmt.Errorf("collection %q does not exist", name)
	}
	for _, p := range points {
		if len(p.Vector) != col.dimension {
			return fmt.Errorf("vector dimension mismatch: got %d, want %d", len(p.Vector), col.dimension)
		}
		col.points[p.ID] = p
	}
	return nil
}

func (s *Store) Search(_ context.Context, name string, vector []float32, limit int) ([]vectorstore.Hit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	col, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("collection %q does not exist", name)
	}
	if limit <= 0 {
		limit = 5
	}

	hits := make([]vectorstore.Hit, 0, len(col.points))
	for id, p := range col.points {
		hits = append(hits, vectorstore.Hit{
			ID:      id,
			Score:   cosine(p.Vector, vector),
			Payload: p.Payload,
		})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })

	if limit > len(hits) {
		limit = len(hits)
	}
	return hits[:limit], nil
}

func (s *Store) Delete(_ context.Context, name string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		return fmt.Errorf("collection %q does not exist", name)
	}
	for _, id := range ids {
		delete(col.points, id)
	}
	return nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
