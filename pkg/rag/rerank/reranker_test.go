package rerank

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
)

// fakeEmbedder maps known texts to fixed vectors. Unknown texts embed to
// the zero vector.
type fakeEmbedder struct {
	vectors map[string][]float32
	fail    bool
	short   bool
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if f.fail {
		return nil, errors.New("embedding backend unavailable")
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 0}, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if f.fail {
		return nil, errors.New("embedding backend unavailable")
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := f.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	if f.short && len(out) > 1 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (f *fakeEmbedder) Dimension() int { return 3 }

func newTestReranker(f *fakeEmbedder) *Reranker {
	return NewReranker(f, log.New(io.Discard, "", 0))
}

func TestRerankOrdersBySimilarity(t *testing.T) {
	f := &fakeEmbedder{vectors: map[string][]float32{
		"query":     {1, 0, 0},
		"identical": {1, 0, 0},
		"close":     {1, 1, 0},
		"opposite":  {-1, 0, 0},
	}}
	r := newTestReranker(f)

	results := r.Rerank(context.Background(), "query", []string{"opposite", "close", "identical"}, 3)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Text != "identical" {
		t.Errorf("best result = %q, want identical", results[0].Text)
	}
	if results[0].Score < 0.999 || results[0].Score > 1.001 {
		t.Errorf("self-similarity score = %v, want 1.0", results[0].Score)
	}
	if results[1].Text != "close" {
		t.Errorf("second result = %q, want close", results[1].Text)
	}
	// Negative cosine is clamped, never propagated
	if results[2].Text != "opposite" || results[2].Score != 0 {
		t.Errorf("opposite vector: got %q score %v, want clamped 0", results[2].Text, results[2].Score)
	}
}

func TestRerankTruncatesToTopK(t *testing.T) {
	f := &fakeEmbedder{vectors: map[string][]float32{
		"query": {1, 0, 0},
		"a":     {1, 0, 0},
		"b":     {1, 1, 0},
		"c":     {0, 1, 0},
	}}
	r := newTestReranker(f)

	results := r.Rerank(context.Background(), "query", []string{"a", "b", "c"}, 2)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

// Reranking an already-ranked list must not change its order.
func TestRerankIdempotentOrdering(t *testing.T) {
	f := &fakeEmbedder{vectors: map[string][]float32{
		"query": {1, 0, 0},
		"a":     {1, 0, 0},
		"b":     {1, 1, 0},
		"c":     {0, 1, 0},
	}}
	r := newTestReranker(f)
	ctx := context.Background()

	first := r.Rerank(ctx, "query", []string{"a", "b", "c"}, 3)

	ordered := make([]string, len(first))
	for i, res := range first {
		ordered[i] = res.Text
	}
	second := r.Rerank(ctx, "query", ordered, 3)

	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("order changed at %d: %q vs %q", i, first[i].Text, second[i].Text)
		}
	}
}

func TestRerankDegradesOnEmbeddingFailure(t *testing.T) {
	f := &fakeEmbedder{fail: true}
	r := newTestReranker(f)

	docs := []string{"premier", "deuxième", "troisième"}
	results := r.Rerank(context.Background(), "query", docs, 3)

	if len(results) != len(docs) {
		t.Fatalf("got %d results, want %d", len(results), len(docs))
	}
	for i, res := range results {
		if res.Text != docs[i] {
			t.Errorf("result %d = %q, want original order %q", i, res.Text, docs[i])
		}
		if res.Score != 0 {
			t.Errorf("degraded score = %v, want 0", res.Score)
		}
		if res.Index != i {
			t.Errorf("degraded index = %d, want %d", res.Index, i)
		}
	}
}

// A backend that returns fewer vectors than inputs must degrade like a
// failure, never produce results pointing at the wrong document.
func TestRerankDegradesOnShortBatch(t *testing.T) {
	f := &fakeEmbedder{vectors: map[string][]float32{"query": {1, 0, 0}}, short: true}
	r := newTestReranker(f)

	docs := []string{"premier", "deuxième", "troisième"}
	results := r.Rerank(context.Background(), "query", docs, 3)

	if len(results) != len(docs) {
		t.Fatalf("got %d results, want %d", len(results), len(docs))
	}
	for i, res := range results {
		if res.Text != docs[i] || res.Index != i || res.Score != 0 {
			t.Errorf("result %d = %+v, want original order with score 0", i, res)
		}
	}
}

func TestRerankEmptyInput(t *testing.T) {
	r := newTestReranker(&fakeEmbedder{})
	results := r.Rerank(context.Background(), "query", nil, 3)
	if len(results) != 0 {
		t.Errorf("got %d results for empty input, want 0", len(results))
	}
}

func TestCosineSimilarityZeroNorm(t *testing.T) {
	if got := cosineSimilarity([]float32{0, 0}, []float32{1, 1}); got != 0 {
		t.Errorf("zero-norm similarity = %v, want 0", got)
	}
	if got := cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}); got != 0 {
		t.Errorf("mismatched length similarity = %v, want 0", got)
	}
}
