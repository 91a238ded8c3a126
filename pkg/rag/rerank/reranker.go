package rerank

import (
	"context"
	"log"
	"math"
	"sort"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/embedding"
)

// Result is one reranked document. Index refers back to the input slice.
type Result struct {
	Index int
	Score float64
	Text  string
}

// Reranker re-scores a small, already-gated candidate set with embedding
// cosine similarity. It is a quality pass, not a correctness pass: if the
// embedding backend fails, it degrades to the original order with zero
// scores instead of surfacing an error.
type Reranker struct {
	provider embedding.Provider
	logger   *log.Logger
}

func NewReranker(provider embedding.Provider, logger *log.Logger) *Reranker {
	return &Reranker{
		provider: provider,
		logger:   logger,
	}
}

// Rerank embeds the query once, the documents in one batch, scores each
// document with clamped cosine similarity, sorts descending and keeps topK.
func (r *Reranker) Rerank(ctx context.Context, query string, documents []string, topK int) []Result {
	if len(documents) == 0 {
		return []Result{}
	}

	queryVec, err := r.provider.Embed(ctx, query)
	if err != nil {
		r.logger.Printf("[WARN] Reranker: query embedding failed, keeping original order: %v", err)
		return passthrough(documents)
	}

	docVecs, err := r.provider.EmbedBatch(ctx, documents)
	if err != nil {
		r.logger.Printf("[WARN] Reranker: document embedding failed, keeping original order: %v", err)
		return passthrough(documents)
	}
	if len(docVecs) != len(documents) {
		r.logger.Printf("[WARN] Reranker: got %d vectors for %d documents, keeping original order", len(docVecs), len(documents))
		return passthrough(documents)
	}

	results := make([]Result, len(documents))
	for i, docVec := range docVecs {
		score := cosineSimilarity(queryVec, docVec)
		// Negative cosine means "less than unrelated"; never propagate a
		// negative relevance downstream.
		if score < 0 {
			score = 0
		}
		results[i] = Result{
			Index: i,
			Score: score,
			Text:  documents[i],
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	if topK > 0 && topK < len(results) {
		results = results[:topK]
	}
	return results
}

// passthrough returns the documents untouched with score 0, the declared
// degraded mode of this component.
func passthrough(documents []string) []Result {
	results := make([]Result, len(documents))
	for i, text := range documents {
		results[i] = Result{Index: i, Score: 0, Text: text}
	}
	return results
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denominator := math.Sqrt(normA) * math.Sqrt(normB)
	if denominator == 0 {
		return 0
	}
	return dot / denominator
}
