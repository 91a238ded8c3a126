package retriever

import (
	"context"
	"fmt"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/embedding"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/rag"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore"
)

// KnowledgeRetriever turns a question into ranked FAQ evidence. It embeds
// the query, searches the knowledge-base collection and maps payloads to
// candidates. Ordering and thresholding belong to the gate, strictly
// downstream.
type KnowledgeRetriever struct {
	provider   embedding.Provider
	store      vectorstore.Store
	collection string
}

func NewKnowledgeRetriever(provider embedding.Provider, store vectorstore.Store, collection string) *KnowledgeRetriever {
	return &KnowledgeRetriever{
		provider:   provider,
		store:      store,
		collection: collection,
	}
}

func (r *KnowledgeRetriever) Search(ctx context.Context, query string, limit int) ([]rag.Candidate, error) {
	queryVector, err := r.provider.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := r.store.Search(ctx, r.collection, queryVector, limit)
	if err != nil {
		return nil, fmt.Errorf("vector search in %s: %w", r.collection, err)
	}

	candidates := make([]rag.Candidate, 0, len(hits))
	for _, hit := range hits {
		candidates = append(candidates, rag.Candidate{
			ID:       hit.ID,
			Content:  payloadString(hit.Payload, "content"),
			Score:    hit.Score,
			Metadata: hit.Payload,
		})
	}
	return candidates, nil
}

// ProductRetriever is the product-catalog twin of KnowledgeRetriever,
// differing only in collection and payload mapping.
type ProductRetriever struct {
	provider   embedding.Provider
	store      vectorstore.Store
	collection string
}

func NewProductRetriever(provider embedding.Provider, store vectorstore.Store, collection string) *ProductRetriever {
	return &ProductRetriever{
		provider:   provider,
		store:      store,
		collection: collection,
	}
}

func (r *ProductRetriever) Search(ctx context.Context, query string, limit int) ([]rag.ProductCandidate, error) {
	queryVector, err := r.provider.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := r.store.Search(ctx, r.collection, queryVector, limit)
	if err != nil {
		return nil, fmt.Errorf("vector search in %s: %w", r.collection, err)
	}

	products := make([]rag.ProductCandidate, 0, len(hits))
	for _, hit := range hits {
		productId := payloadString(hit.Payload, "productId")
		if productId == "" {
			productId = hit.ID
		}
		products = append(products, rag.ProductCandidate{
			ProductID:    productId,
			Title:        payloadString(hit.Payload, "title"),
			Description:  payloadString(hit.Payload, "description"),
			Slug:         payloadString(hit.Payload, "slug"),
			CategoryID:   payloadString(hit.Payload, "categoryId"),
			CategoryName: payloadString(hit.Payload, "categoryName"),
			Score:        hit.Score,
		})
	}
	return products, nil
}

// payloadString pulls a string field out of the payload with a safe default
// when absent or mistyped.
func payloadString(payload map[string]interface{}, key string) string {
	if payload == nil {
		return ""
	}
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
