package service

import (
	"context"
	"testing"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/dto"
	memorystore "github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct{}

func (stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	return vectorFor(text), nil
}

func (stubEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = vectorFor(text)
	}
	return vectors, nil
}

func (stubEmbedder) Dimension() int { return 4 }

// vectorFor is a toy deterministic embedding over character sums.
func vectorFor(text string) []float32 {
	v := make([]float32, 4)
	for i, r := range text {
		v[i%4] += float32(r % 97)
	}
	return v
}

func TestIngestionService_IngestDocuments(t *testing.T) {
	store := memorystore.NewStore()
	svc := NewIngestionService(stubEmbedder{}, store, "docs", "products", nopLogger{})

	res, err := svc.IngestDocuments(context.Background(), &dto.IngestDocsRequest{
		Documents: []dto.IngestDocument{
			{ID: "d1", Title: "Livraison", Content: "Livraison en 3 à 5 jours ouvrés."},
			{ID: "d2", Title: "Retours", Content: "Retours gratuits sous 30 jours.", Meta: map[string]string{"lang": "fr"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Indexed)

	hits, err := store.Search(context.Background(), "docs", vectorFor("Livraison en 3 à 5 jours ouvrés."), 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Livraison en 3 à 5 jours ouvrés.", hits[0].Payload["content"])
	assert.Equal(t, "Livraison", hits[0].Payload["topic"])
}

func TestIngestionService_IngestProducts(t *testing.T) {
	store := memorystore.NewStore()
	svc := NewIngestionService(stubEmbedder{}, store, "docs", "products", nopLogger{})

	res, err := svc.IngestProducts(context.Background(), &dto.IngestProductsRequest{
		Products: []dto.IngestProduct{
			{ID: "p1", Title: "T-shirt coton", Description: "Coupe droite", CategoryName: "Vêtements"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Indexed)

	hits, err := store.Search(context.Background(), "products", vectorFor(productIndexText(dto.IngestProduct{
		Title: "T-shirt coton", Description: "Coupe droite", CategoryName: "Vêtements",
	})), 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "p1", hits[0].Payload["productId"])
	assert.Equal(t, "product", hits[0].Payload["type"])
}

func TestProductIndexText(t *testing.T) {
	assert.Equal(t, "T-shirt", productIndexText(dto.IngestProduct{Title: "T-shirt"}))
	assert.Equal(t, "T-shirt. Coton bio", productIndexText(dto.IngestProduct{Title: "T-shirt", Description: "Coton bio"}))
	assert.Equal(t, "T-shirt. Coton bio. Catégorie : Vêtements",
		productIndexText(dto.IngestProduct{Title: "T-shirt", Description: "Coton bio", CategoryName: "Vêtements"}))
}
