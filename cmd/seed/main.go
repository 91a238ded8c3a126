package main

import (
	"context"
	"log"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/config"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/embedding"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore"
	memorystore "github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore/memory"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore/qdrant"

	"github.com/google/uuid"
)

type seedDoc struct {
	content string
	topic   string
}

var faqSeed = []seedDoc{
	{"Les délais de livraison sont de 3 à 5 jours ouvrés en France métropolitaine.", "livraison"},
	{"Les retours sont gratuits sous 30 jours si le produit n'a pas été porté.", "retours"},
	{"Nous acceptons les paiements par carte bancaire (Visa, Mastercard) et PayPal.", "paiement"},
	{"Pour contacter le support, écrivez à support@shopyverse.com.", "contact"},
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var provider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel, 0)
	} else {
		provider = embedding.NewHuggingFaceProvider(cfg.Keys.HuggingFace, cfg.Ai.EmbeddingModel)
	}

	var store vectorstore.Store
	if cfg.Vector.Provider == "memory" {
		store = memorystore.NewStore()
	} else {
		store = qdrant.NewStore(qdrant.Config{
			URL:    cfg.Vector.QdrantURL,
			APIKey: cfg.Vector.QdrantAPIKey,
		})
	}

	log.Println("Démarrage du seed FAQ...")

	if err := store.EnsureCollection(ctx, cfg.Vector.DocsCollection, provider.Dimension()); err != nil {
		log.Fatalf("Erreur: création de la collection: %v", err)
	}

	texts := make([]string, len(faqSeed))
	for i, doc := range faqSeed {
		texts[i] = doc.content
	}

	vectors, err := provider.EmbedBatch(ctx, texts)
	if err != nil {
		log.Fatalf("Erreur: génération des embeddings: %v", err)
	}

	points := make([]vectorstore.Point, len(faqSeed))
	for i, doc := range faqSeed {
		points[i] = vectorstore.Point{
			ID:     uuid.NewString(),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"content": doc.content,
				"topic":   doc.topic,
				"type":    "faq",
			},
		}
	}

	if err := store.Upsert(ctx, cfg.Vector.DocsCollection, points); err != nil {
		log.Fatalf("Erreur: insertion dans l'index: %v", err)
	}

	log.Printf("Seed terminé: %d documents indexés dans %s", len(points), cfg.Vector.DocsCollection)
}
