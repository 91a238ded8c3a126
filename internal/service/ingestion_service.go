package service

import (
	"context"
	"fmt"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/dto"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/pkg/logger"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/embedding"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore"

	"github.com/google/uuid"
)

type IIngestionService interface {
	IngestDocuments(ctx context.Context, req *dto.IngestDocsRequest) (*dto.IngestResponse, error)
	IngestProducts(ctx context.Context, req *dto.IngestProductsRequest) (*dto.IngestResponse, error)
}

// ingestionService batch-embeds content and upserts it into the vector
// index, one collection for knowledge-base documents and one for products.
type ingestionService struct {
	provider          embedding.Provider
	store             vectorstore.Store
	docsCollection    string
	productCollection string
	log               logger.ILogger
}

func NewIngestionService(
	provider embedding.Provider,
	store vectorstore.Store,
	docsCollection string,
	productCollection string,
	log logger.ILogger,
) IIngestionService {
	return &ingestionService{
		provider:          provider,
		store:             store,
		docsCollection:    docsCollection,
		productCollection: productCollection,
		log:               log,
	}
}

func (s *ingestionService) IngestDocuments(ctx context.Context, req *dto.IngestDocsRequest) (*dto.IngestResponse, error) {
	if err := s.store.EnsureCollection(ctx, s.docsCollection, s.provider.Dimension()); err != nil {
		return nil, fmt.Errorf("ensure collection %s: %w", s.docsCollection, err)
	}

	texts := make([]string, len(req.Documents))
	for i, doc := range req.Documents {
		texts[i] = doc.Content
	}

	vectors, err := s.provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed documents: %w", err)
	}

	points := make([]vectorstore.Point, len(req.Documents))
	for i, doc := range req.Documents {
		payload := map[string]interface{}{
			"content": doc.Content,
			"topic":   doc.Title,
		}
		for k, v := range doc.Meta {
			payload[k] = v
		}
		points[i] = vectorstore.Point{
			ID:      uuid.NewString(),
			Vector:  vectors[i],
			Payload: payload,
		}
	}

	if err := s.store.Upsert(ctx, s.docsCollection, points); err != nil {
		return nil, fmt.Errorf("upsert documents: %w", err)
	}

	s.log.Info("ingestion", "Documents indexed", map[string]interface{}{
		"collection": s.docsCollection,
		"count":      len(points),
	})
	return &dto.IngestResponse{Indexed: len(points)}, nil
}

func (s *ingestionService) IngestProducts(ctx context.Context, req *dto.IngestProductsRequest) (*dto.IngestResponse, error) {
	if err := s.store.EnsureCollection(ctx, s.productCollection, s.provider.Dimension()); err != nil {
		return nil, fmt.Errorf("ensure collection %s: %w", s.productCollection, err)
	}

	texts := make([]string, len(req.Products))
	for i, p := range req.Products {
		texts[i] = productIndexText(p)
	}

	vectors, err := s.provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed products: %w", err)
	}

	points := make([]vectorstore.Point, len(req.Products))
	for i, p := range req.Products {
		points[i] = vectorstore.Point{
			ID:     uuid.NewString(),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"productId":    p.ID,
				"title":        p.Title,
				"description":  p.Description,
				"slug":         p.Slug,
				"categoryId":   p.CategoryID,
				"categoryName": p.CategoryName,
				"type":         "product",
			},
		}
	}

	if err := s.store.Upsert(ctx, s.productCollection, points); err != nil {
		return nil, fmt.Errorf("upsert products: %w", err)
	}

	s.log.Info("ingestion", "Products indexed", map[string]interface{}{
		"collection": s.productCollection,
		"count":      len(points),
	})
	return &dto.IngestResponse{Indexed: len(points)}, nil
}

// productIndexText builds the text that gets embedded for one product:
// title, description, then the category when known.
func productIndexText(p dto.IngestProduct) string {
	text := p.Title
	if p.Description != "" {
		text += ". " + p.Description
	}
	if p.CategoryName != "" {
		text += ". Catégorie : " + p.CategoryName
	}
	return text
}
