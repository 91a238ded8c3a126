package controller

import (
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/dto"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/pkg/serverutils"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIngestController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	IngestDocuments(ctx *fiber.Ctx) error
	IngestProducts(ctx *fiber.Ctx) error
	SearchProducts(ctx *fiber.Ctx) error
}

type ingestController struct {
	ingestionService service.IIngestionService
	products         service.ProductSearcher
}

func NewIngestController(ingestionService service.IIngestionService, products service.ProductSearcher) IIngestController {
	return &ingestController{
		ingestionService: ingestionService,
		products:         products,
	}
}

func (c *ingestController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/ingest/v1")
	h.Use(authMiddleware)
	h.Post("", c.IngestDocuments)
	h.Post("/products", c.IngestProducts)
	h.Post("/products/search-test", c.SearchProducts)
}

func (c *ingestController) IngestDocuments(ctx *fiber.Ctx) error {
	var req dto.IngestDocsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestionService.IngestDocuments(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Documents indexed", res))
}

func (c *ingestController) IngestProducts(ctx *fiber.Ctx) error {
	var req dto.IngestProductsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestionService.IngestProducts(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Products indexed", res))
}

// SearchProducts runs a raw similarity search against the product index.
// Meant for checking what an ingested catalog actually retrieves.
func (c *ingestController) SearchProducts(ctx *fiber.Ctx) error {
	var req dto.ProductSearchTestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	products, err := c.products.Search(ctx.Context(), req.Query, limit)
	if err != nil {
		return err
	}

	results := make([]dto.ProductSearchResult, len(products))
	for i, p := range products {
		results[i] = dto.ProductSearchResult{
			ProductID:    p.ProductID,
			Title:        p.Title,
			Description:  p.Description,
			Slug:         p.Slug,
			CategoryID:   p.CategoryID,
			CategoryName: p.CategoryName,
			Score:        p.Score,
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Search results", &dto.ProductSearchTestResponse{Results: results}))
}
