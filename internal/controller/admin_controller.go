package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/dto"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/pkg/serverutils"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Stats(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	SessionInteractions(ctx *fiber.Ctx) error
	DeleteSessionInteractions(ctx *fiber.Ctx) error
	PurgeInteractions(ctx *fiber.Ctx) error
	CreateFaq(ctx *fiber.Ctx) error
	UpdateFaq(ctx *fiber.Ctx) error
	DeleteFaq(ctx *fiber.Ctx) error
	ListFaqs(ctx *fiber.Ctx) error
	ResyncFaqs(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
	faqService   service.IFaqService
}

func NewAdminController(adminService service.IAdminService, faqService service.IFaqService) IAdminController {
	return &adminController{
		adminService: adminService,
		faqService:   faqService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/admin/v1")
	h.Use(authMiddleware)
	h.Get("/stats", c.Stats)
	h.Get("/sessions", c.ListSessions)
	h.Get("/sessions/:id/interactions", c.SessionInteractions)
	h.Delete("/sessions/:id/interactions", c.DeleteSessionInteractions)
	h.Post("/interactions/purge", c.PurgeInteractions)
	h.Get("/faqs", c.ListFaqs)
	h.Post("/faqs", c.CreateFaq)
	h.Put("/faqs/:id", c.UpdateFaq)
	h.Delete("/faqs/:id", c.DeleteFaq)
	h.Post("/faqs/resync", c.ResyncFaqs)
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	days, err := strconv.Atoi(ctx.Query("days", "30"))
	if err != nil || days < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "days must be a positive integer")
	}

	since := time.Now().AddDate(0, 0, -days)
	res, err := c.adminService.Stats(ctx.Context(), since)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Interaction stats", res))
}

func (c *adminController) ListSessions(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListSessions(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session list", res))
}

func (c *adminController) SessionInteractions(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")
	if sessionId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session id is required")
	}

	limit, err := strconv.Atoi(ctx.Query("limit", "100"))
	if err != nil || limit < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "limit must be a positive integer")
	}

	res, err := c.adminService.SessionInteractions(ctx.Context(), sessionId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session interactions", res))
}

func (c *adminController) DeleteSessionInteractions(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")
	if sessionId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session id is required")
	}

	res, err := c.adminService.DeleteSessionInteractions(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session interactions deleted", res))
}

func (c *adminController) PurgeInteractions(ctx *fiber.Ctx) error {
	var req dto.PurgeInteractionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.PurgeInteractions(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Interactions purged", res))
}

func (c *adminController) CreateFaq(ctx *fiber.Ctx) error {
	var req dto.CreateFaqRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.faqService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("FAQ created", res))
}

func (c *adminController) UpdateFaq(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid FAQ ID")
	}

	var req dto.UpdateFaqRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.faqService.Update(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrFaqNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("FAQ updated", res))
}

func (c *adminController) DeleteFaq(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid FAQ ID")
	}

	if err := c.faqService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("FAQ deleted", nil))
}

func (c *adminController) ListFaqs(ctx *fiber.Ctx) error {
	res, err := c.faqService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("FAQ list", res))
}

func (c *adminController) ResyncFaqs(ctx *fiber.Ctx) error {
	count, err := c.faqService.Resync(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("FAQ resync started", fiber.Map{"published": count}))
}
