package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/dto"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/model"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/pkg/logger"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/repository/contract"

	"github.com/google/uuid"
)

var ErrFaqNotFound = errors.New("faq not found")

type IFaqService interface {
	Create(ctx context.Context, req *dto.CreateFaqRequest) (*dto.FaqResponse, error)
	Update(ctx context.Context, req *dto.UpdateFaqRequest) (*dto.FaqResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*dto.FaqResponse, error)
	Resync(ctx context.Context) (int, error)
}

// faqService owns the FAQ table. Every mutation publishes a sync message so
// the vector index follows the database asynchronously.
type faqService struct {
	faqRepo   contract.FaqRepository
	publisher IPublisherService
	log       logger.ILogger
}

func NewFaqService(faqRepo contract.FaqRepository, publisher IPublisherService, log logger.ILogger) IFaqService {
	return &faqService{
		faqRepo:   faqRepo,
		publisher: publisher,
		log:       log,
	}
}

func (s *faqService) Create(ctx context.Context, req *dto.CreateFaqRequest) (*dto.FaqResponse, error) {
	faq := &model.Faq{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Tags:     req.Tags,
		Active:   true,
	}
	if err := s.faqRepo.Create(ctx, faq); err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}

	s.publishSync(ctx, dto.FaqSyncMessage{
		Action:   "upsert",
		FaqId:    faq.Id,
		Question: faq.Question,
		Answer:   faq.Answer,
		Category: faq.Category,
		Tags:     faq.Tags,
	})

	return faqToResponse(faq), nil
}

func (s *faqService) Update(ctx context.Context, req *dto.UpdateFaqRequest) (*dto.FaqResponse, error) {
	faq, err := s.faqRepo.FindById(ctx, req.Id)
	if err != nil {
		return nil, fmt.Errorf("find faq: %w", err)
	}
	if faq == nil {
		return nil, ErrFaqNotFound
	}

	faq.Question = req.Question
	faq.Answer = req.Answer
	faq.Category = req.Category
	faq.Tags = req.Tags
	faq.Active = req.Active

	if err := s.faqRepo.Update(ctx, faq); err != nil {
		return nil, fmt.Errorf("update faq: %w", err)
	}

	if faq.Active {
		s.publishSync(ctx, dto.FaqSyncMessage{
			Action:   "upsert",
			FaqId:    faq.Id,
			Question: faq.Question,
			Answer:   faq.Answer,
			Category: faq.Category,
			Tags:     faq.Tags,
		})
	} else {
		s.publishSync(ctx, dto.FaqSyncMessage{Action: "delete", FaqId: faq.Id})
	}

	return faqToResponse(faq), nil
}

func (s *faqService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.faqRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	s.publishSync(ctx, dto.FaqSyncMessage{Action: "delete", FaqId: id})
	return nil
}

func (s *faqService) List(ctx context.Context) ([]*dto.FaqResponse, error) {
	faqs, err := s.faqRepo.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}

	responses := make([]*dto.FaqResponse, len(faqs))
	for i, faq := range faqs {
		responses[i] = faqToResponse(faq)
	}
	return responses, nil
}

// Resync republishes every active FAQ to the sync topic, rebuilding the
// index from the database as source of truth.
func (s *faqService) Resync(ctx context.Context) (int, error) {
	faqs, err := s.faqRepo.FindAllActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("load faqs for resync: %w", err)
	}

	for _, faq := range faqs {
		s.publishSync(ctx, dto.FaqSyncMessage{
			Action:   "upsert",
			FaqId:    faq.Id,
			Question: faq.Question,
			Answer:   faq.Answer,
			Category: faq.Category,
			Tags:     faq.Tags,
		})
	}
	return len(faqs), nil
}

func (s *faqService) publishSync(ctx context.Context, msg dto.FaqSyncMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("faq", "Failed to marshal sync message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.log.Error("faq", "Failed to publish sync message", map[string]interface{}{
			"faq_id": msg.FaqId.String(),
			"error":  err.Error(),
		})
	}
}

func faqToResponse(faq *model.Faq) *dto.FaqResponse {
	return &dto.FaqResponse{
		Id:        faq.Id,
		Question:  faq.Question,
		Answer:    faq.Answer,
		Category:  faq.Category,
		Tags:      faq.Tags,
		Active:    faq.Active,
		CreatedAt: faq.CreatedAt,
		UpdatedAt: faq.UpdatedAt,
	}
}
