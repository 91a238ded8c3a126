package contract

import (
	"context"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/model"

	"github.com/google/uuid"
)

type FaqRepository interface {
	Create(ctx context.Context, faq *model.Faq) error
	Update(ctx context.Context, faq *model.Faq) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindById(ctx context.Context, id uuid.UUID) (*model.Faq, error)
	FindAllActive(ctx context.Context) ([]*model.Faq, error)
}
