package implementation

import (
	"context"
	"errors"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/model"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FaqRepositoryImpl struct {
	db *gorm.DB
}

func NewFaqRepository(db *gorm.DB) contract.FaqRepository {
	return &FaqRepositoryImpl{db: db}
}

func (r *FaqRepositoryImpl) Create(ctx context.Context, faq *model.Faq) error {
	return r.db.WithContext(ctx).Create(faq).Error
}

func (r *FaqRepositoryImpl) Update(ctx context.Context, faq *model.Faq) error {
	return r.db.WithContext(ctx).Save(faq).Error
}

func (r *FaqRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Faq{}, id).Error
}

func (r *FaqRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*model.Faq, error) {
	var faq model.Faq
	if err := r.db.WithContext(ctx).First(&faq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &faq, nil
}

func (r *FaqRepositoryImpl) FindAllActive(ctx context.Context) ([]*model.Faq, error) {
	var faqs []*model.Faq
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}
