package implementation

import (
	"context"
	"time"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/model"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/repository/contract"

	"gorm.io/gorm"
)

type ChatLogRepositoryImpl struct {
	db *gorm.DB
}

func NewChatLogRepository(db *gorm.DB) contract.ChatLogRepository {
	return &ChatLogRepositoryImpl{db: db}
}

func (r *ChatLogRepositoryImpl) Create(ctx context.Context, interaction *model.ChatInteraction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *ChatLogRepositoryImpl) FindBySessionId(ctx context.Context, sessionId string, limit int) ([]*model.ChatInteraction, error) {
	var interactions []*model.ChatInteraction
	query := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *ChatLogRepositoryImpl) ListSessions(ctx context.Context) ([]string, error) {
	var sessionIds []string
	err := r.db.WithContext(ctx).
		Model(&model.ChatInteraction{}).
		Distinct().
		Order("session_id ASC").
		Pluck("session_id", &sessionIds).Error
	if err != nil {
		return nil, err
	}
	return sessionIds, nil
}

func (r *ChatLogRepositoryImpl) Stats(ctx context.Context, since time.Time) (*contract.InteractionStats, error) {
	stats := &contract.InteractionStats{
		IntentBreakdown: make(map[string]int64),
	}

	base := r.db.WithContext(ctx).Model(&model.ChatInteraction{}).
		Where("created_at >= ?", since)

	if err := base.Session(&gorm.Session{}).Count(&stats.TotalInteractions).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("has_fallback = ?", true).Count(&stats.FallbackCount).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Intent string
		Count  int64
	}
	if err := base.Session(&gorm.Session{}).
		Select("intent, count(*) as count").
		Group("intent").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.IntentBreakdown[row.Intent] = row.Count
	}

	var avg struct {
		Avg float64
	}
	if err := base.Session(&gorm.Session{}).
		Select("coalesce(avg(latency_ms), 0) as avg").
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	stats.AvgLatencyMs = avg.Avg

	return stats, nil
}

func (r *ChatLogRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Delete(&model.ChatInteraction{})
	return result.RowsAffected, result.Error
}

func (r *ChatLogRepositoryImpl) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.ChatInteraction{})
	return result.RowsAffected, result.Error
}
