package contract

import (
	"context"
	"time"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/model"
)

type InteractionStats struct {
	TotalInteractions int64
	FallbackCount     int64
	IntentBreakdown   map[string]int64
	AvgLatencyMs      float64
}

type ChatLogRepository interface {
	Create(ctx context.Context, interaction *model.ChatInteraction) error
	FindBySessionId(ctx context.Context, sessionId string, limit int) ([]*model.ChatInteraction, error)
	ListSessions(ctx context.Context) ([]string, error)
	Stats(ctx context.Context, since time.Time) (*InteractionStats, error)
	DeleteBySessionId(ctx context.Context, sessionId string) (int64, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
