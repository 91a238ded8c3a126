package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/dto"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/repository/contract"
)

type IAdminService interface {
	Stats(ctx context.Context, since time.Time) (*dto.InteractionStatsResponse, error)
	ListSessions(ctx context.Context) (*dto.SessionListResponse, error)
	SessionInteractions(ctx context.Context, sessionId string, limit int) (*dto.SessionInteractionsResponse, error)
	DeleteSessionInteractions(ctx context.Context, sessionId string) (*dto.DeleteSessionLogsResponse, error)
	PurgeInteractions(ctx context.Context, req *dto.PurgeInteractionsRequest) (*dto.PurgeInteractionsResponse, error)
}

type adminService struct {
	chatLogRepo contract.ChatLogRepository
}

func NewAdminService(chatLogRepo contract.ChatLogRepository) IAdminService {
	return &adminService{chatLogRepo: chatLogRepo}
}

func (s *adminService) Stats(ctx context.Context, since time.Time) (*dto.InteractionStatsResponse, error) {
	stats, err := s.chatLogRepo.Stats(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("interaction stats: %w", err)
	}

	res := &dto.InteractionStatsResponse{
		TotalInteractions: stats.TotalInteractions,
		FallbackCount:     stats.FallbackCount,
		IntentBreakdown:   stats.IntentBreakdown,
		AvgLatencyMs:      stats.AvgLatencyMs,
	}
	if stats.TotalInteractions > 0 {
		res.FallbackRate = float64(stats.FallbackCount) / float64(stats.TotalInteractions)
	}
	return res, nil
}

func (s *adminService) ListSessions(ctx context.Context) (*dto.SessionListResponse, error) {
	sessions, err := s.chatLogRepo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return &dto.SessionListResponse{Sessions: sessions}, nil
}

func (s *adminService) SessionInteractions(ctx context.Context, sessionId string, limit int) (*dto.SessionInteractionsResponse, error) {
	interactions, err := s.chatLogRepo.FindBySessionId(ctx, sessionId, limit)
	if err != nil {
		return nil, fmt.Errorf("session interactions: %w", err)
	}

	items := make([]dto.InteractionItem, len(interactions))
	for i, interaction := range interactions {
		items[i] = dto.InteractionItem{
			SessionId:      interaction.SessionId,
			UserMessage:    interaction.UserMessage,
			BotResponse:    interaction.BotResponse,
			Intent:         interaction.Intent,
			HasFallback:    interaction.HasFallback,
			FallbackReason: interaction.FallbackReason,
			LatencyMs:      interaction.LatencyMs,
			CreatedAt:      interaction.CreatedAt,
		}
	}

	return &dto.SessionInteractionsResponse{
		SessionId:    sessionId,
		Interactions: items,
	}, nil
}

func (s *adminService) DeleteSessionInteractions(ctx context.Context, sessionId string) (*dto.DeleteSessionLogsResponse, error) {
	deleted, err := s.chatLogRepo.DeleteBySessionId(ctx, sessionId)
	if err != nil {
		return nil, fmt.Errorf("delete session interactions: %w", err)
	}
	return &dto.DeleteSessionLogsResponse{
		SessionId: sessionId,
		Deleted:   deleted,
	}, nil
}

func (s *adminService) PurgeInteractions(ctx context.Context, req *dto.PurgeInteractionsRequest) (*dto.PurgeInteractionsResponse, error) {
	cutoff := time.Now().AddDate(0, 0, -req.OlderThanDays)
	deleted, err := s.chatLogRepo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("purge interactions: %w", err)
	}
	return &dto.PurgeInteractionsResponse{Deleted: deleted}, nil
}
