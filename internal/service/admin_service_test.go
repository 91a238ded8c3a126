package service

import (
	"context"
	"testing"
	"time"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/dto"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/model"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/repository/contract"

	"github.com/stretchr/testify/assert"
)

type stubChatLog struct {
	stats          *contract.InteractionStats
	sessions       []string
	deletedSession string
	deleted        int64
	purgeCutoff    time.Time
}

func (s *stubChatLog) Create(context.Context, *model.ChatInteraction) error { return nil }

func (s *stubChatLog) FindBySessionId(context.Context, string, int) ([]*model.ChatInteraction, error) {
	return nil, nil
}

func (s *stubChatLog) ListSessions(context.Context) ([]string, error) {
	return s.sessions, nil
}

func (s *stubChatLog) Stats(context.Context, time.Time) (*contract.InteractionStats, error) {
	return s.stats, nil
}

func (s *stubChatLog) DeleteBySessionId(_ context.Context, sessionId string) (int64, error) {
	s.deletedSession = sessionId
	return s.deleted, nil
}

func (s *stubChatLog) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.purgeCutoff = cutoff
	return 42, nil
}

func TestAdminStatsComputesFallbackRate(t *testing.T) {
	repo := &stubChatLog{stats: &contract.InteractionStats{
		TotalInteractions: 200,
		FallbackCount:     50,
		IntentBreakdown:   map[string]int64{"FAQ": 150, "OTHER": 50},
		AvgLatencyMs:      812.5,
	}}
	svc := NewAdminService(repo)

	res, err := svc.Stats(context.Background(), time.Now().AddDate(0, 0, -30))
	assert.NoError(t, err)
	assert.Equal(t, int64(200), res.TotalInteractions)
	assert.Equal(t, 0.25, res.FallbackRate)
}

func TestAdminStatsEmptyAvoidsDivisionByZero(t *testing.T) {
	repo := &stubChatLog{stats: &contract.InteractionStats{}}
	svc := NewAdminService(repo)

	res, err := svc.Stats(context.Background(), time.Now())
	assert.NoError(t, err)
	assert.Zero(t, res.FallbackRate)
}

func TestAdminListSessions(t *testing.T) {
	repo := &stubChatLog{sessions: []string{"sess_1_000001", "sess_2_000002"}}
	svc := NewAdminService(repo)

	res, err := svc.ListSessions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, repo.sessions, res.Sessions)
}

func TestAdminDeleteSessionInteractions(t *testing.T) {
	repo := &stubChatLog{deleted: 7}
	svc := NewAdminService(repo)

	res, err := svc.DeleteSessionInteractions(context.Background(), "sess_42_123456")
	assert.NoError(t, err)
	assert.Equal(t, "sess_42_123456", repo.deletedSession)
	assert.Equal(t, int64(7), res.Deleted)
}

func TestAdminPurgeInteractionsCutoff(t *testing.T) {
	repo := &stubChatLog{}
	svc := NewAdminService(repo)

	before := time.Now().AddDate(0, 0, -7)
	res, err := svc.PurgeInteractions(context.Background(), &dto.PurgeInteractionsRequest{OlderThanDays: 7})
	after := time.Now().AddDate(0, 0, -7)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), res.Deleted)
	assert.False(t, repo.purgeCutoff.Before(before))
	assert.False(t, repo.purgeCutoff.After(after))
}
