package dto

import "time"

type InteractionStatsResponse struct {
	TotalInteractions int64            `json:"total_interactions"`
	FallbackCount     int64            `json:"fallback_count"`
	FallbackRate      float64          `json:"fallback_rate"`
	IntentBreakdown   map[string]int64 `json:"intent_breakdown"`
	AvgLatencyMs      float64          `json:"avg_latency_ms"`
}

type InteractionItem struct {
	SessionId      string    `json:"session_id"`
	UserMessage    string    `json:"user_message"`
	BotResponse    string    `json:"bot_response"`
	Intent         string    `json:"intent"`
	HasFallback    bool      `json:"has_fallback"`
	FallbackReason *string   `json:"fallback_reason,omitempty"`
	LatencyMs      int64     `json:"latency_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

type SessionInteractionsResponse struct {
	SessionId    string            `json:"session_id"`
	Interactions []InteractionItem `json:"interactions"`
}

type SessionListResponse struct {
	Sessions []string `json:"sessions"`
}

type DeleteSessionLogsResponse struct {
	SessionId string `json:"session_id"`
	Deleted   int64  `json:"deleted"`
}

type PurgeInteractionsRequest struct {
	OlderThanDays int `json:"older_than_days" validate:"required,min=1"`
}

type PurgeInteractionsResponse struct {
	Deleted int64 `json:"deleted"`
}
