package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/llm"
)

// Session holds the ordered conversation history for one identifier.
// History lives for the process lifetime by default; see the session
// repository implementations for the storage options.
type Session struct {
	ID        string
	Messages  []llm.Message
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Messages:  []llm.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewSessionID builds an opaque identifier from a timestamp and a random
// suffix. Unique with overwhelming probability, not guaranteed — good
// enough for anonymous storefront sessions, not for security tokens.
func NewSessionID() string {
	return fmt.Sprintf("sess_%d_%06d", time.Now().UnixMilli(), rand.Intn(1_000_000))
}
