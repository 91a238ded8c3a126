package contract

import (
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/llm"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/store"
)

type SessionRepository interface {
	Save(session *store.Session)
	Get(sessionID string) (*store.Session, bool)
	// Append adds the user/assistant exchange to the session history,
	// creating the session if it does not exist yet.
	Append(sessionID string, userMsg, assistantMsg llm.Message)
	Delete(sessionID string)
}
