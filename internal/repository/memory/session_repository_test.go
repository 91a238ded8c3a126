package memory

import (
	"testing"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/llm"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_SaveAndGet(t *testing.T) {
	repo := NewSessionRepository()

	session := store.NewSession("sess_1")
	repo.Save(session)

	got, found := repo.Get("sess_1")
	require.True(t, found)
	assert.Equal(t, "sess_1", got.ID)
	assert.Empty(t, got.Messages)
}

func TestSessionRepository_GetMissing(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Get("sess_unknown")
	assert.False(t, found)
}

func TestSessionRepository_AppendCreatesSession(t *testing.T) {
	repo := NewSessionRepository()

	repo.Append("sess_new",
		llm.Message{Role: llm.RoleUser, Content: "Bonjour"},
		llm.Message{Role: llm.RoleAssistant, Content: "Bonjour, comment puis-je vous aider ?"},
	)

	session, found := repo.Get("sess_new")
	require.True(t, found)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, llm.RoleUser, session.Messages[0].Role)
	assert.Equal(t, llm.RoleAssistant, session.Messages[1].Role)
}

func TestSessionRepository_AppendPreservesOrder(t *testing.T) {
	repo := NewSessionRepository()

	repo.Append("sess_a",
		llm.Message{Role: llm.RoleUser, Content: "Quels sont les délais de livraison ?"},
		llm.Message{Role: llm.RoleAssistant, Content: "Entre 3 et 5 jours ouvrés."},
	)
	repo.Append("sess_a",
		llm.Message{Role: llm.RoleUser, Content: "Et pour les retours ?"},
		llm.Message{Role: llm.RoleAssistant, Content: "Vous avez 30 jours pour retourner un article."},
	)

	session, found := repo.Get("sess_a")
	require.True(t, found)
	require.Len(t, session.Messages, 4)
	assert.Equal(t, "Quels sont les délais de livraison ?", session.Messages[0].Content)
	assert.Equal(t, "Entre 3 et 5 jours ouvrés.", session.Messages[1].Content)
	assert.Equal(t, "Et pour les retours ?", session.Messages[2].Content)
	assert.Equal(t, "Vous avez 30 jours pour retourner un article.", session.Messages[3].Content)
}

// History must survive arbitrary idle time; only Delete or a process
// restart may drop a session.
func TestSessionRepository_NoExpiration(t *testing.T) {
	repo := NewSessionRepository()

	repo.Save(store.NewSession("sess_idle"))

	items := repo.cache.Items()
	require.Contains(t, items, "sess_idle")
	assert.Zero(t, items["sess_idle"].Expiration, "session items must carry no expiration deadline")

	_, expiry, found := repo.cache.GetWithExpiration("sess_idle")
	require.True(t, found)
	assert.True(t, expiry.IsZero(), "session must never be scheduled for eviction")
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewSessionRepository()

	repo.Save(store.NewSession("sess_gone"))
	repo.Delete("sess_gone")

	_, found := repo.Get("sess_gone")
	assert.False(t, found)
}
