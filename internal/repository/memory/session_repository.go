package memory

import (
	"sync"
	"time"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/llm"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	// Sessions live for the whole process: no TTL, no janitor. History is
	// only dropped on explicit Delete or restart.
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	session.UpdatedAt = time.Now()
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Append(sessionID string, userMsg, assistantMsg llm.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, found := r.Get(sessionID)
	if !found {
		session = store.NewSession(sessionID)
	}
	session.Messages = append(session.Messages, userMsg, assistantMsg)
	r.Save(session)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
