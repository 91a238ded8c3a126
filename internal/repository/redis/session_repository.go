package redis

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/llm"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/store"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "chat:session:"
	sessionTTL       = 1 * time.Hour
	opTimeout        = 2 * time.Second
)

// SessionRepository persists sessions in Redis so history survives restarts
// and can be shared across replicas.
type SessionRepository struct {
	client *redis.Client
	mu     sync.Mutex
}

func NewSessionRepository(redisURL string) (*SessionRepository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &SessionRepository{client: client}, nil
}

func (r *SessionRepository) Save(session *store.Session) {
	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	r.client.Set(ctx, sessionKeyPrefix+session.ID, data, sessionTTL)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		return nil, false
	}

	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, false
	}
	return &session, true
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
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	r.client.Del(ctx, sessionKeyPrefix+sessionID)
}
