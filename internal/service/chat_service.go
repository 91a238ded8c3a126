package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/constant"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/dto"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/metrics"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/model"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/pkg/logger"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/repository/contract"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/events"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/llm"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/nlu"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/rag"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/rag/gate"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/rag/prompt"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/rag/rerank"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/reco"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/store"
)

const (
	retrieveLimit = 5
	productTopN   = 3

	// Grounded answers: low temperature, short completions.
	genTemperature = 0.2
	genMaxTokens   = 512
)

// Collaborator capabilities, kept narrow so tests can inject fakes.
type KnowledgeSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]rag.Candidate, error)
}

type ProductSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]rag.ProductCandidate, error)
}

type DocumentReranker interface {
	Rerank(ctx context.Context, query string, documents []string, topK int) []rerank.Result
}

type Recommender interface {
	Recommendations(ctx context.Context, productID string) ([]reco.Item, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IChatService interface {
	ProcessMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

// chatService runs one chat turn end to end: classify, retrieve, gate,
// rerank, compose, generate, persist, respond. Rerank, recommendations,
// logging and events degrade without failing the turn; retrieval and
// generation failures fail it.
type chatService struct {
	classifier  *nlu.Classifier
	knowledge   KnowledgeSearcher
	products    ProductSearcher
	gate        gate.Gate
	reranker    DocumentReranker
	llmProvider llm.Provider
	sessionRepo contract.SessionRepository
	chatLogRepo contract.ChatLogRepository
	recommender Recommender
	publisher   EventPublisher
	metrics     *metrics.Metrics
	log         logger.ILogger
}

func NewChatService(
	classifier *nlu.Classifier,
	knowledge KnowledgeSearcher,
	products ProductSearcher,
	reranker DocumentReranker,
	llmProvider llm.Provider,
	sessionRepo contract.SessionRepository,
	chatLogRepo contract.ChatLogRepository,
	recommender Recommender,
	publisher EventPublisher,
	m *metrics.Metrics,
	log logger.ILogger,
) IChatService {
	return &chatService{
		classifier:  classifier,
		knowledge:   knowledge,
		products:    products,
		gate:        gate.NewGate(),
		reranker:    reranker,
		llmProvider: llmProvider,
		sessionRepo: sessionRepo,
		chatLogRepo: chatLogRepo,
		recommender: recommender,
		publisher:   publisher,
		metrics:     m,
		log:         log,
	}
}

// turnResult is what a branch hands back to the common tail.
type turnResult struct {
	answer         string
	sources        []dto.ChatSource
	hasFallback    bool
	fallbackReason string
}

func (s *chatService) ProcessMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	start := time.Now()

	sessionID := req.SessionId
	if sessionID == "" {
		sessionID = store.NewSessionID()
	}

	intent := s.classifier.Detect(req.Message)

	// History is read once before branching; the branch sees a stable view.
	var history []llm.Message
	if session, found := s.sessionRepo.Get(sessionID); found {
		history = session.Messages
	}

	var result turnResult
	var err error

	switch intent {
	case nlu.IntentFAQ:
		result, err = s.handleFaq(ctx, req.Message, history)
	case nlu.IntentProductSearch:
		result, err = s.handleProductSearch(ctx, req.Message, history)
	default:
		result = turnResult{
			answer:         constant.OutOfScopeMessage,
			sources:        []dto.ChatSource{},
			hasFallback:    true,
			fallbackReason: constant.FallbackReasonOther,
		}
	}
	if err != nil {
		return nil, err
	}

	// Every branch, fallback paths included, appends the exchange as a pair.
	s.sessionRepo.Append(sessionID,
		llm.Message{Role: llm.RoleUser, Content: req.Message},
		llm.Message{Role: llm.RoleAssistant, Content: result.answer},
	)

	latency := time.Since(start)
	s.logInteraction(ctx, sessionID, req.Message, string(intent), result, latency)
	s.publishInteraction(ctx, sessionID, string(intent), result)
	s.observe(string(intent), result, latency)

	return &dto.ChatResponse{
		Answer:    result.answer,
		Sources:   result.sources,
		SessionId: sessionID,
	}, nil
}

func (s *chatService) handleFaq(ctx context.Context, message string, history []llm.Message) (turnResult, error) {
	candidates, err := s.knowledge.Search(ctx, message, retrieveLimit)
	if err != nil {
		return turnResult{}, fmt.Errorf("knowledge retrieval: %w", err)
	}

	decision := s.gate.Evaluate(candidates)
	s.metrics.RetrievedDocs.Observe(float64(len(decision.Accepted)))

	if !decision.Passed() {
		reason := constant.FallbackReasonLowScore
		if len(candidates) == 0 {
			reason = constant.FallbackReasonNoSources
		}
		s.log.Info("chat", "FAQ gate rejected evidence", map[string]interface{}{
			"best_score": decision.BestScore,
			"candidates": len(candidates),
			"reason":     reason,
		})
		return turnResult{
			answer:         constant.FaqFallbackMessage,
			sources:        []dto.ChatSource{},
			hasFallback:    true,
			fallbackReason: reason,
		}, nil
	}

	documents := make([]string, len(decision.Accepted))
	for i, c := range decision.Accepted {
		documents[i] = c.Content
	}

	topK := len(documents)
	if topK > gate.DefaultTopK {
		topK = gate.DefaultTopK
	}
	ranked := s.reranker.Rerank(ctx, message, documents, topK)

	evidence := make([]rag.Candidate, len(ranked))
	for i, r := range ranked {
		evidence[i] = decision.Accepted[r.Index]
	}

	messages := prompt.NewBuilder(evidence, message, history).Build()
	answer, err := s.llmProvider.Chat(ctx, messages, llm.WithTemperature(genTemperature), llm.WithMaxTokens(genMaxTokens))
	if err != nil {
		return turnResult{}, fmt.Errorf("answer generation: %w", err)
	}

	sources := make([]dto.ChatSource, len(ranked))
	for i, r := range ranked {
		c := decision.Accepted[r.Index]
		title := "Document"
		if topic, ok := c.Metadata["topic"].(string); ok && topic != "" {
			title = topic
		}
		score := r.Score
		sources[i] = dto.ChatSource{
			Title: title,
			Text:  c.Content,
			Score: &score,
		}
	}

	return turnResult{
		answer:  answer,
		sources: sources,
	}, nil
}

func (s *chatService) handleProductSearch(ctx context.Context, message string, history []llm.Message) (turnResult, error) {
	products, err := s.products.Search(ctx, message, retrieveLimit)
	if err != nil {
		return turnResult{}, fmt.Errorf("product retrieval: %w", err)
	}

	if len(products) == 0 {
		return turnResult{
			answer:         constant.ProductFallbackMessage,
			sources:        []dto.ChatSource{},
			hasFallback:    true,
			fallbackReason: constant.FallbackReasonNoProduct,
		}, nil
	}

	top := products
	if len(top) > productTopN {
		top = top[:productTopN]
	}

	// The numbered listing doubles as the grounding evidence for generation.
	evidence := make([]rag.Candidate, len(top))
	for i, p := range top {
		category := p.CategoryName
		if category == "" {
			category = p.CategoryID
		}
		evidence[i] = rag.Candidate{
			ID:      p.ProductID,
			Content: fmt.Sprintf("%d. %s (%s) — %s", i+1, p.Title, category, p.Description),
			Score:   p.Score,
		}
	}

	messages := prompt.NewBuilder(evidence, message, history).Build()
	answer, err := s.llmProvider.Chat(ctx, messages, llm.WithTemperature(genTemperature), llm.WithMaxTokens(genMaxTokens))
	if err != nil {
		return turnResult{}, fmt.Errorf("answer generation: %w", err)
	}

	answer = s.withRecommendations(ctx, answer, top[0].ProductID)

	sources := make([]dto.ChatSource, len(top))
	for i, p := range top {
		sources[i] = dto.ChatSource{
			Title: p.Title,
			Text:  p.Description,
		}
	}

	return turnResult{
		answer:  answer,
		sources: sources,
	}, nil
}

// withRecommendations appends a "you might also like" section. Failures are
// swallowed and simply omit the section.
func (s *chatService) withRecommendations(ctx context.Context, answer, productID string) string {
	if s.recommender == nil {
		return answer
	}

	items, err := s.recommender.Recommendations(ctx, productID)
	if err != nil {
		s.log.Warn("chat", "Recommendation call failed", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
		return answer
	}
	if len(items) == 0 {
		return answer
	}

	labels := make([]string, 0, len(items))
	for _, item := range items {
		if label := item.Label(); label != "" {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return answer
	}

	return answer + "\n\nVous pourriez aussi aimer : " + strings.Join(labels, ", ")
}

func (s *chatService) logInteraction(ctx context.Context, sessionID, userMessage, intent string, result turnResult, latency time.Duration) {
	interaction := &model.ChatInteraction{
		SessionId:   sessionID,
		UserMessage: userMessage,
		BotResponse: result.answer,
		Intent:      intent,
		HasFallback: result.hasFallback,
		LatencyMs:   latency.Milliseconds(),
	}
	if result.hasFallback {
		reason := result.fallbackReason
		interaction.FallbackReason = &reason
	}
	if data, err := json.Marshal(result.sources); err == nil {
		interaction.Sources = data
	}

	if err := s.chatLogRepo.Create(ctx, interaction); err != nil {
		s.log.Warn("chat", "Failed to log interaction", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}

func (s *chatService) publishInteraction(ctx context.Context, sessionID, intent string, result turnResult) {
	if s.publisher == nil {
		return
	}

	event := events.New("CHAT_INTERACTION", map[string]interface{}{
		"session_id":      sessionID,
		"intent":          intent,
		"has_fallback":    result.hasFallback,
		"fallback_reason": result.fallbackReason,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("chat", "Failed to publish interaction event", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}

func (s *chatService) observe(intent string, result turnResult, latency time.Duration) {
	s.metrics.MessagesTotal.WithLabelValues(intent).Inc()
	s.metrics.ResponseDuration.WithLabelValues(intent).Observe(latency.Seconds())
	if result.hasFallback {
		s.metrics.FallbacksTotal.WithLabelValues(result.fallbackReason).Inc()
	}
}
