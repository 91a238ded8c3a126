package service

import (
	"context"
	"encoding/json"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/dto"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/pkg/logger"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/embedding"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IFaqSyncService interface {
	Consume(ctx context.Context) error
}

// faqSyncService subscribes to the FAQ sync topic and mirrors FAQ mutations
// into the knowledge-base vector collection.
type faqSyncService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	provider   embedding.Provider
	store      vectorstore.Store
	collection string
	log        logger.ILogger
}

func NewFaqSyncService(
	pubSub *gochannel.GoChannel,
	topicName string,
	provider embedding.Provider,
	store vectorstore.Store,
	collection string,
	log logger.ILogger,
) IFaqSyncService {
	return &faqSyncService{
		pubSub:     pubSub,
		topicName:  topicName,
		provider:   provider,
		store:      store,
		collection: collection,
		log:        log,
	}
}

func (s *faqSyncService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *faqSyncService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.FaqSyncMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.log.Error("faq-sync", "Failed to unmarshal sync message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads never become valid, skip them
		return
	}

	switch payload.Action {
	case "delete":
		if err := s.store.Delete(ctx, s.collection, []string{payload.FaqId.String()}); err != nil {
			s.log.Error("faq-sync", "Failed to delete FAQ from index", map[string]interface{}{
				"faq_id": payload.FaqId.String(),
				"error":  err.Error(),
			})
			msg.Nack()
			return
		}

	case "upsert":
		if err := s.upsert(ctx, payload); err != nil {
			s.log.Error("faq-sync", "Failed to index FAQ", map[string]interface{}{
				"faq_id": payload.FaqId.String(),
				"error":  err.Error(),
			})
			msg.Nack()
			return
		}

	default:
		s.log.Warn("faq-sync", "Unknown sync action", map[string]interface{}{"action": payload.Action})
	}

	msg.Ack()
}

func (s *faqSyncService) upsert(ctx context.Context, payload dto.FaqSyncMessage) error {
	if err := s.store.EnsureCollection(ctx, s.collection, s.provider.Dimension()); err != nil {
		return err
	}

	content := payload.Question + "\n" + payload.Answer
	vector, err := s.provider.Embed(ctx, content)
	if err != nil {
		return err
	}

	pointPayload := map[string]interface{}{
		"content":  content,
		"topic":    payload.Question,
		"category": payload.Category,
		"type":     "faq",
	}
	if len(payload.Tags) > 0 {
		pointPayload["tags"] = payload.Tags
	}

	point := vectorstore.Point{
		ID:      payload.FaqId.String(),
		Vector:  vector,
		Payload: pointPayload,
	}
	if err := s.store.Upsert(ctx, s.collection, []vectorstore.Point{point}); err != nil {
		return err
	}

	s.log.Info("faq-sync", "FAQ indexed", map[string]interface{}{"faq_id": payload.FaqId.String()})
	return nil
}
