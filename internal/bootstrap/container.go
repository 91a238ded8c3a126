package bootstrap

import (
	"log"
	"os"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/config"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/controller"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/metrics"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/pkg/logger"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/repository/contract"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/repository/implementation"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/repository/memory"
	redisrepo "github.com/AlexisChartier/shopyverse-chatbot-service/internal/repository/redis"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/service"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/embedding"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/llm/factory"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/nlu"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/rag/rerank"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/rag/retriever"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/reco"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore"
	memorystore "github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore/memory"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore/pgvec"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore/qdrant"

	pktNats "github.com/AlexisChartier/shopyverse-chatbot-service/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	IngestController controller.IIngestController
	AdminController  controller.IAdminController

	// Background services (run from main)
	FaqSyncService service.IFaqSyncService

	// Observability
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
	Logger   logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus for async FAQ index sync
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Embedding provider, wrapped in the go-cache decorator so repeated
	// queries skip the network round trip
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel, cfg.Ai.EmbeddingDimension)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewHuggingFaceProvider(cfg.Keys.HuggingFace, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: HUGGINGFACE")
	}
	embeddingProvider = embedding.NewCachedProvider(embeddingProvider)

	// LLM provider
	llmAPIKey := cfg.Keys.HuggingFace
	if cfg.Ai.LLMProvider == "openai" {
		llmAPIKey = cfg.Keys.OpenAI
	}
	llmBaseURL := cfg.Ai.LLMBaseURL
	if cfg.Ai.LLMProvider == "ollama" {
		llmBaseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, llmBaseURL, llmAPIKey)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Vector index
	var vectorStore vectorstore.Store
	switch cfg.Vector.Provider {
	case "pgvector":
		vectorStore = pgvec.NewStore(db)
		log.Printf("[INFO] Using Vector Store: PGVECTOR")
	case "memory":
		vectorStore = memorystore.NewStore()
		log.Printf("[INFO] Using Vector Store: MEMORY")
	default:
		vectorStore = qdrant.NewStore(qdrant.Config{
			URL:    cfg.Vector.QdrantURL,
			APIKey: cfg.Vector.QdrantAPIKey,
		})
		log.Printf("[INFO] Using Vector Store: QDRANT (%s)", cfg.Vector.QdrantURL)
	}

	// Session store
	var sessionRepo contract.SessionRepository
	if cfg.App.SessionStore == "redis" {
		redisRepo, err := redisrepo.NewSessionRepository(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis, falling back to in-memory sessions: %v", err)
			sessionRepo = memory.NewSessionRepository()
		} else {
			sessionRepo = redisRepo
			log.Printf("[INFO] Using Session Store: REDIS")
		}
	} else {
		sessionRepo = memory.NewSessionRepository()
	}

	// NATS (best-effort, the service runs without it)
	var eventPublisher service.EventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
		}
	}

	// Repositories
	chatLogRepo := implementation.NewChatLogRepository(db)
	faqRepo := implementation.NewFaqRepository(db)

	// Metrics
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// RAG collaborators
	knowledgeRetriever := retriever.NewKnowledgeRetriever(embeddingProvider, vectorStore, cfg.Vector.DocsCollection)
	productRetriever := retriever.NewProductRetriever(embeddingProvider, vectorStore, cfg.Vector.ProductCollection)
	reranker := rerank.NewReranker(embeddingProvider, log.New(os.Stdout, "[RERANK] ", log.LstdFlags))
	recoClient := reco.NewClient(cfg.App.RecoServiceURL)

	// Services
	publisherService := service.NewPublisherService(cfg.Chat.FaqSyncTopic, pubSub)
	faqSyncService := service.NewFaqSyncService(
		pubSub,
		cfg.Chat.FaqSyncTopic,
		embeddingProvider,
		vectorStore,
		cfg.Vector.DocsCollection,
		sysLogger,
	)

	chatService := service.NewChatService(
		nlu.NewClassifier(nlu.Intent(cfg.Chat.DefaultIntent)),
		knowledgeRetriever,
		productRetriever,
		reranker,
		llmProvider,
		sessionRepo,
		chatLogRepo,
		recoClient,
		eventPublisher,
		m,
		sysLogger,
	)
	ingestionService := service.NewIngestionService(
		embeddingProvider,
		vectorStore,
		cfg.Vector.DocsCollection,
		cfg.Vector.ProductCollection,
		sysLogger,
	)
	faqService := service.NewFaqService(faqRepo, publisherService, sysLogger)
	adminService := service.NewAdminService(chatLogRepo)

	return &Container{
		ChatController:   controller.NewChatController(chatService),
		IngestController: controller.NewIngestController(ingestionService, productRetriever),
		AdminController:  controller.NewAdminController(adminService, faqService),
		FaqSyncService:   faqSyncService,
		Metrics:          m,
		Registry:         registry,
		Logger:           sysLogger,
	}
}
