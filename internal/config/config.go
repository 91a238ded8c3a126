package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Vector   VectorConfig
	Ai       AIConfig
	Chat     ChatConfig
	Keys     APIKeys
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	RecoServiceURL     string
	SessionStore       string // "memory" or "redis"
}

type DatabaseConfig struct {
	Connection string
}

type VectorConfig struct {
	Provider          string // "qdrant", "pgvector" or "memory"
	QdrantURL         string
	QdrantAPIKey      string
	DocsCollection    string
	ProductCollection string
}

type AIConfig struct {
	EmbeddingProvider string // "huggingface" or "ollama"
	EmbeddingModel    string
	// EmbeddingDimension overrides the provider default. Required when an
	// Ollama embedding model with a non-384 output size is configured.
	EmbeddingDimension int
	OllamaBaseURL      string
	LLMProvider        string // "huggingface", "ollama" or "openai"
	LLMModel           string
	LLMBaseURL         string
}

type ChatConfig struct {
	// DefaultIntent is the no-match classification policy: "OTHER" (strict)
	// or "FAQ" (route every unmatched question through semantic retrieval).
	DefaultIntent string
	FaqSyncTopic  string
}

type APIKeys struct {
	Service     string // x-api-key for ingest/admin routes
	HuggingFace string
	OpenAI      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3001"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/chatbot.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			RecoServiceURL:     getEnv("RECO_SERVICE_URL", "http://localhost:3002"),
			SessionStore:       getEnv("SESSION_STORE", "memory"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Vector: VectorConfig{
			Provider:          getEnv("VECTOR_PROVIDER", "qdrant"),
			QdrantURL:         getEnv("QDRANT_URL", "http://localhost:6333"),
			QdrantAPIKey:      getEnv("QDRANT_API_KEY", ""),
			DocsCollection:    getEnv("DOCS_COLLECTION", "shopyverse_docs"),
			ProductCollection: getEnv("PRODUCT_COLLECTION", "shopyverse_products"),
		},
		Ai: AIConfig{
			EmbeddingProvider:  getEnv("EMBEDDING_PROVIDER", "huggingface"),
			EmbeddingModel:     getEnv("EMBEDDING_MODEL", ""),
			EmbeddingDimension: getEnvAsInt("EMBEDDING_DIMENSION", 0),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			LLMProvider:        getEnv("LLM_PROVIDER", "huggingface"),
			LLMModel:           getEnv("LLM_MODEL", "mistralai/Mistral-7B-Instruct-v0.3"),
			LLMBaseURL:         getEnv("LLM_BASE_URL", ""),
		},
		Chat: ChatConfig{
			DefaultIntent: getEnv("INTENT_DEFAULT", "OTHER"),
			FaqSyncTopic:  getEnv("FAQ_SYNC_TOPIC", "FAQ_SYNC"),
		},
		Keys: APIKeys{
			Service:     getEnv("API_KEY", ""),
			HuggingFace: getEnv("HF_ACCESS_TOKEN", ""),
			OpenAI:      getEnv("OPENAI_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
