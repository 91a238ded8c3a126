package main

import (
	"context"
	"log"
	"os"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/model"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/database"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore/pgvec"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Fatalf("Error: Setup SQL failed (%s): %v", sql, err)
		}
	}

	if err := db.AutoMigrate(
		&model.ChatInteraction{},
		&model.Faq{},
	); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	// Vector table only matters for pgvector deployments; the extension
	// install is a no-op when VECTOR_PROVIDER is qdrant or memory.
	if os.Getenv("VECTOR_PROVIDER") == "pgvector" {
		if err := pgvec.NewStore(db).Migrate(context.Background()); err != nil {
			log.Fatal("Error: pgvector migration failed:", err)
		}
	}

	log.Println("Migration completed.")
}
