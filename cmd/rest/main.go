package main

import (
	"context"
	"log"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/bootstrap"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/config"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/server"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/tracer"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	go func() {
		log.Println("Background: Starting FAQ sync consumer...")
		if err := container.FaqSyncService.Consume(context.Background()); err != nil {
			log.Printf("Background FAQ sync error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
