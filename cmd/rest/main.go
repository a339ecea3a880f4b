package main

import (
	"context"
	"log"

	"ai-counselor-be/internal/bootstrap"
	"ai-counselor-be/internal/config"
	"ai-counselor-be/internal/server"
	"ai-counselor-be/internal/tracer"
	"ai-counselor-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database. Startup survives a broken database by running
	// against the no-op persistence stand-in.
	gormDB, err := database.NewGormDB(cfg.Database.Path)
	if err != nil {
		log.Printf("Warning: database unavailable, continuing without persistence: %v", err)
		gormDB = nil
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
