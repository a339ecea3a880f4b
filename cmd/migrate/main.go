package main

import (
	"log"

	"ai-counselor-be/internal/config"
	"ai-counselor-be/internal/model"
	"ai-counselor-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Path)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	err = db.AutoMigrate(
		&model.User{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.UsageRecord{},
	)
	if err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	log.Println("Migration completed successfully.")
}
