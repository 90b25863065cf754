package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"portfolio-be/internal/config"
	"portfolio-be/internal/repository/specification"
	"portfolio-be/internal/repository/unitofwork"
	"portfolio-be/pkg/database"
)

func main() {
	dir := flag.String("dir", "./migration-data", "directory holding portfolioContent.json and chatMessages.json")
	ownerEmail := flag.String("owner", os.Getenv("OWNER_EMAIL"), "email of the owner receiving the content")
	flag.Parse()

	if *ownerEmail == "" {
		log.Fatal("Error: -owner is required")
	}

	contentRaw, err := os.ReadFile(filepath.Join(*dir, "portfolioContent.json"))
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	messagesRaw, err := os.ReadFile(filepath.Join(*dir, "chatMessages.json"))
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	content, err := parseContent(contentRaw)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	messages, skipped, err := parseMessages(messagesRaw, time.Now())
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	for _, reason := range skipped {
		log.Printf("Warn: skipped message %s", reason)
	}

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.DefaultOptions())
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	owner, err := uow.OwnerRepository().FindOne(ctx, specification.ByEmail{Email: *ownerEmail})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if owner == nil {
		log.Fatalf("Error: no owner with email %s, run cmd/seed first", *ownerEmail)
	}

	if err := uow.Begin(ctx); err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := importAll(ctx, uow, owner, content, messages); err != nil {
		_ = uow.Rollback()
		log.Fatalf("Error: import failed, nothing written: %v", err)
	}
	if err := uow.Commit(); err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Printf("Imported portfolio content and %d messages (%d skipped) for %s\n", len(messages), len(skipped), owner.Email)
}
