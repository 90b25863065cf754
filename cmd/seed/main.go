package main

import (
	"context"
	"flag"
	"log"
	"os"

	"portfolio-be/internal/config"
	"portfolio-be/internal/repository/unitofwork"
	"portfolio-be/internal/service"
	"portfolio-be/pkg/database"
)

func main() {
	email := flag.String("email", os.Getenv("OWNER_EMAIL"), "owner login email")
	password := flag.String("password", os.Getenv("OWNER_PASSWORD"), "owner password (min 8 chars)")
	name := flag.String("name", os.Getenv("OWNER_NAME"), "owner display name")
	flag.Parse()

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.DefaultOptions())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	authService := service.NewAuthService(unitofwork.NewRepositoryFactory(db), cfg.Auth.JwtSecret, cfg.Auth.TokenTTL)
	owner, err := authService.SeedOwner(context.Background(), *email, *password, *name)
	if err != nil {
		log.Fatalf("Failed to seed owner: %v", err)
	}

	log.Printf("Owner ready: %s (%s)", owner.Email, owner.Id)
}
