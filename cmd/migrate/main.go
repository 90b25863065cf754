package main

import (
	"log"

	"portfolio-be/internal/config"
	"portfolio-be/internal/model"
	"portfolio-be/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.DefaultOptions())
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Step 1: Setting up extensions...")
	// gen_random_uuid() backs the uuid primary keys
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	log.Println("Step 2: Running AutoMigrate...")
	models := []interface{}{
		&model.Owner{},
		&model.PortfolioContent{},
		&model.ChatMessage{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Step 3: Creating triggers...")
	postMigrationSQL := []string{
		`CREATE OR REPLACE FUNCTION set_current_timestamp_updated_at() RETURNS trigger LANGUAGE plpgsql AS $$
		BEGIN
		  NEW.updated_at = now();
		  RETURN NEW;
		END; $$;`,
		`DROP TRIGGER IF EXISTS set_portfolio_content_updated_at ON portfolio_content;`,
		`CREATE TRIGGER set_portfolio_content_updated_at BEFORE UPDATE ON portfolio_content
		 FOR EACH ROW EXECUTE FUNCTION set_current_timestamp_updated_at();`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: database migration completed.")
}
