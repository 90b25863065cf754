package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-be/internal/bootstrap"
	"portfolio-be/internal/config"
	"portfolio-be/internal/server"
	"portfolio-be/internal/tracer"
	"portfolio-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if cfg.Auth.JwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	shutdownTracer := tracer.InitTracer(cfg.App)
	defer shutdownTracer(context.Background())

	// 2. Initialize Database
	opts := database.DefaultOptions()
	opts.LogSQL = !cfg.IsProduction()
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, opts)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Start Background Services
	container.StartBackground(ctx)

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
