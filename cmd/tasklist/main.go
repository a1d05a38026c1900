package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tasklist/internal/auth"
	"tasklist/internal/config"
	"tasklist/internal/httpserver"
	"tasklist/internal/repository"
	"tasklist/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	verifier := auth.NewVerifier(userRepo)
	identities := auth.NewIdentityStore(userRepo)
	sessions := auth.NewSessionManager(verifier, identities, sessionRepo, cfg.SessionTTL)

	taskSvc := service.NewTaskService(taskRepo)

	cleanup := service.NewCleanupService(sessionRepo)
	if err := cleanup.Start(cfg.SessionSweep); err != nil {
		log.Fatalf("session sweep: %v", err)
	}
	defer cleanup.Stop()

	srv := httpserver.New(cfg, sessions, taskSvc)

	log.Printf("[info] listening on %s", cfg.Addr)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
