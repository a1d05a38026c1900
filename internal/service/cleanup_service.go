package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"tasklist/internal/repository"
)

// CleanupService periodically removes expired sessions.
type CleanupService struct {
	cron     *cron.Cron
	sessions *repository.SessionRepository
}

func NewCleanupService(sessions *repository.SessionRepository) *CleanupService {
	return &CleanupService{
		cron:     cron.New(cron.WithSeconds()),
		sessions: sessions,
	}
}

// Start registers the sweep at the given interval and launches the cron loop.
func (s *CleanupService) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	spec := fmt.Sprintf("@every %ds", seconds)
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return fmt.Errorf("schedule session sweep: %w", err)
	}
	s.cron.Start()
	return nil
}

func (s *CleanupService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *CleanupService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.sessions.DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Printf("session sweep: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[info] removed %d expired sessions", removed)
	}
}
