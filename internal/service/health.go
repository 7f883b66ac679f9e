package service

import (
	"context"
	"fmt"
	"time"

	"oper-review-backend/internal/repository"
)

// HealthService checks storage availability
type HealthService struct {
	repo repository.HealthCheckRepositoryInterface
	now  func() time.Time
}

// NewHealthService creates a new health service
func NewHealthService(repo repository.HealthCheckRepositoryInterface) *HealthService {
	return &HealthService{
		repo: repo,
		now:  time.Now,
	}
}

// Check records a health row, proving the database accepts writes
func (s *HealthService) Check(ctx context.Context) error {
	if err := s.repo.Record(ctx, s.now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to record health check: %w", err)
	}
	return nil
}

// Ready pings the database
func (s *HealthService) Ready(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}
	return nil
}
