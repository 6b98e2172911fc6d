package service

import (
	"context"
	"log/slog"
	"time"

	"datepicker-bot/internal/domain"
)

type StateService struct {
	Repo domain.StateRepo
	TTL  time.Duration
	Now  func() time.Time
}

func NewStateService(repo domain.StateRepo, ttl time.Duration) *StateService {
	return &StateService{Repo: repo, TTL: ttl, Now: time.Now}
}

// Prune удаляет состояния, которые не менялись дольше TTL.
func (s *StateService) Prune(ctx context.Context) (int64, error) {
	before := s.Now().Add(-s.TTL)
	n, err := s.Repo.Prune(ctx, before)
	if err != nil {
		slog.Error("prune picker state", "error", err)
		return 0, err
	}
	slog.Info("pruned picker state", "rows", n, "before", before.Format(time.RFC3339))
	return n, nil
}
