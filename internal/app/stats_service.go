package app

import (
	"context"

	"github.com/Emannuh254/server-jobs/internal/domain/stats"
)

type StatsService struct {
	repo stats.Repository
}

func NewStatsService(repo stats.Repository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Get(ctx context.Context) (*stats.Stats, error) {
	return s.repo.Get(ctx)
}
