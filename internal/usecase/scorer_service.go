package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/scorer"
)

const (
	defaultTopScorersLimit = 10
	maxTopScorersLimit     = 100
)

type ScorerService struct {
	matchRepo match.Repository
}

func NewScorerService(matchRepo match.Repository) *ScorerService {
	return &ScorerService{matchRepo: matchRepo}
}

func (s *ScorerService) TopScorers(ctx context.Context, limit int) ([]scorer.Scorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorerService.TopScorers")
	defer span.End()

	if limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative", ErrInvalidInput)
	}
	if limit == 0 {
		limit = defaultTopScorersLimit
	}
	if limit > maxTopScorersLimit {
		limit = maxTopScorersLimit
	}

	matches, err := s.matchRepo.List(ctx, match.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return scorer.TopScorers(matches, limit), nil
}

func (s *ScorerService) Discipline(ctx context.Context) ([]scorer.Booking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorerService.Discipline")
	defer span.End()

	matches, err := s.matchRepo.List(ctx, match.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return scorer.Discipline(matches), nil
}
