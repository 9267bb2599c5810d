package usecase

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-tournament/internal/domain/bracket"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
)

type BracketView struct {
	Slots    []bracket.Slot     `json:"slots"`
	Unplaced []bracket.Unplaced `json:"unplaced,omitempty"`
}

type BracketService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	policy    bracket.DrawPolicy
	logger    *logging.Logger
}

func NewBracketService(teamRepo team.Repository, matchRepo match.Repository, policy bracket.DrawPolicy, logger *logging.Logger) *BracketService {
	if policy == "" {
		policy = bracket.DrawUndecided
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BracketService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		policy:    policy,
		logger:    logger,
	}
}

// Build derives the 15-slot knockout bracket from existing matches.
func (s *BracketService) Build(ctx context.Context) (_ BracketView, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketService.Build")
	defer finishSpan(span, &err)

	snap, err := loadSnapshot(ctx, s.teamRepo, s.matchRepo, match.Filter{})
	if err != nil {
		return BracketView{}, err
	}

	// Earliest-created match wins a contested slot.
	sort.SliceStable(snap.matches, func(i, j int) bool {
		if !snap.matches[i].CreatedAt.Equal(snap.matches[j].CreatedAt) {
			return snap.matches[i].CreatedAt.Before(snap.matches[j].CreatedAt)
		}
		return snap.matches[i].ID < snap.matches[j].ID
	})

	slots, unplaced := bracket.Hydrate(bracket.Empty(), snap.matches, snap.teamNames(), s.policy)
	for _, item := range unplaced {
		s.logger.WarnContext(ctx, "knockout match not placed in bracket", "match_id", item.MatchID, "reason", item.Reason)
	}

	return BracketView{Slots: slots, Unplaced: unplaced}, nil
}
