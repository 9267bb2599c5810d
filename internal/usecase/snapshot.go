package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

// snapshot is a point-in-time read of teams and matches. Both lists load concurrently.
type snapshot struct {
	teams   []team.Team
	matches []match.Match
}

func loadSnapshot(ctx context.Context, teamRepo team.Repository, matchRepo match.Repository, filter match.Filter) (snapshot, error) {
	var snap snapshot

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		items, err := teamRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		snap.teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := matchRepo.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		snap.matches = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return snapshot{}, err
	}

	return snap, nil
}

func (s snapshot) teamIDs() []string {
	out := make([]string, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, t.ID)
	}
	return out
}

func (s snapshot) teamNames() map[string]string {
	out := make(map[string]string, len(s.teams))
	for _, t := range s.teams {
		out[t.ID] = t.Name
	}
	return out
}
