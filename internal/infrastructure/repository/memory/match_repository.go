package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	byID := make(map[string]match.Match, len(matches))
	for _, item := range matches {
		byID[item.ID] = cloneMatch(item)
	}
	return &MatchRepository{matches: byID}
}

// List orders matches by kickoff date and time, then id.
func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if filter.Matches(item) {
			out = append(out, cloneMatch(item))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	return cloneMatch(item), true, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[item.ID]; exists {
		return errors.Newf("match %s already exists", item.ID)
	}
	r.matches[item.ID] = cloneMatch(item)
	return nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[item.ID]; !exists {
		return errors.Newf("match %s not found", item.ID)
	}
	r.matches[item.ID] = cloneMatch(item)
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.matches, matchID)
	return nil
}

func cloneMatch(item match.Match) match.Match {
	if item.Score != nil {
		score := *item.Score
		item.Score = &score
	}
	if item.Events != nil {
		events := make([]match.Event, len(item.Events))
		copy(events, item.Events)
		item.Events = events
	}
	return item
}
