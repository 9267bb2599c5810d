package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	out := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		out = append(out, cloneTeam(item))
	}
	return &TeamRepository{teams: out}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, cloneTeam(item))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx := r.indexOf(teamID); idx >= 0 {
		return cloneTeam(r.teams[idx]), true, nil
	}
	return team.Team{}, false, nil
}

// GetByName compares names case-insensitively.
func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.TrimSpace(name)
	for _, item := range r.teams {
		if strings.EqualFold(item.Name, name) {
			return cloneTeam(item), true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(item.ID) >= 0 {
		return errors.Newf("team %s already exists", item.ID)
	}
	r.teams = append(r.teams, cloneTeam(item))
	return nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(item.ID)
	if idx < 0 {
		return errors.Newf("team %s not found", item.ID)
	}
	r.teams[idx] = cloneTeam(item)
	return nil
}

func (r *TeamRepository) UpdateStats(_ context.Context, teamID string, stats team.Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(teamID)
	if idx < 0 {
		return errors.Newf("team %s not found", teamID)
	}
	r.teams[idx].Stats = stats
	return nil
}

func (r *TeamRepository) SetGroupName(_ context.Context, teamID, groupName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(teamID)
	if idx < 0 {
		return errors.Newf("team %s not found", teamID)
	}
	r.teams[idx].GroupName = groupName
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(teamID)
	if idx < 0 {
		return nil
	}
	r.teams = append(r.teams[:idx], r.teams[idx+1:]...)
	return nil
}

func (r *TeamRepository) indexOf(teamID string) int {
	for idx := range r.teams {
		if r.teams[idx].ID == teamID {
			return idx
		}
	}
	return -1
}

func cloneTeam(item team.Team) team.Team {
	if item.Roster != nil {
		roster := make([]team.Player, len(item.Roster))
		copy(roster, item.Roster)
		item.Roster = roster
	}
	return item
}
