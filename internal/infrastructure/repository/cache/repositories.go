package cache

import (
	"context"

	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	basecache "github.com/riskibarqy/football-tournament/internal/platform/cache"
)

const (
	teamPrefix  = "team:"
	matchPrefix = "match:"
	groupPrefix = "group:"
)

type found[T any] struct {
	value  T
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, teamPrefix+"list", r.next.List)
	if err != nil {
		return nil, err
	}
	return cloneTeams(items), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	got, err := basecache.Load(ctx, r.cache, teamPrefix+"id:"+teamID, func(ctx context.Context) (found[team.Team], error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		return found[team.Team]{value: item, exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return cloneTeam(got.value), got.exists, nil
}

// GetByName skips the cache; it only runs on writes.
func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.next.GetByName(ctx, name)
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	defer r.invalidate(ctx)
	return r.next.Create(ctx, item)
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	defer r.invalidate(ctx)
	return r.next.Update(ctx, item)
}

func (r *TeamRepository) UpdateStats(ctx context.Context, teamID string, stats team.Stats) error {
	defer r.invalidate(ctx)
	return r.next.UpdateStats(ctx, teamID, stats)
}

func (r *TeamRepository) SetGroupName(ctx context.Context, teamID, groupName string) error {
	defer r.invalidate(ctx)
	return r.next.SetGroupName(ctx, teamID, groupName)
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, teamID)
}

func (r *TeamRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, teamPrefix)
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	key := matchPrefix + "list:" + string(filter.Stage) + ":" + string(filter.Status) + ":" + filter.TeamID
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]match.Match, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return cloneMatches(items), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	got, err := basecache.Load(ctx, r.cache, matchPrefix+"id:"+matchID, func(ctx context.Context) (found[match.Match], error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		return found[match.Match]{value: item, exists: exists}, err
	})
	if err != nil {
		return match.Match{}, false, err
	}
	return cloneMatch(got.value), got.exists, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	defer r.invalidate(ctx)
	return r.next.Create(ctx, item)
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	defer r.invalidate(ctx)
	return r.next.Update(ctx, item)
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, matchID)
}

func (r *MatchRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, matchPrefix)
}

type GroupRepository struct {
	next  group.Repository
	cache *basecache.Store
}

func NewGroupRepository(next group.Repository, cache *basecache.Store) *GroupRepository {
	return &GroupRepository{next: next, cache: cache}
}

func (r *GroupRepository) List(ctx context.Context) ([]group.Group, error) {
	items, err := basecache.Load(ctx, r.cache, groupPrefix+"list", r.next.List)
	if err != nil {
		return nil, err
	}
	out := make([]group.Group, 0, len(items))
	for _, g := range items {
		out = append(out, cloneGroup(g))
	}
	return out, nil
}

func (r *GroupRepository) GetByID(ctx context.Context, groupID string) (group.Group, bool, error) {
	got, err := basecache.Load(ctx, r.cache, groupPrefix+"id:"+groupID, func(ctx context.Context) (found[group.Group], error) {
		item, exists, err := r.next.GetByID(ctx, groupID)
		return found[group.Group]{value: item, exists: exists}, err
	})
	if err != nil {
		return group.Group{}, false, err
	}
	return cloneGroup(got.value), got.exists, nil
}

func (r *GroupRepository) GetByName(ctx context.Context, name string) (group.Group, bool, error) {
	got, err := basecache.Load(ctx, r.cache, groupPrefix+"name:"+name, func(ctx context.Context) (found[group.Group], error) {
		item, exists, err := r.next.GetByName(ctx, name)
		return found[group.Group]{value: item, exists: exists}, err
	})
	if err != nil {
		return group.Group{}, false, err
	}
	return cloneGroup(got.value), got.exists, nil
}

func (r *GroupRepository) Create(ctx context.Context, item group.Group) error {
	defer r.invalidate(ctx)
	return r.next.Create(ctx, item)
}

func (r *GroupRepository) Update(ctx context.Context, item group.Group) error {
	defer r.invalidate(ctx)
	return r.next.Update(ctx, item)
}

func (r *GroupRepository) Delete(ctx context.Context, groupID string) error {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, groupID)
}

func (r *GroupRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, groupPrefix)
}

func cloneTeam(t team.Team) team.Team {
	t.Roster = append([]team.Player(nil), t.Roster...)
	return t
}

func cloneTeams(items []team.Team) []team.Team {
	out := make([]team.Team, 0, len(items))
	for _, t := range items {
		out = append(out, cloneTeam(t))
	}
	return out
}

func cloneMatch(m match.Match) match.Match {
	if m.Score != nil {
		score := *m.Score
		m.Score = &score
	}
	m.Events = append([]match.Event(nil), m.Events...)
	return m
}

func cloneMatches(items []match.Match) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, m := range items {
		out = append(out, cloneMatch(m))
	}
	return out
}

func cloneGroup(g group.Group) group.Group {
	g.TeamIDs = append([]string(nil), g.TeamIDs...)
	return g
}
