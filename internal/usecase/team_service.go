package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	idgen "github.com/riskibarqy/football-tournament/internal/platform/id"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type RegisterTeamInput struct {
	Name      string
	GroupName string
	Players   []RegisterPlayerInput
}

type RegisterPlayerInput struct {
	FullName string
	FeePaid  bool
}

type TeamService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	groupRepo group.Repository
	idGen     idgen.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewTeamService(
	teamRepo team.Repository,
	matchRepo match.Repository,
	groupRepo group.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		groupRepo: groupRepo,
		idGen:     idGen,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *TeamService) Register(ctx context.Context, input RegisterTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Register")
	defer span.End()

	now := s.now().UTC()
	item := team.Team{
		Name:      strings.TrimSpace(input.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, p := range input.Players {
		player, err := s.newPlayer(p, now)
		if err != nil {
			return team.Team{}, err
		}
		item.Roster = append(item.Roster, player)
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	_, exists, err := s.teamRepo.GetByName(ctx, item.Name)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by name: %w", err)
	}
	if exists {
		return team.Team{}, fmt.Errorf("%w: team name %q is already registered", ErrConflict, item.Name)
	}

	var target group.Group
	groupName := strings.TrimSpace(input.GroupName)
	if groupName != "" {
		g, exists, err := s.groupRepo.GetByName(ctx, groupName)
		if err != nil {
			return team.Team{}, fmt.Errorf("get group: %w", err)
		}
		if !exists {
			return team.Team{}, fmt.Errorf("%w: group=%s", ErrNotFound, groupName)
		}
		target = g
		item.GroupName = g.Name
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}
	item.ID = teamID

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	if target.ID != "" {
		target.TeamIDs = append(target.TeamIDs, item.ID)
		if err := s.groupRepo.Update(ctx, target); err != nil {
			return team.Team{}, fmt.Errorf("update group=%s: %w", target.Name, err)
		}
	}

	s.logger.InfoContext(ctx, "team registered", "team_id", item.ID, "name", item.Name, "players", len(item.Roster))
	return item, nil
}

func (s *TeamService) newPlayer(input RegisterPlayerInput, now time.Time) (team.Player, error) {
	playerID, err := s.idGen.NewID()
	if err != nil {
		return team.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	p := team.Player{
		ID:       playerID,
		FullName: strings.TrimSpace(input.FullName),
		FeePaid:  input.FeePaid,
	}
	if p.FeePaid {
		paidAt := now
		p.PaymentDate = &paidAt
	}
	return p, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	return s.require(ctx, teamID)
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

// Search ranks teams by fuzzy, case-insensitive match on the name. Closest match first.
func (s *TeamService) Search(ctx context.Context, query string, limit int) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Search")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	names := make([]string, len(items))
	for i, t := range items {
		names[i] = t.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	out := make([]team.Team, 0, min(limit, len(ranks)))
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, items[r.OriginalIndex])
	}
	return out, nil
}

func (s *TeamService) AddPlayer(ctx context.Context, teamID string, input RegisterPlayerInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AddPlayer")
	defer span.End()

	item, err := s.require(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	now := s.now().UTC()
	p, err := s.newPlayer(input, now)
	if err != nil {
		return team.Team{}, err
	}
	item.Roster = append(item.Roster, p)
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	item.UpdatedAt = now
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	return item, nil
}

// MarkFeePaid toggles a player's registration fee. Paying stamps the payment date.
func (s *TeamService) MarkFeePaid(ctx context.Context, teamID, playerID string, paid bool) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.MarkFeePaid")
	defer span.End()

	item, err := s.require(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	_, idx, ok := item.PlayerByID(strings.TrimSpace(playerID))
	if !ok {
		return team.Team{}, fmt.Errorf("%w: player=%s team=%s", ErrNotFound, playerID, item.ID)
	}

	now := s.now().UTC()
	item.Roster[idx].FeePaid = paid
	if paid {
		item.Roster[idx].PaymentDate = &now
	} else {
		item.Roster[idx].PaymentDate = nil
	}

	item.UpdatedAt = now
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	return item, nil
}

// Delete rejects teams that still appear in any match and drops the team from its group.
func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	item, err := s.require(ctx, teamID)
	if err != nil {
		return err
	}

	refs, err := s.matchRepo.List(ctx, match.Filter{TeamID: item.ID})
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(refs) > 0 {
		return fmt.Errorf("%w: team %s is referenced by %d match(es)", ErrConflict, item.ID, len(refs))
	}

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}
	for _, g := range groups {
		if !g.HasTeam(item.ID) {
			continue
		}
		g.TeamIDs = g.WithoutTeam(item.ID)
		if err := s.groupRepo.Update(ctx, g); err != nil {
			return fmt.Errorf("update group=%s: %w", g.Name, err)
		}
	}

	if err := s.teamRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

func (s *TeamService) require(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}
