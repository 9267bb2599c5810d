package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	idgen "github.com/riskibarqy/football-tournament/internal/platform/id"
)

// GroupService writes both membership views on every change.
type GroupService struct {
	groupRepo group.Repository
	teamRepo  team.Repository
	idGen     idgen.Generator
}

func NewGroupService(groupRepo group.Repository, teamRepo team.Repository, idGen idgen.Generator) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		teamRepo:  teamRepo,
		idGen:     idGen,
	}
}

func (s *GroupService) Create(ctx context.Context, name string) (group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.Create")
	defer span.End()

	item := group.Group{Name: strings.TrimSpace(name)}
	if err := item.Validate(); err != nil {
		return group.Group{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	_, exists, err := s.groupRepo.GetByName(ctx, item.Name)
	if err != nil {
		return group.Group{}, fmt.Errorf("get group by name: %w", err)
	}
	if exists {
		return group.Group{}, fmt.Errorf("%w: group %q already exists", ErrConflict, item.Name)
	}

	groupID, err := s.idGen.NewID()
	if err != nil {
		return group.Group{}, fmt.Errorf("generate group id: %w", err)
	}
	item.ID = groupID

	if err := s.groupRepo.Create(ctx, item); err != nil {
		return group.Group{}, fmt.Errorf("create group: %w", err)
	}
	return item, nil
}

func (s *GroupService) Get(ctx context.Context, groupID string) (group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.Get")
	defer span.End()

	return s.require(ctx, groupID)
}

func (s *GroupService) List(ctx context.Context) ([]group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.List")
	defer span.End()

	items, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return items, nil
}

// AssignTeam moves a team into the group, removing it from any group that listed it before.
func (s *GroupService) AssignTeam(ctx context.Context, groupID, teamID string) (group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.AssignTeam")
	defer span.End()

	target, err := s.require(ctx, groupID)
	if err != nil {
		return group.Group{}, err
	}
	t, err := s.requireTeam(ctx, teamID)
	if err != nil {
		return group.Group{}, err
	}

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return group.Group{}, fmt.Errorf("list groups: %w", err)
	}
	for _, g := range groups {
		if g.ID == target.ID || !g.HasTeam(t.ID) {
			continue
		}
		g.TeamIDs = g.WithoutTeam(t.ID)
		if err := s.groupRepo.Update(ctx, g); err != nil {
			return group.Group{}, fmt.Errorf("update group=%s: %w", g.Name, err)
		}
	}

	if !target.HasTeam(t.ID) {
		target.TeamIDs = append(target.TeamIDs, t.ID)
		if err := s.groupRepo.Update(ctx, target); err != nil {
			return group.Group{}, fmt.Errorf("update group=%s: %w", target.Name, err)
		}
	}
	if t.GroupName != target.Name {
		if err := s.teamRepo.SetGroupName(ctx, t.ID, target.Name); err != nil {
			return group.Group{}, fmt.Errorf("set group name team=%s: %w", t.ID, err)
		}
	}
	return target, nil
}

func (s *GroupService) RemoveTeam(ctx context.Context, groupID, teamID string) (group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.RemoveTeam")
	defer span.End()

	target, err := s.require(ctx, groupID)
	if err != nil {
		return group.Group{}, err
	}
	t, err := s.requireTeam(ctx, teamID)
	if err != nil {
		return group.Group{}, err
	}
	if !target.HasTeam(t.ID) && t.GroupName != target.Name {
		return group.Group{}, fmt.Errorf("%w: team %s is not in group %s", ErrNotFound, t.ID, target.Name)
	}

	if target.HasTeam(t.ID) {
		target.TeamIDs = target.WithoutTeam(t.ID)
		if err := s.groupRepo.Update(ctx, target); err != nil {
			return group.Group{}, fmt.Errorf("update group=%s: %w", target.Name, err)
		}
	}
	if t.GroupName == target.Name {
		if err := s.teamRepo.SetGroupName(ctx, t.ID, ""); err != nil {
			return group.Group{}, fmt.Errorf("clear group name team=%s: %w", t.ID, err)
		}
	}
	return target, nil
}

func (s *GroupService) MarkCompleted(ctx context.Context, groupID string, completed bool) (group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.MarkCompleted")
	defer span.End()

	item, err := s.require(ctx, groupID)
	if err != nil {
		return group.Group{}, err
	}
	if item.Completed == completed {
		return item, nil
	}

	item.Completed = completed
	if err := s.groupRepo.Update(ctx, item); err != nil {
		return group.Group{}, fmt.Errorf("update group: %w", err)
	}
	return item, nil
}

// Delete removes the group and clears the group label on every team that carried it.
func (s *GroupService) Delete(ctx context.Context, groupID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.Delete")
	defer span.End()

	item, err := s.require(ctx, groupID)
	if err != nil {
		return err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}
	for _, t := range teams {
		if t.GroupName != item.Name && !item.HasTeam(t.ID) {
			continue
		}
		if t.GroupName == "" {
			continue
		}
		if err := s.teamRepo.SetGroupName(ctx, t.ID, ""); err != nil {
			return fmt.Errorf("clear group name team=%s: %w", t.ID, err)
		}
	}

	if err := s.groupRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

func (s *GroupService) require(ctx context.Context, groupID string) (group.Group, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return group.Group{}, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}

	item, exists, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return group.Group{}, fmt.Errorf("get group: %w", err)
	}
	if !exists {
		return group.Group{}, fmt.Errorf("%w: group=%s", ErrNotFound, groupID)
	}
	return item, nil
}

func (s *GroupService) requireTeam(ctx context.Context, teamID string) (team.Team, error) {
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
