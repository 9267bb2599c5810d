package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
)

const (
	CorrectionTeamGroupName   = "team_group_name"
	CorrectionGroupAppend     = "group_append"
	CorrectionGroupDuplicate  = "group_duplicate_removed"
	CorrectionOrphanGroupName = "team_group_cleared"
)

type SyncCorrection struct {
	Kind      string `json:"kind"`
	TeamID    string `json:"teamId"`
	GroupName string `json:"groupName,omitempty"`
}

type SyncResult struct {
	Updates     int              `json:"updates"`
	Corrections []SyncCorrection `json:"corrections,omitempty"`
}

// SyncService converges the two views of group membership: Team.GroupName and Group.TeamIDs.
// It is not transactional; a failed run leaves data that a later run repairs.
type SyncService struct {
	teamRepo  team.Repository
	groupRepo group.Repository
	logger    *logging.Logger
}

func NewSyncService(teamRepo team.Repository, groupRepo group.Repository, logger *logging.Logger) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncService{teamRepo: teamRepo, groupRepo: groupRepo, logger: logger}
}

func (s *SyncService) ReconcileGroupsAndTeams(ctx context.Context) (_ SyncResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.ReconcileGroupsAndTeams")
	defer finishSpan(span, &err)

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list groups: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list teams: %w", err)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Name != groups[j].Name {
			return groups[i].Name < groups[j].Name
		}
		return groups[i].ID < groups[j].ID
	})

	teamsByID := make(map[string]*team.Team, len(teams))
	for i := range teams {
		teamsByID[teams[i].ID] = &teams[i]
	}

	var result SyncResult

	// Pass 1: the group's membership list wins over the team's label.
	claimed := make(map[string]string, len(teams))
	for gi := range groups {
		g := &groups[gi]
		kept := make([]string, 0, len(g.TeamIDs))
		for _, teamID := range g.TeamIDs {
			t, ok := teamsByID[teamID]
			if !ok {
				s.logger.WarnContext(ctx, "group lists unknown team", "group", g.Name, "team_id", teamID)
				kept = append(kept, teamID)
				continue
			}
			if owner, taken := claimed[teamID]; taken && owner != g.Name {
				result.add(SyncCorrection{Kind: CorrectionGroupDuplicate, TeamID: teamID, GroupName: g.Name})
				continue
			}
			claimed[teamID] = g.Name
			kept = append(kept, teamID)

			if t.GroupName == g.Name {
				continue
			}
			if err := s.teamRepo.SetGroupName(ctx, teamID, g.Name); err != nil {
				return result, fmt.Errorf("set group name team=%s: %w", teamID, err)
			}
			t.GroupName = g.Name
			result.add(SyncCorrection{Kind: CorrectionTeamGroupName, TeamID: teamID, GroupName: g.Name})
		}

		if len(kept) != len(g.TeamIDs) {
			g.TeamIDs = kept
			if err := s.groupRepo.Update(ctx, *g); err != nil {
				return result, fmt.Errorf("update group=%s: %w", g.Name, err)
			}
		}
	}

	// Pass 2: team labels pointing at a real group are appended, dangling labels are cleared.
	groupsByName := make(map[string]*group.Group, len(groups))
	for gi := range groups {
		if _, exists := groupsByName[groups[gi].Name]; !exists {
			groupsByName[groups[gi].Name] = &groups[gi]
		}
	}

	sort.SliceStable(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	pending := make(map[string]*group.Group)
	for i := range teams {
		t := &teams[i]
		if t.GroupName == "" {
			continue
		}
		g, ok := groupsByName[t.GroupName]
		if !ok {
			if err := s.teamRepo.SetGroupName(ctx, t.ID, ""); err != nil {
				return result, fmt.Errorf("clear group name team=%s: %w", t.ID, err)
			}
			result.add(SyncCorrection{Kind: CorrectionOrphanGroupName, TeamID: t.ID, GroupName: t.GroupName})
			t.GroupName = ""
			continue
		}
		if g.HasTeam(t.ID) {
			continue
		}
		g.TeamIDs = append(g.TeamIDs, t.ID)
		pending[g.ID] = g
		result.add(SyncCorrection{Kind: CorrectionGroupAppend, TeamID: t.ID, GroupName: g.Name})
	}

	for _, g := range sortedGroups(pending) {
		if err := s.groupRepo.Update(ctx, *g); err != nil {
			return result, fmt.Errorf("update group=%s: %w", g.Name, err)
		}
	}

	if result.Updates > 0 {
		s.logger.InfoContext(ctx, "groups and teams reconciled", "updates", result.Updates)
	}
	return result, nil
}

func (r *SyncResult) add(c SyncCorrection) {
	r.Updates++
	r.Corrections = append(r.Corrections, c)
}

func sortedGroups(items map[string]*group.Group) []*group.Group {
	out := make([]*group.Group, 0, len(items))
	for _, g := range items {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
