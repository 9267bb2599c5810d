package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-tournament/internal/domain/account"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
)

func TestTeamRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(SeedTeams())

	got, ok, err := repo.GetByID(ctx, "team-lions")
	require.NoError(t, err)
	require.True(t, ok)
	got.Roster[0].FullName = "Mutated"

	again, _, err := repo.GetByID(ctx, "team-lions")
	require.NoError(t, err)
	assert.Equal(t, "Lions FC Captain", again.Roster[0].FullName)
}

func TestTeamRepository_GetByNameIgnoresCase(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())

	got, ok, err := repo.GetByName(context.Background(), "  lions fc ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "team-lions", got.ID)
}

func TestTeamRepository_Writes(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(nil)

	require.NoError(t, repo.Create(ctx, team.Team{ID: "t-1", Name: "One"}))
	require.Error(t, repo.Create(ctx, team.Team{ID: "t-1", Name: "Duplicate"}))

	require.NoError(t, repo.UpdateStats(ctx, "t-1", team.Stats{Played: 1, Won: 1, Points: 3}))
	require.NoError(t, repo.SetGroupName(ctx, "t-1", "C"))
	require.Error(t, repo.UpdateStats(ctx, "missing", team.Stats{}))

	got, ok, err := repo.GetByID(ctx, "t-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, got.Stats.Points)
	assert.Equal(t, "C", got.GroupName)

	require.NoError(t, repo.Delete(ctx, "t-1"))
	require.NoError(t, repo.Delete(ctx, "t-1"))
	_, ok, err = repo.GetByID(ctx, "t-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchRepository_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	repo := NewMatchRepository(SeedMatches())

	all, err := repo.List(ctx, match.Filter{})
	require.NoError(t, err)
	ids := make([]string, 0, len(all))
	for _, item := range all {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"m-001", "m-002", "m-003", "m-004", "m-005"}, ids)

	lions, err := repo.List(ctx, match.Filter{TeamID: "team-lions"})
	require.NoError(t, err)
	require.Len(t, lions, 2)
	assert.Equal(t, "m-001", lions[0].ID)
	assert.Equal(t, "m-005", lions[1].ID)

	scheduledGroup, err := repo.List(ctx, match.Filter{Stage: match.StageGroup, Status: match.StatusScheduled})
	require.NoError(t, err)
	require.Len(t, scheduledGroup, 1)
	assert.Equal(t, "m-004", scheduledGroup[0].ID)
}

func TestMatchRepository_ScoreIsCopied(t *testing.T) {
	ctx := context.Background()
	repo := NewMatchRepository(SeedMatches())

	got, ok, err := repo.GetByID(ctx, "m-001")
	require.NoError(t, err)
	require.True(t, ok)
	got.Score.TeamA = 9
	got.Events[0].Minute = 1

	again, _, err := repo.GetByID(ctx, "m-001")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Score.TeamA)
	assert.Equal(t, 12, again.Events[0].Minute)
}

func TestMatchRepository_UpdateMissing(t *testing.T) {
	repo := NewMatchRepository(nil)
	require.Error(t, repo.Update(context.Background(), match.Match{ID: "nope"}))
}

func TestGroupRepository_ListSortedByName(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupRepository(SeedGroups())

	groups, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].Name)
	assert.Equal(t, "B", groups[1].Name)

	got, ok, err := repo.GetByName(ctx, "B")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, GroupIDB, got.ID)
}

func TestStaffRepository_ListOrderedByRoleThenName(t *testing.T) {
	repo := NewStaffRepository(SeedStaff())

	members, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 3)
	for i := 1; i < len(members); i++ {
		assert.LessOrEqual(t, string(members[i-1].Role), string(members[i].Role))
	}
}

func TestAccountRepository_UsernameIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	require.NoError(t, repo.Create(ctx, account.Admin{ID: "adm-1", Username: "Admin"}))
	require.Error(t, repo.Create(ctx, account.Admin{ID: "adm-2", Username: "ADMIN"}))

	got, ok, err := repo.GetByUsername(ctx, " admin ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "adm-1", got.ID)
}

func TestSeeds_GroupsAndTeamsAgree(t *testing.T) {
	teams := make(map[string]team.Team)
	for _, item := range SeedTeams() {
		teams[item.ID] = item
	}

	for _, g := range SeedGroups() {
		for _, teamID := range g.TeamIDs {
			item, ok := teams[teamID]
			require.True(t, ok, "group %s lists unknown team %s", g.Name, teamID)
			assert.Equal(t, g.Name, item.GroupName)
		}
	}

	for _, m := range SeedMatches() {
		assert.Contains(t, teams, m.TeamAID)
		assert.Contains(t, teams, m.TeamBID)
	}
}
