package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	groupmock "github.com/riskibarqy/football-tournament/internal/mocks/domain/group"
	teammock "github.com/riskibarqy/football-tournament/internal/mocks/domain/team"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncService_ReconcileGroupsAndTeams(t *testing.T) {
	t.Parallel()

	repos := newTestRepos(
		[]team.Team{
			{ID: "t1", Name: "Lions", GroupName: "B"},
			{ID: "t2", Name: "Eagles", GroupName: "A"},
			{ID: "t3", Name: "Falcons"},
			{ID: "t4", Name: "Sharks", GroupName: "A"},
			{ID: "t5", Name: "Wolves", GroupName: "Z"},
		},
		nil,
		[]group.Group{
			{ID: "ga", Name: "A", TeamIDs: []string{"t1", "t2"}},
			{ID: "gb", Name: "B", TeamIDs: []string{"t3"}},
		},
	)
	service := NewSyncService(repos.teams, repos.groups, logging.NewNop())
	ctx := context.Background()

	result, err := service.ReconcileGroupsAndTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Updates)
	assert.Equal(t, []SyncCorrection{
		{Kind: CorrectionTeamGroupName, TeamID: "t1", GroupName: "A"},
		{Kind: CorrectionTeamGroupName, TeamID: "t3", GroupName: "B"},
		{Kind: CorrectionGroupAppend, TeamID: "t4", GroupName: "A"},
		{Kind: CorrectionOrphanGroupName, TeamID: "t5", GroupName: "Z"},
	}, result.Corrections)

	t1, _, _ := repos.teams.GetByID(ctx, "t1")
	assert.Equal(t, "A", t1.GroupName)
	t5, _, _ := repos.teams.GetByID(ctx, "t5")
	assert.Empty(t, t5.GroupName)
	groupA, _, _ := repos.groups.GetByID(ctx, "ga")
	assert.Equal(t, []string{"t1", "t2", "t4"}, groupA.TeamIDs)

	second, err := service.ReconcileGroupsAndTeams(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Updates)
}

func TestSyncService_RepairsStaleGroupName(t *testing.T) {
	t.Parallel()

	repos := newTestRepos(
		[]team.Team{{ID: "x", Name: "Lions", GroupName: "B"}},
		nil,
		[]group.Group{{ID: "ga", Name: "A", TeamIDs: []string{"x"}}},
	)
	service := NewSyncService(repos.teams, repos.groups, logging.NewNop())

	result, err := service.ReconcileGroupsAndTeams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updates)

	x, _, _ := repos.teams.GetByID(context.Background(), "x")
	assert.Equal(t, "A", x.GroupName)
}

func TestSyncService_TeamListedByTwoGroups(t *testing.T) {
	t.Parallel()

	repos := newTestRepos(
		[]team.Team{{ID: "t1", Name: "Lions", GroupName: "B"}},
		nil,
		[]group.Group{
			{ID: "gb", Name: "B", TeamIDs: []string{"t1"}},
			{ID: "ga", Name: "A", TeamIDs: []string{"t1"}},
		},
	)
	service := NewSyncService(repos.teams, repos.groups, logging.NewNop())
	ctx := context.Background()

	result, err := service.ReconcileGroupsAndTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Updates)

	groupB, _, _ := repos.groups.GetByID(ctx, "gb")
	assert.Empty(t, groupB.TeamIDs)
	t1, _, _ := repos.teams.GetByID(ctx, "t1")
	assert.Equal(t, "A", t1.GroupName)

	second, err := service.ReconcileGroupsAndTeams(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Updates)
}

func TestSyncService_IgnoresUnknownTeamIDs(t *testing.T) {
	t.Parallel()

	repos := newTestRepos(nil, nil, []group.Group{{ID: "ga", Name: "A", TeamIDs: []string{"ghost"}}})
	service := NewSyncService(repos.teams, repos.groups, logging.NewNop())

	result, err := service.ReconcileGroupsAndTeams(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Updates)
}

func TestSyncService_StopsOnWriteFailure(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	groupRepo := groupmock.NewRepository(t)
	service := NewSyncService(teamRepo, groupRepo, logging.NewNop())

	groupRepo.On("List", mock.Anything).Return([]group.Group{{ID: "ga", Name: "A", TeamIDs: []string{"t1"}}}, nil).Once()
	teamRepo.On("List", mock.Anything).Return([]team.Team{{ID: "t1", GroupName: ""}}, nil).Once()
	teamRepo.On("SetGroupName", mock.Anything, "t1", "A").Return(errors.New("write failed")).Once()

	result, err := service.ReconcileGroupsAndTeams(context.Background())
	require.ErrorContains(t, err, "team=t1")
	assert.Zero(t, result.Updates)
}
