package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	idgen "github.com/riskibarqy/football-tournament/internal/platform/id"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroupFixture() (testRepos, *GroupService) {
	repos := newTestRepos(
		[]team.Team{
			{ID: "t1", Name: "Lions", GroupName: "A"},
			{ID: "t2", Name: "Eagles", GroupName: "A"},
			{ID: "t3", Name: "Falcons"},
		},
		nil,
		[]group.Group{
			{ID: "ga", Name: "A", TeamIDs: []string{"t1", "t2"}},
			{ID: "gb", Name: "B"},
		},
	)
	return repos, NewGroupService(repos.groups, repos.teams, idgen.NewSequence("gc"))
}

func TestGroupService_Create(t *testing.T) {
	t.Parallel()

	_, service := newGroupFixture()

	got, err := service.Create(context.Background(), " C ")
	require.NoError(t, err)
	assert.Equal(t, group.Group{ID: "gc", Name: "C"}, got)

	_, err = service.Create(context.Background(), "A")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = service.Create(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGroupService_AssignTeam_MovesBetweenGroups(t *testing.T) {
	t.Parallel()

	repos, service := newGroupFixture()
	ctx := context.Background()

	got, err := service.AssignTeam(ctx, "gb", "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, got.TeamIDs)

	groupA, _, _ := repos.groups.GetByID(ctx, "ga")
	assert.Equal(t, []string{"t2"}, groupA.TeamIDs)
	t1, _, _ := repos.teams.GetByID(ctx, "t1")
	assert.Equal(t, "B", t1.GroupName)

	again, err := service.AssignTeam(ctx, "gb", "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, again.TeamIDs)

	sync := NewSyncService(repos.teams, repos.groups, logging.NewNop())
	result, err := sync.ReconcileGroupsAndTeams(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Updates, "assign keeps both views aligned")
}

func TestGroupService_RemoveTeam(t *testing.T) {
	t.Parallel()

	repos, service := newGroupFixture()
	ctx := context.Background()

	got, err := service.RemoveTeam(ctx, "ga", "t2")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, got.TeamIDs)
	t2, _, _ := repos.teams.GetByID(ctx, "t2")
	assert.Empty(t, t2.GroupName)

	_, err = service.RemoveTeam(ctx, "ga", "t3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGroupService_MarkCompleted(t *testing.T) {
	t.Parallel()

	_, service := newGroupFixture()

	got, err := service.MarkCompleted(context.Background(), "ga", true)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	_, err = service.MarkCompleted(context.Background(), "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGroupService_Delete_ClearsTeamLabels(t *testing.T) {
	t.Parallel()

	repos, service := newGroupFixture()
	ctx := context.Background()

	require.NoError(t, service.Delete(ctx, "ga"))

	for _, id := range []string{"t1", "t2"} {
		item, _, _ := repos.teams.GetByID(ctx, id)
		assert.Empty(t, item.GroupName, "team %s", id)
	}
	_, err := service.Get(ctx, "ga")
	assert.ErrorIs(t, err, ErrNotFound)
}
