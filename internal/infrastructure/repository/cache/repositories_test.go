package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	groupmock "github.com/riskibarqy/football-tournament/internal/mocks/domain/group"
	matchmock "github.com/riskibarqy/football-tournament/internal/mocks/domain/match"
	teammock "github.com/riskibarqy/football-tournament/internal/mocks/domain/team"
	basecache "github.com/riskibarqy/football-tournament/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_ListIsCachedUntilWrite(t *testing.T) {
	ctx := context.Background()
	next := teammock.NewRepository(t)
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	first := []team.Team{{ID: "t1", Name: "Lions", Roster: []team.Player{{ID: "p1", FullName: "Ada"}}}}
	next.On("List", mock.Anything).Return(first, nil).Once()

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got[0].Roster[0].FullName = "mutated"
	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", again[0].Roster[0].FullName)

	next.On("UpdateStats", mock.Anything, "t1", team.Stats{Played: 1}).Return(nil).Once()
	require.NoError(t, repo.UpdateStats(ctx, "t1", team.Stats{Played: 1}))

	second := []team.Team{{ID: "t1", Name: "Lions", Stats: team.Stats{Played: 1}}}
	next.On("List", mock.Anything).Return(second, nil).Once()

	got, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got[0].Stats.Played)
}

func TestTeamRepository_CachesMisses(t *testing.T) {
	ctx := context.Background()
	next := teammock.NewRepository(t)
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	next.On("GetByID", mock.Anything, "ghost").Return(team.Team{}, false, nil).Once()

	for range 2 {
		_, exists, err := repo.GetByID(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, exists)
	}
}

func TestTeamRepository_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	next := teammock.NewRepository(t)
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	next.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()
	_, err := repo.List(ctx)
	require.Error(t, err)

	next.On("List", mock.Anything).Return([]team.Team{{ID: "t1"}}, nil).Once()
	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMatchRepository_FilterKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	all := []match.Match{{ID: "m1", Stage: match.StageGroup}, {ID: "m2", Stage: match.StageFinal}}
	finals := []match.Match{{ID: "m2", Stage: match.StageFinal}}
	next.On("List", mock.Anything, match.Filter{}).Return(all, nil).Once()
	next.On("List", mock.Anything, match.Filter{Stage: match.StageFinal}).Return(finals, nil).Once()

	for range 2 {
		got, err := repo.List(ctx, match.Filter{})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = repo.List(ctx, match.Filter{Stage: match.StageFinal})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
}

func TestMatchRepository_UpdateInvalidatesGet(t *testing.T) {
	ctx := context.Background()
	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	scheduled := match.Match{ID: "m1", Status: match.StatusScheduled}
	next.On("GetByID", mock.Anything, "m1").Return(scheduled, true, nil).Once()

	got, _, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, match.StatusScheduled, got.Status)

	completed := match.Match{ID: "m1", Status: match.StatusCompleted, Score: &match.Score{TeamA: 1}}
	next.On("Update", mock.Anything, completed).Return(nil).Once()
	require.NoError(t, repo.Update(ctx, completed))

	next.On("GetByID", mock.Anything, "m1").Return(completed, true, nil).Once()
	got, _, err = repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, match.StatusCompleted, got.Status)

	got.Score.TeamA = 9
	again, _, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Score.TeamA)
}

func TestGroupRepository_GetByNameCachedUntilDelete(t *testing.T) {
	ctx := context.Background()
	next := groupmock.NewRepository(t)
	repo := NewGroupRepository(next, basecache.NewStore(time.Minute))

	a := group.Group{ID: "g1", Name: "A", TeamIDs: []string{"t1"}}
	next.On("GetByName", mock.Anything, "A").Return(a, true, nil).Once()

	for range 2 {
		got, exists, err := repo.GetByName(ctx, "A")
		require.NoError(t, err)
		require.True(t, exists)
		assert.Equal(t, []string{"t1"}, got.TeamIDs)
	}

	next.On("Delete", mock.Anything, "g1").Return(nil).Once()
	require.NoError(t, repo.Delete(ctx, "g1"))

	next.On("GetByName", mock.Anything, "A").Return(group.Group{}, false, nil).Once()
	_, exists, err := repo.GetByName(ctx, "A")
	require.NoError(t, err)
	assert.False(t, exists)
}
