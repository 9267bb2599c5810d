package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	idgen "github.com/riskibarqy/football-tournament/internal/platform/id"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamFixture(ids ...string) (testRepos, *TeamService) {
	repos := newTestRepos(
		[]team.Team{
			{ID: "t1", Name: "Lions FC", GroupName: "A"},
			{ID: "t2", Name: "Eagles United", GroupName: "A"},
			{ID: "t3", Name: "Lionel Strikers"},
		},
		[]match.Match{scheduledMatch("m1", "t1", "t2")},
		[]group.Group{{ID: "ga", Name: "A", TeamIDs: []string{"t1", "t2"}}},
	)
	service := NewTeamService(repos.teams, repos.matches, repos.groups, idgen.NewSequence(ids...), logging.NewNop())
	service.now = func() time.Time { return fixedNow }
	return repos, service
}

func TestTeamService_Register(t *testing.T) {
	t.Parallel()

	repos, service := newTeamFixture("p-1", "p-2", "t-new")
	ctx := context.Background()

	got, err := service.Register(ctx, RegisterTeamInput{
		Name:      "  Sharks SC ",
		GroupName: "A",
		Players: []RegisterPlayerInput{
			{FullName: "Dana", FeePaid: true},
			{FullName: "Eli"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sharks SC", got.Name)
	assert.Equal(t, "A", got.GroupName)
	require.Len(t, got.Roster, 2)
	assert.Equal(t, "p-1", got.Roster[0].ID)
	require.NotNil(t, got.Roster[0].PaymentDate)
	assert.Equal(t, fixedNow, *got.Roster[0].PaymentDate)
	assert.Nil(t, got.Roster[1].PaymentDate)
	assert.Equal(t, "t-new", got.ID, "player ids are drawn before the team id")

	groupA, _, _ := repos.groups.GetByID(ctx, "ga")
	assert.Contains(t, groupA.TeamIDs, got.ID)
}

func TestTeamService_Register_Errors(t *testing.T) {
	t.Parallel()

	_, service := newTeamFixture()
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterTeamInput{Name: "lions fc"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = service.Register(ctx, RegisterTeamInput{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Register(ctx, RegisterTeamInput{Name: "Hawks", GroupName: "Q"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.Register(ctx, RegisterTeamInput{Name: "Hawks", Players: []RegisterPlayerInput{{FullName: ""}}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamService_Search(t *testing.T) {
	t.Parallel()

	_, service := newTeamFixture()

	got, err := service.Search(context.Background(), "LION", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "t3", got[1].ID)

	limited, err := service.Search(context.Background(), "lion", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = service.Search(context.Background(), " ", 5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamService_AddPlayerAndMarkFeePaid(t *testing.T) {
	t.Parallel()

	_, service := newTeamFixture("p-9")
	ctx := context.Background()

	withPlayer, err := service.AddPlayer(ctx, "t1", RegisterPlayerInput{FullName: "Fatima"})
	require.NoError(t, err)
	require.Len(t, withPlayer.Roster, 1)
	assert.Equal(t, 1, withPlayer.UnpaidPlayers())

	paid, err := service.MarkFeePaid(ctx, "t1", "p-9", true)
	require.NoError(t, err)
	assert.Zero(t, paid.UnpaidPlayers())
	require.NotNil(t, paid.Roster[0].PaymentDate)

	unpaid, err := service.MarkFeePaid(ctx, "t1", "p-9", false)
	require.NoError(t, err)
	assert.Nil(t, unpaid.Roster[0].PaymentDate)

	_, err = service.MarkFeePaid(ctx, "t1", "ghost", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_Delete(t *testing.T) {
	t.Parallel()

	repos, service := newTeamFixture()
	ctx := context.Background()

	err := service.Delete(ctx, "t1")
	assert.ErrorIs(t, err, ErrConflict, "teams with matches cannot be deleted")

	require.NoError(t, repos.matches.Delete(ctx, "m1"))
	require.NoError(t, service.Delete(ctx, "t1"))

	_, err = service.Get(ctx, "t1")
	assert.ErrorIs(t, err, ErrNotFound)
	groupA, _, _ := repos.groups.GetByID(ctx, "ga")
	assert.Equal(t, []string{"t2"}, groupA.TeamIDs)
}
