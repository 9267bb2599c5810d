package scorer

import (
	"testing"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMatches() []match.Match {
	return []match.Match{
		{
			ID:     "m1",
			Status: match.StatusCompleted,
			Events: []match.Event{
				{Type: match.EventGoal, PlayerName: "Omar Saleh", TeamID: "a", Minute: 10},
				{Type: match.EventGoal, PlayerName: "omar  saleh ", TeamID: "a", Minute: 55},
				{Type: match.EventGoal, PlayerName: "Yousef", TeamID: "b", Minute: 70},
				{Type: match.EventYellowCard, PlayerName: "Yousef", TeamID: "b", Minute: 71},
			},
		},
		{
			ID:     "m2",
			Status: match.StatusLive,
			Events: []match.Event{
				{Type: match.EventGoal, PlayerName: "Yousef", TeamID: "b", Minute: 5},
				{Type: match.EventRedCard, PlayerName: "Karim", TeamID: "c", Minute: 30},
			},
		},
		{
			ID:     "scheduled",
			Status: match.StatusScheduled,
			Events: []match.Event{{Type: match.EventGoal, PlayerName: "Ghost", TeamID: "c"}},
		},
	}
}

func TestTopScorers(t *testing.T) {
	got := TopScorers(sampleMatches(), 0)

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Goals)
	assert.Equal(t, 2, got[1].Goals)
	assert.Equal(t, "Omar Saleh", got[0].PlayerName)
	assert.Equal(t, "Yousef", got[1].PlayerName)
}

func TestTopScorers_Limit(t *testing.T) {
	got := TopScorers(sampleMatches(), 1)
	require.Len(t, got, 1)
}

func TestDiscipline(t *testing.T) {
	got := Discipline(sampleMatches())

	require.Len(t, got, 2)
	assert.Equal(t, "Karim", got[0].PlayerName)
	assert.Equal(t, 1, got[0].RedCards)
	assert.Equal(t, "Yousef", got[1].PlayerName)
	assert.Equal(t, 1, got[1].YellowCards)
}
