package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_Validate(t *testing.T) {
	base := Match{
		ID:      "m1",
		Date:    "2026-07-01",
		Time:    "18:30",
		TeamAID: "a",
		TeamBID: "b",
		Stage:   StageGroup,
		Status:  StatusScheduled,
	}

	tests := []struct {
		name      string
		mutate    func(*Match)
		targetErr error
	}{
		{name: "valid", mutate: func(*Match) {}},
		{name: "same team", mutate: func(m *Match) { m.TeamBID = "a" }, targetErr: ErrInvalidMatch},
		{name: "missing team", mutate: func(m *Match) { m.TeamAID = "" }, targetErr: ErrInvalidMatch},
		{name: "bad stage", mutate: func(m *Match) { m.Stage = "playoff" }, targetErr: ErrInvalidMatch},
		{name: "bad date", mutate: func(m *Match) { m.Date = "01/07/2026" }, targetErr: ErrInvalidMatch},
		{name: "bad time", mutate: func(m *Match) { m.Time = "6pm" }, targetErr: ErrInvalidMatch},
		{name: "negative score", mutate: func(m *Match) { m.Score = &Score{TeamA: -1} }, targetErr: ErrInvalidScore},
		{
			name: "event for other team",
			mutate: func(m *Match) {
				m.Events = []Event{{Type: EventGoal, PlayerName: "x", TeamID: "c", Minute: 10}}
			},
			targetErr: ErrInvalidEvent,
		},
		{
			name: "unknown event",
			mutate: func(m *Match) {
				m.Events = []Event{{Type: "penalty", PlayerName: "x", TeamID: "a", Minute: 10}}
			},
			targetErr: ErrInvalidEvent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := base
			tc.mutate(&item)
			err := item.Validate()
			if tc.targetErr == nil {
				require.NoError(t, err)
				return
			}
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}

func TestMatch_Winner(t *testing.T) {
	m := Match{TeamAID: "a", TeamBID: "b"}
	assert.Equal(t, "", m.Winner())

	m.Score = &Score{TeamA: 2, TeamB: 1}
	assert.Equal(t, "a", m.Winner())

	m.Score = &Score{TeamA: 0, TeamB: 3}
	assert.Equal(t, "b", m.Winner())

	m.Score = &Score{TeamA: 1, TeamB: 1}
	assert.Equal(t, "", m.Winner())
}

func TestStage_BracketRound(t *testing.T) {
	assert.Equal(t, "r16", StageRound16.BracketRound())
	assert.Equal(t, "qf", StageQuarter.BracketRound())
	assert.Equal(t, "sf", StageSemi.BracketRound())
	assert.Equal(t, "final", StageFinal.BracketRound())
	assert.Equal(t, "", StageGroup.BracketRound())
	assert.False(t, StageGroup.IsKnockout())
	assert.True(t, StageFinal.IsKnockout())
}

func TestParseStatus_DefaultsToScheduled(t *testing.T) {
	got, err := ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, got)

	_, err = ParseStatus("postponed")
	assert.ErrorIs(t, err, ErrInvalidMatch)
}
