package match

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Stage string

const (
	StageGroup   Stage = "group"
	StageRound16 Stage = "round16"
	StageQuarter Stage = "quarter"
	StageSemi    Stage = "semi"
	StageFinal   Stage = "final"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

type EventType string

const (
	EventGoal       EventType = "goal"
	EventYellowCard EventType = "yellowCard"
	EventRedCard    EventType = "redCard"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	ErrInvalidMatch = errors.New("invalid match")
	ErrInvalidScore = errors.New("invalid score")
	ErrInvalidEvent = errors.New("invalid match event")
)

// Match represents one fixture between two registered teams.
type Match struct {
	ID              string
	Date            string
	Time            string
	TeamAID         string
	TeamBID         string
	Stage           Stage
	GroupName       string
	Status          Status
	Score           *Score
	Events          []Event
	ManOfTheMatch   string
	BracketRound    string
	BracketPosition int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Score struct {
	TeamA int
	TeamB int
}

// Event is one entry of the match log. PlayerName is free text as typed by the scorer.
type Event struct {
	Type       EventType
	PlayerName string
	TeamID     string
	Minute     int
}

func ParseStage(v string) (Stage, error) {
	stage := Stage(strings.ToLower(strings.TrimSpace(v)))
	switch stage {
	case StageGroup, StageRound16, StageQuarter, StageSemi, StageFinal:
		return stage, nil
	default:
		return "", fmt.Errorf("%w: unknown stage %q", ErrInvalidMatch, v)
	}
}

func ParseStatus(v string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(v)))
	switch status {
	case StatusScheduled, StatusLive, StatusCompleted:
		return status, nil
	case "":
		return StatusScheduled, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidMatch, v)
	}
}

func (s Stage) IsKnockout() bool {
	switch s {
	case StageRound16, StageQuarter, StageSemi, StageFinal:
		return true
	default:
		return false
	}
}

// BracketRound returns the slot prefix used by the knockout bracket, or "" for group games.
func (s Stage) BracketRound() string {
	switch s {
	case StageRound16:
		return "r16"
	case StageQuarter:
		return "qf"
	case StageSemi:
		return "sf"
	case StageFinal:
		return "final"
	default:
		return ""
	}
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.TeamAID) == "" || strings.TrimSpace(m.TeamBID) == "" {
		return fmt.Errorf("%w: both teams are required", ErrInvalidMatch)
	}
	if m.TeamAID == m.TeamBID {
		return fmt.Errorf("%w: a team cannot play itself", ErrInvalidMatch)
	}
	if _, err := ParseStage(string(m.Stage)); err != nil {
		return err
	}
	if _, err := time.Parse(dateLayout, m.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidMatch)
	}
	if _, err := time.Parse(timeLayout, m.Time); err != nil {
		return fmt.Errorf("%w: time must be HH:MM", ErrInvalidMatch)
	}
	if m.Score != nil {
		if err := m.Score.Validate(); err != nil {
			return err
		}
	}
	for _, ev := range m.Events {
		if err := ev.Validate(m); err != nil {
			return err
		}
	}

	return nil
}

func (s Score) Validate() error {
	if s.TeamA < 0 || s.TeamB < 0 {
		return fmt.Errorf("%w: goals cannot be negative", ErrInvalidScore)
	}
	return nil
}

func (e Event) Validate(m Match) error {
	switch e.Type {
	case EventGoal, EventYellowCard, EventRedCard:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	if e.TeamID != m.TeamAID && e.TeamID != m.TeamBID {
		return fmt.Errorf("%w: team %s is not part of match %s", ErrInvalidEvent, e.TeamID, m.ID)
	}
	if e.Minute < 0 || e.Minute > 130 {
		return fmt.Errorf("%w: minute %d out of range", ErrInvalidEvent, e.Minute)
	}
	return nil
}

func (m Match) Involves(teamID string) bool {
	return m.TeamAID == teamID || m.TeamBID == teamID
}

func (m Match) IsCompleted() bool {
	return m.Status == StatusCompleted
}

// Winner returns the id of the team that won, or "" when the match is drawn or has no score.
func (m Match) Winner() string {
	if m.Score == nil {
		return ""
	}
	switch {
	case m.Score.TeamA > m.Score.TeamB:
		return m.TeamAID
	case m.Score.TeamB > m.Score.TeamA:
		return m.TeamBID
	default:
		return ""
	}
}
