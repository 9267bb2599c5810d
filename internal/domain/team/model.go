package team

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const maxNameLength = 100

var ErrInvalidTeam = errors.New("invalid team")

// Team is a registered club together with its roster and cumulative table stats.
type Team struct {
	ID        string
	Name      string
	GroupName string
	Roster    []Player
	Stats     Stats
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Player struct {
	ID          string
	FullName    string
	FeePaid     bool
	PaymentDate *time.Time
}

// Stats is the table block derived from completed matches.
type Stats struct {
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

func (s Stats) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// Consistent reports whether played and points agree with the result counters.
func (s Stats) Consistent() bool {
	return s.Played == s.Won+s.Drawn+s.Lost && s.Points == 3*s.Won+s.Drawn
}

func (t Team) Validate() error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTeam)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidTeam, maxNameLength)
	}
	for i, p := range t.Roster {
		if strings.TrimSpace(p.FullName) == "" {
			return fmt.Errorf("%w: player #%d full name is required", ErrInvalidTeam, i+1)
		}
	}

	return nil
}

func (t Team) PlayerByID(playerID string) (Player, int, bool) {
	for idx, p := range t.Roster {
		if p.ID == playerID {
			return p, idx, true
		}
	}
	return Player{}, -1, false
}

// UnpaidPlayers counts roster entries whose registration fee is outstanding.
func (t Team) UnpaidPlayers() int {
	count := 0
	for _, p := range t.Roster {
		if !p.FeePaid {
			count++
		}
	}
	return count
}
