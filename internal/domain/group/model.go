package group

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidGroup = errors.New("invalid group")

// Group partitions the round-robin stage. TeamIDs is the authoritative membership list.
type Group struct {
	ID        string
	Name      string
	TeamIDs   []string
	Completed bool
}

func (g Group) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidGroup)
	}
	seen := make(map[string]struct{}, len(g.TeamIDs))
	for _, id := range g.TeamIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: team %s listed twice", ErrInvalidGroup, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (g Group) HasTeam(teamID string) bool {
	for _, id := range g.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}

// WithoutTeam returns a copy of the membership list minus teamID.
func (g Group) WithoutTeam(teamID string) []string {
	out := make([]string, 0, len(g.TeamIDs))
	for _, id := range g.TeamIDs {
		if id != teamID {
			out = append(out, id)
		}
	}
	return out
}
