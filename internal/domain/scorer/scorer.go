package scorer

import (
	"sort"
	"strings"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
)

// Scorer is one row of the goal-scorer table.
type Scorer struct {
	PlayerName string
	TeamID     string
	Goals      int
}

// Booking is one row of the discipline table.
type Booking struct {
	PlayerName  string
	TeamID      string
	YellowCards int
	RedCards    int
}

type playerKey struct {
	name   string
	teamID string
}

// Player names are free text, so entries are grouped on a folded, space-normalized name.
func keyOf(ev match.Event) playerKey {
	return playerKey{
		name:   strings.ToLower(strings.Join(strings.Fields(ev.PlayerName), " ")),
		teamID: ev.TeamID,
	}
}

func countable(m match.Match) bool {
	return m.Status == match.StatusLive || m.Status == match.StatusCompleted
}

// TopScorers ranks players by goals recorded in live and completed matches.
// A non-positive limit returns every scorer.
func TopScorers(matches []match.Match, limit int) []Scorer {
	rows := make(map[playerKey]*Scorer)
	for _, m := range matches {
		if !countable(m) {
			continue
		}
		for _, ev := range m.Events {
			if ev.Type != match.EventGoal || strings.TrimSpace(ev.PlayerName) == "" {
				continue
			}
			key := keyOf(ev)
			row, ok := rows[key]
			if !ok {
				row = &Scorer{PlayerName: strings.TrimSpace(ev.PlayerName), TeamID: ev.TeamID}
				rows[key] = row
			}
			row.Goals++
		}
	}

	out := make([]Scorer, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		if out[i].PlayerName != out[j].PlayerName {
			return out[i].PlayerName < out[j].PlayerName
		}
		return out[i].TeamID < out[j].TeamID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Discipline lists every booked player, most red cards first.
func Discipline(matches []match.Match) []Booking {
	rows := make(map[playerKey]*Booking)
	for _, m := range matches {
		if !countable(m) {
			continue
		}
		for _, ev := range m.Events {
			if ev.Type != match.EventYellowCard && ev.Type != match.EventRedCard {
				continue
			}
			key := keyOf(ev)
			row, ok := rows[key]
			if !ok {
				row = &Booking{PlayerName: strings.TrimSpace(ev.PlayerName), TeamID: ev.TeamID}
				rows[key] = row
			}
			if ev.Type == match.EventRedCard {
				row.RedCards++
			} else {
				row.YellowCards++
			}
		}
	}

	out := make([]Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RedCards != out[j].RedCards {
			return out[i].RedCards > out[j].RedCards
		}
		if out[i].YellowCards != out[j].YellowCards {
			return out[i].YellowCards > out[j].YellowCards
		}
		if out[i].PlayerName != out[j].PlayerName {
			return out[i].PlayerName < out[j].PlayerName
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}
