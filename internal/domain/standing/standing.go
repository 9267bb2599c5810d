package standing

import (
	"sort"
	"strings"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

const (
	ReasonMissingScore = "completed match has no score"
	ReasonUnknownTeam  = "match references unknown team"
)

// Inconsistency describes a completed match the aggregator had to skip.
type Inconsistency struct {
	MatchID string
	TeamID  string
	Reason  string
}

// Result is the outcome of replaying the match log.
type Result struct {
	Stats            map[string]team.Stats
	MatchesProcessed int
	Skipped          []Inconsistency
}

// Compute rebuilds every team's stats block from scratch using only completed matches.
// Matches that cannot be applied are reported in Skipped and do not stop the replay.
func Compute(teamIDs []string, matches []match.Match) Result {
	stats := make(map[string]team.Stats, len(teamIDs))
	for _, id := range teamIDs {
		stats[id] = team.Stats{}
	}

	out := Result{Stats: stats}
	for _, m := range matches {
		if !m.IsCompleted() {
			continue
		}
		if m.Score == nil {
			out.Skipped = append(out.Skipped, Inconsistency{MatchID: m.ID, Reason: ReasonMissingScore})
			continue
		}
		a, okA := stats[m.TeamAID]
		b, okB := stats[m.TeamBID]
		if !okA || !okB {
			missing := m.TeamAID
			if okA {
				missing = m.TeamBID
			}
			out.Skipped = append(out.Skipped, Inconsistency{MatchID: m.ID, TeamID: missing, Reason: ReasonUnknownTeam})
			continue
		}

		stats[m.TeamAID] = ApplyOutcome(a, m.Score.TeamA, m.Score.TeamB, 1)
		stats[m.TeamBID] = ApplyOutcome(b, m.Score.TeamB, m.Score.TeamA, 1)
		out.MatchesProcessed++
	}

	return out
}

// ApplyOutcome adds (sign=1) or removes (sign=-1) one result from a stats block.
// It is the only place where match scores turn into table numbers.
func ApplyOutcome(s team.Stats, goalsFor, goalsAgainst, sign int) team.Stats {
	s.Played += sign
	s.GoalsFor += sign * goalsFor
	s.GoalsAgainst += sign * goalsAgainst

	switch {
	case goalsFor > goalsAgainst:
		s.Won += sign
		s.Points += sign * pointsWin
	case goalsFor == goalsAgainst:
		s.Drawn += sign
		s.Points += sign * pointsDraw
	default:
		s.Lost += sign
	}

	return s
}

// Diff lists the stats fields that differ between two blocks.
func Diff(stored, computed team.Stats) []string {
	var fields []string
	if stored.Played != computed.Played {
		fields = append(fields, "played")
	}
	if stored.Won != computed.Won {
		fields = append(fields, "won")
	}
	if stored.Drawn != computed.Drawn {
		fields = append(fields, "drawn")
	}
	if stored.Lost != computed.Lost {
		fields = append(fields, "lost")
	}
	if stored.GoalsFor != computed.GoalsFor {
		fields = append(fields, "goalsFor")
	}
	if stored.GoalsAgainst != computed.GoalsAgainst {
		fields = append(fields, "goalsAgainst")
	}
	if stored.Points != computed.Points {
		fields = append(fields, "points")
	}
	return fields
}

// Row is one line of a standings table.
type Row struct {
	Position  int
	TeamID    string
	TeamName  string
	GroupName string
	Stats     team.Stats
}

// Rank orders rows by points, goal difference, then goals scored, all descending.
// Remaining ties fall back to team name and id so the order is deterministic.
func Rank(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Stats, out[j].Stats
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		nameA, nameB := strings.ToLower(out[i].TeamName), strings.ToLower(out[j].TeamName)
		if nameA != nameB {
			return nameA < nameB
		}
		return out[i].TeamID < out[j].TeamID
	})

	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

// RowsFromTeams builds table rows for the teams in groupName, or all teams when it is empty.
func RowsFromTeams(teams []team.Team, groupName string) []Row {
	groupName = strings.TrimSpace(groupName)
	rows := make([]Row, 0, len(teams))
	for _, t := range teams {
		if groupName != "" && !strings.EqualFold(t.GroupName, groupName) {
			continue
		}
		rows = append(rows, Row{
			TeamID:    t.ID,
			TeamName:  t.Name,
			GroupName: t.GroupName,
			Stats:     t.Stats,
		})
	}
	return rows
}
