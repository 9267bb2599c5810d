package memory

import (
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/staff"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
)

const (
	GroupIDA = "grp-a"
	GroupIDB = "grp-b"
)

var seedCreatedAt = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

// SeedTeams returns a demo tournament with zeroed stats; a recompute fills them in.
func SeedTeams() []team.Team {
	names := []struct {
		id, name, group string
	}{
		{"team-lions", "Lions FC", "A"},
		{"team-eagles", "Eagles United", "A"},
		{"team-falcons", "Falcons", "A"},
		{"team-sharks", "Sharks SC", "A"},
		{"team-wolves", "Wolves", "B"},
		{"team-tigers", "Tigers Athletic", "B"},
		{"team-bears", "Bears", "B"},
		{"team-hawks", "Hawks Rovers", "B"},
	}

	out := make([]team.Team, 0, len(names))
	for _, n := range names {
		out = append(out, team.Team{
			ID:        n.id,
			Name:      n.name,
			GroupName: n.group,
			Roster: []team.Player{
				{ID: n.id + "-p1", FullName: n.name + " Captain", FeePaid: true, PaymentDate: &seedCreatedAt},
				{ID: n.id + "-p2", FullName: n.name + " Keeper"},
			},
			CreatedAt: seedCreatedAt,
			UpdatedAt: seedCreatedAt,
		})
	}
	return out
}

func SeedGroups() []group.Group {
	return []group.Group{
		{ID: GroupIDA, Name: "A", TeamIDs: []string{"team-lions", "team-eagles", "team-falcons", "team-sharks"}},
		{ID: GroupIDB, Name: "B", TeamIDs: []string{"team-wolves", "team-tigers", "team-bears", "team-hawks"}},
	}
}

func SeedMatches() []match.Match {
	completed := func(id, date, a, b string, ga, gb int, events ...match.Event) match.Match {
		return match.Match{
			ID:        id,
			Date:      date,
			Time:      "16:00",
			TeamAID:   a,
			TeamBID:   b,
			Stage:     match.StageGroup,
			GroupName: groupOf(a),
			Status:    match.StatusCompleted,
			Score:     &match.Score{TeamA: ga, TeamB: gb},
			Events:    events,
			CreatedAt: seedCreatedAt,
			UpdatedAt: seedCreatedAt,
		}
	}

	return []match.Match{
		completed("m-001", "2026-05-02", "team-lions", "team-eagles", 2, 1,
			match.Event{Type: match.EventGoal, PlayerName: "Lions FC Captain", TeamID: "team-lions", Minute: 12},
			match.Event{Type: match.EventGoal, PlayerName: "Eagles United Captain", TeamID: "team-eagles", Minute: 40},
			match.Event{Type: match.EventGoal, PlayerName: "Lions FC Captain", TeamID: "team-lions", Minute: 77},
			match.Event{Type: match.EventYellowCard, PlayerName: "Eagles United Keeper", TeamID: "team-eagles", Minute: 80},
		),
		completed("m-002", "2026-05-02", "team-falcons", "team-sharks", 1, 1,
			match.Event{Type: match.EventGoal, PlayerName: "Falcons Captain", TeamID: "team-falcons", Minute: 5},
			match.Event{Type: match.EventGoal, PlayerName: "Sharks SC Captain", TeamID: "team-sharks", Minute: 88},
		),
		completed("m-003", "2026-05-03", "team-wolves", "team-tigers", 0, 3,
			match.Event{Type: match.EventGoal, PlayerName: "Tigers Athletic Captain", TeamID: "team-tigers", Minute: 20},
			match.Event{Type: match.EventGoal, PlayerName: "Tigers Athletic Captain", TeamID: "team-tigers", Minute: 55},
			match.Event{Type: match.EventGoal, PlayerName: "Tigers Athletic Keeper", TeamID: "team-tigers", Minute: 90},
			match.Event{Type: match.EventRedCard, PlayerName: "Wolves Captain", TeamID: "team-wolves", Minute: 61},
		),
		{
			ID:        "m-004",
			Date:      "2026-05-03",
			Time:      "18:00",
			TeamAID:   "team-bears",
			TeamBID:   "team-hawks",
			Stage:     match.StageGroup,
			GroupName: "B",
			Status:    match.StatusScheduled,
			CreatedAt: seedCreatedAt,
			UpdatedAt: seedCreatedAt,
		},
		{
			ID:              "m-005",
			Date:            "2026-05-10",
			Time:            "16:00",
			TeamAID:         "team-lions",
			TeamBID:         "team-tigers",
			Stage:           match.StageQuarter,
			Status:          match.StatusScheduled,
			BracketRound:    "qf",
			BracketPosition: 1,
			CreatedAt:       seedCreatedAt,
			UpdatedAt:       seedCreatedAt,
		},
	}
}

func SeedStaff() []staff.Member {
	return []staff.Member{
		{ID: "staff-ref-1", Name: "Ahmad Referee", Role: staff.RoleReferee, Phone: "+62-811-0001"},
		{ID: "staff-org-1", Name: "Siti Organizer", Role: staff.RoleOrganizer, Phone: "+62-811-0002"},
		{ID: "staff-med-1", Name: "Budi Medic", Role: staff.RoleMedic},
	}
}

func groupOf(teamID string) string {
	for _, g := range SeedGroups() {
		if g.HasTeam(teamID) {
			return g.Name
		}
	}
	return ""
}
