package usecase

import (
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/repository/memory"
)

var fixedNow = time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)

type testRepos struct {
	teams   *memory.TeamRepository
	matches *memory.MatchRepository
	groups  *memory.GroupRepository
}

func newTestRepos(teams []team.Team, matches []match.Match, groups []group.Group) testRepos {
	return testRepos{
		teams:   memory.NewTeamRepository(teams),
		matches: memory.NewMatchRepository(matches),
		groups:  memory.NewGroupRepository(groups),
	}
}

func completedMatch(id, teamA, teamB string, goalsA, goalsB int) match.Match {
	return match.Match{
		ID:      id,
		Date:    "2026-05-02",
		Time:    "16:00",
		TeamAID: teamA,
		TeamBID: teamB,
		Stage:   match.StageGroup,
		Status:  match.StatusCompleted,
		Score:   &match.Score{TeamA: goalsA, TeamB: goalsB},
	}
}

func scheduledMatch(id, teamA, teamB string) match.Match {
	return match.Match{
		ID:      id,
		Date:    "2026-05-02",
		Time:    "16:00",
		TeamAID: teamA,
		TeamBID: teamB,
		Stage:   match.StageGroup,
		Status:  match.StatusScheduled,
	}
}
