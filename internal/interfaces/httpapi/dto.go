package httpapi

import (
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/bracket"
	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/scorer"
	"github.com/riskibarqy/football-tournament/internal/domain/staff"
	"github.com/riskibarqy/football-tournament/internal/domain/standing"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/usecase"
)

type statsDTO struct {
	Played         int `json:"played"`
	Won            int `json:"won"`
	Drawn          int `json:"drawn"`
	Lost           int `json:"lost"`
	GoalsFor       int `json:"goalsFor"`
	GoalsAgainst   int `json:"goalsAgainst"`
	GoalDifference int `json:"goalDifference"`
	Points         int `json:"points"`
}

type playerDTO struct {
	ID          string     `json:"id"`
	FullName    string     `json:"fullName"`
	FeePaid     bool       `json:"feePaid"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

type teamDTO struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	GroupName     string      `json:"groupName,omitempty"`
	Players       []playerDTO `json:"players"`
	UnpaidPlayers int         `json:"unpaidPlayers"`
	Stats         statsDTO    `json:"stats"`
}

type scoreDTO struct {
	TeamA int `json:"teamA"`
	TeamB int `json:"teamB"`
}

type eventDTO struct {
	Type       string `json:"type"`
	PlayerName string `json:"playerName"`
	TeamID     string `json:"teamId"`
	Minute     int    `json:"minute"`
}

type matchDTO struct {
	ID              string     `json:"id"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	TeamAID         string     `json:"teamAId"`
	TeamBID         string     `json:"teamBId"`
	Stage           string     `json:"stage"`
	GroupName       string     `json:"groupName,omitempty"`
	Status          string     `json:"status"`
	Score           *scoreDTO  `json:"score,omitempty"`
	Events          []eventDTO `json:"events"`
	ManOfTheMatch   string     `json:"manOfTheMatch,omitempty"`
	BracketRound    string     `json:"bracketRound,omitempty"`
	BracketPosition int        `json:"bracketPosition,omitempty"`
}

type groupDTO struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	TeamIDs   []string `json:"teamIds"`
	Completed bool     `json:"completed"`
}

type standingRowDTO struct {
	Position  int      `json:"position"`
	TeamID    string   `json:"teamId"`
	TeamName  string   `json:"teamName"`
	GroupName string   `json:"groupName,omitempty"`
	Stats     statsDTO `json:"stats"`
}

type inconsistencyDTO struct {
	MatchID string `json:"matchId"`
	TeamID  string `json:"teamId,omitempty"`
	Reason  string `json:"reason"`
}

type recomputeDTO struct {
	TeamsUpdated     int                `json:"teamsUpdated"`
	MatchesProcessed int                `json:"matchesProcessed"`
	Skipped          []inconsistencyDTO `json:"skipped,omitempty"`
}

type teamDriftDTO struct {
	TeamID   string   `json:"teamId"`
	TeamName string   `json:"teamName"`
	Fields   []string `json:"fields"`
	Stored   statsDTO `json:"stored"`
	Computed statsDTO `json:"computed"`
}

type validationDTO struct {
	InconsistenciesFound int                `json:"inconsistenciesFound"`
	Teams                []teamDriftDTO     `json:"teams,omitempty"`
	SkippedMatches       []inconsistencyDTO `json:"skippedMatches,omitempty"`
}

type slotDTO struct {
	ID        string    `json:"id"`
	Round     string    `json:"round"`
	Position  int       `json:"position"`
	TeamAID   string    `json:"teamAId,omitempty"`
	TeamAName string    `json:"teamAName,omitempty"`
	TeamBID   string    `json:"teamBId,omitempty"`
	TeamBName string    `json:"teamBName,omitempty"`
	WinnerID  string    `json:"winnerId,omitempty"`
	MatchID   string    `json:"matchId,omitempty"`
	Score     *scoreDTO `json:"score,omitempty"`
	Status    string    `json:"status,omitempty"`
	// NextSlotID is where the winner is entered; empty for the final.
	NextSlotID string `json:"nextSlotId,omitempty"`
}

type unplacedDTO struct {
	MatchID string `json:"matchId"`
	Reason  string `json:"reason"`
}

type bracketDTO struct {
	Slots    []slotDTO     `json:"slots"`
	Unplaced []unplacedDTO `json:"unplaced,omitempty"`
}

type scorerDTO struct {
	PlayerName string `json:"playerName"`
	TeamID     string `json:"teamId"`
	Goals      int    `json:"goals"`
}

type bookingDTO struct {
	PlayerName  string `json:"playerName"`
	TeamID      string `json:"teamId"`
	YellowCards int    `json:"yellowCards"`
	RedCards    int    `json:"redCards"`
}

type staffDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}

type loginDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	AdminID   string    `json:"adminId"`
	Username  string    `json:"username"`
}

type accountDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func statsToDTO(s team.Stats) statsDTO {
	return statsDTO{
		Played:         s.Played,
		Won:            s.Won,
		Drawn:          s.Drawn,
		Lost:           s.Lost,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference(),
		Points:         s.Points,
	}
}

func teamToDTO(t team.Team) teamDTO {
	players := make([]playerDTO, 0, len(t.Roster))
	for _, p := range t.Roster {
		players = append(players, playerDTO{
			ID:          p.ID,
			FullName:    p.FullName,
			FeePaid:     p.FeePaid,
			PaymentDate: p.PaymentDate,
		})
	}
	return teamDTO{
		ID:            t.ID,
		Name:          t.Name,
		GroupName:     t.GroupName,
		Players:       players,
		UnpaidPlayers: t.UnpaidPlayers(),
		Stats:         statsToDTO(t.Stats),
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, t := range items {
		out = append(out, teamToDTO(t))
	}
	return out
}

func scoreToDTO(s *match.Score) *scoreDTO {
	if s == nil {
		return nil
	}
	return &scoreDTO{TeamA: s.TeamA, TeamB: s.TeamB}
}

func matchToDTO(m match.Match) matchDTO {
	events := make([]eventDTO, 0, len(m.Events))
	for _, ev := range m.Events {
		events = append(events, eventDTO{
			Type:       string(ev.Type),
			PlayerName: ev.PlayerName,
			TeamID:     ev.TeamID,
			Minute:     ev.Minute,
		})
	}
	return matchDTO{
		ID:              m.ID,
		Date:            m.Date,
		Time:            m.Time,
		TeamAID:         m.TeamAID,
		TeamBID:         m.TeamBID,
		Stage:           string(m.Stage),
		GroupName:       m.GroupName,
		Status:          string(m.Status),
		Score:           scoreToDTO(m.Score),
		Events:          events,
		ManOfTheMatch:   m.ManOfTheMatch,
		BracketRound:    m.BracketRound,
		BracketPosition: m.BracketPosition,
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(m))
	}
	return out
}

func groupToDTO(g group.Group) groupDTO {
	ids := g.TeamIDs
	if ids == nil {
		ids = []string{}
	}
	return groupDTO{ID: g.ID, Name: g.Name, TeamIDs: ids, Completed: g.Completed}
}

func standingRowsToDTO(rows []standing.Row) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingRowDTO{
			Position:  row.Position,
			TeamID:    row.TeamID,
			TeamName:  row.TeamName,
			GroupName: row.GroupName,
			Stats:     statsToDTO(row.Stats),
		})
	}
	return out
}

func inconsistenciesToDTO(items []standing.Inconsistency) []inconsistencyDTO {
	if len(items) == 0 {
		return nil
	}
	out := make([]inconsistencyDTO, 0, len(items))
	for _, item := range items {
		out = append(out, inconsistencyDTO{MatchID: item.MatchID, TeamID: item.TeamID, Reason: item.Reason})
	}
	return out
}

func recomputeToDTO(res usecase.RecomputeResult) recomputeDTO {
	return recomputeDTO{
		TeamsUpdated:     res.TeamsUpdated,
		MatchesProcessed: res.MatchesProcessed,
		Skipped:          inconsistenciesToDTO(res.Skipped),
	}
}

func validationToDTO(res usecase.ValidationResult) validationDTO {
	out := validationDTO{
		InconsistenciesFound: res.InconsistenciesFound,
		SkippedMatches:       inconsistenciesToDTO(res.SkippedMatches),
	}
	for _, d := range res.Teams {
		out.Teams = append(out.Teams, teamDriftDTO{
			TeamID:   d.TeamID,
			TeamName: d.TeamName,
			Fields:   d.Fields,
			Stored:   statsToDTO(d.Stored),
			Computed: statsToDTO(d.Computed),
		})
	}
	return out
}

func bracketToDTO(view usecase.BracketView) bracketDTO {
	out := bracketDTO{Slots: make([]slotDTO, 0, len(view.Slots))}
	for _, s := range view.Slots {
		out.Slots = append(out.Slots, slotToDTO(s))
	}
	for _, u := range view.Unplaced {
		out.Unplaced = append(out.Unplaced, unplacedDTO{MatchID: u.MatchID, Reason: u.Reason})
	}
	return out
}

func slotToDTO(s bracket.Slot) slotDTO {
	next, _ := bracket.NextSlotID(s.Round, s.Position)
	return slotDTO{
		ID:         s.ID,
		Round:      s.Round,
		Position:   s.Position,
		TeamAID:    s.TeamAID,
		TeamAName:  s.TeamAName,
		TeamBID:    s.TeamBID,
		TeamBName:  s.TeamBName,
		WinnerID:   s.WinnerID,
		MatchID:    s.MatchID,
		Score:      scoreToDTO(s.Score),
		Status:     string(s.Status),
		NextSlotID: next,
	}
}

func scorersToDTO(items []scorer.Scorer) []scorerDTO {
	out := make([]scorerDTO, 0, len(items))
	for _, s := range items {
		out = append(out, scorerDTO{PlayerName: s.PlayerName, TeamID: s.TeamID, Goals: s.Goals})
	}
	return out
}

func bookingsToDTO(items []scorer.Booking) []bookingDTO {
	out := make([]bookingDTO, 0, len(items))
	for _, b := range items {
		out = append(out, bookingDTO{
			PlayerName:  b.PlayerName,
			TeamID:      b.TeamID,
			YellowCards: b.YellowCards,
			RedCards:    b.RedCards,
		})
	}
	return out
}

func staffToDTO(m staff.Member) staffDTO {
	return staffDTO{ID: m.ID, Name: m.Name, Role: string(m.Role), Phone: m.Phone}
}
