package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
)

type matchTableModel struct {
	ID              int64          `db:"id"`
	PublicID        string         `db:"public_id"`
	MatchDate       string         `db:"match_date"`
	KickoffTime     string         `db:"kickoff_time"`
	TeamAID         string         `db:"team_a_public_id"`
	TeamBID         string         `db:"team_b_public_id"`
	Stage           string         `db:"stage"`
	GroupName       sql.NullString `db:"group_name"`
	Status          string         `db:"status"`
	ScoreA          sql.NullInt64  `db:"score_a"`
	ScoreB          sql.NullInt64  `db:"score_b"`
	Events          []byte         `db:"events"`
	ManOfTheMatch   sql.NullString `db:"man_of_the_match"`
	BracketRound    sql.NullString `db:"bracket_round"`
	BracketPosition sql.NullInt64  `db:"bracket_position"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	DeletedAt       *time.Time     `db:"deleted_at"`
}

type matchWriteModel struct {
	PublicID        string         `db:"public_id"`
	MatchDate       string         `db:"match_date"`
	KickoffTime     string         `db:"kickoff_time"`
	TeamAID         string         `db:"team_a_public_id"`
	TeamBID         string         `db:"team_b_public_id"`
	Stage           string         `db:"stage"`
	GroupName       sql.NullString `db:"group_name"`
	Status          string         `db:"status"`
	ScoreA          sql.NullInt64  `db:"score_a"`
	ScoreB          sql.NullInt64  `db:"score_b"`
	Events          []byte         `db:"events"`
	ManOfTheMatch   sql.NullString `db:"man_of_the_match"`
	BracketRound    sql.NullString `db:"bracket_round"`
	BracketPosition sql.NullInt64  `db:"bracket_position"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type eventEntry struct {
	Type       string `json:"type"`
	PlayerName string `json:"playerName"`
	TeamID     string `json:"teamId"`
	Minute     int    `json:"minute"`
}

func matchWriteFromDomain(item match.Match) (matchWriteModel, error) {
	entries := make([]eventEntry, 0, len(item.Events))
	for _, ev := range item.Events {
		entries = append(entries, eventEntry{
			Type:       string(ev.Type),
			PlayerName: ev.PlayerName,
			TeamID:     ev.TeamID,
			Minute:     ev.Minute,
		})
	}
	events, err := encodeJSONB(entries)
	if err != nil {
		return matchWriteModel{}, err
	}

	model := matchWriteModel{
		PublicID:      item.ID,
		MatchDate:     item.Date,
		KickoffTime:   item.Time,
		TeamAID:       item.TeamAID,
		TeamBID:       item.TeamBID,
		Stage:         string(item.Stage),
		GroupName:     nullString(item.GroupName),
		Status:        string(item.Status),
		Events:        events,
		ManOfTheMatch: nullString(item.ManOfTheMatch),
		BracketRound:  nullString(item.BracketRound),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
	if item.Score != nil {
		model.ScoreA = sql.NullInt64{Int64: int64(item.Score.TeamA), Valid: true}
		model.ScoreB = sql.NullInt64{Int64: int64(item.Score.TeamB), Valid: true}
	}
	if item.BracketPosition > 0 {
		model.BracketPosition = sql.NullInt64{Int64: int64(item.BracketPosition), Valid: true}
	}
	return model, nil
}

func matchFromRow(row matchTableModel) (match.Match, error) {
	var entries []eventEntry
	if err := decodeJSONB(row.Events, &entries); err != nil {
		return match.Match{}, err
	}

	item := match.Match{
		ID:              row.PublicID,
		Date:            row.MatchDate,
		Time:            row.KickoffTime,
		TeamAID:         row.TeamAID,
		TeamBID:         row.TeamBID,
		Stage:           match.Stage(row.Stage),
		GroupName:       row.GroupName.String,
		Status:          match.Status(row.Status),
		ManOfTheMatch:   row.ManOfTheMatch.String,
		BracketRound:    row.BracketRound.String,
		BracketPosition: int(row.BracketPosition.Int64),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.ScoreA.Valid && row.ScoreB.Valid {
		item.Score = &match.Score{TeamA: int(row.ScoreA.Int64), TeamB: int(row.ScoreB.Int64)}
	}
	for _, e := range entries {
		item.Events = append(item.Events, match.Event{
			Type:       match.EventType(e.Type),
			PlayerName: e.PlayerName,
			TeamID:     e.TeamID,
			Minute:     e.Minute,
		})
	}
	return item, nil
}
