package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/team"
)

type teamTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	Name         string         `db:"name"`
	GroupName    sql.NullString `db:"group_name"`
	Roster       []byte         `db:"roster"`
	Played       int            `db:"played"`
	Won          int            `db:"won"`
	Drawn        int            `db:"drawn"`
	Lost         int            `db:"lost"`
	GoalsFor     int            `db:"goals_for"`
	GoalsAgainst int            `db:"goals_against"`
	Points       int            `db:"points"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

type teamWriteModel struct {
	PublicID     string         `db:"public_id"`
	Name         string         `db:"name"`
	GroupName    sql.NullString `db:"group_name"`
	Roster       []byte         `db:"roster"`
	Played       int            `db:"played"`
	Won          int            `db:"won"`
	Drawn        int            `db:"drawn"`
	Lost         int            `db:"lost"`
	GoalsFor     int            `db:"goals_for"`
	GoalsAgainst int            `db:"goals_against"`
	Points       int            `db:"points"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type rosterEntry struct {
	ID          string     `json:"id"`
	FullName    string     `json:"fullName"`
	FeePaid     bool       `json:"feePaid"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

func teamWriteFromDomain(item team.Team) (teamWriteModel, error) {
	entries := make([]rosterEntry, 0, len(item.Roster))
	for _, p := range item.Roster {
		entries = append(entries, rosterEntry(p))
	}
	roster, err := encodeJSONB(entries)
	if err != nil {
		return teamWriteModel{}, err
	}

	return teamWriteModel{
		PublicID:     item.ID,
		Name:         item.Name,
		GroupName:    nullString(item.GroupName),
		Roster:       roster,
		Played:       item.Stats.Played,
		Won:          item.Stats.Won,
		Drawn:        item.Stats.Drawn,
		Lost:         item.Stats.Lost,
		GoalsFor:     item.Stats.GoalsFor,
		GoalsAgainst: item.Stats.GoalsAgainst,
		Points:       item.Stats.Points,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}, nil
}

func teamFromRow(row teamTableModel) (team.Team, error) {
	var entries []rosterEntry
	if err := decodeJSONB(row.Roster, &entries); err != nil {
		return team.Team{}, err
	}
	var roster []team.Player
	for _, e := range entries {
		roster = append(roster, team.Player(e))
	}

	return team.Team{
		ID:        row.PublicID,
		Name:      row.Name,
		GroupName: row.GroupName.String,
		Roster:    roster,
		Stats: team.Stats{
			Played:       row.Played,
			Won:          row.Won,
			Drawn:        row.Drawn,
			Lost:         row.Lost,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			Points:       row.Points,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
