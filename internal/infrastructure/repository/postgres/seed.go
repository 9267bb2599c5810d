package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/football-tournament/internal/platform/querybuilder"
)

const onConflictSkip = "ON CONFLICT (public_id) DO NOTHING"

// BootstrapSeed loads the demo tournament into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return errors.Wrap(err, "count teams for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC()

	for _, g := range memory.SeedGroups() {
		if err := execModel(ctx, tx, groupsTable, groupInsertModel{
			PublicID:  g.ID,
			Name:      g.Name,
			TeamIDs:   pq.StringArray(teamIDsOrEmpty(g.TeamIDs)),
			Completed: g.Completed,
		}); err != nil {
			return errors.Wrapf(err, "seed group %s", g.ID)
		}
	}

	for _, t := range memory.SeedTeams() {
		if t.CreatedAt.IsZero() {
			t.CreatedAt, t.UpdatedAt = now, now
		}
		model, err := teamWriteFromDomain(t)
		if err != nil {
			return errors.Wrapf(err, "encode seed team %s", t.ID)
		}
		if err := execModel(ctx, tx, teamsTable, model); err != nil {
			return errors.Wrapf(err, "seed team %s", t.ID)
		}
	}

	for _, m := range memory.SeedMatches() {
		if m.CreatedAt.IsZero() {
			m.CreatedAt, m.UpdatedAt = now, now
		}
		model, err := matchWriteFromDomain(m)
		if err != nil {
			return errors.Wrapf(err, "encode seed match %s", m.ID)
		}
		if err := execModel(ctx, tx, matchesTable, model); err != nil {
			return errors.Wrapf(err, "seed match %s", m.ID)
		}
	}

	for _, s := range memory.SeedStaff() {
		if err := execModel(ctx, tx, staffTable, staffInsertModel{
			PublicID: s.ID,
			Name:     s.Name,
			Role:     string(s.Role),
			Phone:    nullString(s.Phone),
		}); err != nil {
			return errors.Wrapf(err, "seed staff %s", s.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit seed tx")
	}
	return nil
}

func execModel(ctx context.Context, tx *sqlx.Tx, table string, model any) error {
	query, args, err := qb.InsertModel(table, model, onConflictSkip)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}
