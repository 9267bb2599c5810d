package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	qb "github.com/riskibarqy/football-tournament/internal/platform/querybuilder"
)

const matchesTable = "matches"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	conds := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.Stage != "" {
		conds = append(conds, qb.Eq("stage", string(filter.Stage)))
	}
	if filter.Status != "" {
		conds = append(conds, qb.Eq("status", string(filter.Status)))
	}
	if filter.TeamID != "" {
		conds = append(conds, qb.Or(
			qb.Eq("team_a_public_id", filter.TeamID),
			qb.Eq("team_b_public_id", filter.TeamID),
		))
	}

	query, args, err := qb.Select("*").From(matchesTable).
		Where(conds...).
		OrderBy("match_date", "kickoff_time", "public_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := matchFromRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "match %s", row.PublicID)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From(matchesTable).
		Where(qb.Eq("public_id", matchID), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, errors.Wrap(err, "build get match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, errors.Wrap(err, "get match")
	}

	item, err := matchFromRow(row)
	if err != nil {
		return match.Match{}, false, err
	}
	return item, true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	model, err := matchWriteFromDomain(item)
	if err != nil {
		return err
	}
	query, args, err := qb.InsertModel(matchesTable, model, "")
	if err != nil {
		return errors.Wrap(err, "build insert match query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(markDuplicate(err), "insert match")
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	model, err := matchWriteFromDomain(item)
	if err != nil {
		return err
	}
	query, args, err := qb.UpdateModel(matchesTable, model, "public_id", item.ID, "created_at")
	if err != nil {
		return errors.Wrap(err, "build update match query")
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "update match")
	}
	return requireAffected(res, "match %s not found", item.ID)
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	query, args, err := qb.Update(matchesTable).
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("public_id", matchID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete match query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete match")
	}
	return nil
}
