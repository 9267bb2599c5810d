package postgres

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	qb "github.com/riskibarqy/football-tournament/internal/platform/querybuilder"
)

const teamsTable = "teams"

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From(teamsTable).
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list teams query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select teams")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		item, err := teamFromRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "team %s", row.PublicID)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", teamID))
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Expr("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))))
}

func (r *TeamRepository) getOne(ctx context.Context, cond qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From(teamsTable).
		Where(cond, qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, errors.Wrap(err, "build get team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, errors.Wrap(err, "get team")
	}

	item, err := teamFromRow(row)
	if err != nil {
		return team.Team{}, false, err
	}
	return item, true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	model, err := teamWriteFromDomain(item)
	if err != nil {
		return err
	}
	query, args, err := qb.InsertModel(teamsTable, model, "")
	if err != nil {
		return errors.Wrap(err, "build insert team query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(markDuplicate(err), "insert team")
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	model, err := teamWriteFromDomain(item)
	if err != nil {
		return err
	}
	query, args, err := qb.UpdateModel(teamsTable, model, "public_id", item.ID, "created_at")
	if err != nil {
		return errors.Wrap(err, "build update team query")
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(markDuplicate(err), "update team")
	}
	return requireAffected(res, "team %s not found", item.ID)
}

func (r *TeamRepository) UpdateStats(ctx context.Context, teamID string, stats team.Stats) error {
	query, args, err := qb.Update(teamsTable).
		Set("played", stats.Played).
		Set("won", stats.Won).
		Set("drawn", stats.Drawn).
		Set("lost", stats.Lost).
		Set("goals_for", stats.GoalsFor).
		Set("goals_against", stats.GoalsAgainst).
		Set("points", stats.Points).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", teamID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update team stats query")
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "update team stats")
	}
	return requireAffected(res, "team %s not found", teamID)
}

func (r *TeamRepository) SetGroupName(ctx context.Context, teamID, groupName string) error {
	query, args, err := qb.Update(teamsTable).
		Set("group_name", nullString(groupName)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", teamID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build set team group query")
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "set team group")
	}
	return requireAffected(res, "team %s not found", teamID)
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	query, args, err := qb.Update(teamsTable).
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("public_id", teamID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete team query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete team")
	}
	return nil
}
