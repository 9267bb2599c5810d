package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/football-tournament/internal/domain/group"
	qb "github.com/riskibarqy/football-tournament/internal/platform/querybuilder"
)

const groupsTable = "tournament_groups"

type groupTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	TeamIDs   pq.StringArray `db:"team_public_ids"`
	Completed bool           `db:"completed"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type groupInsertModel struct {
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	TeamIDs   pq.StringArray `db:"team_public_ids"`
	Completed bool           `db:"completed"`
}

type GroupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) List(ctx context.Context) ([]group.Group, error) {
	query, args, err := qb.Select("*").From(groupsTable).OrderBy("name", "public_id").ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list groups query")
	}

	var rows []groupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select groups")
	}

	out := make([]group.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, groupFromRow(row))
	}
	return out, nil
}

func (r *GroupRepository) GetByID(ctx context.Context, groupID string) (group.Group, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", groupID))
}

func (r *GroupRepository) GetByName(ctx context.Context, name string) (group.Group, bool, error) {
	return r.getOne(ctx, qb.Eq("name", name))
}

func (r *GroupRepository) getOne(ctx context.Context, cond qb.Condition) (group.Group, bool, error) {
	query, args, err := qb.Select("*").From(groupsTable).Where(cond).Limit(1).ToSQL()
	if err != nil {
		return group.Group{}, false, errors.Wrap(err, "build get group query")
	}

	var row groupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return group.Group{}, false, nil
		}
		return group.Group{}, false, errors.Wrap(err, "get group")
	}
	return groupFromRow(row), true, nil
}

func (r *GroupRepository) Create(ctx context.Context, item group.Group) error {
	query, args, err := qb.InsertModel(groupsTable, groupInsertModel{
		PublicID:  item.ID,
		Name:      item.Name,
		TeamIDs:   pq.StringArray(teamIDsOrEmpty(item.TeamIDs)),
		Completed: item.Completed,
	}, "")
	if err != nil {
		return errors.Wrap(err, "build insert group query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(markDuplicate(err), "insert group")
	}
	return nil
}

func (r *GroupRepository) Update(ctx context.Context, item group.Group) error {
	query, args, err := qb.Update(groupsTable).
		Set("name", item.Name).
		Set("team_public_ids", pq.StringArray(teamIDsOrEmpty(item.TeamIDs))).
		Set("completed", item.Completed).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update group query")
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(markDuplicate(err), "update group")
	}
	return requireAffected(res, "group %s not found", item.ID)
}

func (r *GroupRepository) Delete(ctx context.Context, groupID string) error {
	query, args, err := qb.DeleteFrom(groupsTable).Where(qb.Eq("public_id", groupID)).ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete group query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete group")
	}
	return nil
}

func groupFromRow(row groupTableModel) group.Group {
	return group.Group{
		ID:        row.PublicID,
		Name:      row.Name,
		TeamIDs:   append([]string(nil), row.TeamIDs...),
		Completed: row.Completed,
	}
}

func teamIDsOrEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
