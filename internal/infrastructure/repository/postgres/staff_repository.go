package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-tournament/internal/domain/staff"
	qb "github.com/riskibarqy/football-tournament/internal/platform/querybuilder"
)

const staffTable = "staff_members"

type staffTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	Role      string         `db:"role"`
	Phone     sql.NullString `db:"phone"`
	CreatedAt time.Time      `db:"created_at"`
}

type staffInsertModel struct {
	PublicID string         `db:"public_id"`
	Name     string         `db:"name"`
	Role     string         `db:"role"`
	Phone    sql.NullString `db:"phone"`
}

type StaffRepository struct {
	db *sqlx.DB
}

func NewStaffRepository(db *sqlx.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) List(ctx context.Context) ([]staff.Member, error) {
	query, args, err := qb.Select("*").From(staffTable).OrderBy("role", "name").ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list staff query")
	}

	var rows []staffTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select staff")
	}

	out := make([]staff.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, staffFromRow(row))
	}
	return out, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, memberID string) (staff.Member, bool, error) {
	query, args, err := qb.Select("*").From(staffTable).Where(qb.Eq("public_id", memberID)).Limit(1).ToSQL()
	if err != nil {
		return staff.Member{}, false, errors.Wrap(err, "build get staff query")
	}

	var row staffTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return staff.Member{}, false, nil
		}
		return staff.Member{}, false, errors.Wrap(err, "get staff member")
	}
	return staffFromRow(row), true, nil
}

func (r *StaffRepository) Create(ctx context.Context, item staff.Member) error {
	query, args, err := qb.InsertModel(staffTable, staffInsertModel{
		PublicID: item.ID,
		Name:     item.Name,
		Role:     string(item.Role),
		Phone:    nullString(item.Phone),
	}, "")
	if err != nil {
		return errors.Wrap(err, "build insert staff query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert staff member")
	}
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, memberID string) error {
	query, args, err := qb.DeleteFrom(staffTable).Where(qb.Eq("public_id", memberID)).ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete staff query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete staff member")
	}
	return nil
}

func staffFromRow(row staffTableModel) staff.Member {
	return staff.Member{
		ID:    row.PublicID,
		Name:  row.Name,
		Role:  staff.Role(row.Role),
		Phone: row.Phone.String,
	}
}
