package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-tournament/internal/domain/account"
	qb "github.com/riskibarqy/football-tournament/internal/platform/querybuilder"
)

const accountsTable = "admin_accounts"

type accountTableModel struct {
	ID           int64     `db:"id"`
	PublicID     string    `db:"public_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type accountInsertModel struct {
	PublicID     string    `db:"public_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (account.Admin, bool, error) {
	query, args, err := qb.Select("*").From(accountsTable).
		Where(qb.Eq("username", strings.ToLower(strings.TrimSpace(username)))).
		Limit(1).
		ToSQL()
	if err != nil {
		return account.Admin{}, false, errors.Wrap(err, "build get account query")
	}

	var row accountTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return account.Admin{}, false, nil
		}
		return account.Admin{}, false, errors.Wrap(err, "get account")
	}

	return account.Admin{
		ID:           row.PublicID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, true, nil
}

func (r *AccountRepository) Create(ctx context.Context, item account.Admin) error {
	query, args, err := qb.InsertModel(accountsTable, accountInsertModel{
		PublicID:     item.ID,
		Username:     strings.ToLower(item.Username),
		PasswordHash: item.PasswordHash,
		CreatedAt:    item.CreatedAt,
	}, "")
	if err != nil {
		return errors.Wrap(err, "build insert account query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(markDuplicate(err), "insert account")
	}
	return nil
}
