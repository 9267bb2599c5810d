package account

import "context"

type Repository interface {
	GetByUsername(ctx context.Context, username string) (Admin, bool, error)
	Create(ctx context.Context, item Admin) error
}
