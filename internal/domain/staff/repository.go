package staff

import "context"

type Repository interface {
	List(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, memberID string) (Member, bool, error)
	Create(ctx context.Context, item Member) error
	Delete(ctx context.Context, memberID string) error
}
