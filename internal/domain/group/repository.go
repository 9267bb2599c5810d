package group

import "context"

type Repository interface {
	List(ctx context.Context) ([]Group, error)
	GetByID(ctx context.Context, groupID string) (Group, bool, error)
	GetByName(ctx context.Context, name string) (Group, bool, error)
	Create(ctx context.Context, item Group) error
	Update(ctx context.Context, item Group) error
	Delete(ctx context.Context, groupID string) error
}
