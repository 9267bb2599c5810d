package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	Create(ctx context.Context, item Team) error
	Update(ctx context.Context, item Team) error
	UpdateStats(ctx context.Context, teamID string, stats Stats) error
	SetGroupName(ctx context.Context, teamID, groupName string) error
	Delete(ctx context.Context, teamID string) error
}
