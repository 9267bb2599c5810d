package match

import "context"

// Filter narrows List results; zero values match everything.
type Filter struct {
	Stage  Stage
	Status Status
	TeamID string
}

func (f Filter) Matches(m Match) bool {
	if f.Stage != "" && m.Stage != f.Stage {
		return false
	}
	if f.Status != "" && m.Status != f.Status {
		return false
	}
	if f.TeamID != "" && !m.Involves(f.TeamID) {
		return false
	}
	return true
}

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	Update(ctx context.Context, item Match) error
	Delete(ctx context.Context, matchID string) error
}
