package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-tournament/internal/domain/staff"
)

type StaffRepository struct {
	mu      sync.RWMutex
	members map[string]staff.Member
}

func NewStaffRepository(members []staff.Member) *StaffRepository {
	byID := make(map[string]staff.Member, len(members))
	for _, item := range members {
		byID[item.ID] = item
	}
	return &StaffRepository{members: byID}
}

func (r *StaffRepository) List(_ context.Context) ([]staff.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.Member, 0, len(r.members))
	for _, item := range r.members {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Role != out[j].Role {
			return out[i].Role < out[j].Role
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *StaffRepository) GetByID(_ context.Context, memberID string) (staff.Member, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.members[memberID]
	return item, ok, nil
}

func (r *StaffRepository) Create(_ context.Context, item staff.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.members[item.ID] = item
	return nil
}

func (r *StaffRepository) Delete(_ context.Context, memberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.members, memberID)
	return nil
}
