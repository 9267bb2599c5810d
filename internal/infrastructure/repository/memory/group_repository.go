package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-tournament/internal/domain/group"
)

type GroupRepository struct {
	mu     sync.RWMutex
	groups map[string]group.Group
}

func NewGroupRepository(groups []group.Group) *GroupRepository {
	byID := make(map[string]group.Group, len(groups))
	for _, item := range groups {
		byID[item.ID] = cloneGroup(item)
	}
	return &GroupRepository{groups: byID}
}

func (r *GroupRepository) List(_ context.Context) ([]group.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]group.Group, 0, len(r.groups))
	for _, item := range r.groups {
		out = append(out, cloneGroup(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *GroupRepository) GetByID(_ context.Context, groupID string) (group.Group, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.groups[groupID]
	if !ok {
		return group.Group{}, false, nil
	}
	return cloneGroup(item), true, nil
}

// GetByName matches the exact label; group labels are short codes such as "A".
func (r *GroupRepository) GetByName(_ context.Context, name string) (group.Group, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.TrimSpace(name)
	for _, item := range r.groups {
		if item.Name == name {
			return cloneGroup(item), true, nil
		}
	}
	return group.Group{}, false, nil
}

func (r *GroupRepository) Create(_ context.Context, item group.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.groups[item.ID]; exists {
		return errors.Newf("group %s already exists", item.ID)
	}
	r.groups[item.ID] = cloneGroup(item)
	return nil
}

func (r *GroupRepository) Update(_ context.Context, item group.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.groups[item.ID]; !exists {
		return errors.Newf("group %s not found", item.ID)
	}
	r.groups[item.ID] = cloneGroup(item)
	return nil
}

func (r *GroupRepository) Delete(_ context.Context, groupID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.groups, groupID)
	return nil
}

func cloneGroup(item group.Group) group.Group {
	if item.TeamIDs != nil {
		ids := make([]string, len(item.TeamIDs))
		copy(ids, item.TeamIDs)
		item.TeamIDs = ids
	}
	return item
}
