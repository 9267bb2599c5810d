package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-tournament/internal/domain/account"
)

type AccountRepository struct {
	mu         sync.RWMutex
	byUsername map[string]account.Admin
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byUsername: make(map[string]account.Admin)}
}

func (r *AccountRepository) GetByUsername(_ context.Context, username string) (account.Admin, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byUsername[strings.ToLower(strings.TrimSpace(username))]
	return item, ok, nil
}

func (r *AccountRepository) Create(_ context.Context, item account.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(item.Username)
	if _, exists := r.byUsername[key]; exists {
		return errors.Newf("account %s already exists", item.Username)
	}
	r.byUsername[key] = item
	return nil
}
