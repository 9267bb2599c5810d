package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/account"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/repository/memory"
	accountmock "github.com/riskibarqy/football-tournament/internal/mocks/domain/account"
	idgen "github.com/riskibarqy/football-tournament/internal/platform/id"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/riskibarqy/football-tournament/internal/platform/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeTokens struct{}

func (fakeTokens) Issue(p account.Principal) (string, time.Time, error) {
	return "tok:" + p.AdminID + ":" + p.Username, fixedNow.Add(time.Hour), nil
}

func (fakeTokens) Parse(token string) (account.Principal, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != "tok" {
		return account.Principal{}, errors.New("malformed token")
	}
	return account.Principal{AdminID: parts[1], Username: parts[2]}, nil
}

func newAuthService(repo account.Repository) *AuthService {
	service := NewAuthService(repo, password.NewBcryptHasher(bcrypt.MinCost), fakeTokens{}, idgen.NewSequence("adm-1"), logging.NewNop())
	service.now = func() time.Time { return fixedNow }
	return service
}

func TestAuthService_RegisterLoginVerify(t *testing.T) {
	t.Parallel()

	service := newAuthService(memory.NewAccountRepository())
	ctx := context.Background()

	admin, err := service.Register(ctx, " Organizer ", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "organizer", admin.Username)
	assert.NotEqual(t, "correct-horse", admin.PasswordHash)

	_, err = service.Register(ctx, "ORGANIZER", "another-pass")
	assert.ErrorIs(t, err, ErrConflict)

	login, err := service.Login(ctx, "organizer", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "tok:adm-1:organizer", login.Token)
	assert.Equal(t, fixedNow.Add(time.Hour), login.ExpiresAt)

	principal, err := service.Verify(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, account.Principal{AdminID: "adm-1", Username: "organizer"}, principal)

	_, err = service.Login(ctx, "organizer", "wrong-pass")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = service.Login(ctx, "nobody", "whatever1")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = service.Verify(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	service := newAuthService(memory.NewAccountRepository())

	_, err := service.Register(context.Background(), "ab", "long-enough")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = service.Register(context.Background(), "admin", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthService_EnsureAdmin_IsIdempotent(t *testing.T) {
	t.Parallel()

	repo := accountmock.NewRepository(t)
	service := newAuthService(repo)

	repo.On("GetByUsername", mock.Anything, "root").Return(account.Admin{ID: "adm-0", Username: "root"}, true, nil).Once()

	require.NoError(t, service.EnsureAdmin(context.Background(), "root", "password123"))
	require.NoError(t, service.EnsureAdmin(context.Background(), "", ""))
}
