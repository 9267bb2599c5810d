package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/football-tournament/internal/domain/account"
	idgen "github.com/riskibarqy/football-tournament/internal/platform/id"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/riskibarqy/football-tournament/internal/platform/password"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 8
)

// TokenManager issues and parses admin session tokens.
type TokenManager interface {
	Issue(principal account.Principal) (string, time.Time, error)
	Parse(token string) (account.Principal, error)
}

type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Principal account.Principal `json:"principal"`
}

type AuthService struct {
	accountRepo account.Repository
	hasher      password.Hasher
	tokens      TokenManager
	idGen       idgen.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewAuthService(
	accountRepo account.Repository,
	hasher password.Hasher,
	tokens TokenManager,
	idGen idgen.Generator,
	logger *logging.Logger,
) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthService{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokens:      tokens,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, username, plain string) (account.Admin, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	username = normalizeUsername(username)
	if n := utf8.RuneCountInString(username); n < minUsernameLength || n > maxUsernameLength {
		return account.Admin{}, fmt.Errorf("%w: username must be %d-%d characters", ErrInvalidInput, minUsernameLength, maxUsernameLength)
	}
	if utf8.RuneCountInString(plain) < minPasswordLength {
		return account.Admin{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	_, exists, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return account.Admin{}, fmt.Errorf("get account: %w", err)
	}
	if exists {
		return account.Admin{}, fmt.Errorf("%w: username %q is taken", ErrConflict, username)
	}

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return account.Admin{}, err
	}
	adminID, err := s.idGen.NewID()
	if err != nil {
		return account.Admin{}, fmt.Errorf("generate account id: %w", err)
	}

	item := account.Admin{
		ID:           adminID,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.accountRepo.Create(ctx, item); err != nil {
		return account.Admin{}, fmt.Errorf("create account: %w", err)
	}

	s.logger.InfoContext(ctx, "admin account registered", "admin_id", item.ID, "username", item.Username)
	return item, nil
}

// EnsureAdmin creates the bootstrap account once; an existing username is left untouched.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, plain string) error {
	if strings.TrimSpace(username) == "" || plain == "" {
		return nil
	}
	_, err := s.Register(ctx, username, plain)
	if errors.Is(err, ErrConflict) {
		return nil
	}
	return err
}

func (s *AuthService) Login(ctx context.Context, username, plain string) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	username = normalizeUsername(username)
	if username == "" || plain == "" {
		return LoginResult{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	admin, exists, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, fmt.Errorf("get account: %w", err)
	}
	if !exists {
		return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := s.hasher.Compare(admin.PasswordHash, plain); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			s.logger.WarnContext(ctx, "admin login rejected", "username", username)
			return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return LoginResult{}, err
	}

	principal := account.Principal{AdminID: admin.ID, Username: admin.Username}
	token, expiresAt, err := s.tokens.Issue(principal)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	return LoginResult{Token: token, ExpiresAt: expiresAt, Principal: principal}, nil
}

// Verify satisfies the HTTP layer's token verifier.
func (s *AuthService) Verify(ctx context.Context, token string) (account.Principal, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuthService.Verify")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return account.Principal{}, fmt.Errorf("%w: token is required", ErrUnauthorized)
	}
	principal, err := s.tokens.Parse(token)
	if err != nil {
		return account.Principal{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return principal, nil
}

func normalizeUsername(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
