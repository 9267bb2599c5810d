package session

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/football-tournament/internal/domain/account"
)

const minSecretLength = 16

var (
	ErrWeakSecret   = errors.New("session secret is too short")
	ErrInvalidToken = errors.New("invalid session token")
)

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager issues HS256-signed admin tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, issuer string) (*Manager, error) {
	if len(strings.TrimSpace(secret)) < minSecretLength {
		return nil, errors.Wrapf(ErrWeakSecret, "need at least %d characters", minSecretLength)
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

func (m *Manager) Issue(principal account.Principal) (string, time.Time, error) {
	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: principal.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.AdminID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}
	return signed, expiresAt, nil
}

func (m *Manager) Parse(raw string) (account.Principal, error) {
	parsed, err := jwt.ParseWithClaims(
		raw,
		&claims{},
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return account.Principal{}, errors.Mark(errors.Wrap(err, "parse session token"), ErrInvalidToken)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Subject == "" {
		return account.Principal{}, ErrInvalidToken
	}
	return account.Principal{AdminID: c.Subject, Username: c.Username}, nil
}
