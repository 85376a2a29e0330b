package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/unifit/unifit-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// sessionClaims is the signed payload. Field names are the ones the web client
// reads back from the token, so they must not change.
type sessionClaims struct {
	UsuarioID       int64  `json:"UsuarioID,omitempty"`
	AdministradorID int64  `json:"AdministradorID,omitempty"`
	Nome            string `json:"Nome"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 session tokens with a sliding
// expiration window.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption customises a TokenService.
type TokenOption func(*TokenService)

// WithClock replaces time.Now, mostly for expiry tests.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService builds a TokenService. The secret is read-only after this call.
func NewTokenService(secret string, ttl time.Duration, opts ...TokenOption) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	s := &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs a token for p valid for the configured TTL.
func (s *TokenService) Issue(p domain.Principal) (string, domain.Session, error) {
	if !p.Kind.Valid() || p.ID <= 0 {
		return "", domain.Session{}, fmt.Errorf("%w: principal has no identity", domain.ErrValidation)
	}

	// JWT timestamps have second precision.
	now := s.now().UTC().Truncate(time.Second)
	session := domain.Session{
		Principal: p,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	claims := sessionClaims{
		Nome: p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	if p.IsAdmin() {
		claims.AdministradorID = p.ID
	} else {
		claims.UsuarioID = p.ID
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, session, nil
}

// Validate checks signature, algorithm and freshness and decodes the identity.
// Every failure collapses into domain.ErrInvalidToken.
func (s *TokenService) Validate(raw string) (domain.Session, error) {
	if raw == "" {
		return domain.Session{}, domain.ErrInvalidToken
	}

	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tkn.Valid || claims.IssuedAt == nil {
		return domain.Session{}, domain.ErrInvalidToken
	}

	var p domain.Principal
	switch {
	case claims.AdministradorID > 0:
		p = domain.AdminPrincipal(claims.AdministradorID, claims.Nome)
	case claims.UsuarioID > 0:
		p = domain.UserPrincipal(claims.UsuarioID, claims.Nome)
	default:
		return domain.Session{}, domain.ErrInvalidToken
	}

	return domain.Session{
		Principal: p,
		IssuedAt:  claims.IssuedAt.Time.UTC(),
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}

// Refresh re-issues a token for the identity of a validated session.
func (s *TokenService) Refresh(session domain.Session) (string, error) {
	token, _, err := s.Issue(session.Principal)
	return token, err
}
