package ports

import "github.com/unifit/unifit-api/internal/core/domain"

// TokenAuthority issues and validates bearer tokens.
type TokenAuthority interface {
	// Issue signs a new token for p with a fresh issue/expiry window.
	Issue(p domain.Principal) (string, domain.Session, error)
	// Validate returns domain.ErrInvalidToken for any token that is malformed,
	// tampered with, expired or carries no identity.
	Validate(raw string) (domain.Session, error)
	// Refresh re-issues a token for an already validated session.
	Refresh(s domain.Session) (string, error)
}
