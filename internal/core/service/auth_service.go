package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/ports"
	"github.com/unifit/unifit-api/internal/pkg/metrics"
)

const (
	loginDetails  = "Login realizado com sucesso"
	logoutDetails = "Logout realizado"
)

// AuthService implements login for both account kinds and logout.
type AuthService struct {
	users  ports.UserRepository
	admins ports.AdminRepository
	tokens ports.TokenAuthority
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	admins ports.AdminRepository,
	tokens ports.TokenAuthority,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, admins: admins, tokens: tokens, audit: audit, log: log}
}

func (s *AuthService) LoginUser(ctx context.Context, email, password, ip string) (*ports.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues(string(domain.ActorUser), "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, s.lookupFailed(domain.ActorUser, err)
	}
	if !checkPassword(user.PasswordHash, password) {
		metrics.LoginsTotal.WithLabelValues(string(domain.ActorUser), "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		metrics.LoginsTotal.WithLabelValues(string(domain.ActorUser), "blocked").Inc()
		return nil, domain.ErrUserInactive
	}

	return s.complete(ctx, domain.UserPrincipal(user.ID, user.Name), user.Email, ip)
}

func (s *AuthService) LoginAdmin(ctx context.Context, email, password, ip string) (*ports.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues(string(domain.ActorAdmin), "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, s.lookupFailed(domain.ActorAdmin, err)
	}
	if !checkPassword(admin.PasswordHash, password) {
		metrics.LoginsTotal.WithLabelValues(string(domain.ActorAdmin), "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	return s.complete(ctx, domain.AdminPrincipal(admin.ID, admin.Name), admin.Email, ip)
}

// Logout only leaves a trace in the audit trail. Tokens are stateless and stay
// valid until they expire.
func (s *AuthService) Logout(ctx context.Context, session domain.Session, ip string) {
	s.audit.Record(ctx, activityEntry(session.Principal, domain.ActionLogout, logoutDetails, ip))
}

func (s *AuthService) complete(ctx context.Context, p domain.Principal, email, ip string) (*ports.LoginResult, error) {
	token, _, err := s.tokens.Issue(p)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(p.Kind), "error").Inc()
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues(string(p.Kind), "success").Inc()
	s.audit.Record(ctx, activityEntry(p, domain.ActionLogin, loginDetails, ip))
	s.log.Info().Str("actor_type", string(p.Kind)).Int64("actor_id", p.ID).Msg("login")

	return &ports.LoginResult{Token: token, Principal: p, Email: email}, nil
}

// lookupFailed maps an unknown account to ErrInvalidCredentials so the
// response does not reveal which emails exist.
func (s *AuthService) lookupFailed(kind domain.ActorType, err error) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		metrics.LoginsTotal.WithLabelValues(string(kind), "invalid_credentials").Inc()
		return domain.ErrInvalidCredentials
	}
	metrics.LoginsTotal.WithLabelValues(string(kind), "error").Inc()
	return err
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// activityEntry builds an audit entry for p. Empty details or ip are stored as NULL.
func activityEntry(p domain.Principal, action, details, ip string) domain.ActivityEntry {
	e := domain.ActivityEntry{
		ActorType: p.Kind,
		ActorID:   p.ID,
		ActorName: p.Name,
		Action:    action,
	}
	if details != "" {
		e.Details = &details
	}
	if ip != "" {
		e.IP = &ip
	}
	return e
}
