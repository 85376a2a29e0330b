package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/ports"
)

// AdminService implements administrative actions on user accounts.
type AdminService struct {
	users ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewAdminService(users ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, audit: audit, log: log}
}

// SetUserStatus blocks or unblocks a user account. A blocked user can no
// longer log in; tokens already issued keep working until they expire.
func (s *AdminService) SetUserStatus(ctx context.Context, actor domain.Principal, userID int64, active bool, ip string) error {
	if userID <= 0 {
		return fmt.Errorf("%w: invalid user id", domain.ErrValidation)
	}
	if err := s.users.SetActive(ctx, userID, active); err != nil {
		return err
	}

	s.log.Info().Int64("admin_id", actor.ID).Int64("user_id", userID).Bool("active", active).Msg("user status changed")
	s.audit.Record(ctx, activityEntry(actor,
		domain.UpdateAction(domain.EntityUsuario),
		domain.UpdateDetails(domain.EntityUsuario, userID),
		ip,
	))
	return nil
}
