package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/ports"
)

type ExerciseService struct {
	repo  ports.ExerciseRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewExerciseService(repo ports.ExerciseRepository, audit ports.AuditRecorder, log zerolog.Logger) *ExerciseService {
	return &ExerciseService{repo: repo, audit: audit, log: log}
}

func (s *ExerciseService) Get(ctx context.Context, id int64) (*domain.Exercise, error) {
	if id <= 0 {
		return nil, domain.ErrExerciseNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// BulkDelete removes each exercise on its own. A failing id is logged and
// skipped; the result reports how many were actually removed.
func (s *ExerciseService) BulkDelete(ctx context.Context, actor domain.Principal, ids []int64, ip string) (*domain.BulkResult, error) {
	if err := validateIDs(ids); err != nil {
		return nil, err
	}

	res := &domain.BulkResult{Total: len(ids)}
	for _, id := range ids {
		if err := s.repo.Delete(ctx, id); err != nil {
			if !errors.Is(err, domain.ErrExerciseNotFound) {
				s.log.Error().Err(err).Int64("exercise_id", id).Msg("bulk delete: failed to delete exercise")
			}
			continue
		}
		res.Succeeded++
		s.audit.Record(ctx, activityEntry(actor,
			domain.DeleteAction(domain.EntityExercicio),
			domain.DeleteDetails(domain.EntityExercicio, id),
			ip,
		))
	}
	return res, nil
}

// BulkUpdate sets difficulty and/or type on every id in one statement.
func (s *ExerciseService) BulkUpdate(ctx context.Context, actor domain.Principal, ids []int64, upd domain.ExerciseUpdate, ip string) (*domain.BulkResult, error) {
	if err := validateIDs(ids); err != nil {
		return nil, err
	}
	if upd.Empty() {
		return nil, fmt.Errorf("%w: no field to update", domain.ErrValidation)
	}

	affected, err := s.repo.UpdateMany(ctx, ids, upd)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, activityEntry(actor,
		domain.UpdateAction(domain.EntityExercicio),
		fmt.Sprintf("Atualizou %d exercicios em massa", affected),
		ip,
	))
	return &domain.BulkResult{Total: len(ids), Succeeded: int(affected)}, nil
}

func validateIDs(ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: ids must be a non-empty list", domain.ErrValidation)
	}
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: invalid id %d", domain.ErrValidation, id)
		}
	}
	return nil
}
