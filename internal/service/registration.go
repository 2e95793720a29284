package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plotvista/plotvista/internal/apperr"
	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/validation"
	"github.com/plotvista/plotvista/internal/views"
)

// RegistrationRepository defines the persistence operations required by
// the registration pipeline.
type RegistrationRepository interface {
	Registrations(ctx context.Context) ([]models.Registration, error)
	CreateRegistration(ctx context.Context, r models.Registration) error
	// MarkRegistrationsRead clears every isNew flag in one persist and
	// reports whether anything changed.
	MarkRegistrationsRead(ctx context.Context) (bool, error)
}

// RegistrationService implements the public registration form and the
// dashboard's read/mark-read operations.
type RegistrationService struct {
	repo  RegistrationRepository
	views ViewInvalidator
	log   *zap.Logger
}

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(repo RegistrationRepository, v ViewInvalidator, log *zap.Logger) *RegistrationService {
	return &RegistrationService{repo: repo, views: v, log: log}
}

// Create validates the payload, rejects duplicate emails
// case-insensitively, and persists a new registration with isNew set.
// It returns the created record.
func (s *RegistrationService) Create(ctx context.Context, in validation.RegistrationInput) (models.Registration, error) {
	if fields := validation.Check(in); fields != nil {
		return models.Registration{}, apperr.Validation(msgRegistrationFields, fields)
	}

	registrations, err := s.repo.Registrations(ctx)
	if err != nil {
		s.log.Error("listing registrations", zap.Error(err))
		return models.Registration{}, apperr.Internal(err)
	}
	for _, r := range registrations {
		if strings.EqualFold(r.Email, in.Email) {
			return models.Registration{}, apperr.Conflict(MsgRegistrationExists)
		}
	}

	r := models.Registration{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
		IsNew:     true,
	}
	if err := s.repo.CreateRegistration(ctx, r); err != nil {
		s.log.Error("persisting registration", zap.Error(err))
		return models.Registration{}, apperr.Internal(err)
	}

	s.views.Invalidate(views.DashboardRegistrations, views.Dashboard)
	return r, nil
}

// MarkAllRead clears the isNew flag on every registration. Calling it
// again when nothing is new is a safe no-op and signals no views.
func (s *RegistrationService) MarkAllRead(ctx context.Context) error {
	changed, err := s.repo.MarkRegistrationsRead(ctx)
	if err != nil {
		s.log.Error("marking registrations read", zap.Error(err))
		return apperr.Internal(err)
	}
	if changed {
		s.views.Invalidate(views.Dashboard)
	}
	return nil
}

// List returns all registrations, newest first.
func (s *RegistrationService) List(ctx context.Context) ([]models.Registration, error) {
	registrations, err := s.repo.Registrations(ctx)
	if err != nil {
		s.log.Error("listing registrations", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	reversed := make([]models.Registration, len(registrations))
	for i, r := range registrations {
		reversed[len(registrations)-1-i] = r
	}
	return reversed, nil
}

// NewCount returns how many registrations still carry the isNew flag.
func (s *RegistrationService) NewCount(ctx context.Context) (int, error) {
	registrations, err := s.repo.Registrations(ctx)
	if err != nil {
		s.log.Error("counting new registrations", zap.Error(err))
		return 0, apperr.Internal(err)
	}
	count := 0
	for _, r := range registrations {
		if r.IsNew {
			count++
		}
	}
	return count, nil
}
