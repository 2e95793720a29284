package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plotvista/plotvista/internal/apperr"
	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/store"
	"github.com/plotvista/plotvista/internal/validation"
	"github.com/plotvista/plotvista/internal/views"
)

// ContactRepository defines the persistence operations required by the
// contact pipeline.
type ContactRepository interface {
	Contacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, c models.Contact) error
	UpdateContact(ctx context.Context, c models.Contact) error
	DeleteContact(ctx context.Context, id string) error
}

// ContactService implements the dashboard contact CRUD.
type ContactService struct {
	repo  ContactRepository
	views ViewInvalidator
	log   *zap.Logger
}

// NewContactService constructs a ContactService.
func NewContactService(repo ContactRepository, v ViewInvalidator, log *zap.Logger) *ContactService {
	return &ContactService{repo: repo, views: v, log: log}
}

func hasDuplicateContact(contacts []models.Contact, email, excludeID string) bool {
	for _, c := range contacts {
		if c.ID != excludeID && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

// Create validates the payload, enforces email uniqueness, persists a
// new contact, and signals the contacts view stale.
func (s *ContactService) Create(ctx context.Context, in validation.ContactInput) (string, error) {
	if fields := validation.Check(in); fields != nil {
		return "", apperr.Validation(msgContactCreateFields, fields)
	}

	contacts, err := s.repo.Contacts(ctx)
	if err != nil {
		s.log.Error("listing contacts", zap.Error(err))
		return "", apperr.Internal(err)
	}
	if hasDuplicateContact(contacts, in.Email, "") {
		return "", apperr.Conflict(MsgContactExists)
	}

	c := models.Contact{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
		Type:  in.Type,
		Notes: in.Notes,
	}
	if err := s.repo.CreateContact(ctx, c); err != nil {
		s.log.Error("persisting contact", zap.Error(err))
		return "", apperr.Internal(err)
	}

	s.views.Invalidate(views.DashboardContacts)
	return c.ID, nil
}

// Update applies the same rules as Create, excluding the record's own
// id from the uniqueness scan.
func (s *ContactService) Update(ctx context.Context, id string, in validation.ContactInput) error {
	if fields := validation.Check(in); fields != nil {
		return apperr.Validation(msgContactUpdateFields, fields)
	}

	contacts, err := s.repo.Contacts(ctx)
	if err != nil {
		s.log.Error("listing contacts", zap.Error(err))
		return apperr.Internal(err)
	}
	if hasDuplicateContact(contacts, in.Email, id) {
		return apperr.Conflict(MsgContactExistsOther)
	}

	c := models.Contact{
		ID:    id,
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
		Type:  in.Type,
		Notes: in.Notes,
	}
	if err := s.repo.UpdateContact(ctx, c); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound(MsgContactNotFound)
		}
		s.log.Error("persisting contact update", zap.Error(err))
		return apperr.Internal(err)
	}

	s.views.Invalidate(views.DashboardContacts)
	return nil
}

// Delete removes a contact by id.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteContact(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound(MsgContactNotFound)
		}
		s.log.Error("deleting contact", zap.Error(err))
		return apperr.Internal(err)
	}
	s.views.Invalidate(views.DashboardContacts)
	return nil
}

// List returns all contacts, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.repo.Contacts(ctx)
	if err != nil {
		s.log.Error("listing contacts", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	reversed := make([]models.Contact, len(contacts))
	for i, c := range contacts {
		reversed[len(contacts)-1-i] = c
	}
	return reversed, nil
}

// Get returns the contact with the given id.
func (s *ContactService) Get(ctx context.Context, id string) (models.Contact, error) {
	contacts, err := s.repo.Contacts(ctx)
	if err != nil {
		s.log.Error("fetching contact", zap.Error(err))
		return models.Contact{}, apperr.Internal(err)
	}
	for _, c := range contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contact{}, apperr.NotFound(MsgContactNotFound)
}
