package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/plotvista/plotvista/internal/apperr"
	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/store"
	"github.com/plotvista/plotvista/internal/validation"
	"github.com/plotvista/plotvista/internal/views"
)

type mockContactRepo struct {
	ContactsFunc      func(ctx context.Context) ([]models.Contact, error)
	CreateContactFunc func(ctx context.Context, c models.Contact) error
	UpdateContactFunc func(ctx context.Context, c models.Contact) error
	DeleteContactFunc func(ctx context.Context, id string) error
}

func (m *mockContactRepo) Contacts(ctx context.Context) ([]models.Contact, error) {
	return m.ContactsFunc(ctx)
}
func (m *mockContactRepo) CreateContact(ctx context.Context, c models.Contact) error {
	return m.CreateContactFunc(ctx, c)
}
func (m *mockContactRepo) UpdateContact(ctx context.Context, c models.Contact) error {
	return m.UpdateContactFunc(ctx, c)
}
func (m *mockContactRepo) DeleteContact(ctx context.Context, id string) error {
	return m.DeleteContactFunc(ctx, id)
}

func validContactInput() validation.ContactInput {
	return validation.ContactInput{
		Name:  "Ravi",
		Phone: "9876543210",
		Email: "ravi@example.com",
		Type:  models.ContactSeller,
	}
}

func TestContactCreate_Success(t *testing.T) {
	var created *models.Contact
	repo := &mockContactRepo{
		ContactsFunc: func(ctx context.Context) ([]models.Contact, error) { return nil, nil },
		CreateContactFunc: func(ctx context.Context, c models.Contact) error {
			created = &c
			return nil
		},
	}
	fv := &fakeViews{}
	svc := NewContactService(repo, fv, zap.NewNop())

	id, err := svc.Create(context.Background(), validContactInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created == nil || created.ID != id {
		t.Fatalf("created = %+v, id = %q", created, id)
	}
	if !fv.has(views.DashboardContacts) {
		t.Errorf("expected contacts view invalidated, got %v", fv.paths)
	}
}

func TestContactCreate_DuplicateEmail(t *testing.T) {
	repo := &mockContactRepo{
		ContactsFunc: func(ctx context.Context) ([]models.Contact, error) {
			return []models.Contact{{ID: "c1", Email: "RAVI@example.com"}}, nil
		},
		CreateContactFunc: func(ctx context.Context, c models.Contact) error {
			t.Fatal("duplicate create must not persist")
			return nil
		},
	}
	svc := NewContactService(repo, &fakeViews{}, zap.NewNop())

	_, err := svc.Create(context.Background(), validContactInput())
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != MsgContactExists {
		t.Errorf("message = %q; want %q", err.Error(), MsgContactExists)
	}
}

func TestContactUpdate_ExcludesOwnID(t *testing.T) {
	var updated *models.Contact
	repo := &mockContactRepo{
		ContactsFunc: func(ctx context.Context) ([]models.Contact, error) {
			return []models.Contact{{ID: "c1", Email: "ravi@example.com"}}, nil
		},
		UpdateContactFunc: func(ctx context.Context, c models.Contact) error {
			updated = &c
			return nil
		},
	}
	svc := NewContactService(repo, &fakeViews{}, zap.NewNop())

	if err := svc.Update(context.Background(), "c1", validContactInput()); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated == nil || updated.ID != "c1" {
		t.Fatalf("updated = %+v", updated)
	}
}

func TestContactUpdate_DuplicateOtherRecord(t *testing.T) {
	repo := &mockContactRepo{
		ContactsFunc: func(ctx context.Context) ([]models.Contact, error) {
			return []models.Contact{
				{ID: "c1", Email: "old@example.com"},
				{ID: "c2", Email: "ravi@example.com"},
			}, nil
		},
		UpdateContactFunc: func(ctx context.Context, c models.Contact) error {
			t.Fatal("conflicting update must not persist")
			return nil
		},
	}
	svc := NewContactService(repo, &fakeViews{}, zap.NewNop())

	err := svc.Update(context.Background(), "c1", validContactInput())
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != MsgContactExistsOther {
		t.Errorf("message = %q; want %q", err.Error(), MsgContactExistsOther)
	}
}

func TestContactUpdate_NotFound(t *testing.T) {
	repo := &mockContactRepo{
		ContactsFunc: func(ctx context.Context) ([]models.Contact, error) { return nil, nil },
		UpdateContactFunc: func(ctx context.Context, c models.Contact) error {
			return store.ErrNotFound
		},
	}
	svc := NewContactService(repo, &fakeViews{}, zap.NewNop())

	if err := svc.Update(context.Background(), "ghost", validContactInput()); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestContactDelete(t *testing.T) {
	repo := &mockContactRepo{
		DeleteContactFunc: func(ctx context.Context, id string) error { return store.ErrNotFound },
	}
	svc := NewContactService(repo, &fakeViews{}, zap.NewNop())

	if err := svc.Delete(context.Background(), "ghost"); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestContactList_NewestFirst(t *testing.T) {
	repo := &mockContactRepo{
		ContactsFunc: func(ctx context.Context) ([]models.Contact, error) {
			return []models.Contact{{ID: "old"}, {ID: "new"}}, nil
		},
	}
	svc := NewContactService(repo, &fakeViews{}, zap.NewNop())

	contacts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if contacts[0].ID != "new" {
		t.Errorf("expected newest first, got %+v", contacts)
	}
}

func TestContactCreate_ValidationAccumulates(t *testing.T) {
	svc := NewContactService(&mockContactRepo{}, &fakeViews{}, zap.NewNop())

	_, err := svc.Create(context.Background(), validation.ContactInput{Type: "Tenant"})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	ae := apperr.From(err)
	for _, key := range []string{"name", "phone", "email", "type"} {
		if len(ae.Fields[key]) == 0 {
			t.Errorf("expected a violation for %q, got %v", key, ae.Fields)
		}
	}
}
