package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/plotvista/plotvista/internal/apperr"
	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/store"
	"github.com/plotvista/plotvista/internal/validation"
	"github.com/plotvista/plotvista/internal/views"
)

// UserRepository defines the persistence operations required by the
// user pipeline.
type UserRepository interface {
	Users(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u models.User) error
	DeleteUser(ctx context.Context, id string) error
}

// CredentialRepository stores password hashes keyed by email.
type CredentialRepository interface {
	Credential(ctx context.Context, email string) (models.Credential, error)
	SetCredential(ctx context.Context, cred models.Credential) error
}

// UserService implements user management, credential storage, and the
// login flows.
type UserService struct {
	users UserRepository
	creds CredentialRepository
	views ViewInvalidator
	log   *zap.Logger
}

// NewUserService constructs a UserService.
func NewUserService(users UserRepository, creds CredentialRepository, v ViewInvalidator, log *zap.Logger) *UserService {
	return &UserService{users: users, creds: creds, views: v, log: log}
}

func findUserByEmail(users []models.User, email string) *models.User {
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i]
		}
	}
	return nil
}

func findUserByID(users []models.User, id string) *models.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

func (s *UserService) hashAndStore(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.creds.SetCredential(ctx, models.Credential{
		Email:          email,
		HashedPassword: string(hash),
		UpdatedAt:      time.Now().UTC(),
	})
}

// Create validates the email and password, rejects duplicate emails
// case-insensitively, stores the bcrypt hash keyed by email, and
// persists a new User with role User. It returns the assigned id.
func (s *UserService) Create(ctx context.Context, in validation.UserInput) (string, error) {
	if fields := validation.Check(in); fields != nil {
		return "", apperr.Validation(msgUserCheckFields, fields)
	}

	users, err := s.users.Users(ctx)
	if err != nil {
		s.log.Error("listing users", zap.Error(err))
		return "", apperr.Internal(err)
	}
	if findUserByEmail(users, in.Email) != nil {
		return "", apperr.Conflict(MsgUserExists)
	}

	u := models.User{ID: uuid.NewString(), Email: in.Email, Role: models.RoleUser}
	if err := s.hashAndStore(ctx, in.Email, in.Password); err != nil {
		s.log.Error("storing credential", zap.Error(err))
		return "", apperr.Internal(err)
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		s.log.Error("persisting user", zap.Error(err))
		return "", apperr.Internal(err)
	}

	s.views.Invalidate(views.DashboardUsers)
	return u.ID, nil
}

// Delete removes a user by id. Deleting the Owner is silently refused:
// the call succeeds without touching the store.
func (s *UserService) Delete(ctx context.Context, id string) error {
	users, err := s.users.Users(ctx)
	if err != nil {
		s.log.Error("listing users", zap.Error(err))
		return apperr.Internal(err)
	}
	u := findUserByID(users, id)
	if u == nil {
		return apperr.NotFound(MsgUserNotFound)
	}
	if u.Role == models.RoleOwner {
		s.log.Warn("refusing to delete owner account", zap.String("id", id))
		return nil
	}
	if err := s.users.DeleteUser(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		s.log.Error("deleting user", zap.Error(err))
		return apperr.Internal(err)
	}
	s.views.Invalidate(views.DashboardUsers)
	return nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.Users(ctx)
	if err != nil {
		s.log.Error("listing users", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	return users, nil
}

// SetPassword sets a user's password from the dashboard. The Owner
// account is exempt; its password can only change through the
// self-service flow.
func (s *UserService) SetPassword(ctx context.Context, userID, newPassword string) error {
	if msgs := validation.CheckPassword(newPassword); len(msgs) > 0 {
		return apperr.Validation(msgs[0], map[string][]string{"password": msgs})
	}
	users, err := s.users.Users(ctx)
	if err != nil {
		s.log.Error("listing users", zap.Error(err))
		return apperr.Internal(err)
	}
	u := findUserByID(users, userID)
	if u == nil {
		return apperr.NotFound(MsgUserNotFound)
	}
	if u.Role == models.RoleOwner {
		return apperr.Forbidden(msgOwnerPasswordLocked)
	}
	if err := s.hashAndStore(ctx, u.Email, newPassword); err != nil {
		s.log.Error("storing credential", zap.Error(err))
		return apperr.Internal(err)
	}
	return nil
}

// Authenticate verifies an email/password pair and returns the minimal
// identity on success. Every failure path returns the same
// authentication error so callers cannot tell whether the email exists.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.Identity, error) {
	users, err := s.users.Users(ctx)
	if err != nil {
		s.log.Error("listing users", zap.Error(err))
		return models.Identity{}, apperr.Internal(err)
	}
	u := findUserByEmail(users, email)
	if u == nil {
		return models.Identity{}, apperr.Authentication(MsgInvalidCredentials)
	}

	cred, err := s.creds.Credential(ctx, u.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.log.Error("no credential stored for user", zap.String("email", u.Email))
			return models.Identity{}, apperr.Authentication(MsgInvalidCredentials)
		}
		s.log.Error("fetching credential", zap.Error(err))
		return models.Identity{}, apperr.Internal(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.HashedPassword), []byte(password)) != nil {
		return models.Identity{}, apperr.Authentication(MsgInvalidCredentials)
	}

	return models.Identity{ID: u.ID, Email: u.Email, Role: u.Role}, nil
}

// ChangePassword is the self-service flow: the stored hash must verify
// currentPassword before the new one is accepted. A wrong current
// password is an authentication error, not a generic failure.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	users, err := s.users.Users(ctx)
	if err != nil {
		s.log.Error("listing users", zap.Error(err))
		return apperr.Internal(err)
	}
	u := findUserByID(users, userID)
	if u == nil {
		return apperr.Authentication(MsgUserNotFound)
	}

	if msgs := validation.CheckPassword(newPassword); len(msgs) > 0 {
		return apperr.Validation(msgs[0], map[string][]string{"password": msgs})
	}

	cred, err := s.creds.Credential(ctx, u.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.Authentication(msgNoStoredPassword)
		}
		s.log.Error("fetching credential", zap.Error(err))
		return apperr.Internal(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.HashedPassword), []byte(currentPassword)) != nil {
		return apperr.Authentication(msgWrongCurrent)
	}

	if err := s.hashAndStore(ctx, u.Email, newPassword); err != nil {
		s.log.Error("storing credential", zap.Error(err))
		return apperr.Internal(err)
	}
	return nil
}

// EnsureOwner seeds the Owner account and its credential when the users
// collection is empty, so a fresh deployment has a dashboard login.
func (s *UserService) EnsureOwner(ctx context.Context, email, password string) error {
	users, err := s.users.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	owner := models.User{ID: uuid.NewString(), Email: email, Role: models.RoleOwner}
	if err := s.hashAndStore(ctx, email, password); err != nil {
		return err
	}
	if err := s.users.CreateUser(ctx, owner); err != nil {
		return err
	}
	s.log.Info("seeded owner account", zap.String("email", email))
	return nil
}
