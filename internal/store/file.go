package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/plotvista/plotvista/internal/models"
)

// Collection file names under the data directory.
const (
	plotFile         = "plot-data.json"
	userFile         = "user-data.json"
	passwordFile     = "password-data.json"
	inquiryFile      = "inquiry-data.json"
	contactFile      = "contact-data.json"
	registrationFile = "registration-data.json"
)

// FileStore keeps each collection in one JSON document under a data
// directory. Reads of a file that does not exist yet return an empty
// collection; an unreadable or corrupt file is an error. Writes replace
// the whole file atomically (temp file + rename) under a per-collection
// mutex, so concurrent pipeline invocations in one process serialize.
type FileStore struct {
	dir string

	plotMu         sync.Mutex
	userMu         sync.Mutex
	credMu         sync.Mutex
	inquiryMu      sync.Mutex
	contactMu      sync.Mutex
	registrationMu sync.Mutex
}

// NewFileStore creates the data directory if needed and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// readFile unmarshals the document at path into out. A missing file
// leaves out untouched and returns false.
func readFile(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// writeFile atomically replaces the document at path.
func writeFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

func load[T any](path string) ([]T, error) {
	var records []T
	if _, err := readFile(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// --- Plots ---

func (s *FileStore) Plots(_ context.Context) ([]models.Plot, error) {
	s.plotMu.Lock()
	defer s.plotMu.Unlock()
	return load[models.Plot](filepath.Join(s.dir, plotFile))
}

func (s *FileStore) CreatePlot(_ context.Context, p models.Plot) error {
	s.plotMu.Lock()
	defer s.plotMu.Unlock()
	path := filepath.Join(s.dir, plotFile)
	plots, err := load[models.Plot](path)
	if err != nil {
		return err
	}
	return writeFile(path, append(plots, p))
}

func (s *FileStore) UpdatePlot(_ context.Context, p models.Plot) error {
	s.plotMu.Lock()
	defer s.plotMu.Unlock()
	path := filepath.Join(s.dir, plotFile)
	plots, err := load[models.Plot](path)
	if err != nil {
		return err
	}
	for i := range plots {
		if plots[i].ID == p.ID {
			plots[i] = p
			return writeFile(path, plots)
		}
	}
	return ErrNotFound
}

func (s *FileStore) DeletePlot(_ context.Context, id string) error {
	s.plotMu.Lock()
	defer s.plotMu.Unlock()
	path := filepath.Join(s.dir, plotFile)
	plots, err := load[models.Plot](path)
	if err != nil {
		return err
	}
	for i := range plots {
		if plots[i].ID == id {
			return writeFile(path, append(plots[:i], plots[i+1:]...))
		}
	}
	return ErrNotFound
}

// --- Users ---

func (s *FileStore) Users(_ context.Context) ([]models.User, error) {
	s.userMu.Lock()
	defer s.userMu.Unlock()
	return load[models.User](filepath.Join(s.dir, userFile))
}

func (s *FileStore) CreateUser(_ context.Context, u models.User) error {
	s.userMu.Lock()
	defer s.userMu.Unlock()
	path := filepath.Join(s.dir, userFile)
	users, err := load[models.User](path)
	if err != nil {
		return err
	}
	return writeFile(path, append(users, u))
}

func (s *FileStore) DeleteUser(_ context.Context, id string) error {
	s.userMu.Lock()
	defer s.userMu.Unlock()
	path := filepath.Join(s.dir, userFile)
	users, err := load[models.User](path)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			return writeFile(path, append(users[:i], users[i+1:]...))
		}
	}
	return ErrNotFound
}

// --- Credentials ---

// Credentials are stored as one JSON object keyed by lowercased email.

func (s *FileStore) loadCredentials() (map[string]models.Credential, error) {
	creds := make(map[string]models.Credential)
	if _, err := readFile(filepath.Join(s.dir, passwordFile), &creds); err != nil {
		return nil, err
	}
	return creds, nil
}

func (s *FileStore) Credential(_ context.Context, email string) (models.Credential, error) {
	s.credMu.Lock()
	defer s.credMu.Unlock()
	creds, err := s.loadCredentials()
	if err != nil {
		return models.Credential{}, err
	}
	cred, ok := creds[strings.ToLower(email)]
	if !ok {
		return models.Credential{}, ErrNotFound
	}
	return cred, nil
}

func (s *FileStore) SetCredential(_ context.Context, cred models.Credential) error {
	s.credMu.Lock()
	defer s.credMu.Unlock()
	creds, err := s.loadCredentials()
	if err != nil {
		return err
	}
	creds[strings.ToLower(cred.Email)] = cred
	return writeFile(filepath.Join(s.dir, passwordFile), creds)
}

// --- Inquiries ---

func (s *FileStore) Inquiries(_ context.Context) ([]models.Inquiry, error) {
	s.inquiryMu.Lock()
	defer s.inquiryMu.Unlock()
	return load[models.Inquiry](filepath.Join(s.dir, inquiryFile))
}

func (s *FileStore) CreateInquiry(_ context.Context, inq models.Inquiry) error {
	s.inquiryMu.Lock()
	defer s.inquiryMu.Unlock()
	path := filepath.Join(s.dir, inquiryFile)
	inquiries, err := load[models.Inquiry](path)
	if err != nil {
		return err
	}
	return writeFile(path, append(inquiries, inq))
}

// --- Contacts ---

func (s *FileStore) Contacts(_ context.Context) ([]models.Contact, error) {
	s.contactMu.Lock()
	defer s.contactMu.Unlock()
	return load[models.Contact](filepath.Join(s.dir, contactFile))
}

func (s *FileStore) CreateContact(_ context.Context, c models.Contact) error {
	s.contactMu.Lock()
	defer s.contactMu.Unlock()
	path := filepath.Join(s.dir, contactFile)
	contacts, err := load[models.Contact](path)
	if err != nil {
		return err
	}
	return writeFile(path, append(contacts, c))
}

func (s *FileStore) UpdateContact(_ context.Context, c models.Contact) error {
	s.contactMu.Lock()
	defer s.contactMu.Unlock()
	path := filepath.Join(s.dir, contactFile)
	contacts, err := load[models.Contact](path)
	if err != nil {
		return err
	}
	for i := range contacts {
		if contacts[i].ID == c.ID {
			contacts[i] = c
			return writeFile(path, contacts)
		}
	}
	return ErrNotFound
}

func (s *FileStore) DeleteContact(_ context.Context, id string) error {
	s.contactMu.Lock()
	defer s.contactMu.Unlock()
	path := filepath.Join(s.dir, contactFile)
	contacts, err := load[models.Contact](path)
	if err != nil {
		return err
	}
	for i := range contacts {
		if contacts[i].ID == id {
			return writeFile(path, append(contacts[:i], contacts[i+1:]...))
		}
	}
	return ErrNotFound
}

// --- Registrations ---

func (s *FileStore) Registrations(_ context.Context) ([]models.Registration, error) {
	s.registrationMu.Lock()
	defer s.registrationMu.Unlock()
	return load[models.Registration](filepath.Join(s.dir, registrationFile))
}

func (s *FileStore) CreateRegistration(_ context.Context, r models.Registration) error {
	s.registrationMu.Lock()
	defer s.registrationMu.Unlock()
	path := filepath.Join(s.dir, registrationFile)
	registrations, err := load[models.Registration](path)
	if err != nil {
		return err
	}
	return writeFile(path, append(registrations, r))
}

// MarkRegistrationsRead clears the isNew flag on every registration in
// one write. It reports whether anything changed; when nothing was new
// the file is left untouched.
func (s *FileStore) MarkRegistrationsRead(_ context.Context) (bool, error) {
	s.registrationMu.Lock()
	defer s.registrationMu.Unlock()
	path := filepath.Join(s.dir, registrationFile)
	registrations, err := load[models.Registration](path)
	if err != nil {
		return false, err
	}
	changed := false
	for i := range registrations {
		if registrations[i].IsNew {
			registrations[i].IsNew = false
			changed = true
		}
	}
	if !changed {
		return false, nil
	}
	return true, writeFile(path, registrations)
}
