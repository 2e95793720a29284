package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/plotvista/plotvista/internal/models"
)

// PostgresStore persists each collection in its own table, one row per
// record, using the same opaque string ids the pipelines assign.
type PostgresStore struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresStore creates a PostgresStore over the given connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

// --- Plots ---

const plotColumns = `id, plot_number, village_name, area_name, plot_size, plot_facing,
	image_url, image_hint, description, price, price_per_sqft, price_negotiable, status`

func (s *PostgresStore) Plots(ctx context.Context) ([]models.Plot, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+plotColumns+` FROM plots ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list plots: %w", err)
	}
	defer rows.Close()

	var plots []models.Plot
	for rows.Next() {
		var p models.Plot
		var desc sql.NullString
		var price, perSqft sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.PlotNumber, &p.VillageName, &p.AreaName, &p.PlotSize,
			&p.PlotFacing, &p.ImageURL, &p.ImageHint, &desc, &price, &perSqft,
			&p.PriceNegotiable, &p.Status); err != nil {
			return nil, fmt.Errorf("scan plot: %w", err)
		}
		p.Description = desc.String
		p.Price = floatPtr(price)
		p.PricePerSqft = floatPtr(perSqft)
		plots = append(plots, p)
	}
	return plots, rows.Err()
}

func (s *PostgresStore) CreatePlot(ctx context.Context, p models.Plot) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO plots (`+plotColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.PlotNumber, p.VillageName, p.AreaName, p.PlotSize, p.PlotFacing,
		p.ImageURL, p.ImageHint, p.Description, nullFloat(p.Price), nullFloat(p.PricePerSqft),
		p.PriceNegotiable, p.Status)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdatePlot(ctx context.Context, p models.Plot) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE plots SET plot_number = $2, village_name = $3, area_name = $4, plot_size = $5,
			plot_facing = $6, image_url = $7, image_hint = $8, description = $9,
			price = $10, price_per_sqft = $11, price_negotiable = $12, status = $13
		WHERE id = $1`,
		p.ID, p.PlotNumber, p.VillageName, p.AreaName, p.PlotSize, p.PlotFacing,
		p.ImageURL, p.ImageHint, p.Description, nullFloat(p.Price), nullFloat(p.PricePerSqft),
		p.PriceNegotiable, p.Status)
	if err != nil {
		return fmt.Errorf("update plot: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) DeletePlot(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM plots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plot: %w", err)
	}
	return requireRow(res)
}

// requireRow maps a zero-row mutation to ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Users ---

func (s *PostgresStore) Users(ctx context.Context) ([]models.User, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, email, role FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *PostgresStore) CreateUser(ctx context.Context, u models.User) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO users (id, email, role) VALUES ($1, $2, $3)`,
		u.ID, u.Email, u.Role)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteUser(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return requireRow(res)
}

// --- Credentials ---

func (s *PostgresStore) Credential(ctx context.Context, email string) (models.Credential, error) {
	var cred models.Credential
	err := s.DB.QueryRowContext(ctx,
		`SELECT email, hashed_password, updated_at FROM passwords WHERE email = $1`,
		strings.ToLower(email)).Scan(&cred.Email, &cred.HashedPassword, &cred.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Credential{}, ErrNotFound
	}
	if err != nil {
		return models.Credential{}, fmt.Errorf("get credential: %w", err)
	}
	return cred, nil
}

func (s *PostgresStore) SetCredential(ctx context.Context, cred models.Credential) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO passwords (email, hashed_password, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET
			hashed_password = EXCLUDED.hashed_password,
			updated_at = EXCLUDED.updated_at`,
		strings.ToLower(cred.Email), cred.HashedPassword, cred.UpdatedAt)
	if err != nil {
		return fmt.Errorf("set credential: %w", err)
	}
	return nil
}

// --- Inquiries ---

func (s *PostgresStore) Inquiries(ctx context.Context) ([]models.Inquiry, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, plot_number, name, email, message, received_at FROM inquiries ORDER BY received_at`)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		var inq models.Inquiry
		if err := rows.Scan(&inq.ID, &inq.PlotNumber, &inq.Name, &inq.Email, &inq.Message, &inq.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}

func (s *PostgresStore) CreateInquiry(ctx context.Context, inq models.Inquiry) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO inquiries (id, plot_number, name, email, message, received_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		inq.ID, inq.PlotNumber, inq.Name, inq.Email, inq.Message, inq.ReceivedAt)
	if err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}
	return nil
}

// --- Contacts ---

func (s *PostgresStore) Contacts(ctx context.Context) ([]models.Contact, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, phone, email, type, notes FROM contacts ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		var notes sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Type, &notes); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		c.Notes = notes.String
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *PostgresStore) CreateContact(ctx context.Context, c models.Contact) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO contacts (id, name, phone, email, type, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Phone, c.Email, c.Type, c.Notes)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateContact(ctx context.Context, c models.Contact) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE contacts SET name = $2, phone = $3, email = $4, type = $5, notes = $6
		WHERE id = $1`,
		c.ID, c.Name, c.Phone, c.Email, c.Type, c.Notes)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) DeleteContact(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return requireRow(res)
}

// --- Registrations ---

func (s *PostgresStore) Registrations(ctx context.Context) ([]models.Registration, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, phone, email, notes, created_at, is_new FROM registrations ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var registrations []models.Registration
	for rows.Next() {
		var r models.Registration
		var notes sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &r.Phone, &r.Email, &notes, &r.CreatedAt, &r.IsNew); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		r.Notes = notes.String
		registrations = append(registrations, r)
	}
	return registrations, rows.Err()
}

func (s *PostgresStore) CreateRegistration(ctx context.Context, r models.Registration) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO registrations (id, name, phone, email, notes, created_at, is_new)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.Name, r.Phone, r.Email, r.Notes, r.CreatedAt, r.IsNew)
	if err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

// MarkRegistrationsRead clears every isNew flag in one statement and
// reports whether any row changed.
func (s *PostgresStore) MarkRegistrationsRead(ctx context.Context) (bool, error) {
	res, err := s.DB.ExecContext(ctx, `UPDATE registrations SET is_new = false WHERE is_new = true`)
	if err != nil {
		return false, fmt.Errorf("mark registrations read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
