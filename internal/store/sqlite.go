// Package store persists contact records and application preferences in
// SQLite. The wish engine itself never touches storage; callers load
// contacts here and hand them to the engine.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/model"
)

// ErrNotFound is returned when no contact matches the requested id.
var ErrNotFound = errors.New(config.ErrContactMissing)

// SQLiteStore implements contact persistence on a local SQLite database.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS contacts (
		id                  TEXT PRIMARY KEY,
		birth_date          TEXT NOT NULL,
		person_name         TEXT NOT NULL,
		nickname            TEXT NOT NULL DEFAULT '',
		relationship        TEXT NOT NULL,
		salutation          TEXT NOT NULL DEFAULT '',
		gender              TEXT NOT NULL DEFAULT '',
		bond_strength       TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		communication_style TEXT NOT NULL,
		emoji_preference    TEXT NOT NULL,
		writer_type         TEXT NOT NULL,
		email               TEXT NOT NULL DEFAULT '',
		whatsapp            TEXT NOT NULL DEFAULT '',
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_contacts_month_day ON contacts(substr(birth_date, 6, 5));
	CREATE INDEX IF NOT EXISTS idx_contacts_name ON contacts(person_name);

	CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save inserts the contact, assigning a fresh ULID when the id is empty, or
// updates the existing row otherwise. The stored record is returned.
func (s *SQLiteStore) Save(ctx context.Context, c model.Contact) (*model.Contact, error) {
	now := time.Now().UTC()

	if c.ID == "" {
		c.ID = s.newID()
		c.CreatedAt = now
		c.UpdatedAt = now
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO contacts (id, birth_date, person_name, nickname, relationship, salutation, gender,
			                       bond_strength, description, communication_style, emoji_preference, writer_type,
			                       email, whatsapp, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.BirthDate, c.PersonName, c.Nickname, c.Relationship, c.Salutation, c.Gender,
			c.BondStrength, c.Description, c.CommunicationStyle, c.EmojiPreference, c.WriterType,
			c.Email, c.WhatsApp, now.Format(time.RFC3339), now.Format(time.RFC3339))
		if err != nil {
			return nil, fmt.Errorf("insert contact: %w", err)
		}
		return &c, nil
	}

	c.UpdatedAt = now
	res, err := s.db.ExecContext(ctx,
		`UPDATE contacts SET birth_date = ?, person_name = ?, nickname = ?, relationship = ?, salutation = ?,
		                     gender = ?, bond_strength = ?, description = ?, communication_style = ?,
		                     emoji_preference = ?, writer_type = ?, email = ?, whatsapp = ?, updated_at = ?
		 WHERE id = ?`,
		c.BirthDate, c.PersonName, c.Nickname, c.Relationship, c.Salutation,
		c.Gender, c.BondStrength, c.Description, c.CommunicationStyle,
		c.EmojiPreference, c.WriterType, c.Email, c.WhatsApp, now.Format(time.RFC3339),
		c.ID)
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, c.ID)
	}
	return &c, nil
}

// Get returns the contact with the given id, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Contact, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` FROM contacts WHERE id = ?`, id)
	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all contacts ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]model.Contact, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` FROM contacts ORDER BY person_name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// ForDay returns the contacts whose birth date falls on the given month-day
// key ("01-02"), regardless of year.
func (s *SQLiteStore) ForDay(ctx context.Context, monthDay string) ([]model.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` FROM contacts WHERE substr(birth_date, 6, 5) = ? ORDER BY person_name, id`, monthDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// Delete removes the contact with the given id, or returns ErrNotFound.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// GetPref returns the stored preference value, or "" when unset.
func (s *SQLiteStore) GetPref(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// SetPref stores or replaces a preference value.
func (s *SQLiteStore) SetPref(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const selectColumns = `SELECT id, birth_date, person_name, nickname, relationship, salutation, gender,
       bond_strength, description, communication_style, emoji_preference, writer_type,
       email, whatsapp, created_at, updated_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanContact(row scanner) (model.Contact, error) {
	var c model.Contact
	var createdAt, updatedAt string

	err := row.Scan(
		&c.ID, &c.BirthDate, &c.PersonName, &c.Nickname, &c.Relationship, &c.Salutation, &c.Gender,
		&c.BondStrength, &c.Description, &c.CommunicationStyle, &c.EmojiPreference, &c.WriterType,
		&c.Email, &c.WhatsApp, &createdAt, &updatedAt,
	)
	if err != nil {
		return c, err
	}

	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return c, nil
}
