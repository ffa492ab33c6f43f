// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface. The address-book file is a single SQLite
// database: Load reads the whole book into memory, Save rewrites it in one
// transaction.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"contactbook/internal/book"
	"contactbook/internal/models"
	"contactbook/internal/storage"
)

const metaCurrentGroup = "current_group_id"

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath. Parent directories are
// created and migrations run automatically, including the one-time legacy
// upgrade of a pre-groups database. A file that exists but is not a readable
// database returns ErrStorageCorrupt.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", storage.ErrStorageCorrupt, err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", storage.ErrStorageCorrupt, err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the whole book into memory. An empty database yields a fresh
// book with only the default group. Rows that violate the domain invariants
// (duplicate keys, unparsable phones) mark the file as corrupt.
func (s *SQLiteStore) Load(ctx context.Context) (*book.Book, error) {
	b := book.New()

	if err := s.loadGroups(ctx, b); err != nil {
		return nil, corrupt("groups", err)
	}
	if err := s.loadContacts(ctx, b); err != nil {
		return nil, corrupt("contacts", err)
	}

	var current string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM meta WHERE key = ?", metaCurrentGroup,
	).Scan(&current)
	switch err {
	case nil:
		b.RestoreCurrentGroup(current)
	case sql.ErrNoRows:
		// Legacy or fresh database: cursor stays on the default group.
	default:
		return nil, corrupt("meta", err)
	}

	return b, nil
}

func (s *SQLiteStore) loadGroups(ctx context.Context, b *book.Book) error {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title, created_at FROM groups")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		g := &models.Group{}
		if err := rows.Scan(&g.ID, &g.Title, &g.CreatedAt); err != nil {
			return err
		}
		b.RestoreGroup(g)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadContacts(ctx context.Context, b *book.Book) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, name, birthday, email, country, city, address_line
		 FROM contacts ORDER BY group_id, name`,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		var (
			id, gid, name, email      string
			birthday                  sql.NullString
			country, city, line       string
		)
		if err := rows.Scan(&id, &gid, &name, &birthday, &email, &country, &city, &line); err != nil {
			return err
		}
		r, err := models.NewRecord(name, gid)
		if err != nil {
			return err
		}
		r.ID = id
		r.Email = email
		if birthday.Valid && birthday.String != "" {
			if err := r.SetBirthday(birthday.String); err != nil {
				return err
			}
		}
		r.SetAddress(country, city, line)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, r := range records {
		if err := s.loadContactDetails(ctx, r); err != nil {
			return err
		}
		if err := b.AddRecord(r); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) loadContactDetails(ctx context.Context, r *models.Record) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT canonical FROM phones WHERE contact_id = ? ORDER BY position", r.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var canonical string
		if err := rows.Scan(&canonical); err != nil {
			return err
		}
		// Canonical values are E.164 and carry their own country code, so no
		// default region is needed to re-derive the display forms.
		if err := r.AddPhone(canonical, ""); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	tags, err := s.loadTags(ctx, "SELECT tag FROM contact_tags WHERE contact_id = ? ORDER BY position", r.ID)
	if err != nil {
		return err
	}
	for _, t := range tags {
		if err := r.AddTag(t); err != nil {
			return err
		}
	}

	return s.loadNotes(ctx, r)
}

func (s *SQLiteStore) loadNotes(ctx context.Context, r *models.Record) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, content FROM notes WHERE contact_id = ? ORDER BY position", r.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		var id, name, content string
		if err := rows.Scan(&id, &name, &content); err != nil {
			return err
		}
		n, err := models.NewNote(name, content)
		if err != nil {
			return err
		}
		n.ID = id
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, n := range notes {
		tags, err := s.loadTags(ctx, "SELECT tag FROM note_tags WHERE note_id = ? ORDER BY position", n.ID)
		if err != nil {
			return err
		}
		for _, t := range tags {
			if err := n.AddTag(t); err != nil {
				return err
			}
		}
		r.RestoreNote(n)
	}
	return nil
}

func (s *SQLiteStore) loadTags(ctx context.Context, q, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Save rewrites the whole book in one transaction. Records and notes saved
// for the first time get their storage IDs assigned here.
func (s *SQLiteStore) Save(ctx context.Context, b *book.Book) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"note_tags", "notes", "contact_tags", "phones", "contacts", "groups", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, g := range b.Groups() {
		grp, err := b.Group(g.ID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO groups (id, title, created_at) VALUES (?, ?, ?)",
			grp.ID, grp.Title, grp.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}
	}

	for _, e := range b.IterAll() {
		if err := saveRecord(ctx, tx, e); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO meta (key, value) VALUES (?, ?)",
		metaCurrentGroup, b.CurrentGroup(),
	); err != nil {
		return fmt.Errorf("failed to insert meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func saveRecord(ctx context.Context, tx *sql.Tx, e book.Entry) error {
	r := e.Record
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	var birthday string
	if r.Birthday != nil {
		birthday = r.Birthday.String()
	}
	var country, city, line string
	if r.Address != nil {
		country, city, line = r.Address.Country, r.Address.City, r.Address.Line
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO contacts (id, group_id, name, birthday, email, country, city, address_line)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, e.Key.GroupID, e.Key.Name, birthday, r.Email, country, city, line,
	); err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	for i, p := range r.Phones {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO phones (contact_id, position, canonical) VALUES (?, ?, ?)",
			r.ID, i, p.Canonical,
		); err != nil {
			return fmt.Errorf("failed to insert phone: %w", err)
		}
	}

	for i, t := range r.ListTags() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO contact_tags (contact_id, position, tag) VALUES (?, ?, ?)",
			r.ID, i, t,
		); err != nil {
			return fmt.Errorf("failed to insert contact tag: %w", err)
		}
	}

	for i, n := range r.ListNotes() {
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO notes (id, contact_id, position, name, content) VALUES (?, ?, ?, ?, ?)",
			n.ID, r.ID, i, n.Name, n.Content,
		); err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}
		for j, t := range n.ListTags() {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO note_tags (note_id, position, tag) VALUES (?, ?, ?)",
				n.ID, j, t,
			); err != nil {
				return fmt.Errorf("failed to insert note tag: %w", err)
			}
		}
	}
	return nil
}

func corrupt(what string, err error) error {
	return fmt.Errorf("%w: failed to read %s: %v", storage.ErrStorageCorrupt, what, err)
}
