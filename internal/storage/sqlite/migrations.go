package sqlite

import (
	"database/sql"
	"fmt"

	"contactbook/internal/models"
)

// schema contains the SQL statements to set up the database.
// Groups must be created before contacts due to the foreign key constraint.
// Position columns preserve insertion order for phones, tags and notes, so a
// save/load round-trip keeps list ordering intact.
const schema = `
CREATE TABLE IF NOT EXISTS groups (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS contacts (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    name TEXT NOT NULL,
    birthday TEXT,
    email TEXT NOT NULL DEFAULT '',
    country TEXT NOT NULL DEFAULT '',
    city TEXT NOT NULL DEFAULT '',
    address_line TEXT NOT NULL DEFAULT '',
    UNIQUE (group_id, name),
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS phones (
    contact_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    canonical TEXT NOT NULL,
    PRIMARY KEY (contact_id, canonical),
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS contact_tags (
    contact_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    tag TEXT NOT NULL,
    PRIMARY KEY (contact_id, tag),
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS notes (
    id TEXT PRIMARY KEY,
    contact_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    content TEXT NOT NULL DEFAULT '',
    UNIQUE (contact_id, name),
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS note_tags (
    note_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    tag TEXT NOT NULL,
    PRIMARY KEY (note_id, tag),
    FOREIGN KEY (note_id) REFERENCES notes(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contacts_group_id ON contacts(group_id);
CREATE INDEX IF NOT EXISTS idx_phones_contact_id ON phones(contact_id);
CREATE INDEX IF NOT EXISTS idx_contact_tags_contact_id ON contact_tags(contact_id);
CREATE INDEX IF NOT EXISTS idx_notes_contact_id ON notes(contact_id);
CREATE INDEX IF NOT EXISTS idx_note_tags_note_id ON note_tags(note_id);
`

// runMigrations upgrades a legacy pre-groups database if needed, then
// executes the schema setup.
func runMigrations(db *sql.DB) error {
	if err := upgradeLegacy(db); err != nil {
		return err
	}
	_, err := db.Exec(schema)
	return err
}

// upgradeLegacy handles databases written before groups existed: a contacts
// table without a group_id column. Every such contact is assigned to the
// default group; the groups and meta tables are created by the schema run
// that follows. Best effort: a well-formed legacy file must upgrade without
// error.
func upgradeLegacy(db *sql.DB) error {
	hasContacts, err := tableExists(db, "contacts")
	if err != nil {
		return err
	}
	if !hasContacts {
		return nil
	}
	hasGroupID, err := columnExists(db, "contacts", "group_id")
	if err != nil {
		return err
	}
	if hasGroupID {
		return nil
	}
	_, err = db.Exec(
		fmt.Sprintf("ALTER TABLE contacts ADD COLUMN group_id TEXT NOT NULL DEFAULT '%s'", models.DefaultGroupID),
	)
	return err
}

func tableExists(db *sql.DB, name string) (bool, error) {
	var n int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			dflt       sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &primaryKey); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
