// Package storage provides the persistence boundary for the address book.
package storage

import (
	"context"
	"errors"

	"contactbook/internal/book"
)

// ErrStorageCorrupt marks a persisted book that exists but cannot be read.
// It is raised only at this boundary, never by in-memory operations.
var ErrStorageCorrupt = errors.New("storage corrupt")

// Store defines the interface for address-book persistence. This abstraction
// allows swapping storage backends without changing the service layer.
//
// A book round-tripped through Save then Load is behaviorally identical —
// same groups, contacts, phones, tags and notes — except for the one-time
// legacy migration applied when loading a pre-groups database.
type Store interface {
	// Load reads the whole book into memory. A store that was never saved
	// yields a fresh, empty, default-group-only book, not an error.
	Load(ctx context.Context) (*book.Book, error)

	// Save writes the whole book back, replacing previous contents.
	Save(ctx context.Context, b *book.Book) error

	// Close releases any resources held by the store.
	Close() error
}
