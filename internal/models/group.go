package models

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultGroupID identifies the group that always exists in a book. Records
// created without an explicit group land in the book's current group, which
// starts out as this one.
const DefaultGroupID = "personal"

var groupIDPattern = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

// NormalizeGroupID case-folds and validates a group identifier. Empty input
// or input outside [a-z0-9_-]{1,32} returns ErrInvalidGroupID.
func NormalizeGroupID(raw string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(raw))
	if !groupIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q (allowed: [a-z0-9_-], length 1..32)", ErrInvalidGroupID, raw)
	}
	return id, nil
}

// Group is a named collection of contacts.
type Group struct {
	// ID is the normalized group identifier (unique key).
	ID string

	// Title is the human-readable name; defaults to the ID.
	Title string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// NewGroup builds a Group with a normalized ID. A blank title defaults to
// the ID.
func NewGroup(id, title string) (*Group, error) {
	nid, err := NormalizeGroupID(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		title = nid
	}
	return &Group{ID: nid, Title: title}, nil
}

// DisplayName returns the title, falling back to the ID.
func (g *Group) DisplayName() string {
	if g.Title != "" {
		return g.Title
	}
	return g.ID
}
