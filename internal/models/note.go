package models

import (
	"fmt"
	"strings"
)

// Note is a named text note attached to a contact. The name acts as the
// note's identifier and is unique within its owning contact.
type Note struct {
	// ID is the storage identifier (UUID format), assigned on first save.
	ID string

	// Name is the note's title and unique key within the contact.
	Name string

	// Content is free text; may be empty.
	Content string

	// Tags is the note's own tag set, independent of the contact's.
	Tags TagSet
}

// NewNote builds a note with a trimmed, non-empty name.
func NewNote(name, content string) (*Note, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("note %w", ErrEmptyName)
	}
	return &Note{Name: name, Content: content}, nil
}

// SetContent replaces the note's content.
func (n *Note) SetContent(content string) {
	n.Content = content
}

// AddTag adds a normalized tag to the note. Invalid tags return ErrInvalidTag.
func (n *Note) AddTag(raw string) error {
	return n.Tags.Add(raw)
}

// RemoveTag removes a tag from the note; absent tags are a no-op.
func (n *Note) RemoveTag(raw string) {
	n.Tags.Remove(raw)
}

// ClearTags removes every tag from the note.
func (n *Note) ClearTags() {
	n.Tags.Clear()
}

// ListTags returns the note's tags in insertion order.
func (n *Note) ListTags() []string {
	return n.Tags.List()
}

// HasTagsAll reports whether the note carries every given tag (AND).
func (n *Note) HasTagsAll(tags []string) bool {
	return n.Tags.HasAll(tags)
}

// HasTagsAny reports whether the note carries at least one given tag (OR).
func (n *Note) HasTagsAny(tags []string) bool {
	return n.Tags.HasAny(tags)
}
