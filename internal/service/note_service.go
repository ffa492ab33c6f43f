package service

import (
	"log/slog"

	"contactbook/internal/book"
	"contactbook/internal/models"
)

// NoteService manages the notes attached to contacts.
type NoteService struct {
	book *book.Book
}

// NewNoteService creates a NoteService over the given book.
func NewNoteService(b *book.Book) *NoteService {
	return &NoteService{book: b}
}

// AddNote attaches a note to a contact. The note name is its identifier and
// must be unique within the contact.
func (s *NoteService) AddNote(contact, name, content, groupID string) (*models.Note, error) {
	rec, err := s.book.Get(contact, groupID)
	if err != nil {
		return nil, err
	}
	n, err := rec.AddNote(name, content)
	if err != nil {
		return nil, err
	}
	slog.Debug("note added", "contact", contact, "note", n.Name)
	return n, nil
}

// EditNote replaces an existing note's content.
func (s *NoteService) EditNote(contact, name, content, groupID string) error {
	rec, err := s.book.Get(contact, groupID)
	if err != nil {
		return err
	}
	return rec.EditNote(name, content)
}

// DeleteNote removes a note from a contact.
func (s *NoteService) DeleteNote(contact, name, groupID string) error {
	rec, err := s.book.Get(contact, groupID)
	if err != nil {
		return err
	}
	return rec.DeleteNote(name)
}

// GetNote returns a note by name.
func (s *NoteService) GetNote(contact, name, groupID string) (*models.Note, error) {
	rec, err := s.book.Get(contact, groupID)
	if err != nil {
		return nil, err
	}
	return rec.GetNote(name)
}

// ListNotes returns a contact's notes in creation order.
func (s *NoteService) ListNotes(contact, groupID string) ([]*models.Note, error) {
	rec, err := s.book.Get(contact, groupID)
	if err != nil {
		return nil, err
	}
	return rec.ListNotes(), nil
}

// AddNoteTag adds a tag to a specific note.
func (s *NoteService) AddNoteTag(contact, note, tag, groupID string) error {
	n, err := s.GetNote(contact, note, groupID)
	if err != nil {
		return err
	}
	return n.AddTag(tag)
}

// RemoveNoteTag removes a tag from a specific note; absent tags are a no-op.
func (s *NoteService) RemoveNoteTag(contact, note, tag, groupID string) error {
	n, err := s.GetNote(contact, note, groupID)
	if err != nil {
		return err
	}
	n.RemoveTag(tag)
	return nil
}

// ClearNoteTags removes every tag from a specific note.
func (s *NoteService) ClearNoteTags(contact, note, groupID string) error {
	n, err := s.GetNote(contact, note, groupID)
	if err != nil {
		return err
	}
	n.ClearTags()
	return nil
}

// ListNoteTags returns a note's tags in insertion order.
func (s *NoteService) ListNoteTags(contact, note, groupID string) ([]string, error) {
	n, err := s.GetNote(contact, note, groupID)
	if err != nil {
		return nil, err
	}
	return n.ListTags(), nil
}
