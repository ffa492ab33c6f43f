package models

import (
	"fmt"
	"strings"
)

// Record holds one contact. Name uniqueness is enforced by the book, and only
// within a single group: the same name in two groups is two independent
// records.
type Record struct {
	// ID is the storage identifier (UUID format), assigned on first save.
	ID string

	// Name is the contact's name, trimmed and non-empty.
	Name string

	// GroupID is the owning group. Empty means "the book's current group",
	// resolved when the record is added to a book.
	GroupID string

	// Phones is an ordered list of parsed numbers, unique by canonical value.
	Phones []Phone

	// Birthday is optional.
	Birthday *Birthday

	// Email is the normalized lowercase address; empty means unset.
	Email string

	// Address is optional structured country/city/line.
	Address *Address

	// Tags is the contact's tag set.
	Tags TagSet

	notes []*Note
}

// NewRecord builds a record with a trimmed, non-empty name. groupID may be
// empty to defer group assignment to the book.
func NewRecord(name, groupID string) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("contact %w", ErrEmptyName)
	}
	return &Record{Name: name, GroupID: groupID}, nil
}

// --- Phones ---

// AddPhone parses raw against region and appends it. A number whose canonical
// value is already present returns ErrDuplicatePhone.
func (r *Record) AddPhone(raw, region string) error {
	p, err := ParsePhone(raw, region)
	if err != nil {
		return err
	}
	if r.findPhone(p.Canonical) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicatePhone, p.Canonical)
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone deletes the number matching the canonical form of raw.
func (r *Record) RemovePhone(raw, region string) error {
	p, err := ParsePhone(raw, region)
	if err != nil {
		return err
	}
	i := r.findPhone(p.Canonical)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrPhoneNotFound, raw)
	}
	r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
	return nil
}

// EditPhone replaces oldRaw with newRaw in place, preserving position. The
// new number goes through the same parse and duplicate rules as AddPhone,
// except against the slot being replaced.
func (r *Record) EditPhone(oldRaw, newRaw, region string) error {
	old, err := ParsePhone(oldRaw, region)
	if err != nil {
		return err
	}
	i := r.findPhone(old.Canonical)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrPhoneNotFound, oldRaw)
	}
	p, err := ParsePhone(newRaw, region)
	if err != nil {
		return err
	}
	if j := r.findPhone(p.Canonical); j >= 0 && j != i {
		return fmt.Errorf("%w: %q", ErrDuplicatePhone, p.Canonical)
	}
	r.Phones[i] = p
	return nil
}

// FindPhone returns the stored number matching the canonical form of raw,
// or nil.
func (r *Record) FindPhone(raw, region string) *Phone {
	p, err := ParsePhone(raw, region)
	if err != nil {
		return nil
	}
	if i := r.findPhone(p.Canonical); i >= 0 {
		return &r.Phones[i]
	}
	return nil
}

func (r *Record) findPhone(canonical string) int {
	for i, p := range r.Phones {
		if p.Canonical == canonical {
			return i
		}
	}
	return -1
}

// --- Birthday / email / address ---

// SetBirthday validates a strict DD.MM.YYYY date and overwrites any existing
// birthday. No history is kept.
func (r *Record) SetBirthday(s string) error {
	b, err := ParseBirthday(s)
	if err != nil {
		return err
	}
	r.Birthday = b
	return nil
}

// SetEmail normalizes and overwrites the email address.
func (r *Record) SetEmail(raw string) error {
	e, err := NormalizeEmail(raw)
	if err != nil {
		return err
	}
	r.Email = e
	return nil
}

// RemoveEmail clears the email address.
func (r *Record) RemoveEmail() {
	r.Email = ""
}

// SetAddress overwrites the address. A fully blank address is stored as unset.
func (r *Record) SetAddress(country, city, line string) {
	a := NewAddress(country, city, line)
	if a.Empty() {
		r.Address = nil
		return
	}
	r.Address = &a
}

// RemoveAddress clears the address.
func (r *Record) RemoveAddress() {
	r.Address = nil
}

// --- Tags ---

// AddTag adds a normalized tag; adding a present tag is a no-op.
func (r *Record) AddTag(raw string) error {
	return r.Tags.Add(raw)
}

// RemoveTag removes a tag; removing an absent tag is a no-op.
func (r *Record) RemoveTag(raw string) {
	r.Tags.Remove(raw)
}

// ClearTags removes every tag.
func (r *Record) ClearTags() {
	r.Tags.Clear()
}

// ListTags returns the contact's tags in insertion order.
func (r *Record) ListTags() []string {
	return r.Tags.List()
}

// SetTags replaces all tags at once.
func (r *Record) SetTags(raws []string) error {
	return r.Tags.Replace(raws)
}

// HasTagsAll reports whether the contact carries every given tag (AND).
func (r *Record) HasTagsAll(tags []string) bool {
	return r.Tags.HasAll(tags)
}

// HasTagsAny reports whether the contact carries at least one given tag (OR).
func (r *Record) HasTagsAny(tags []string) bool {
	return r.Tags.HasAny(tags)
}

// --- Notes ---

// AddNote attaches a new note. A note with the same name already present
// returns ErrDuplicateNote.
func (r *Record) AddNote(name, content string) (*Note, error) {
	n, err := NewNote(name, content)
	if err != nil {
		return nil, err
	}
	if r.FindNote(n.Name) != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNote, n.Name)
	}
	r.notes = append(r.notes, n)
	return n, nil
}

// FindNote returns the note with the given name, or nil.
func (r *Record) FindNote(name string) *Note {
	name = strings.TrimSpace(name)
	for _, n := range r.notes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// GetNote returns the note with the given name or ErrNoteNotFound.
func (r *Record) GetNote(name string) (*Note, error) {
	if n := r.FindNote(name); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNoteNotFound, name)
}

// EditNote replaces the content of an existing note.
func (r *Record) EditNote(name, content string) error {
	n, err := r.GetNote(name)
	if err != nil {
		return err
	}
	n.SetContent(content)
	return nil
}

// DeleteNote removes a note by name.
func (r *Record) DeleteNote(name string) error {
	name = strings.TrimSpace(name)
	for i, n := range r.notes {
		if n.Name == name {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNoteNotFound, name)
}

// ListNotes returns the notes in creation order.
func (r *Record) ListNotes() []*Note {
	out := make([]*Note, len(r.notes))
	copy(out, r.notes)
	return out
}

// RestoreNote re-attaches a note loaded from storage, bypassing duplicate
// checks. Only the persistence layer should call this.
func (r *Record) RestoreNote(n *Note) {
	r.notes = append(r.notes, n)
}

// Summary renders the one-line convenience form of the record.
func (r *Record) Summary() string {
	parts := []string{fmt.Sprintf("Contact name: %s", r.Name)}
	if len(r.Phones) > 0 {
		ps := make([]string, len(r.Phones))
		for i, p := range r.Phones {
			ps[i] = p.International
		}
		parts = append(parts, fmt.Sprintf("phones: %s", strings.Join(ps, "; ")))
	}
	if r.Birthday != nil {
		parts = append(parts, fmt.Sprintf("birthday: %s", r.Birthday))
	}
	if r.Email != "" {
		parts = append(parts, fmt.Sprintf("email: %s", r.Email))
	}
	if r.Address != nil && !r.Address.Empty() {
		parts = append(parts, fmt.Sprintf("address: %s", r.Address))
	}
	if r.Tags.Len() > 0 {
		parts = append(parts, fmt.Sprintf("tags: %s", strings.Join(r.ListTags(), ", ")))
	}
	return strings.Join(parts, ", ")
}
