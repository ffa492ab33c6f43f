// Package service provides the thin command-facing layer over the book.
// Services validate nothing themselves — the book and models own the
// invariants — and return structured values for the CLI to render.
package service

import (
	"log/slog"
	"time"

	"contactbook/internal/book"
	"contactbook/internal/models"
	"contactbook/internal/query"
	"contactbook/internal/reminder"
)

// ContactService manages contacts and groups in an address book.
type ContactService struct {
	book   *book.Book
	region string
}

// NewContactService creates a ContactService over the given book. region is
// the default phone region applied when parsing numbers without a country
// code.
func NewContactService(b *book.Book, region string) *ContactService {
	return &ContactService{book: b, region: region}
}

// AddContact creates a contact in the given group (empty means current) or,
// if it already exists there, adds the phone to it. It reports whether a new
// contact was created.
func (s *ContactService) AddContact(name, phone, groupID string) (created bool, err error) {
	rec := s.book.Find(name, groupID)
	if rec == nil {
		rec, err = models.NewRecord(name, groupID)
		if err != nil {
			return false, err
		}
		if err = s.book.AddRecord(rec); err != nil {
			return false, err
		}
		created = true
	}
	if phone != "" {
		if err = rec.AddPhone(phone, s.region); err != nil {
			return created, err
		}
	}
	slog.Debug("contact stored", "name", name, "group", rec.GroupID, "created", created)
	return created, nil
}

// ChangeContact replaces oldPhone with newPhone on an existing contact.
func (s *ContactService) ChangeContact(name, oldPhone, newPhone, groupID string) error {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return err
	}
	return rec.EditPhone(oldPhone, newPhone, s.region)
}

// RemovePhone deletes a phone number from an existing contact.
func (s *ContactService) RemovePhone(name, phone, groupID string) error {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return err
	}
	return rec.RemovePhone(phone, s.region)
}

// GetPhones returns the contact's numbers in order.
func (s *ContactService) GetPhones(name, groupID string) ([]models.Phone, error) {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Phone, len(rec.Phones))
	copy(out, rec.Phones)
	return out, nil
}

// GetContact returns the full record.
func (s *ContactService) GetContact(name, groupID string) (*models.Record, error) {
	return s.book.Get(name, groupID)
}

// DeleteContact removes a contact and all of its notes.
func (s *ContactService) DeleteContact(name, groupID string) error {
	if err := s.book.Delete(name, groupID); err != nil {
		return err
	}
	slog.Debug("contact deleted", "name", name)
	return nil
}

// SetBirthday sets a contact's birthday from a DD.MM.YYYY string.
func (s *ContactService) SetBirthday(name, birthday, groupID string) error {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return err
	}
	return rec.SetBirthday(birthday)
}

// GetBirthday returns the contact's birthday, or nil if unset.
func (s *ContactService) GetBirthday(name, groupID string) (*models.Birthday, error) {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return nil, err
	}
	return rec.Birthday, nil
}

// UpcomingBirthdays returns congratulations due within days of today.
func (s *ContactService) UpcomingBirthdays(days int) []reminder.Greeting {
	return reminder.Upcoming(s.book, days, time.Now())
}

// SetEmail sets a contact's email address.
func (s *ContactService) SetEmail(name, email, groupID string) error {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return err
	}
	return rec.SetEmail(email)
}

// RemoveEmail clears a contact's email address.
func (s *ContactService) RemoveEmail(name, groupID string) error {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return err
	}
	rec.RemoveEmail()
	return nil
}

// SetAddress sets a contact's address.
func (s *ContactService) SetAddress(name, country, city, line, groupID string) error {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return err
	}
	rec.SetAddress(country, city, line)
	return nil
}

// RemoveAddress clears a contact's address.
func (s *ContactService) RemoveAddress(name, groupID string) error {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return err
	}
	rec.RemoveAddress()
	return nil
}

// ListContacts returns the contacts in scope ordered per sortBy. See
// query.ListContacts for the group argument contract.
func (s *ContactService) ListContacts(sortBy query.SortBy, group string) ([]book.Entry, error) {
	return query.ListContacts(s.book, sortBy, group)
}

// HasContacts reports whether the book holds any contact at all.
func (s *ContactService) HasContacts() bool {
	return s.book.Len() > 0
}

// --- Tags ---

// AddTag adds a tag to a contact.
func (s *ContactService) AddTag(name, tag, groupID string) error {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return err
	}
	return rec.AddTag(tag)
}

// RemoveTag removes a tag from a contact; absent tags are a no-op.
func (s *ContactService) RemoveTag(name, tag, groupID string) error {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return err
	}
	rec.RemoveTag(tag)
	return nil
}

// ClearTags removes every tag from a contact.
func (s *ContactService) ClearTags(name, groupID string) error {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return err
	}
	rec.ClearTags()
	return nil
}

// ListTags returns a contact's tags in insertion order.
func (s *ContactService) ListTags(name, groupID string) ([]string, error) {
	rec, err := s.book.Get(name, groupID)
	if err != nil {
		return nil, err
	}
	return rec.ListTags(), nil
}

// FindByTagsAll returns current-group contacts carrying every tag in the
// comma-separated list (AND). An empty list matches nothing.
func (s *ContactService) FindByTagsAll(tags string) ([]book.Entry, error) {
	return query.FindByTagsAll(s.book, models.SplitTagList(tags))
}

// FindByTagsAny returns current-group contacts carrying at least one tag in
// the comma-separated list (OR). An empty list matches nothing.
func (s *ContactService) FindByTagsAny(tags string) ([]book.Entry, error) {
	return query.FindByTagsAny(s.book, models.SplitTagList(tags))
}

// --- Groups ---

// AddGroup creates a group explicitly.
func (s *ContactService) AddGroup(id, title string) (*models.Group, error) {
	g, err := s.book.AddGroup(id, title)
	if err != nil {
		return nil, err
	}
	slog.Debug("group created", "group", g.ID)
	return g, nil
}

// RenameGroup re-keys every contact of oldID under newID atomically.
func (s *ContactService) RenameGroup(oldID, newID string) error {
	if err := s.book.RenameGroup(oldID, newID); err != nil {
		return err
	}
	slog.Debug("group renamed", "from", oldID, "to", newID)
	return nil
}

// RemoveGroup deletes a group; with force, its contacts too.
func (s *ContactService) RemoveGroup(id string, force bool) error {
	if err := s.book.RemoveGroup(id, force); err != nil {
		return err
	}
	slog.Debug("group removed", "group", id, "force", force)
	return nil
}

// UseGroup switches the current group cursor.
func (s *ContactService) UseGroup(id string) error {
	return s.book.SetCurrentGroup(id)
}

// CurrentGroup returns the current group id.
func (s *ContactService) CurrentGroup() string {
	return s.book.CurrentGroup()
}

// ListGroups returns every group with its contact count.
func (s *ContactService) ListGroups() []book.GroupInfo {
	return s.book.Groups()
}
