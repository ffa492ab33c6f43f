package query

import (
	"strings"

	"contactbook/internal/book"
	"contactbook/internal/models"
)

// ContactSearchType selects which contact fields a text search inspects.
type ContactSearchType string

const (
	ContactSearchAll       ContactSearchType = "all"
	ContactSearchName      ContactSearchType = "name"
	ContactSearchPhone     ContactSearchType = "phone"
	ContactSearchTags      ContactSearchType = "tags"
	ContactSearchTagsAll   ContactSearchType = "tags-all"
	ContactSearchTagsAny   ContactSearchType = "tags-any"
	ContactSearchNotesText ContactSearchType = "notes-text"
	ContactSearchNotesName ContactSearchType = "notes-name"
	ContactSearchNotesTags ContactSearchType = "notes-tags"
)

// NoteSearchType selects which fields a note search inspects.
type NoteSearchType string

const (
	NoteSearchAll          NoteSearchType = "all"
	NoteSearchName         NoteSearchType = "name"
	NoteSearchText         NoteSearchType = "text"
	NoteSearchTags         NoteSearchType = "tags"
	NoteSearchContactName  NoteSearchType = "contact-name"
	NoteSearchContactPhone NoteSearchType = "contact-phone"
	NoteSearchContactTags  NoteSearchType = "contact-tags"
)

// NoteHit is one note search result, attributed to its owning contact.
type NoteHit struct {
	ContactName string
	GroupID     string
	Note        *models.Note
}

// SearchContacts matches query case-insensitively as a substring against the
// fields selected by searchType, scoped to the current group. "all" matches
// if any field does. The tags-all and tags-any types reinterpret query as a
// comma-separated tag list and apply exact tag-set membership instead of
// substring matching.
func SearchContacts(b *book.Book, query string, searchType ContactSearchType) ([]book.Entry, error) {
	if searchType == ContactSearchTagsAll || searchType == ContactSearchTagsAny {
		tags := models.SplitTagList(query)
		if searchType == ContactSearchTagsAll {
			return FindByTagsAll(b, tags)
		}
		return FindByTagsAny(b, tags)
	}

	entries, err := b.IterGroup(b.CurrentGroup())
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := entries[:0:0]
	for _, e := range entries {
		if contactMatches(e.Key.Name, e.Record, q, searchType) {
			out = append(out, e)
		}
	}
	return out, nil
}

func contactMatches(name string, r *models.Record, q string, t ContactSearchType) bool {
	switch t {
	case ContactSearchName:
		return strings.Contains(strings.ToLower(name), q)
	case ContactSearchPhone:
		return anyPhoneContains(r, q)
	case ContactSearchTags:
		return anyContains(r.ListTags(), q)
	case ContactSearchNotesText:
		return anyNote(r, func(n *models.Note) bool {
			return strings.Contains(strings.ToLower(n.Content), q)
		})
	case ContactSearchNotesName:
		return anyNote(r, func(n *models.Note) bool {
			return strings.Contains(strings.ToLower(n.Name), q)
		})
	case ContactSearchNotesTags:
		return anyNote(r, func(n *models.Note) bool {
			return anyContains(n.ListTags(), q)
		})
	default: // ContactSearchAll
		return strings.Contains(strings.ToLower(name), q) ||
			anyPhoneContains(r, q) ||
			anyContains(r.ListTags(), q) ||
			anyNote(r, func(n *models.Note) bool {
				return strings.Contains(strings.ToLower(n.Name), q) ||
					strings.Contains(strings.ToLower(n.Content), q) ||
					anyContains(n.ListTags(), q)
			})
	}
}

// SearchNotes matches query case-insensitively against note fields (or the
// owning contact's fields for the contact-* types), scoped to the current
// group. Results are attributed to their owning contact.
func SearchNotes(b *book.Book, query string, searchType NoteSearchType) ([]NoteHit, error) {
	entries, err := b.IterGroup(b.CurrentGroup())
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var out []NoteHit
	for _, e := range entries {
		for _, n := range e.Record.ListNotes() {
			if noteMatches(e.Key.Name, e.Record, n, q, searchType) {
				out = append(out, NoteHit{ContactName: e.Key.Name, GroupID: e.Key.GroupID, Note: n})
			}
		}
	}
	return out, nil
}

func noteMatches(contactName string, r *models.Record, n *models.Note, q string, t NoteSearchType) bool {
	switch t {
	case NoteSearchName:
		return strings.Contains(strings.ToLower(n.Name), q)
	case NoteSearchText:
		return strings.Contains(strings.ToLower(n.Content), q)
	case NoteSearchTags:
		return anyContains(n.ListTags(), q)
	case NoteSearchContactName:
		return strings.Contains(strings.ToLower(contactName), q)
	case NoteSearchContactPhone:
		return anyPhoneContains(r, q)
	case NoteSearchContactTags:
		return anyContains(r.ListTags(), q)
	default: // NoteSearchAll
		return strings.Contains(strings.ToLower(n.Name), q) ||
			strings.Contains(strings.ToLower(n.Content), q) ||
			anyContains(n.ListTags(), q) ||
			strings.Contains(strings.ToLower(contactName), q) ||
			anyPhoneContains(r, q) ||
			anyContains(r.ListTags(), q)
	}
}

func anyContains(values []string, q string) bool {
	for _, v := range values {
		if strings.Contains(v, q) {
			return true
		}
	}
	return false
}

func anyPhoneContains(r *models.Record, q string) bool {
	for _, p := range r.Phones {
		if strings.Contains(p.Canonical, q) || strings.Contains(strings.ToLower(p.National), q) {
			return true
		}
	}
	return false
}

func anyNote(r *models.Record, match func(*models.Note) bool) bool {
	for _, n := range r.ListNotes() {
		if match(n) {
			return true
		}
	}
	return false
}
