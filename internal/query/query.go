// Package query implements sorting, filtering and searching over a book
// snapshot. Everything here is a pure computation at call time: no caching,
// no incremental indexes, no mutation of the book.
package query

import (
	"fmt"
	"sort"
	"strings"

	"contactbook/internal/book"
	"contactbook/internal/models"
)

// SortBy selects the ordering for ListContacts.
type SortBy string

const (
	// SortByName orders case-insensitively by contact name.
	SortByName SortBy = "name"

	// SortByPhone orders by the first phone's canonical value; contacts
	// without a phone sort after all contacts with one.
	SortByPhone SortBy = "phone"

	// SortByBirthday orders by birthday ascending; contacts without a
	// birthday sort last.
	SortByBirthday SortBy = "birthday"

	// SortByTagCount orders by tag count descending, ties broken by name.
	SortByTagCount SortBy = "tag_count"

	// SortByTagName orders by the comma-joined sorted tag list; a contact
	// with no tags uses the empty key and sorts first.
	SortByTagName SortBy = "tag_name"
)

// DefaultSortBy is used when no ordering is requested.
const DefaultSortBy = SortByName

// GroupAll is the sentinel group argument meaning "every group".
const GroupAll = "all"

// ListContacts returns the contacts in scope, ordered per sortBy. The group
// argument selects the scope: empty means the current group, GroupAll means
// every group (entries carry their owning group in the key), and any other
// value names a single group, failing with ErrGroupNotFound if unknown.
func ListContacts(b *book.Book, sortBy SortBy, group string) ([]book.Entry, error) {
	entries, err := scope(b, group)
	if err != nil {
		return nil, err
	}
	sortContacts(entries, sortBy)
	return entries, nil
}

func scope(b *book.Book, group string) ([]book.Entry, error) {
	switch group {
	case GroupAll:
		return b.IterAll(), nil
	case "":
		return b.IterGroup(b.CurrentGroup())
	default:
		return b.IterGroup(group)
	}
}

func sortContacts(entries []book.Entry, sortBy SortBy) {
	var less func(a, b book.Entry) bool
	switch sortBy {
	case SortByPhone:
		less = func(a, b book.Entry) bool {
			pa, pb := firstPhone(a.Record), firstPhone(b.Record)
			if (pa == "") != (pb == "") {
				return pa != "" // phoneless contacts sort last
			}
			return pa < pb
		}
	case SortByBirthday:
		less = func(a, b book.Entry) bool {
			ba, bb := a.Record.Birthday, b.Record.Birthday
			switch {
			case ba == nil:
				return false
			case bb == nil:
				return true
			default:
				return ba.Date().Before(bb.Date())
			}
		}
	case SortByTagCount:
		less = func(a, b book.Entry) bool {
			ca, cb := a.Record.Tags.Len(), b.Record.Tags.Len()
			if ca != cb {
				return ca > cb // most tags first
			}
			return strings.ToLower(a.Key.Name) < strings.ToLower(b.Key.Name)
		}
	case SortByTagName:
		less = func(a, b book.Entry) bool {
			return tagKey(a.Record) < tagKey(b.Record)
		}
	default: // SortByName and anything unrecognized
		less = func(a, b book.Entry) bool {
			return strings.ToLower(a.Key.Name) < strings.ToLower(b.Key.Name)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
}

func firstPhone(r *models.Record) string {
	if len(r.Phones) == 0 {
		return ""
	}
	return r.Phones[0].Canonical
}

// tagKey is the comma-joined alphabetically sorted tag list; empty for a
// contact with no tags.
func tagKey(r *models.Record) string {
	tags := r.ListTags()
	sort.Strings(tags)
	return strings.Join(tags, ",")
}

// --- Tag search ---

// FindByTagsAll returns the contacts in the current group whose tag set is a
// superset of tags (AND). An empty tag list returns an empty result, not
// everyone: an empty filter matches nothing.
func FindByTagsAll(b *book.Book, tags []string) ([]book.Entry, error) {
	return findByTags(b, tags, (*models.Record).HasTagsAll)
}

// FindByTagsAny returns the contacts in the current group whose tag set
// intersects tags (OR). An empty tag list returns an empty result.
func FindByTagsAny(b *book.Book, tags []string) ([]book.Entry, error) {
	return findByTags(b, tags, (*models.Record).HasTagsAny)
}

func findByTags(b *book.Book, tags []string, match func(*models.Record, []string) bool) ([]book.Entry, error) {
	want, err := normalizeTags(tags)
	if err != nil {
		return nil, err
	}
	if len(want) == 0 {
		return nil, nil
	}
	entries, err := b.IterGroup(b.CurrentGroup())
	if err != nil {
		return nil, err
	}
	out := entries[:0:0]
	for _, e := range entries {
		if match(e.Record, want) {
			out = append(out, e)
		}
	}
	return out, nil
}

// normalizeTags normalizes each raw tag and validates it against the stored
// tag contract; comparison always runs against normalized forms.
func normalizeTags(raws []string) ([]string, error) {
	out := make([]string, 0, len(raws))
	for _, raw := range raws {
		n := models.NormalizeTag(raw)
		if !models.IsValidTag(n) {
			return nil, fmt.Errorf("%w: %q", models.ErrInvalidTag, raw)
		}
		out = append(out, n)
	}
	return out, nil
}
