package models

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"
)

// tagPattern is the allowed shape of a stored tag: lowercase letters, digits,
// underscores and hyphens, 1 to 32 characters.
var tagPattern = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

// NormalizeTag trims, collapses inner whitespace and lowercases a raw tag.
// Blank input normalizes to the empty string; the caller decides whether an
// empty tag is acceptable.
func NormalizeTag(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

// IsValidTag reports whether tag is non-empty and matches the tag alphabet.
// The input is expected to be already normalized.
func IsValidTag(tag string) bool {
	return tagPattern.MatchString(tag)
}

// SplitTagList splits a comma-separated tag token into individual raw tags.
// Commas inside double quotes do not split, so a single CLI argument like
// `"machine,learning",go` yields two tokens. Blank tokens are dropped.
func SplitTagList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	r := csv.NewReader(strings.NewReader(s))
	r.TrimLeadingSpace = true
	row, err := r.Read()
	if err != nil {
		// Unbalanced quotes: fall back to a plain comma split.
		row = strings.Split(s, ",")
	}
	out := make([]string, 0, len(row))
	for _, t := range row {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// TagSet holds a duplicate-free list of normalized tags in insertion order.
// The zero value is an empty, usable set.
type TagSet struct {
	tags []string
}

// Add normalizes raw and appends it unless already present. Adding a present
// tag is a no-op, not an error. An invalid tag returns ErrInvalidTag.
func (s *TagSet) Add(raw string) error {
	n := NormalizeTag(raw)
	if !IsValidTag(n) {
		return fmt.Errorf("%w: %q", ErrInvalidTag, raw)
	}
	if !s.Has(n) {
		s.tags = append(s.tags, n)
	}
	return nil
}

// Remove drops the tag matching the normalized form of raw. Removing an
// absent tag is a no-op.
func (s *TagSet) Remove(raw string) {
	n := NormalizeTag(raw)
	for i, t := range s.tags {
		if t == n {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return
		}
	}
}

// Replace swaps the whole set for the normalized form of raws. Blank entries
// are skipped, duplicates collapse to the first occurrence, and any invalid
// tag aborts the replacement leaving the set untouched.
func (s *TagSet) Replace(raws []string) error {
	out := make([]string, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	for _, raw := range raws {
		n := NormalizeTag(raw)
		if n == "" {
			continue
		}
		if !IsValidTag(n) {
			return fmt.Errorf("%w: %q", ErrInvalidTag, raw)
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	s.tags = out
	return nil
}

// Clear removes every tag.
func (s *TagSet) Clear() {
	s.tags = nil
}

// Has reports whether the normalized form of raw is present.
func (s *TagSet) Has(raw string) bool {
	n := NormalizeTag(raw)
	for _, t := range s.tags {
		if t == n {
			return true
		}
	}
	return false
}

// HasAll reports whether every tag in tags is present (AND).
func (s *TagSet) HasAll(tags []string) bool {
	for _, t := range tags {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one tag in tags is present (OR).
func (s *TagSet) HasAny(tags []string) bool {
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// List returns a copy of the tags in insertion order.
func (s *TagSet) List() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// Len returns the number of tags.
func (s *TagSet) Len() int {
	return len(s.tags)
}
