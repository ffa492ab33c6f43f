package service

import (
	"contactbook/internal/book"
	"contactbook/internal/query"
)

// SearchService runs text and tag searches over the current group. It only
// reads the book; an empty book yields empty results, never an error.
type SearchService struct {
	book *book.Book
}

// NewSearchService creates a SearchService over the given book.
func NewSearchService(b *book.Book) *SearchService {
	return &SearchService{book: b}
}

// SearchContacts matches query against the fields selected by searchType.
func (s *SearchService) SearchContacts(q string, searchType query.ContactSearchType) ([]book.Entry, error) {
	return query.SearchContacts(s.book, q, searchType)
}

// SearchNotes matches query against note fields selected by searchType.
func (s *SearchService) SearchNotes(q string, searchType query.NoteSearchType) ([]query.NoteHit, error) {
	return query.SearchNotes(s.book, q, searchType)
}
