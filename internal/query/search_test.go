package query

import (
	"testing"

	"contactbook/internal/book"
	"contactbook/internal/models"
)

func setupSearchBook(t *testing.T) *book.Book {
	t.Helper()
	b := book.New()

	anna, err := models.NewRecord("Anna", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := anna.AddPhone("0501234567", "UA"); err != nil {
		t.Fatal(err)
	}
	if err := anna.AddTag("work"); err != nil {
		t.Fatal(err)
	}
	n, err := anna.AddNote("meeting", "Discuss the Q3 budget")
	if err != nil {
		t.Fatal(err)
	}
	if err := n.AddTag("finance"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddRecord(anna); err != nil {
		t.Fatal(err)
	}

	pavlo, err := models.NewRecord("Pavlo", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := pavlo.AddTag("gym"); err != nil {
		t.Fatal(err)
	}
	if _, err := pavlo.AddNote("ideas", "Weekend hiking plan"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddRecord(pavlo); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSearchContacts(t *testing.T) {
	b := setupSearchBook(t)

	tests := []struct {
		name       string
		query      string
		searchType ContactSearchType
		want       []string
	}{
		{"name substring, case folded", "ANN", ContactSearchName, []string{"Anna"}},
		{"phone digits", "123456", ContactSearchPhone, []string{"Anna"}},
		{"tag substring", "gy", ContactSearchTags, []string{"Pavlo"}},
		{"note text", "budget", ContactSearchNotesText, []string{"Anna"}},
		{"note name", "idea", ContactSearchNotesName, []string{"Pavlo"}},
		{"note tags", "fin", ContactSearchNotesTags, []string{"Anna"}},
		{"all inspects every field", "hiking", ContactSearchAll, []string{"Pavlo"}},
		{"no hits", "zz", ContactSearchAll, nil},
		{"tags-all is exact membership", "work", ContactSearchTagsAll, []string{"Anna"}},
		{"tags-any with a list", "work, gym", ContactSearchTagsAny, []string{"Anna", "Pavlo"}},
		{"tags-all partial tag is no match", "wo", ContactSearchTagsAll, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := SearchContacts(b, tt.query, tt.searchType)
			if err != nil {
				t.Fatalf("SearchContacts failed: %v", err)
			}
			assertOrder(t, entries, tt.want...)
		})
	}
}

func TestSearchNotes(t *testing.T) {
	b := setupSearchBook(t)

	tests := []struct {
		name       string
		query      string
		searchType NoteSearchType
		wantNotes  []string
	}{
		{"by note name", "meet", NoteSearchName, []string{"meeting"}},
		{"by text", "plan", NoteSearchText, []string{"ideas"}},
		{"by note tag", "finance", NoteSearchTags, []string{"meeting"}},
		{"by owning contact name", "pavlo", NoteSearchContactName, []string{"ideas"}},
		{"by owning contact phone", "380501", NoteSearchContactPhone, []string{"meeting"}},
		{"by owning contact tag", "work", NoteSearchContactTags, []string{"meeting"}},
		{"all", "q3", NoteSearchAll, []string{"meeting"}},
		{"no hits", "zz", NoteSearchAll, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := SearchNotes(b, tt.query, tt.searchType)
			if err != nil {
				t.Fatalf("SearchNotes failed: %v", err)
			}
			if len(hits) != len(tt.wantNotes) {
				t.Fatalf("got %d hits, want %d", len(hits), len(tt.wantNotes))
			}
			for i, want := range tt.wantNotes {
				if hits[i].Note.Name != want {
					t.Errorf("hit %d = %q, want %q", i, hits[i].Note.Name, want)
				}
			}
		})
	}
}

func TestSearchNotesAttribution(t *testing.T) {
	b := setupSearchBook(t)
	hits, err := SearchNotes(b, "budget", NoteSearchText)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].ContactName != "Anna" || hits[0].GroupID != models.DefaultGroupID {
		t.Errorf("hit attributed to %s/%s, want Anna in the default group", hits[0].GroupID, hits[0].ContactName)
	}
}
