package service

import (
	"errors"
	"testing"

	"contactbook/internal/book"
	"contactbook/internal/models"
)

func setupNotes(t *testing.T) *NoteService {
	t.Helper()
	b := book.New()
	r, err := models.NewRecord("Anna", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddRecord(r); err != nil {
		t.Fatal(err)
	}
	return NewNoteService(b)
}

func TestNoteLifecycle(t *testing.T) {
	s := setupNotes(t)

	n, err := s.AddNote("Anna", "gift", "Likes green tea", "")
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if n.Name != "gift" {
		t.Errorf("note name = %q", n.Name)
	}

	if _, err := s.AddNote("Anna", "gift", "other", ""); !errors.Is(err, models.ErrDuplicateNote) {
		t.Fatalf("got %v, want ErrDuplicateNote", err)
	}

	if err := s.EditNote("Anna", "gift", "Prefers coffee now", ""); err != nil {
		t.Fatalf("EditNote failed: %v", err)
	}
	got, err := s.GetNote("Anna", "gift", "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != "Prefers coffee now" {
		t.Errorf("content = %q", got.Content)
	}

	if err := s.DeleteNote("Anna", "gift", ""); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	if _, err := s.GetNote("Anna", "gift", ""); !errors.Is(err, models.ErrNoteNotFound) {
		t.Fatalf("got %v, want ErrNoteNotFound", err)
	}
}

func TestNoteUnknownContact(t *testing.T) {
	s := setupNotes(t)
	if _, err := s.AddNote("Ghost", "x", "", ""); !errors.Is(err, models.ErrContactNotFound) {
		t.Fatalf("got %v, want ErrContactNotFound", err)
	}
}

func TestListNotesOrder(t *testing.T) {
	s := setupNotes(t)
	for _, name := range []string{"third", "first", "second"} {
		if _, err := s.AddNote("Anna", name, "", ""); err != nil {
			t.Fatal(err)
		}
	}
	notes, err := s.ListNotes("Anna", "")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"third", "first", "second"} // creation order, not alphabetical
	if len(notes) != len(want) {
		t.Fatalf("got %d notes, want %d", len(notes), len(want))
	}
	for i, w := range want {
		if notes[i].Name != w {
			t.Errorf("notes[%d] = %q, want %q", i, notes[i].Name, w)
		}
	}
}

func TestNoteTags(t *testing.T) {
	s := setupNotes(t)
	if _, err := s.AddNote("Anna", "gift", "", ""); err != nil {
		t.Fatal(err)
	}

	if err := s.AddNoteTag("Anna", "gift", "Shopping", ""); err != nil {
		t.Fatalf("AddNoteTag failed: %v", err)
	}
	tags, err := s.ListNoteTags("Anna", "gift", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 1 || tags[0] != "shopping" {
		t.Errorf("tags = %v, want normalized [shopping]", tags)
	}

	if err := s.AddNoteTag("Anna", "gift", "bad tag!", ""); !errors.Is(err, models.ErrInvalidTag) {
		t.Errorf("got %v, want ErrInvalidTag", err)
	}

	if err := s.RemoveNoteTag("Anna", "gift", "shopping", ""); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveNoteTag("Anna", "gift", "shopping", ""); err != nil {
		t.Errorf("removing an absent tag must be a no-op, got %v", err)
	}

	if err := s.AddNoteTag("Anna", "gift", "a", ""); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearNoteTags("Anna", "gift", ""); err != nil {
		t.Fatal(err)
	}
	tags, err = s.ListNoteTags("Anna", "gift", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 0 {
		t.Errorf("tags = %v, want empty after clear", tags)
	}
}
