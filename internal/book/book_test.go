package book

import (
	"errors"
	"testing"

	"contactbook/internal/models"
)

func addContact(t *testing.T, b *Book, name, group, phone string) *models.Record {
	t.Helper()
	r, err := models.NewRecord(name, group)
	if err != nil {
		t.Fatalf("NewRecord failed: %v", err)
	}
	if phone != "" {
		if err := r.AddPhone(phone, "UA"); err != nil {
			t.Fatalf("AddPhone failed: %v", err)
		}
	}
	if err := b.AddRecord(r); err != nil {
		t.Fatalf("AddRecord(%s/%s) failed: %v", group, name, err)
	}
	return r
}

func TestNewBook(t *testing.T) {
	b := New()
	if !b.HasGroup(models.DefaultGroupID) {
		t.Error("default group must exist in a fresh book")
	}
	if b.CurrentGroup() != models.DefaultGroupID {
		t.Errorf("CurrentGroup() = %q, want default", b.CurrentGroup())
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestGroupIsolation(t *testing.T) {
	b := New()
	addContact(t, b, "John", "work", "0501111111")
	addContact(t, b, "John", "", "0502222222") // personal, via current group

	if err := b.SetCurrentGroup("work"); err != nil {
		t.Fatalf("SetCurrentGroup failed: %v", err)
	}
	r := b.Find("John", "")
	if r == nil {
		t.Fatal("John not found in work group")
	}
	if got := r.Phones[0].Canonical; got != "+380501111111" {
		t.Errorf("work John phone = %q, want the work number", got)
	}

	if err := b.SetCurrentGroup("personal"); err != nil {
		t.Fatalf("SetCurrentGroup failed: %v", err)
	}
	r = b.Find("John", "")
	if r == nil {
		t.Fatal("John not found in personal group")
	}
	if got := r.Phones[0].Canonical; got != "+380502222222" {
		t.Errorf("personal John phone = %q, want the personal number", got)
	}
}

func TestDuplicateContact(t *testing.T) {
	b := New()
	addContact(t, b, "John", "work", "")

	dup, err := models.NewRecord("John", "work")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddRecord(dup); !errors.Is(err, models.ErrDuplicateContact) {
		t.Fatalf("same name same group: got %v, want ErrDuplicateContact", err)
	}

	// Same name in a different group is a different contact.
	other, err := models.NewRecord("John", "personal")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddRecord(other); err != nil {
		t.Fatalf("same name different group should succeed: %v", err)
	}
}

func TestFindNeverSearchesOtherGroups(t *testing.T) {
	b := New()
	addContact(t, b, "Ira", "work", "")

	if r := b.Find("Ira", ""); r != nil {
		t.Error("Find in current (personal) group must not see the work contact")
	}
	if _, err := b.Get("Ira", ""); !errors.Is(err, models.ErrContactNotFound) {
		t.Errorf("Get: got %v, want ErrContactNotFound", err)
	}
	if r := b.Find("Ira", "work"); r == nil {
		t.Error("explicit group lookup should find the contact")
	}
}

// Inserts fold the group id to lower case, so lookups must fold the same way:
// a contact stored with "Work" lives in "work" and must be reachable under
// either spelling.
func TestLookupFoldsGroupID(t *testing.T) {
	b := New()
	addContact(t, b, "John", "Work", "0501111111")

	if r := b.Find("John", "Work"); r == nil {
		t.Error("Find with the original mixed-case id must hit")
	}
	if r := b.Find("John", "work"); r == nil {
		t.Error("Find with the folded id must hit")
	}
	if _, err := b.Get("John", "WORK"); err != nil {
		t.Errorf("Get with an upper-cased id failed: %v", err)
	}

	// The same spelling that created the contact must also update it: a
	// second add under "Work" is a duplicate, not a miss.
	dup, err := models.NewRecord("John", "Work")
	if err != nil {
		t.Fatal(err)
	}
	if b.Find(dup.Name, "Work") == nil {
		t.Error("the create-or-update path depends on Find hitting here")
	}
	if err := b.AddRecord(dup); !errors.Is(err, models.ErrDuplicateContact) {
		t.Errorf("got %v, want ErrDuplicateContact", err)
	}

	if err := b.Delete("John", "Work"); err != nil {
		t.Errorf("Delete with the original spelling failed: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after delete", b.Len())
	}
}

func TestDelete(t *testing.T) {
	b := New()
	addContact(t, b, "John", "", "")
	if err := b.Delete("John", ""); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := b.Delete("John", ""); !errors.Is(err, models.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got: %v", err)
	}
}

func TestAddGroup(t *testing.T) {
	b := New()
	g, err := b.AddGroup("Work", "")
	if err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if g.ID != "work" {
		t.Errorf("group id = %q, want case-folded %q", g.ID, "work")
	}
	if g.Title != "work" {
		t.Errorf("title = %q, want defaulted to id", g.Title)
	}
	if _, err := b.AddGroup("work", ""); !errors.Is(err, models.ErrDuplicateGroup) {
		t.Fatalf("expected ErrDuplicateGroup, got: %v", err)
	}
	if _, err := b.AddGroup("bad id!", ""); !errors.Is(err, models.ErrInvalidGroupID) {
		t.Fatalf("expected ErrInvalidGroupID, got: %v", err)
	}
}

func TestRenameGroupAtomic(t *testing.T) {
	b := New()
	for _, name := range []string{"Anna", "Bohdan", "Chris"} {
		addContact(t, b, name, "work", "")
	}

	if err := b.RenameGroup("work", "office"); err != nil {
		t.Fatalf("RenameGroup failed: %v", err)
	}
	if b.HasGroup("work") {
		t.Error("old group id must be gone after rename")
	}
	entries, err := b.IterGroup("office")
	if err != nil {
		t.Fatalf("IterGroup failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d contacts under new id, want 3", len(entries))
	}
	for _, e := range entries {
		if e.Record.GroupID != "office" {
			t.Errorf("record %s still carries group %q", e.Key.Name, e.Record.GroupID)
		}
	}
}

func TestRenameGroupValidation(t *testing.T) {
	b := New()
	addContact(t, b, "Anna", "work", "")

	if err := b.RenameGroup("ghost", "x"); !errors.Is(err, models.ErrGroupNotFound) {
		t.Errorf("unknown old id: got %v, want ErrGroupNotFound", err)
	}
	if err := b.RenameGroup("work", "personal"); !errors.Is(err, models.ErrDuplicateGroup) {
		t.Errorf("taken new id: got %v, want ErrDuplicateGroup", err)
	}
	// Nothing moved after the failed attempts.
	if r := b.Find("Anna", "work"); r == nil {
		t.Error("failed rename must leave contacts untouched")
	}
}

func TestRenameGroupMovesCursor(t *testing.T) {
	b := New()
	addContact(t, b, "Anna", "work", "")
	if err := b.SetCurrentGroup("work"); err != nil {
		t.Fatal(err)
	}
	if err := b.RenameGroup("work", "office"); err != nil {
		t.Fatal(err)
	}
	if b.CurrentGroup() != "office" {
		t.Errorf("CurrentGroup() = %q, want %q after rename", b.CurrentGroup(), "office")
	}
}

func TestRemoveGroup(t *testing.T) {
	t.Run("non-empty without force", func(t *testing.T) {
		b := New()
		addContact(t, b, "Anna", "work", "")
		if err := b.RemoveGroup("work", false); !errors.Is(err, models.ErrGroupNotEmpty) {
			t.Fatalf("expected ErrGroupNotEmpty, got: %v", err)
		}
		// Group and contact untouched.
		if !b.HasGroup("work") {
			t.Error("failed remove must keep the group")
		}
		if b.Find("Anna", "work") == nil {
			t.Error("failed remove must keep the contacts")
		}
	})

	t.Run("force cascades", func(t *testing.T) {
		b := New()
		addContact(t, b, "Anna", "work", "")
		addContact(t, b, "Bohdan", "work", "")
		if err := b.RemoveGroup("work", true); err != nil {
			t.Fatalf("RemoveGroup force failed: %v", err)
		}
		if b.HasGroup("work") {
			t.Error("group must be gone")
		}
		if b.Len() != 0 {
			t.Errorf("Len() = %d, want 0 after cascade", b.Len())
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		b := New()
		if err := b.RemoveGroup("ghost", false); !errors.Is(err, models.ErrGroupNotFound) {
			t.Fatalf("expected ErrGroupNotFound, got: %v", err)
		}
	})

	t.Run("default group survives removal", func(t *testing.T) {
		b := New()
		addContact(t, b, "Anna", "", "")
		if err := b.RemoveGroup(models.DefaultGroupID, true); err != nil {
			t.Fatalf("RemoveGroup failed: %v", err)
		}
		if !b.HasGroup(models.DefaultGroupID) {
			t.Error("default group can never be fully absent")
		}
		if b.Len() != 0 {
			t.Error("force remove must still delete the contacts")
		}
	})

	t.Run("removing current group resets cursor", func(t *testing.T) {
		b := New()
		if _, err := b.AddGroup("work", ""); err != nil {
			t.Fatal(err)
		}
		if err := b.SetCurrentGroup("work"); err != nil {
			t.Fatal(err)
		}
		if err := b.RemoveGroup("work", false); err != nil {
			t.Fatalf("RemoveGroup failed: %v", err)
		}
		if b.CurrentGroup() != models.DefaultGroupID {
			t.Errorf("CurrentGroup() = %q, want default", b.CurrentGroup())
		}
	})
}

func TestSetCurrentGroup(t *testing.T) {
	b := New()
	if err := b.SetCurrentGroup("ghost"); !errors.Is(err, models.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got: %v", err)
	}
	if _, err := b.AddGroup("work", ""); err != nil {
		t.Fatal(err)
	}
	if err := b.SetCurrentGroup("work"); err != nil {
		t.Fatalf("SetCurrentGroup failed: %v", err)
	}
	if b.CurrentGroup() != "work" {
		t.Errorf("CurrentGroup() = %q, want %q", b.CurrentGroup(), "work")
	}
}

func TestIterAllLabelsGroups(t *testing.T) {
	b := New()
	addContact(t, b, "Bob", "work", "")
	addContact(t, b, "Alice", "", "")

	entries := b.IterAll()
	if len(entries) != 2 {
		t.Fatalf("IterAll returned %d entries, want 2", len(entries))
	}
	byName := map[string]string{}
	for _, e := range entries {
		byName[e.Key.Name] = e.Key.GroupID
	}
	if byName["Bob"] != "work" || byName["Alice"] != "personal" {
		t.Errorf("wrong group attribution: %v", byName)
	}
}

func TestGroupsListing(t *testing.T) {
	b := New()
	addContact(t, b, "Bob", "work", "")
	addContact(t, b, "Rob", "work", "")
	addContact(t, b, "Alice", "", "")

	groups := b.Groups()
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// Sorted by id: personal before work.
	if groups[0].ID != "personal" || groups[0].Contacts != 1 {
		t.Errorf("groups[0] = %+v, want personal with 1 contact", groups[0])
	}
	if groups[1].ID != "work" || groups[1].Contacts != 2 {
		t.Errorf("groups[1] = %+v, want work with 2 contacts", groups[1])
	}
}

// The full flow from the command layer's point of view: explicit group adds,
// cursor moves, scoped and cross-group listing.
func TestEndToEndScenario(t *testing.T) {
	b := New()
	if _, err := b.AddGroup("work", ""); err != nil {
		t.Fatal(err)
	}

	bob, err := models.NewRecord("Bob", "work")
	if err != nil {
		t.Fatal(err)
	}
	if err := bob.AddPhone("2222222222", "US"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddRecord(bob); err != nil {
		t.Fatal(err)
	}

	if err := b.SetCurrentGroup("personal"); err != nil {
		t.Fatal(err)
	}
	alice, err := models.NewRecord("Alice", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := alice.AddPhone("1111111111", "US"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddRecord(alice); err != nil {
		t.Fatal(err)
	}
	if alice.GroupID != "personal" {
		t.Errorf("Alice landed in %q, want current group personal", alice.GroupID)
	}

	all := b.IterAll()
	if len(all) != 2 {
		t.Fatalf("IterAll returned %d, want 2", len(all))
	}

	current, err := b.IterGroup(b.CurrentGroup())
	if err != nil {
		t.Fatal(err)
	}
	if len(current) != 1 || current[0].Key.Name != "Alice" {
		t.Errorf("current group listing = %v, want only Alice", current)
	}
}
