// Package book implements the group-scoped contact store.
//
// A Book owns every Record and Group and the "current group" cursor. Records
// are keyed by (group id, name): the same name in two groups is two fully
// independent contacts. The raw maps are never exposed; every mutation goes
// through a method that enforces the duplicate and group-existence invariants.
package book

import (
	"fmt"
	"sort"
	"time"

	"contactbook/internal/models"
)

// Key is the composite record key. Two records differ iff their
// (GroupID, Name) pairs differ; there is no string concatenation involved,
// so a separator character in a name cannot collide with another key.
type Key struct {
	GroupID string
	Name    string
}

// Entry labels a record with its full key, so callers iterating across
// groups can attribute each record to its owner.
type Entry struct {
	Key    Key
	Record *models.Record
}

// GroupInfo is a listing row for a group.
type GroupInfo struct {
	ID       string
	Title    string
	Contacts int
}

// Book is the in-memory address book. Not safe for concurrent use; callers
// serialize access externally.
type Book struct {
	records map[Key]*models.Record
	groups  map[string]*models.Group
	current string
}

// New creates an empty book containing only the default group, which is also
// the current group.
func New() *Book {
	b := &Book{
		records: make(map[Key]*models.Record),
		groups:  make(map[string]*models.Group),
		current: models.DefaultGroupID,
	}
	b.groups[models.DefaultGroupID] = &models.Group{
		ID:        models.DefaultGroupID,
		Title:     models.DefaultGroupID,
		CreatedAt: time.Now().Unix(),
	}
	return b
}

// --- Records ---

// AddRecord inserts a record. A record without a group lands in the current
// group. The owning group is created implicitly on first use. A record whose
// (group, name) key is already taken returns ErrDuplicateContact.
func (b *Book) AddRecord(r *models.Record) error {
	gid := r.GroupID
	if gid == "" {
		gid = b.current
	}
	gid, err := b.ensureGroup(gid)
	if err != nil {
		return err
	}
	key := Key{GroupID: gid, Name: r.Name}
	if _, taken := b.records[key]; taken {
		return fmt.Errorf("%w: %q in group %q", models.ErrDuplicateContact, r.Name, gid)
	}
	r.GroupID = gid
	b.records[key] = r
	return nil
}

// Find returns the record with the given name, or nil. An empty groupID
// means the current group; other groups are never searched implicitly.
func (b *Book) Find(name, groupID string) *models.Record {
	return b.records[b.key(name, groupID)]
}

// Get is Find returning ErrContactNotFound instead of nil.
func (b *Book) Get(name, groupID string) (*models.Record, error) {
	key := b.key(name, groupID)
	if r, ok := b.records[key]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("%w: %q in group %q", models.ErrContactNotFound, name, key.GroupID)
}

// Delete removes a record entirely, along with its notes.
func (b *Book) Delete(name, groupID string) error {
	key := b.key(name, groupID)
	if _, ok := b.records[key]; !ok {
		return fmt.Errorf("%w: %q in group %q", models.ErrContactNotFound, name, key.GroupID)
	}
	delete(b.records, key)
	return nil
}

// Len returns the total number of records across all groups.
func (b *Book) Len() int {
	return len(b.records)
}

func (b *Book) key(name, groupID string) Key {
	if groupID == "" {
		return Key{GroupID: b.current, Name: name}
	}
	// Lookups fold the group id the same way inserts do; an invalid id keeps
	// the raw form and simply misses.
	if nid, err := models.NormalizeGroupID(groupID); err == nil {
		groupID = nid
	}
	return Key{GroupID: groupID, Name: name}
}

// --- Groups ---

// AddGroup creates a group explicitly. The id is normalized; an id already
// taken returns ErrDuplicateGroup.
func (b *Book) AddGroup(id, title string) (*models.Group, error) {
	g, err := models.NewGroup(id, title)
	if err != nil {
		return nil, err
	}
	if _, taken := b.groups[g.ID]; taken {
		return nil, fmt.Errorf("%w: %q", models.ErrDuplicateGroup, g.ID)
	}
	g.CreatedAt = time.Now().Unix()
	b.groups[g.ID] = g
	return g, nil
}

// ensureGroup normalizes id and creates the group if missing.
func (b *Book) ensureGroup(id string) (string, error) {
	nid, err := models.NormalizeGroupID(id)
	if err != nil {
		return "", err
	}
	if _, ok := b.groups[nid]; !ok {
		b.groups[nid] = &models.Group{ID: nid, Title: nid, CreatedAt: time.Now().Unix()}
	}
	return nid, nil
}

// RenameGroup re-keys every contact in oldID to newID in one atomic step:
// all validation happens before the first key moves, so either the whole
// group migrates or nothing does.
func (b *Book) RenameGroup(oldID, newID string) error {
	old, err := models.NormalizeGroupID(oldID)
	if err != nil {
		return err
	}
	nid, err := models.NormalizeGroupID(newID)
	if err != nil {
		return err
	}
	g, ok := b.groups[old]
	if !ok {
		return fmt.Errorf("%w: %q", models.ErrGroupNotFound, old)
	}
	if old == nid {
		return nil
	}
	if _, taken := b.groups[nid]; taken {
		return fmt.Errorf("%w: %q", models.ErrDuplicateGroup, nid)
	}

	for key, r := range b.records {
		if key.GroupID != old {
			continue
		}
		delete(b.records, key)
		r.GroupID = nid
		b.records[Key{GroupID: nid, Name: key.Name}] = r
	}
	delete(b.groups, old)
	g.ID = nid
	if g.Title == old {
		g.Title = nid
	}
	b.groups[nid] = g
	if b.current == old {
		b.current = nid
	}
	return nil
}

// RemoveGroup deletes a group. Without force, a group that still owns
// contacts returns ErrGroupNotEmpty and nothing changes. With force, the
// group and all its contacts are deleted. The default group is never fully
// removed: its contacts are deleted per the same rules, but the group entry
// itself stays. Removing the current group moves the cursor back to the
// default group.
func (b *Book) RemoveGroup(id string, force bool) error {
	nid, err := models.NormalizeGroupID(id)
	if err != nil {
		return err
	}
	if _, ok := b.groups[nid]; !ok {
		return fmt.Errorf("%w: %q", models.ErrGroupNotFound, nid)
	}
	var members []Key
	for key := range b.records {
		if key.GroupID == nid {
			members = append(members, key)
		}
	}
	if len(members) > 0 && !force {
		return fmt.Errorf("%w: %q has %d contacts", models.ErrGroupNotEmpty, nid, len(members))
	}
	for _, key := range members {
		delete(b.records, key)
	}
	if nid != models.DefaultGroupID {
		delete(b.groups, nid)
		if b.current == nid {
			b.current = models.DefaultGroupID
		}
	}
	return nil
}

// SetCurrentGroup moves the cursor used as the default scope for every
// group-agnostic operation.
func (b *Book) SetCurrentGroup(id string) error {
	nid, err := models.NormalizeGroupID(id)
	if err != nil {
		return err
	}
	if _, ok := b.groups[nid]; !ok {
		return fmt.Errorf("%w: %q", models.ErrGroupNotFound, nid)
	}
	b.current = nid
	return nil
}

// CurrentGroup returns the current group id.
func (b *Book) CurrentGroup() string {
	return b.current
}

// HasGroup reports whether a group with the given id exists.
func (b *Book) HasGroup(id string) bool {
	nid, err := models.NormalizeGroupID(id)
	if err != nil {
		return false
	}
	_, ok := b.groups[nid]
	return ok
}

// Group returns the group with the given id or ErrGroupNotFound.
func (b *Book) Group(id string) (*models.Group, error) {
	nid, err := models.NormalizeGroupID(id)
	if err != nil {
		return nil, err
	}
	if g, ok := b.groups[nid]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("%w: %q", models.ErrGroupNotFound, nid)
}

// Groups lists every group with its contact count, sorted by id.
func (b *Book) Groups() []GroupInfo {
	counts := make(map[string]int, len(b.groups))
	for key := range b.records {
		counts[key.GroupID]++
	}
	out := make([]GroupInfo, 0, len(b.groups))
	for id, g := range b.groups {
		out = append(out, GroupInfo{ID: id, Title: g.Title, Contacts: counts[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- Iteration ---

// IterGroup returns a snapshot of the records in one group, sorted by name
// for determinism. Unknown groups return ErrGroupNotFound.
func (b *Book) IterGroup(id string) ([]Entry, error) {
	nid, err := models.NormalizeGroupID(id)
	if err != nil {
		return nil, err
	}
	if _, ok := b.groups[nid]; !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrGroupNotFound, nid)
	}
	var out []Entry
	for key, r := range b.records {
		if key.GroupID == nid {
			out = append(out, Entry{Key: key, Record: r})
		}
	}
	sortEntries(out)
	return out, nil
}

// IterAll returns a snapshot of every record across all groups, each entry
// labeled with its owning group.
func (b *Book) IterAll() []Entry {
	out := make([]Entry, 0, len(b.records))
	for key, r := range b.records {
		out = append(out, Entry{Key: key, Record: r})
	}
	sortEntries(out)
	return out
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Key.GroupID != entries[j].Key.GroupID {
			return entries[i].Key.GroupID < entries[j].Key.GroupID
		}
		return entries[i].Key.Name < entries[j].Key.Name
	})
}

// RestoreGroup re-inserts a group loaded from storage, bypassing the
// duplicate check. Only the persistence layer should call this.
func (b *Book) RestoreGroup(g *models.Group) {
	b.groups[g.ID] = g
}

// RestoreCurrentGroup re-sets the cursor from storage, falling back to the
// default group if the persisted id no longer exists.
func (b *Book) RestoreCurrentGroup(id string) {
	if _, ok := b.groups[id]; ok {
		b.current = id
		return
	}
	b.current = models.DefaultGroupID
}
