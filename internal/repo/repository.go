// Package repo implements the world-state repository: the journal of
// saved things, the ring of recently generated things, and the session
// key-value store. Commands observe their own prior writes within a
// session.
package repo

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/initiative-sh/initiative/internal/phrase"
	"github.com/initiative-sh/initiative/internal/storage"
	"github.com/initiative-sh/initiative/internal/world"
	"github.com/sahilm/fuzzy"
	"go.abhg.dev/container/ring"
	"go.abhg.dev/log/silog"
)

// Repository errors surfaced to command runners.
var (
	ErrNotFound  = errors.New("not found")
	ErrNameTaken = errors.New("name already in use")
	ErrNotSaved  = errors.New("not saved to journal")
)

const (
	thingDir = "things"
	valueDir = "values"

	// recentCap bounds the ring of unsaved, recently generated things.
	recentCap = 100

	cacheSize = 256
)

// Repository owns all world state for a session.
type Repository struct {
	db  *storage.DB
	log *silog.Logger

	recent    ring.Q[*world.Thing]
	recentLen int

	// byName caches journal lookups keyed by case-folded name.
	byName *lru.Cache[string, *world.Thing]

	undo []*Change
	redo []*Change
}

// New creates a repository over the given store.
func New(db *storage.DB, log *silog.Logger) *Repository {
	cache, err := lru.New[string, *world.Thing](cacheSize)
	if err != nil {
		// lru.New fails only for a non-positive size.
		panic(err)
	}
	return &Repository{
		db:     db,
		log:    log,
		byName: cache,
	}
}

func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AddRecent records a freshly generated thing in the recent ring.
func (r *Repository) AddRecent(t *world.Thing) {
	r.recent.Push(t)
	r.recentLen++
	for r.recentLen > recentCap {
		r.recent.Pop()
		r.recentLen--
	}
}

// Recent returns the recently generated, unsaved things, oldest first.
func (r *Repository) Recent() []*world.Thing {
	if r.recentLen == 0 {
		return nil
	}
	out := make([]*world.Thing, 0, r.recentLen)
	for !r.recent.Empty() {
		out = append(out, r.recent.Pop())
	}
	for _, t := range out {
		r.recent.Push(t)
	}
	return out
}

// GetByName finds a thing by exact name, case-insensitively. The
// journal is consulted first, then the recent ring (newest first).
func (r *Repository) GetByName(ctx context.Context, name string) (*world.Thing, error) {
	if t, ok := r.byName.Get(foldName(name)); ok {
		return t.Clone(), nil
	}

	things, err := r.Journal(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range things {
		if phrase.EqualFold(t.Name(), name) {
			r.byName.Add(foldName(t.Name()), t)
			return t.Clone(), nil
		}
	}

	recent := r.Recent()
	for i := len(recent) - 1; i >= 0; i-- {
		if phrase.EqualFold(recent[i].Name(), name) {
			return recent[i].Clone(), nil
		}
	}

	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// GetByNameStart lists things whose names start with prefix,
// case-insensitively, up to limit.
func (r *Repository) GetByNameStart(ctx context.Context, prefix string, limit int) ([]*world.Thing, error) {
	things, err := r.Journal(ctx)
	if err != nil {
		return nil, err
	}
	things = append(things, r.Recent()...)

	var out []*world.Thing
	seen := make(map[string]struct{})
	for _, t := range things {
		if !phrase.HasPrefixFold(t.Name(), prefix) {
			continue
		}
		key := foldName(t.Name())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t.Clone())
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Journal lists every saved thing, sorted by name.
func (r *Repository) Journal(ctx context.Context) ([]*world.Thing, error) {
	ids, err := r.db.Keys(ctx, thingDir)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}

	things := make([]*world.Thing, 0, len(ids))
	for _, id := range ids {
		var t world.Thing
		if err := r.db.Get(ctx, thingDir+"/"+id, &t); err != nil {
			return nil, fmt.Errorf("load %q: %w", id, err)
		}
		things = append(things, &t)
	}

	sort.Slice(things, func(i, j int) bool {
		return phrase.CompareFold(things[i].Name(), things[j].Name()) < 0
	})
	return things, nil
}

// Save moves a thing into the journal, assigning it an ID. It fails if
// another journal entry already uses the name.
func (r *Repository) Save(ctx context.Context, t *world.Thing) error {
	if t.Name() == "" {
		return errors.New("cannot save a nameless thing")
	}
	if existing, err := r.GetByName(ctx, t.Name()); err == nil && existing.Saved() {
		return fmt.Errorf("%q: %w", t.Name(), ErrNameTaken)
	}

	saved := t.Clone()
	saved.ID = newID()
	if err := r.put(ctx, saved, "save "+saved.Name()); err != nil {
		return err
	}
	*t = *saved

	r.dropRecent(t.Name())
	r.pushChange(&Change{Kind: ChangeSave, After: saved.Clone()})
	r.log.Debug("saved thing", "name", saved.Name(), "id", saved.ID)
	return nil
}

// Edit replaces a saved thing with the given version, keeping its ID.
func (r *Repository) Edit(ctx context.Context, t *world.Thing) error {
	if !t.Saved() {
		return fmt.Errorf("%q: %w", t.Name(), ErrNotSaved)
	}

	var before world.Thing
	if err := r.db.Get(ctx, thingDir+"/"+t.ID, &before); err != nil {
		return fmt.Errorf("load %q: %w", t.Name(), err)
	}

	if err := r.put(ctx, t, "edit "+t.Name()); err != nil {
		return err
	}
	if !phrase.EqualFold(before.Name(), t.Name()) {
		r.byName.Remove(foldName(before.Name()))
	}
	r.pushChange(&Change{Kind: ChangeEdit, Before: before.Clone(), After: t.Clone()})
	return nil
}

// Delete removes a thing from the journal by name.
func (r *Repository) Delete(ctx context.Context, name string) (*world.Thing, error) {
	t, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if !t.Saved() {
		return nil, fmt.Errorf("%q: %w", name, ErrNotSaved)
	}

	if err := r.db.Delete(ctx, thingDir+"/"+t.ID, "delete "+t.Name()); err != nil {
		return nil, err
	}
	r.byName.Remove(foldName(t.Name()))
	r.pushChange(&Change{Kind: ChangeDelete, Before: t.Clone()})
	r.log.Debug("deleted thing", "name", t.Name(), "id", t.ID)
	return t, nil
}

// Find returns journal and recent things whose names fuzzily match the
// query, best match first.
func (r *Repository) Find(ctx context.Context, query string) ([]*world.Thing, error) {
	things, err := r.Journal(ctx)
	if err != nil {
		return nil, err
	}
	things = append(things, r.Recent()...)

	names := make([]string, len(things))
	for i, t := range things {
		names[i] = t.Name()
	}

	var out []*world.Thing
	for _, m := range fuzzy.Find(query, names) {
		out = append(out, things[m.Index].Clone())
	}
	return out, nil
}

// GetValue reads a session key-value entry.
func (r *Repository) GetValue(ctx context.Context, key string) (string, error) {
	var v string
	err := r.db.Get(ctx, valueDir+"/"+key, &v)
	if errors.Is(err, storage.ErrNotExist) {
		return "", fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	return v, err
}

// SetValue writes a session key-value entry.
func (r *Repository) SetValue(ctx context.Context, key, value string) error {
	return r.db.Set(ctx, valueDir+"/"+key, value, "set "+key)
}

// DeleteValue removes a session key-value entry.
func (r *Repository) DeleteValue(ctx context.Context, key string) error {
	return r.db.Delete(ctx, valueDir+"/"+key, "delete "+key)
}

func (r *Repository) put(ctx context.Context, t *world.Thing, msg string) error {
	if err := r.db.Set(ctx, thingDir+"/"+t.ID, t, msg); err != nil {
		return err
	}
	r.byName.Add(foldName(t.Name()), t.Clone())
	return nil
}

// dropRecent removes the named thing from the recent ring, typically
// because it was just saved.
func (r *Repository) dropRecent(name string) {
	if r.recentLen == 0 {
		return
	}
	kept := r.recentLen
	for i := 0; i < kept; i++ {
		t := r.recent.Pop()
		if phrase.EqualFold(t.Name(), name) {
			r.recentLen--
			continue
		}
		r.recent.Push(t)
	}
}

func newID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf[:])
}
