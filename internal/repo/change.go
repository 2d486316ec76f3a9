package repo

import (
	"context"
	"fmt"

	"github.com/initiative-sh/initiative/internal/world"
)

// ChangeKind identifies a reversible repository change.
type ChangeKind int

// Reversible change kinds.
const (
	ChangeSave ChangeKind = iota + 1
	ChangeDelete
	ChangeEdit
)

// Change records one reversible repository operation.
type Change struct {
	Kind   ChangeKind
	Before *world.Thing // ChangeDelete, ChangeEdit
	After  *world.Thing // ChangeSave, ChangeEdit
}

// Describe renders the change for undo/redo messages.
func (c *Change) Describe() string {
	switch c.Kind {
	case ChangeSave:
		return fmt.Sprintf("saving %s", c.After.Name())
	case ChangeDelete:
		return fmt.Sprintf("deleting %s", c.Before.Name())
	case ChangeEdit:
		return fmt.Sprintf("editing %s", c.After.Name())
	default:
		return "change"
	}
}

func (r *Repository) pushChange(c *Change) {
	r.undo = append(r.undo, c)
	r.redo = nil
}

// CanUndo returns the change an Undo would revert, if any.
func (r *Repository) CanUndo() (*Change, bool) {
	if len(r.undo) == 0 {
		return nil, false
	}
	return r.undo[len(r.undo)-1], true
}

// Undo reverts the most recent change.
func (r *Repository) Undo(ctx context.Context) (*Change, error) {
	if len(r.undo) == 0 {
		return nil, fmt.Errorf("nothing to undo")
	}

	c := r.undo[len(r.undo)-1]
	if err := r.revert(ctx, c); err != nil {
		return nil, err
	}
	r.undo = r.undo[:len(r.undo)-1]
	r.redo = append(r.redo, c)
	return c, nil
}

// Redo re-applies the most recently undone change.
func (r *Repository) Redo(ctx context.Context) (*Change, error) {
	if len(r.redo) == 0 {
		return nil, fmt.Errorf("nothing to redo")
	}

	c := r.redo[len(r.redo)-1]
	if err := r.apply(ctx, c); err != nil {
		return nil, err
	}
	r.redo = r.redo[:len(r.redo)-1]
	r.undo = append(r.undo, c)
	return c, nil
}

// apply performs the change's forward operation directly against the
// store, without recording a new change.
func (r *Repository) apply(ctx context.Context, c *Change) error {
	switch c.Kind {
	case ChangeSave:
		r.dropRecent(c.After.Name())
		return r.put(ctx, c.After.Clone(), "redo "+c.Describe())
	case ChangeEdit:
		return r.put(ctx, c.After.Clone(), "redo "+c.Describe())
	case ChangeDelete:
		r.byName.Remove(foldName(c.Before.Name()))
		return r.db.Delete(ctx, thingDir+"/"+c.Before.ID, "redo "+c.Describe())
	default:
		return fmt.Errorf("unknown change kind %d", c.Kind)
	}
}

// revert performs the change's reverse operation.
func (r *Repository) revert(ctx context.Context, c *Change) error {
	switch c.Kind {
	case ChangeSave:
		r.byName.Remove(foldName(c.After.Name()))
		if err := r.db.Delete(ctx, thingDir+"/"+c.After.ID, "undo "+c.Describe()); err != nil {
			return err
		}
		// The thing returns to the recent ring, as before the save.
		unsaved := c.After.Clone()
		unsaved.ID = ""
		r.AddRecent(unsaved)
		return nil

	case ChangeDelete:
		return r.put(ctx, c.Before.Clone(), "undo "+c.Describe())

	case ChangeEdit:
		r.byName.Remove(foldName(c.After.Name()))
		return r.put(ctx, c.Before.Clone(), "undo "+c.Describe())

	default:
		return fmt.Errorf("unknown change kind %d", c.Kind)
	}
}
