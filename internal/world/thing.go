// Package world holds the worldbuilding domain model: the things a
// game master generates and records, and the generators that invent
// them.
package world

import (
	"unicode"
	"unicode/utf8"
)

// ThingKind discriminates the kinds of thing the world can hold.
type ThingKind string

// Supported thing kinds.
const (
	KindNpc   ThingKind = "npc"
	KindPlace ThingKind = "place"
)

// Thing is a single worldbuilding entity. Exactly one of Npc and Place
// is set, according to Kind.
//
// A thing with a non-empty ID has been saved to the journal; a thing
// without one only lives in the recent ring until saved.
type Thing struct {
	ID   string    `json:"id,omitempty"`
	Kind ThingKind `json:"kind"`

	Npc   *Npc   `json:"npc,omitempty"`
	Place *Place `json:"place,omitempty"`
}

// Name returns the thing's name.
func (t *Thing) Name() string {
	switch t.Kind {
	case KindNpc:
		return t.Npc.Name
	case KindPlace:
		return t.Place.Name
	default:
		return ""
	}
}

// SetName renames the thing.
func (t *Thing) SetName(name string) {
	switch t.Kind {
	case KindNpc:
		t.Npc.Name = name
	case KindPlace:
		t.Place.Name = name
	}
}

// Summary returns the one-line form used in listings.
func (t *Thing) Summary() string {
	switch t.Kind {
	case KindNpc:
		return t.Npc.Summary()
	case KindPlace:
		return t.Place.Summary()
	default:
		return t.Name()
	}
}

// Details returns the multi-line form shown when a thing is loaded.
func (t *Thing) Details() string {
	switch t.Kind {
	case KindNpc:
		return t.Npc.Details()
	case KindPlace:
		return t.Place.Details()
	default:
		return t.Name()
	}
}

// Saved reports whether the thing has been saved to the journal.
func (t *Thing) Saved() bool {
	return t.ID != ""
}

// Clone returns a deep copy of the thing.
func (t *Thing) Clone() *Thing {
	c := *t
	if t.Npc != nil {
		npc := *t.Npc
		c.Npc = &npc
	}
	if t.Place != nil {
		place := *t.Place
		c.Place = &place
	}
	return &c
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
