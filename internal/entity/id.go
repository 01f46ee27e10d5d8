// Package entity provides the plain game records: player, enemies, bosses and chests.
package entity

import (
	"io"

	"github.com/google/uuid"
)

// ID identifies an entity for its whole lifetime. Rosters remove by ID, never
// by value, so two enemies with identical stats stay distinguishable.
type ID = uuid.UUID

// NewID mints an id from r. Passing the session's seeded stream keeps ids
// reproducible across runs with the same seed.
func NewID(r io.Reader) ID {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		panic("entity: id source exhausted: " + err.Error())
	}
	return id
}

// Position is a grid coordinate.
type Position struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
