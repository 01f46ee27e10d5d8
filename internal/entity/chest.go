package entity

// ChestSymbol is the glyph of a chest on the grid.
const ChestSymbol = "!"

// Chest is a loot container at a fixed torus position. Items leave it front
// first; an emptied chest stays on the grid.
type Chest struct {
	ID    ID
	Pos   Position
	Items []ItemKind
}

// IsEmpty reports whether the chest has nothing left to take.
func (c *Chest) IsEmpty() bool {
	return len(c.Items) == 0
}
