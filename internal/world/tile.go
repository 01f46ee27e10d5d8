// Package world provides the wrapping grid, movement and encounter detection.
package world

// Tile represents a single grid cell as drawn on the world screen.
type Tile rune

const (
	// TileEmpty is an unoccupied cell.
	TileEmpty Tile = '.'
	// TileEnemy marks a roster enemy.
	TileEnemy Tile = 'E'
	// TileChest marks a chest, empty or not.
	TileChest Tile = '!'
	// TileGate marks a boss trigger that lies in the player's current copy of the torus.
	TileGate Tile = '/'
)

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Grid is a rendered view of the torus, indexed [y][x].
type Grid [][]Tile

// At returns the tile at (x, y).
func (g Grid) At(x, y int) Tile {
	return g[y][x]
}
