package combat

import "strings"

// Battle line geometry.
const (
	LineWidth    = 35
	PlayerColumn = 4
	EnemyColumn  = 30
	// EnemyGlyph is the projectile every enemy fires.
	EnemyGlyph = "-"
	// MissGlyph replaces the projectile once a missed shot passes the midpoint.
	MissGlyph = "/"
	// BarWidth is the width of hp and charge bars.
	BarWidth = 20
)

// Frame is one projectile position on the battle line.
type Frame struct {
	Column int
	Glyph  string
}

// PlayerProjectile returns the frames of a player shot, left to right between
// the two combatants.
func PlayerProjectile(glyph string, miss bool) []Frame {
	var cols []int
	for c := PlayerColumn + 1; c < EnemyColumn; c++ {
		cols = append(cols, c)
	}
	return projectile(cols, glyph, miss)
}

// EnemyProjectile returns the frames of an enemy shot, right to left.
func EnemyProjectile(miss bool) []Frame {
	var cols []int
	for c := EnemyColumn - 1; c > PlayerColumn; c-- {
		cols = append(cols, c)
	}
	return projectile(cols, EnemyGlyph, miss)
}

func projectile(cols []int, glyph string, miss bool) []Frame {
	frames := make([]Frame, len(cols))
	for i, c := range cols {
		g := glyph
		if miss && i > len(cols)/2 {
			g = MissGlyph
		}
		frames[i] = Frame{Column: c, Glyph: g}
	}
	return frames
}

// Line draws the battle line with both combatants and an optional projectile.
// Multi-character glyphs are laid out from their column and clipped at the edge.
func Line(playerSymbol, enemySymbol string, shot *Frame) string {
	line := []rune(strings.Repeat(" ", LineWidth))
	place := func(col int, s string) {
		for i, r := range []rune(s) {
			if col+i < LineWidth {
				line[col+i] = r
			}
		}
	}
	place(PlayerColumn, playerSymbol)
	place(EnemyColumn, enemySymbol)
	if shot != nil {
		place(shot.Column, shot.Glyph)
	}
	return string(line)
}

// Bar returns the number of filled cells for value out of limit in a bar of width cells.
func Bar(value, limit, width int) int {
	if limit <= 0 {
		return 0
	}
	return max(0, value) * width / limit
}

// Beam draws a boss beam of the given length.
func Beam(length int) string {
	return strings.Repeat("=", length)
}
