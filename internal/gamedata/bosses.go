package gamedata

import "github.com/gdamore/tcell/v2"

// Point is an absolute world coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BossDef defines one of the fixed final bosses.
type BossDef struct {
	Type         int    `json:"type"`         // Boss type tag (1 or 2)
	Name         string `json:"name"`         // Display name
	Glyph        string `json:"glyph"`        // Display symbol
	Color        string `json:"color"`        // Hex color code
	HP           int    `json:"hp"`           // Max hit points
	Level        int    `json:"level"`        // Feeds the enemy damage and xp formulas
	BeamUnlocked bool   `json:"beamUnlocked"` // Beam active from the first enemy turn
	Trigger      Point  `json:"trigger"`      // Absolute world coordinate that starts the fight
}

// TCellColor returns the boss color as a tcell.Color.
func (b *BossDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(b.Color)
	if err != nil {
		return tcell.ColorBlue
	}
	return color
}

// BossesFile represents the structure of bosses.json.
type BossesFile struct {
	Bosses []BossDef `json:"bosses"`
}

// LoadBosses loads boss definitions from the embedded bosses.json file.
func LoadBosses() ([]BossDef, error) {
	file, err := Load[BossesFile]("bosses.json")
	if err != nil {
		return nil, err
	}
	return file.Bosses, nil
}
