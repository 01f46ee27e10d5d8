package entity

import "github.com/samdwyer/luckybattlefield/internal/gamedata"

// Starting stats for a fresh player.
const (
	StartLevel   = 1
	StartHP      = 150
	StartDefense = 5
	// XPPerLevel is the xp threshold for a level up. XP stays in [0, XPPerLevel).
	XPPerLevel = 100
)

// Player is the hero controlled by the user.
//
// View is the position on the torus and always lies inside the grid. World
// accumulates every step without wrapping and is what boss triggers compare
// against.
type Player struct {
	Name       string
	BaseSymbol string // Avatar chosen at creation
	Critical   bool   // Set by a boss beam when hp drops to 5% or less

	Level     int
	HP, MaxHP int
	XP        int
	Defense   int
	AttackMod int

	View  Position
	World Position

	Inventory Inventory
	Attacks   AttackSet
}

// NewPlayer creates a level 1 player with an empty backpack and a fresh attack set.
func NewPlayer(name, symbol string, attacks []gamedata.AttackDef) *Player {
	return &Player{
		Name:       name,
		BaseSymbol: symbol,
		Level:      StartLevel,
		HP:         StartHP,
		MaxHP:      StartHP,
		Defense:    StartDefense,
		Attacks:    NewAttackSet(attacks),
	}
}

// Symbol returns the display glyph, wrapped in parentheses while critical.
func (p *Player) Symbol() string {
	if p.Critical {
		return "(" + p.BaseSymbol + ")"
	}
	return p.BaseSymbol
}

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// TakeDamage reduces HP, never below zero, and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, p.HP)
	p.HP -= actual
	return actual
}

// Heal restores HP up to MaxHP and returns actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, p.MaxHP-p.HP)
	p.HP += actual
	return actual
}
