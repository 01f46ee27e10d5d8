package entity

import "github.com/gdamore/tcell/v2"

// Kind tags an enemy as a regular roster enemy or a final boss.
type Kind int

const (
	KindRegular Kind = iota
	KindBoss
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "enemy"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// BossType is the boss type tag from the boss table.
type BossType int

const (
	BossPhantom BossType = 1
	BossVoid    BossType = 2
)

// EnemySymbol is the glyph of every regular enemy.
const EnemySymbol = "E"

// BossState holds the boss-only beam bookkeeping.
type BossState struct {
	Type         BossType
	Color        tcell.Color
	BeamUnlocked bool
	BeamLength   int
}

// Enemy is a combat target. Regular enemies live on the roster at a torus
// position; bosses are built for a single encounter and carry Boss state.
type Enemy struct {
	ID        ID
	Kind      Kind
	Name      string
	Symbol    string
	Level     int
	HP, MaxHP int
	Pos       Position
	Boss      *BossState // nil unless Kind == KindBoss
}

// IsBoss reports whether the enemy is a final boss.
func (e *Enemy) IsBoss() bool {
	return e.Kind == KindBoss
}

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// TakeDamage reduces HP, never below zero, and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, e.HP)
	e.HP -= actual
	return actual
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Boss != nil {
		return e.Boss.Color
	}
	return tcell.ColorRed
}
