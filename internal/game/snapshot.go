package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/luckybattlefield/internal/combat"
	"github.com/samdwyer/luckybattlefield/internal/entity"
	"github.com/samdwyer/luckybattlefield/internal/world"
)

// Snapshot is a read-only copy of everything presentation needs to draw one
// frame. It shares no mutable state with the session.
type Snapshot struct {
	State State
	Name  string // Player name, known from the start screen on

	Player  *PlayerView // nil until an avatar is chosen
	Grid    world.Grid  // View of the torus around the player
	Enemies []Marker    // Regular enemies on the roster
	Chests  []Marker

	Target *TargetView // Set in battle, including the inventory opened from battle
	Shot   *combat.Frame

	Inventory  entity.Inventory
	ChestItems []entity.ItemKind

	Loading    string // Loading bar label
	Progress   int    // 0..LoadingSteps
	Annotation string // "HIT! 42 DMG", "Healed 60 HP", validation errors, ...
}

// PlayerView is a copy of the player's fields.
type PlayerView struct {
	Name      string
	Symbol    string
	Critical  bool
	Level     int
	HP, MaxHP int
	XP        int
	Defense   int
	AttackMod int
	View      entity.Position
	World     entity.Position
	Attacks   []AttackView
}

// AttackView is a copy of one attack and its charge.
type AttackView struct {
	Key       string
	Name      string
	Charge    int
	MaxCharge int
	Glyph     string
}

// Ready reports whether the attack can fire.
func (a AttackView) Ready() bool { return a.Charge >= a.MaxCharge }

// TargetView is a copy of the battle target.
type TargetView struct {
	ID     entity.ID
	Name   string
	Symbol string
	Boss   bool
	Color  tcell.Color
	Level  int
	HP     int
	MaxHP  int
	Beam   int // Boss beam length
}

// Marker places one roster entity on the torus.
type Marker struct {
	ID  entity.ID
	Pos entity.Position
}

// Snapshot returns the settled state of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.mode.State(),
		Name:       s.name,
		Annotation: s.annotation,
	}

	if m, ok := s.mode.(LoadingMode); ok {
		snap.Loading = m.Label
		snap.Progress = m.Progress
	}

	if s.player == nil {
		return snap
	}

	snap.Player = newPlayerView(s.player)
	snap.Inventory = s.player.Inventory
	snap.Grid = s.world.Grid(s.player, &s.roster)
	for _, e := range s.roster.Enemies {
		snap.Enemies = append(snap.Enemies, Marker{ID: e.ID, Pos: e.Pos})
	}
	for _, c := range s.roster.Chests {
		snap.Chests = append(snap.Chests, Marker{ID: c.ID, Pos: c.Pos})
	}

	if b := s.battle(); b != nil {
		snap.Target = newTargetView(b.Target)
	}
	if m, ok := s.mode.(ChestMode); ok {
		snap.ChestItems = append([]entity.ItemKind(nil), m.Chest.Items...)
	}
	return snap
}

// battle returns the fight shown by the current mode, if any.
func (s *Session) battle() *combat.Battle {
	switch m := s.mode.(type) {
	case BattleMode:
		return m.Battle
	case InventoryMode:
		if bm, ok := m.Return.(BattleMode); ok {
			return bm.Battle
		}
	}
	return nil
}

func newPlayerView(p *entity.Player) *PlayerView {
	v := &PlayerView{
		Name:      p.Name,
		Symbol:    p.Symbol(),
		Critical:  p.Critical,
		Level:     p.Level,
		HP:        p.HP,
		MaxHP:     p.MaxHP,
		XP:        p.XP,
		Defense:   p.Defense,
		AttackMod: p.AttackMod,
		View:      p.View,
		World:     p.World,
	}
	for _, a := range p.Attacks {
		v.Attacks = append(v.Attacks, AttackView{
			Key:       a.Key,
			Name:      a.Name,
			Charge:    a.Charge,
			MaxCharge: a.MaxCharge,
			Glyph:     a.Glyph,
		})
	}
	return v
}

func newTargetView(e *entity.Enemy) *TargetView {
	v := &TargetView{
		ID:     e.ID,
		Name:   e.Name,
		Symbol: e.Symbol,
		Boss:   e.IsBoss(),
		Color:  e.Color(),
		Level:  e.Level,
		HP:     e.HP,
		MaxHP:  e.MaxHP,
	}
	if e.Boss != nil {
		v.Beam = e.Boss.BeamLength
	}
	return v
}
