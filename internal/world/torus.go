package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/luckybattlefield/internal/dice"
	"github.com/samdwyer/luckybattlefield/internal/entity"
	"github.com/samdwyer/luckybattlefield/internal/telemetry"
)

// GridSize is the side of the square torus.
const GridSize = 8

// Direction is one of the four axis-aligned moves. Up increases Y.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// OutcomeKind says what a move resolved to.
type OutcomeKind int

const (
	// OutcomeMoved is a plain step; the player stays in the world.
	OutcomeMoved OutcomeKind = iota
	// OutcomeEnemy means a roster enemy occupies the new view position.
	OutcomeEnemy
	// OutcomeChest means a chest occupies the new view position.
	OutcomeChest
	// OutcomeBoss means the new world position is a boss trigger.
	OutcomeBoss
)

// String returns a human-readable outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMoved:
		return "moved"
	case OutcomeEnemy:
		return "enemy"
	case OutcomeChest:
		return "chest"
	case OutcomeBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// MoveOutcome describes the result of a single step.
type MoveOutcome struct {
	Kind    OutcomeKind
	Enemy   *entity.Enemy   // Set for OutcomeEnemy
	Chest   *entity.Chest   // Set for OutcomeChest
	Boss    entity.BossType // Set for OutcomeBoss
	Wrapped bool            // The step crossed a grid edge and spawned new entities
	View    entity.Position
	World   entity.Position
}

// Engine moves the player around the torus and spawns entities into a roster.
type Engine struct {
	size    int
	dice    dice.Dice
	spawner *entity.Spawner
}

// NewEngine creates a world engine over a GridSize torus.
func NewEngine(d dice.Dice, spawner *entity.Spawner) *Engine {
	return &Engine{
		size:    GridSize,
		dice:    d,
		spawner: spawner,
	}
}

// Size returns the side of the torus.
func (e *Engine) Size() int {
	return e.size
}

// RandomPosition returns a uniform cell on the torus.
func (e *Engine) RandomPosition() entity.Position {
	x := e.dice.Roll(0, e.size-1)
	y := e.dice.Roll(0, e.size-1)
	return entity.Position{X: x, Y: y}
}

// Populate fills the roster with the world-entry batch of enemies and chests.
func (e *Engine) Populate(ctx context.Context, roster *Roster, playerLevel, enemies, chests int) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.populate")
	defer span.End()

	for i := 0; i < enemies; i++ {
		roster.Enemies = append(roster.Enemies, e.spawner.NewEnemy(playerLevel, e.RandomPosition()))
	}
	for i := 0; i < chests; i++ {
		roster.Chests = append(roster.Chests, e.spawner.NewChest(e.RandomPosition()))
	}

	span.SetAttributes(
		attribute.Int("world.enemies", len(roster.Enemies)),
		attribute.Int("world.chests", len(roster.Chests)),
	)
}

// Move steps the player one cell in dir.
//
// The world position takes the raw step. The view position takes the same
// step reduced modulo the grid size; if either axis left [0, size) before the
// reduction the move is a wrap and exactly one enemy and one chest are spawned.
// Encounters are then checked in order: enemy, chest, boss trigger.
func (e *Engine) Move(ctx context.Context, p *entity.Player, roster *Roster, dir Direction) MoveOutcome {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.move")
	defer span.End()

	dx, dy := dir.Delta()
	p.World = p.World.Add(dx, dy)

	raw := p.View.Add(dx, dy)
	wrapped := !e.inBounds(raw.X) || !e.inBounds(raw.Y)
	p.View = entity.Position{X: e.wrap(raw.X), Y: e.wrap(raw.Y)}

	if wrapped {
		roster.Enemies = append(roster.Enemies, e.spawner.NewEnemy(p.Level, e.RandomPosition()))
		roster.Chests = append(roster.Chests, e.spawner.NewChest(e.RandomPosition()))
	}

	out := MoveOutcome{
		Kind:    OutcomeMoved,
		Wrapped: wrapped,
		View:    p.View,
		World:   p.World,
	}

	if enemy := roster.EnemyAt(p.View); enemy != nil {
		out.Kind = OutcomeEnemy
		out.Enemy = enemy
	} else if chest := roster.ChestAt(p.View); chest != nil {
		out.Kind = OutcomeChest
		out.Chest = chest
	} else if boss, ok := e.spawner.Bosses().TriggerAt(p.World.X, p.World.Y); ok {
		out.Kind = OutcomeBoss
		out.Boss = entity.BossType(boss.Type)
	}

	span.SetAttributes(
		attribute.String("direction", dir.String()),
		attribute.Int("view.x", p.View.X),
		attribute.Int("view.y", p.View.Y),
		attribute.Int("world.x", p.World.X),
		attribute.Int("world.y", p.World.Y),
		attribute.Bool("wrapped", wrapped),
		attribute.String("outcome", out.Kind.String()),
	)
	return out
}

// Grid renders the roster onto the torus. Enemies are drawn over chests.
// A boss trigger is drawn as a gate when it lies in the same copy of the
// torus as the player's world position.
func (e *Engine) Grid(p *entity.Player, roster *Roster) Grid {
	grid := make(Grid, e.size)
	for y := range grid {
		grid[y] = make([]Tile, e.size)
		for x := range grid[y] {
			grid[y][x] = TileEmpty
		}
	}

	for _, b := range e.spawner.Bosses().All() {
		if e.copyOf(b.Trigger.X) == e.copyOf(p.World.X) && e.copyOf(b.Trigger.Y) == e.copyOf(p.World.Y) {
			grid[e.wrap(b.Trigger.Y)][e.wrap(b.Trigger.X)] = TileGate
		}
	}
	for _, c := range roster.Chests {
		grid[c.Pos.Y][c.Pos.X] = TileChest
	}
	for _, en := range roster.Enemies {
		grid[en.Pos.Y][en.Pos.X] = TileEnemy
	}
	return grid
}

func (e *Engine) inBounds(v int) bool {
	return v >= 0 && v < e.size
}

// wrap reduces v into [0, size).
func (e *Engine) wrap(v int) int {
	return ((v % e.size) + e.size) % e.size
}

// copyOf returns which repetition of the torus an absolute coordinate falls in.
func (e *Engine) copyOf(v int) int {
	if v < 0 {
		return (v+1)/e.size - 1
	}
	return v / e.size
}
