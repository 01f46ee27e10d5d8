package entity

import (
	"fmt"
	"io"

	"github.com/samdwyer/luckybattlefield/internal/dice"
	"github.com/samdwyer/luckybattlefield/internal/gamedata"
)

// Enemy and chest generation rules.
const (
	// EnemyLevelSpread is how far above the player an enemy level may roll.
	EnemyLevelSpread = 4
	EnemyBaseHP      = 100
	EnemyHPPerLevel  = 50
	ChestMinItems    = 1
	ChestMaxItems    = 3
)

// Spawner creates entities. Every random choice goes through the injected
// dice and every id through the injected reader, so a seed reproduces a run.
type Spawner struct {
	dice    dice.Dice
	ids     io.Reader
	items   *gamedata.ItemRegistry
	bosses  *gamedata.BossRegistry
	attacks []gamedata.AttackDef
}

// NewSpawner creates a spawner over the given tables.
func NewSpawner(d dice.Dice, ids io.Reader, items *gamedata.ItemRegistry, bosses *gamedata.BossRegistry, attacks []gamedata.AttackDef) *Spawner {
	return &Spawner{
		dice:    d,
		ids:     ids,
		items:   items,
		bosses:  bosses,
		attacks: attacks,
	}
}

// NewPlayer creates a fresh player with the configured attack set.
func (s *Spawner) NewPlayer(name, symbol string) *Player {
	return NewPlayer(name, symbol, s.attacks)
}

// NewEnemy creates a regular enemy at pos with a level in
// [playerLevel, playerLevel+EnemyLevelSpread].
func (s *Spawner) NewEnemy(playerLevel int, pos Position) *Enemy {
	level := s.dice.Roll(playerLevel, playerLevel+EnemyLevelSpread)
	maxHP := EnemyBaseHP + level*EnemyHPPerLevel
	return &Enemy{
		ID:     NewID(s.ids),
		Kind:   KindRegular,
		Name:   "Enemy",
		Symbol: EnemySymbol,
		Level:  level,
		HP:     maxHP,
		MaxHP:  maxHP,
		Pos:    pos,
	}
}

// NewChest creates a chest at pos holding 1 to 3 lootable items.
func (s *Spawner) NewChest(pos Position) *Chest {
	n := s.dice.Roll(ChestMinItems, ChestMaxItems)
	items := make([]ItemKind, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, ItemKind(s.items.RandomLoot(s.dice).Code))
	}
	return &Chest{
		ID:    NewID(s.ids),
		Pos:   pos,
		Items: items,
	}
}

// NewBoss creates the final boss of the given type.
func (s *Spawner) NewBoss(bossType BossType) (*Enemy, error) {
	def := s.bosses.GetByType(int(bossType))
	if def == nil {
		return nil, fmt.Errorf("unknown boss type %d", bossType)
	}
	return NewBossFromDef(def, NewID(s.ids)), nil
}

// NewBossFromDef creates a boss from its table entry.
func NewBossFromDef(def *gamedata.BossDef, id ID) *Enemy {
	return &Enemy{
		ID:     id,
		Kind:   KindBoss,
		Name:   def.Name,
		Symbol: def.Glyph,
		Level:  def.Level,
		HP:     def.HP,
		MaxHP:  def.HP,
		Boss: &BossState{
			Type:         BossType(def.Type),
			Color:        def.TCellColor(),
			BeamUnlocked: def.BeamUnlocked,
		},
	}
}

// Bosses returns the boss table the spawner draws from.
func (s *Spawner) Bosses() *gamedata.BossRegistry {
	return s.bosses
}

// Items returns the item table the spawner draws from.
func (s *Spawner) Items() *gamedata.ItemRegistry {
	return s.items
}
