package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/luckybattlefield/internal/dice"
)

// ItemRegistry holds loaded item definitions and provides loot utilities.
type ItemRegistry struct {
	items    []ItemDef
	byCode   map[string]*ItemDef
	lootable []*ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	r := &ItemRegistry{
		items:  items,
		byCode: make(map[string]*ItemDef, len(items)),
	}
	for i := range items {
		r.byCode[items[i].Code] = &items[i]
		if items[i].Lootable {
			r.lootable = append(r.lootable, &items[i])
		}
	}
	return r
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	r := NewItemRegistry(items)
	if len(r.lootable) == 0 {
		return nil, errors.New("no lootable items in items.json")
	}
	return r, nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByCode returns the item definition with the given code, or nil if not found.
func (r *ItemRegistry) GetByCode(code string) *ItemDef {
	return r.byCode[code]
}

// RandomLoot draws one lootable item uniformly.
func (r *ItemRegistry) RandomLoot(d dice.Dice) *ItemDef {
	return r.lootable[d.Roll(0, len(r.lootable)-1)]
}

// Lootable returns the chest item pool in file order.
func (r *ItemRegistry) Lootable() []*ItemDef {
	return r.lootable
}

// Count returns the number of item kinds in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}

// =============================================================================
// BossRegistry
// =============================================================================

// BossRegistry holds the fixed bosses keyed by type and by trigger coordinate.
type BossRegistry struct {
	bosses    []BossDef
	byType    map[int]*BossDef
	byTrigger map[Point]*BossDef
}

// NewBossRegistry creates a registry from loaded boss definitions.
func NewBossRegistry(bosses []BossDef) (*BossRegistry, error) {
	r := &BossRegistry{
		bosses:    bosses,
		byType:    make(map[int]*BossDef, len(bosses)),
		byTrigger: make(map[Point]*BossDef, len(bosses)),
	}
	for i := range bosses {
		b := &bosses[i]
		if _, dup := r.byType[b.Type]; dup {
			return nil, fmt.Errorf("boss type %d defined twice", b.Type)
		}
		if _, dup := r.byTrigger[b.Trigger]; dup {
			return nil, fmt.Errorf("boss trigger (%d,%d) defined twice", b.Trigger.X, b.Trigger.Y)
		}
		r.byType[b.Type] = b
		r.byTrigger[b.Trigger] = b
	}
	return r, nil
}

// LoadBossRegistry loads and creates a registry from the embedded bosses.json.
func LoadBossRegistry() (*BossRegistry, error) {
	bosses, err := LoadBosses()
	if err != nil {
		return nil, err
	}
	if len(bosses) == 0 {
		return nil, errors.New("no bosses loaded from bosses.json")
	}
	return NewBossRegistry(bosses)
}

// MustLoadBossRegistry loads a registry, panicking on error.
func MustLoadBossRegistry() *BossRegistry {
	registry, err := LoadBossRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByType returns the boss with the given type tag, or nil if not found.
func (r *BossRegistry) GetByType(bossType int) *BossDef {
	return r.byType[bossType]
}

// TriggerAt returns the boss whose trigger is the absolute coordinate (x, y).
func (r *BossRegistry) TriggerAt(x, y int) (*BossDef, bool) {
	b, ok := r.byTrigger[Point{X: x, Y: y}]
	return b, ok
}

// All returns all boss definitions.
func (r *BossRegistry) All() []BossDef {
	return r.bosses
}
