// Package loot provides the backpack and chest rules: cursor movement, item
// use and chest transfer.
package loot

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/luckybattlefield/internal/dice"
	"github.com/samdwyer/luckybattlefield/internal/entity"
	"github.com/samdwyer/luckybattlefield/internal/gamedata"
	"github.com/samdwyer/luckybattlefield/internal/telemetry"
)

// Navigate moves the inventory cursor. Horizontal steps move one slot,
// vertical steps move a whole row of InventoryColumns slots; both wrap modulo
// InventorySize. Up (dy = +1) moves the cursor to the row above, so from slot
// 0 up lands on 6 and down lands on 3.
func Navigate(inv *entity.Inventory, dx, dy int) {
	idx := inv.Selected
	if dx != 0 {
		idx = mod(idx+dx, entity.InventorySize)
	}
	if dy != 0 {
		idx = mod(idx-dy*entity.InventoryColumns, entity.InventorySize)
	}
	inv.Selected = idx
}

func mod(v, n int) int {
	return ((v % n) + n) % n
}

// Effect describes what using an item did.
type Effect struct {
	Used    bool
	Item    entity.ItemKind
	Stat    gamedata.Stat
	Amount  int    // Rolled amount; for healing, the hp actually restored
	Message string // "Healed 60 HP", "+14 ATK", ...
}

// Engine applies item effects from the item table.
type Engine struct {
	items *gamedata.ItemRegistry
	dice  dice.Dice
}

// NewEngine creates a loot engine.
func NewEngine(items *gamedata.ItemRegistry, d dice.Dice) *Engine {
	return &Engine{items: items, dice: d}
}

// Use consumes the item under the cursor and applies its effect. Using an
// empty slot does nothing.
func (e *Engine) Use(ctx context.Context, p *entity.Player) Effect {
	kind := p.Inventory.SelectedItem()
	if kind == entity.ItemEmpty {
		return Effect{}
	}

	tracer := telemetry.Tracer("loot")
	_, span := tracer.Start(ctx, "loot.use")
	defer span.End()

	def := e.items.GetByCode(string(kind))
	if def == nil {
		panic(fmt.Sprintf("loot: item %q missing from item table", kind))
	}

	eff := Effect{Used: true, Item: kind, Stat: def.Stat}
	amount := e.dice.Roll(def.Min, def.Max)
	switch def.Stat {
	case gamedata.StatHP:
		eff.Amount = p.Heal(amount)
		eff.Message = "Healed " + strconv.Itoa(eff.Amount) + " HP"
	case gamedata.StatAttack:
		p.AttackMod += amount
		eff.Amount = amount
		eff.Message = "+" + strconv.Itoa(amount) + " ATK"
	case gamedata.StatDefense:
		p.Defense += amount
		eff.Amount = amount
		eff.Message = "+" + strconv.Itoa(amount) + " DF"
	default:
		eff.Message = def.Name + " used"
	}
	p.Inventory.Put(p.Inventory.Selected, entity.ItemEmpty)

	span.SetAttributes(
		attribute.String("item", string(kind)),
		attribute.String("stat", string(def.Stat)),
		attribute.Int("amount", eff.Amount),
	)
	return eff
}

// Transfer moves the first item of chest into the selected slot, overwriting
// whatever was there. It reports the moved item and false when the chest is empty.
func (e *Engine) Transfer(ctx context.Context, p *entity.Player, chest *entity.Chest) (entity.ItemKind, bool) {
	if chest.IsEmpty() {
		return entity.ItemEmpty, false
	}

	tracer := telemetry.Tracer("loot")
	_, span := tracer.Start(ctx, "loot.transfer")
	defer span.End()

	item := chest.Items[0]
	chest.Items = chest.Items[1:]
	replaced := p.Inventory.Put(p.Inventory.Selected, item)

	span.SetAttributes(
		attribute.String("item", string(item)),
		attribute.String("replaced", string(replaced)),
		attribute.Int("slot", p.Inventory.Selected),
		attribute.Int("chest.remaining", len(chest.Items)),
	)
	return item, true
}
