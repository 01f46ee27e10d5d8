package loot

import (
	"context"
	"testing"

	"github.com/samdwyer/luckybattlefield/internal/dice"
	"github.com/samdwyer/luckybattlefield/internal/entity"
	"github.com/samdwyer/luckybattlefield/internal/gamedata"
)

func newPlayer() *entity.Player {
	return entity.NewPlayer("Hero", "@", gamedata.MustLoadAttacks())
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		dx, dy   int
		expected int
	}{
		{"right from 0", 0, 1, 0, 1},
		{"left from 0 wraps", 0, -1, 0, 8},
		{"right from 8 wraps", 8, 1, 0, 0},
		{"down from 0", 0, 0, -1, 3},
		{"up from 0 wraps", 0, 0, 1, 6},
		{"down from 7 wraps", 7, 0, -1, 1},
		{"up from 4", 4, 0, 1, 1},
	}

	for _, tt := range tests {
		inv := entity.Inventory{Selected: tt.start}
		Navigate(&inv, tt.dx, tt.dy)
		if inv.Selected != tt.expected {
			t.Errorf("%s: Selected = %d, want %d", tt.name, inv.Selected, tt.expected)
		}
	}
}

func TestNavigateRoundTrips(t *testing.T) {
	moves := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for start := 0; start < entity.InventorySize; start++ {
		for _, m := range moves {
			inv := entity.Inventory{Selected: start}
			Navigate(&inv, m[0], m[1])
			if inv.Selected < 0 || inv.Selected >= entity.InventorySize {
				t.Fatalf("Navigate(%d, %v) left the backpack: %d", start, m, inv.Selected)
			}
			Navigate(&inv, -m[0], -m[1])
			if inv.Selected != start {
				t.Errorf("Navigate(%d, %v) and back = %d", start, m, inv.Selected)
			}
		}

		// Three vertical steps in one direction return to the start.
		inv := entity.Inventory{Selected: start}
		for i := 0; i < 3; i++ {
			Navigate(&inv, 0, -1)
		}
		if inv.Selected != start {
			t.Errorf("three steps down from %d = %d", start, inv.Selected)
		}
	}
}

func TestUseItemEffects(t *testing.T) {
	tests := []struct {
		item       entity.ItemKind
		roll       int
		wantHP     int
		wantAtk    int
		wantDef    int
		wantAmount int
	}{
		{entity.ItemHeal, 60, 150, 0, 5, 60},
		{entity.ItemAttackBoost, 14, 90, 14, 5, 14},
		{entity.ItemResist, 15, 90, 0, 20, 15},
		{entity.ItemWeapon, 45, 90, 45, 5, 45},
		{entity.ItemArmor, 5, 90, 0, 10, 5},
		{entity.ItemKey, 0, 90, 0, 5, 0},
	}

	for _, tt := range tests {
		p := newPlayer()
		p.HP = 90
		p.Inventory.Put(0, tt.item)
		e := NewEngine(gamedata.MustLoadItemRegistry(), dice.NewScripted(tt.roll))

		eff := e.Use(context.Background(), p)

		if !eff.Used || eff.Item != tt.item || eff.Amount != tt.wantAmount {
			t.Errorf("Use(%s) = %+v, want used amount %d", tt.item, eff, tt.wantAmount)
		}
		if p.HP != tt.wantHP || p.AttackMod != tt.wantAtk || p.Defense != tt.wantDef {
			t.Errorf("Use(%s) hp=%d atk=%d def=%d, want %d %d %d",
				tt.item, p.HP, p.AttackMod, p.Defense, tt.wantHP, tt.wantAtk, tt.wantDef)
		}
		if p.Inventory.Slots[0] != entity.ItemEmpty {
			t.Errorf("Use(%s) left %q in the slot", tt.item, p.Inventory.Slots[0])
		}
	}
}

func TestUseItemRollsStayInRange(t *testing.T) {
	e := NewEngine(gamedata.MustLoadItemRegistry(), dice.New(31))
	for i := 0; i < 200; i++ {
		p := newPlayer()
		p.Inventory.Put(0, entity.ItemWeapon)
		p.Inventory.Put(1, entity.ItemResist)

		e.Use(context.Background(), p)
		p.Inventory.Selected = 1
		e.Use(context.Background(), p)

		if p.AttackMod < 5 || p.AttackMod > 45 {
			t.Fatalf("weapon roll %d outside [5, 45]", p.AttackMod)
		}
		if p.Defense < 10 || p.Defense > 20 {
			t.Fatalf("resist gave defense %d, want within [10, 20]", p.Defense)
		}
	}
}

func TestHealCapsAtMax(t *testing.T) {
	p := newPlayer()
	p.HP = 140
	p.Inventory.Put(0, entity.ItemHeal)
	e := NewEngine(gamedata.MustLoadItemRegistry(), dice.New(1))

	eff := e.Use(context.Background(), p)
	if p.HP != 150 || eff.Amount != 10 || eff.Message != "Healed 10 HP" {
		t.Errorf("Heal at 140/150 gave hp %d, effect %+v", p.HP, eff)
	}
}

func TestUseEmptySlotIsNoop(t *testing.T) {
	p := newPlayer()
	p.Inventory.Selected = 4
	e := NewEngine(gamedata.MustLoadItemRegistry(), dice.NewScripted(99))

	eff := e.Use(context.Background(), p)
	if eff.Used {
		t.Error("Use() on an empty slot should do nothing")
	}
	if p.HP != 150 || p.AttackMod != 0 || p.Defense != 5 {
		t.Errorf("empty use changed stats: hp=%d atk=%d def=%d", p.HP, p.AttackMod, p.Defense)
	}
}

func TestTransferIsFIFO(t *testing.T) {
	p := newPlayer()
	chest := &entity.Chest{Items: []entity.ItemKind{entity.ItemHeal, entity.ItemAttackBoost}}
	e := NewEngine(gamedata.MustLoadItemRegistry(), dice.New(1))

	item, ok := e.Transfer(context.Background(), p, chest)
	if !ok || item != entity.ItemHeal || p.Inventory.Slots[0] != entity.ItemHeal {
		t.Fatalf("first transfer = %q %v, slot 0 = %q", item, ok, p.Inventory.Slots[0])
	}

	Navigate(&p.Inventory, 1, 0)
	item, ok = e.Transfer(context.Background(), p, chest)
	if !ok || item != entity.ItemAttackBoost || p.Inventory.Slots[1] != entity.ItemAttackBoost {
		t.Fatalf("second transfer = %q %v, slot 1 = %q", item, ok, p.Inventory.Slots[1])
	}
	if !chest.IsEmpty() {
		t.Errorf("chest still holds %v", chest.Items)
	}

	before := p.Inventory
	if _, ok := e.Transfer(context.Background(), p, chest); ok {
		t.Error("third transfer from an empty chest should be a no-op")
	}
	if p.Inventory != before {
		t.Error("empty transfer changed the inventory")
	}
}

func TestTransferOverwritesSelectedSlot(t *testing.T) {
	p := newPlayer()
	p.Inventory.Put(0, entity.ItemArmor)
	chest := &entity.Chest{Items: []entity.ItemKind{entity.ItemResist}}
	e := NewEngine(gamedata.MustLoadItemRegistry(), dice.New(1))

	e.Transfer(context.Background(), p, chest)
	if p.Inventory.Slots[0] != entity.ItemResist {
		t.Errorf("slot 0 = %q, want resist overwriting armor", p.Inventory.Slots[0])
	}
	if p.Inventory.Count() != 1 {
		t.Errorf("Count() = %d, want 1 (armor lost)", p.Inventory.Count())
	}
}
