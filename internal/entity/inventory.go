package entity

import "fmt"

// ItemKind is the inventory code of an item. The zero value is an empty slot.
type ItemKind string

const (
	ItemEmpty       ItemKind = ""
	ItemHeal        ItemKind = "H"
	ItemAttackBoost ItemKind = "A"
	ItemResist      ItemKind = "R"
	ItemWeapon      ItemKind = "W"
	ItemArmor       ItemKind = "X"
	ItemKey         ItemKind = "K" // Boss drop
)

const (
	// InventorySize is the fixed number of slots.
	InventorySize = 9
	// InventoryColumns is the width of the slot grid.
	InventoryColumns = 3
)

// Inventory is the player's fixed 3x3 backpack with a single cursor.
type Inventory struct {
	Slots    [InventorySize]ItemKind
	Selected int
}

// SelectedItem returns the item under the cursor.
func (inv *Inventory) SelectedItem() ItemKind {
	checkSlot(inv.Selected)
	return inv.Slots[inv.Selected]
}

// Put overwrites slot i with kind and returns what was there.
func (inv *Inventory) Put(i int, kind ItemKind) ItemKind {
	checkSlot(i)
	prev := inv.Slots[i]
	inv.Slots[i] = kind
	return prev
}

// Count returns the number of occupied slots.
func (inv *Inventory) Count() int {
	n := 0
	for _, k := range inv.Slots {
		if k != ItemEmpty {
			n++
		}
	}
	return n
}

func checkSlot(i int) {
	if i < 0 || i >= InventorySize {
		panic(fmt.Sprintf("entity: inventory slot %d outside [0, %d]", i, InventorySize-1))
	}
}
