package game

import "github.com/samdwyer/luckybattlefield/internal/world"

// Command is a discrete player input. The set is closed: only the types in
// this file implement it.
type Command interface {
	command() string
}

// Move steps on the torus, or moves the inventory selection in the
// inventory and chest screens.
type Move struct {
	Dir world.Direction
}

// ToggleInventory opens or closes the inventory.
type ToggleInventory struct{}

// ToggleData opens or closes the player data screen.
type ToggleData struct{}

// SelectAttack fires the attack bound to Key.
type SelectAttack struct {
	Key string
}

// Escape backs out of the current screen. In battle it opens the inventory.
type Escape struct{}

// UseItem consumes the selected inventory slot.
type UseItem struct{}

// TakeChestItem moves the next chest item into the selected slot.
type TakeChestItem struct{}

// ExitChest leaves the chest screen.
type ExitChest struct{}

// Restart begins a new run after a defeat.
type Restart struct{}

// Quit ends the session from any mode.
type Quit struct{}

// SubmitText enters the player name or the avatar.
type SubmitText struct {
	Text string
}

func (Move) command() string            { return "move" }
func (ToggleInventory) command() string { return "toggle_inventory" }
func (ToggleData) command() string      { return "toggle_data" }
func (SelectAttack) command() string    { return "select_attack" }
func (Escape) command() string          { return "escape" }
func (UseItem) command() string         { return "use_item" }
func (TakeChestItem) command() string   { return "take_chest_item" }
func (ExitChest) command() string       { return "exit_chest" }
func (Restart) command() string         { return "restart" }
func (Quit) command() string            { return "quit" }
func (SubmitText) command() string      { return "submit_text" }
