// Package game provides the session controller: the top-level state machine
// that routes player commands to the world, combat and loot engines and
// publishes snapshots for presentation.
package game

import (
	"github.com/samdwyer/luckybattlefield/internal/combat"
	"github.com/samdwyer/luckybattlefield/internal/entity"
)

// State names the active mode.
type State int

const (
	// StateStart waits for the player's name.
	StateStart State = iota
	// StateChooseAvatar waits for a single-character avatar.
	StateChooseAvatar
	// StateLoading is a transient progress bar shown between screens.
	StateLoading
	// StateWorld is torus exploration.
	StateWorld
	// StateBattle is a turn-based fight against one enemy or boss.
	StateBattle
	// StateInventory browses and uses the nine item slots.
	StateInventory
	// StateChest moves items from a chest into the selected slot.
	StateChest
	// StateData shows the player's stats.
	StateData
	// StateGameOver follows a defeat; only restart and quit are accepted.
	StateGameOver
	// StateQuit ends the session.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateChooseAvatar:
		return "choose_avatar"
	case StateLoading:
		return "loading"
	case StateWorld:
		return "world"
	case StateBattle:
		return "battle"
	case StateInventory:
		return "inventory"
	case StateChest:
		return "chest"
	case StateData:
		return "data"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Mode is the single active session state together with its payload.
type Mode interface {
	State() State
}

// StartMode is the title screen.
type StartMode struct{}

// ChooseAvatarMode asks for the avatar glyph.
type ChooseAvatarMode struct{}

// LoadingMode is one frame of a loading bar.
type LoadingMode struct {
	Label    string
	Progress int // 0..LoadingSteps
}

// WorldMode is exploration.
type WorldMode struct{}

// BattleMode holds the fight in progress.
type BattleMode struct {
	Battle *combat.Battle
}

// InventoryMode remembers where to go when the inventory closes.
type InventoryMode struct {
	Return Mode // WorldMode or BattleMode
}

// ChestMode holds the chest being looted.
type ChestMode struct {
	Chest *entity.Chest
}

// DataMode is the player data screen.
type DataMode struct{}

// GameOverMode follows a defeat.
type GameOverMode struct{}

// QuitMode is terminal.
type QuitMode struct{}

func (StartMode) State() State        { return StateStart }
func (ChooseAvatarMode) State() State { return StateChooseAvatar }
func (LoadingMode) State() State      { return StateLoading }
func (WorldMode) State() State        { return StateWorld }
func (BattleMode) State() State       { return StateBattle }
func (InventoryMode) State() State    { return StateInventory }
func (ChestMode) State() State        { return StateChest }
func (DataMode) State() State         { return StateData }
func (GameOverMode) State() State     { return StateGameOver }
func (QuitMode) State() State         { return StateQuit }
