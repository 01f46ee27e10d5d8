package game

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/luckybattlefield/internal/dice"
	"github.com/samdwyer/luckybattlefield/internal/entity"
	"github.com/samdwyer/luckybattlefield/internal/world"
)

// newTestSession returns a session on the start screen whose draws follow
// script, falling back to range midpoints once it runs out.
func newTestSession(enemies, chests int, script ...int) *Session {
	cfg := DefaultConfig()
	cfg.InitialEnemies = enemies
	cfg.InitialChests = chests
	return New(cfg, WithDice(dice.NewScripted(script...)), WithIDs(dice.New(7)))
}

// mustHandle applies cmd and fails the test on error.
func mustHandle(t *testing.T, s *Session, cmd Command) []Snapshot {
	t.Helper()
	frames, err := s.Handle(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Handle(%T): %v", cmd, err)
	}
	if len(frames) == 0 {
		t.Fatalf("Handle(%T) returned no frames", cmd)
	}
	return frames
}

// enterWorld drives a fresh session through name and avatar entry.
func enterWorld(t *testing.T, s *Session) {
	t.Helper()
	mustHandle(t, s, SubmitText{Text: ""})
	mustHandle(t, s, SubmitText{Text: "@"})
	if got := s.Mode().State(); got != StateWorld {
		t.Fatalf("state after avatar = %v, want world", got)
	}
}

func last(frames []Snapshot) Snapshot {
	return frames[len(frames)-1]
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateStart, "start"},
		{StateChooseAvatar, "choose_avatar"},
		{StateLoading, "loading"},
		{StateWorld, "world"},
		{StateBattle, "battle"},
		{StateInventory, "inventory"},
		{StateChest, "chest"},
		{StateData, "data"},
		{StateGameOver, "game_over"},
		{StateQuit, "quit"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestValidAvatar(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"@", true},
		{"x", true},
		{"é", true},
		{"👍🏽", true},
		{"", false},
		{"ab", false},
		{" ", false},
		{"\t", false},
		{"@@", false},
	}

	for _, tt := range tests {
		if got := ValidAvatar(tt.text); got != tt.want {
			t.Errorf("ValidAvatar(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestNameDefaultsToHero(t *testing.T) {
	s := newTestSession(0, 0)

	frames := mustHandle(t, s, SubmitText{Text: "   "})

	snap := last(frames)
	if snap.State != StateChooseAvatar {
		t.Errorf("state = %v, want choose_avatar", snap.State)
	}
	if snap.Name != DefaultName {
		t.Errorf("name = %q, want %q", snap.Name, DefaultName)
	}
}

func TestInvalidAvatarStaysOnAvatarScreen(t *testing.T) {
	s := newTestSession(0, 0)
	mustHandle(t, s, SubmitText{Text: "Ada"})

	frames, err := s.Handle(context.Background(), SubmitText{Text: "ab"})

	if !errors.Is(err, ErrInvalidAvatar) {
		t.Fatalf("err = %v, want ErrInvalidAvatar", err)
	}
	if len(frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(frames))
	}
	if frames[0].State != StateChooseAvatar {
		t.Errorf("state = %v, want choose_avatar", frames[0].State)
	}
	if frames[0].Annotation != AvatarError {
		t.Errorf("annotation = %q, want %q", frames[0].Annotation, AvatarError)
	}
	if s.Player() != nil {
		t.Error("player created from an invalid avatar")
	}
}

func TestAvatarPlaysBothLoadingBars(t *testing.T) {
	s := newTestSession(4, 3)
	mustHandle(t, s, SubmitText{Text: "Ada"})

	frames := mustHandle(t, s, SubmitText{Text: "@"})

	want := 2*(LoadingSteps+1) + 1
	if len(frames) != want {
		t.Fatalf("frames = %d, want %d", len(frames), want)
	}
	checks := []struct {
		index    int
		label    string
		progress int
	}{
		{0, LabelInit, 0},
		{LoadingSteps, LabelInit, LoadingSteps},
		{LoadingSteps + 1, LabelSetup, 0},
		{2*LoadingSteps + 1, LabelSetup, LoadingSteps},
	}
	for _, c := range checks {
		f := frames[c.index]
		if f.State != StateLoading || f.Loading != c.label || f.Progress != c.progress {
			t.Errorf("frame %d = %v %q %d, want loading %q %d", c.index, f.State, f.Loading, f.Progress, c.label, c.progress)
		}
	}

	snap := last(frames)
	if snap.State != StateWorld {
		t.Errorf("final state = %v, want world", snap.State)
	}
	if snap.Player == nil || snap.Player.Name != "Ada" || snap.Player.Symbol != "@" {
		t.Fatalf("player = %+v, want Ada @", snap.Player)
	}
	if len(snap.Enemies) != 4 || len(snap.Chests) != 3 {
		t.Errorf("roster = %d enemies %d chests, want 4 and 3", len(snap.Enemies), len(snap.Chests))
	}
	if snap.Player.View != (entity.Position{}) || snap.Player.World != (entity.Position{}) {
		t.Errorf("player starts at view %v world %v, want origin", snap.Player.View, snap.Player.World)
	}
}

func TestIgnoredCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"attack in world", SelectAttack{Key: "A"}},
		{"use item in world", UseItem{}},
		{"take in world", TakeChestItem{}},
		{"restart in world", Restart{}},
		{"text in world", SubmitText{Text: "x"}},
		{"escape in world", Escape{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(0, 0)
			enterWorld(t, s)
			before := *s.Player()

			frames := mustHandle(t, s, tt.cmd)

			if len(frames) != 1 {
				t.Errorf("frames = %d, want 1", len(frames))
			}
			if got := s.Mode().State(); got != StateWorld {
				t.Errorf("state = %v, want world", got)
			}
			after := s.Player()
			if after.View != before.View || after.HP != before.HP || after.Inventory != before.Inventory {
				t.Error("ignored command changed the player")
			}
		})
	}
}

func TestStartIgnoresEverythingButText(t *testing.T) {
	s := newTestSession(0, 0)

	mustHandle(t, s, Move{Dir: world.DirUp})
	mustHandle(t, s, Restart{})

	if got := s.Mode().State(); got != StateStart {
		t.Errorf("state = %v, want start", got)
	}
}

func TestDataScreenToggles(t *testing.T) {
	s := newTestSession(0, 0)
	enterWorld(t, s)

	mustHandle(t, s, ToggleData{})
	if got := s.Mode().State(); got != StateData {
		t.Fatalf("state = %v, want data", got)
	}
	mustHandle(t, s, Move{Dir: world.DirRight})
	if s.Player().View.X != 0 {
		t.Error("move on the data screen moved the player")
	}
	mustHandle(t, s, ToggleData{})
	if got := s.Mode().State(); got != StateWorld {
		t.Errorf("state = %v, want world", got)
	}
}

func TestQuitFromAnyMode(t *testing.T) {
	s := newTestSession(0, 0)
	enterWorld(t, s)
	mustHandle(t, s, ToggleInventory{})

	frames := mustHandle(t, s, Quit{})

	if !s.Done() {
		t.Error("Done() = false after quit")
	}
	if last(frames).State != StateQuit {
		t.Errorf("state = %v, want quit", last(frames).State)
	}
}

func TestChestTransferScenario(t *testing.T) {
	// Chest at (1, 0) holding Heal then Attack Boost.
	s := newTestSession(0, 1, 1, 0, 2, 0, 1)
	enterWorld(t, s)

	snap := last(mustHandle(t, s, Move{Dir: world.DirRight}))
	if snap.State != StateChest {
		t.Fatalf("state = %v, want chest", snap.State)
	}
	if len(snap.ChestItems) != 2 || snap.ChestItems[0] != entity.ItemHeal || snap.ChestItems[1] != entity.ItemAttackBoost {
		t.Fatalf("chest items = %v, want [H A]", snap.ChestItems)
	}

	snap = last(mustHandle(t, s, TakeChestItem{}))
	if snap.Annotation != "Took Heal" {
		t.Errorf("annotation = %q, want %q", snap.Annotation, "Took Heal")
	}
	mustHandle(t, s, Move{Dir: world.DirRight})
	snap = last(mustHandle(t, s, TakeChestItem{}))

	if snap.Inventory.Slots[0] != entity.ItemHeal || snap.Inventory.Slots[1] != entity.ItemAttackBoost {
		t.Errorf("slots = %v, want H then A", snap.Inventory.Slots)
	}
	if len(snap.ChestItems) != 0 {
		t.Errorf("chest items = %v, want empty", snap.ChestItems)
	}

	before := snap.Inventory
	snap = last(mustHandle(t, s, TakeChestItem{}))
	if snap.Inventory != before {
		t.Error("third transfer changed the inventory")
	}
	if snap.Annotation != "The chest is empty" {
		t.Errorf("annotation = %q, want empty chest notice", snap.Annotation)
	}

	snap = last(mustHandle(t, s, ExitChest{}))
	if snap.State != StateWorld {
		t.Errorf("state = %v, want world", snap.State)
	}
	if len(snap.Chests) != 1 {
		t.Errorf("chests = %d, want the emptied chest to stay", len(snap.Chests))
	}
}

func TestInventoryUseFromWorld(t *testing.T) {
	s := newTestSession(0, 1, 1, 0, 1, 0)
	enterWorld(t, s)
	mustHandle(t, s, Move{Dir: world.DirRight})
	mustHandle(t, s, TakeChestItem{})
	mustHandle(t, s, ExitChest{})
	s.Player().HP = 50

	mustHandle(t, s, ToggleInventory{})
	snap := last(mustHandle(t, s, UseItem{}))

	if snap.Player.HP != 110 {
		t.Errorf("hp = %d, want 110", snap.Player.HP)
	}
	if snap.Inventory.Slots[0] != entity.ItemEmpty {
		t.Errorf("slot 0 = %q, want empty", snap.Inventory.Slots[0])
	}
	if snap.Annotation == "" {
		t.Error("item use left no annotation")
	}

	snap = last(mustHandle(t, s, ToggleInventory{}))
	if snap.State != StateWorld {
		t.Errorf("state = %v, want world", snap.State)
	}
}

func TestInventoryNavigation(t *testing.T) {
	s := newTestSession(0, 0)
	enterWorld(t, s)
	mustHandle(t, s, ToggleInventory{})

	mustHandle(t, s, Move{Dir: world.DirRight})
	if got := s.Player().Inventory.Selected; got != 1 {
		t.Errorf("after right = %d, want 1", got)
	}
	mustHandle(t, s, Move{Dir: world.DirLeft})
	mustHandle(t, s, Move{Dir: world.DirUp})
	if got := s.Player().Inventory.Selected; got != 6 {
		t.Errorf("after up from 0 = %d, want 6", got)
	}
	if s.Player().View != (entity.Position{}) {
		t.Error("inventory navigation moved the player")
	}
}

func TestRestartKeepsNameAndAvatar(t *testing.T) {
	s := newTestSession(2, 2)
	mustHandle(t, s, SubmitText{Text: "Ada"})
	mustHandle(t, s, SubmitText{Text: "#"})
	old := s.Player()
	old.Level = 3
	old.HP = 0
	s.setMode(GameOverMode{})

	frames := mustHandle(t, s, Restart{})

	if len(frames) != LoadingSteps+2 {
		t.Errorf("frames = %d, want %d", len(frames), LoadingSteps+2)
	}
	if frames[0].Loading != LabelSetup {
		t.Errorf("first frame label = %q, want %q", frames[0].Loading, LabelSetup)
	}
	p := s.Player()
	if p == old {
		t.Fatal("restart kept the old player")
	}
	if p.Name != "Ada" || p.BaseSymbol != "#" {
		t.Errorf("player = %s %s, want Ada #", p.Name, p.BaseSymbol)
	}
	if p.Level != entity.StartLevel || p.HP != entity.StartHP {
		t.Errorf("player level %d hp %d, want fresh", p.Level, p.HP)
	}
	if len(s.Roster().Enemies) != 2 || len(s.Roster().Chests) != 2 {
		t.Errorf("roster = %d enemies %d chests, want a fresh 2 and 2",
			len(s.Roster().Enemies), len(s.Roster().Chests))
	}
	if got := s.Mode().State(); got != StateWorld {
		t.Errorf("state = %v, want world", got)
	}
}
