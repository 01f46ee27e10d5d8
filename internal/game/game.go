package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/luckybattlefield/internal/dice"
	"github.com/samdwyer/luckybattlefield/internal/entity"
	"github.com/samdwyer/luckybattlefield/internal/gamedata"
	"github.com/samdwyer/luckybattlefield/internal/loot"
	"github.com/samdwyer/luckybattlefield/internal/telemetry"
	"github.com/samdwyer/luckybattlefield/internal/world"
)

const (
	// DefaultName is used when the name entry is left blank.
	DefaultName = "Hero"

	// LoadingSteps is the last progress value of a loading bar; every
	// sequence emits LoadingSteps+1 frames.
	LoadingSteps = 20

	LabelInit  = "INITIATING BATTLEFIELD..."
	LabelSetup = "SETTING THINGS UP..."

	// AvatarError is shown while an avatar entry is rejected.
	AvatarError = "Error! Use exactly 1 character"
)

// ErrInvalidAvatar is returned when the avatar is not exactly one
// displayable character.
var ErrInvalidAvatar = errors.New("avatar must be exactly one character")

// Session owns the player, both rosters and the current mode. It is driven by
// one command at a time and is not safe for concurrent use.
type Session struct {
	cfg    Config
	dice   dice.Dice
	ids    io.Reader
	logger *zap.Logger
	tracer trace.Tracer

	spawner *entity.Spawner
	world   *world.Engine
	loot    *loot.Engine

	name   string
	symbol string
	player *entity.Player
	roster world.Roster

	mode       Mode
	annotation string
	frames     []Snapshot
}

// Option customizes a Session.
type Option func(*Session)

// WithDice replaces the seeded random source.
func WithDice(d dice.Dice) Option {
	return func(s *Session) { s.dice = d }
}

// WithIDs replaces the byte stream entity ids are minted from.
func WithIDs(r io.Reader) Option {
	return func(s *Session) { s.ids = r }
}

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithTracer sets the tracer for session spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) { s.tracer = t }
}

// New creates a session on the start screen.
func New(cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		logger: zap.NewNop(),
		tracer: telemetry.Tracer("game"),
		mode:   StartMode{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.dice == nil || s.ids == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		r := dice.New(seed)
		if s.dice == nil {
			s.dice = r
		}
		if s.ids == nil {
			s.ids = r
		}
		s.logger.Info("session seeded", zap.Int64("seed", seed))
	}

	items := gamedata.MustLoadItemRegistry()
	s.spawner = entity.NewSpawner(s.dice, s.ids, items,
		gamedata.MustLoadBossRegistry(), gamedata.MustLoadAttacks())
	s.world = world.NewEngine(s.dice, s.spawner)
	s.loot = loot.NewEngine(items, s.dice)
	return s
}

// Mode returns the active mode.
func (s *Session) Mode() Mode { return s.mode }

// Done reports whether the player quit.
func (s *Session) Done() bool { return s.mode.State() == StateQuit }

// Player returns the current player, or nil before an avatar is chosen.
func (s *Session) Player() *entity.Player { return s.player }

// Roster returns the live enemy and chest rosters.
func (s *Session) Roster() *world.Roster { return &s.roster }

// Handle applies one command and returns the frames it produced, ending with
// the settled state. Commands that mean nothing in the current mode change
// nothing and yield a single frame.
func (s *Session) Handle(ctx context.Context, cmd Command) ([]Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "session.command")
	defer span.End()

	from := s.mode.State()
	s.frames = nil

	var err error
	if _, ok := cmd.(Quit); ok {
		s.setMode(QuitMode{})
	} else {
		err = s.dispatch(ctx, cmd)
	}

	s.emit()
	frames := s.frames
	s.frames = nil

	span.SetAttributes(
		attribute.String("command", cmd.command()),
		attribute.String("mode.from", from.String()),
		attribute.String("mode.to", s.mode.State().String()),
		attribute.Int("frames", len(frames)),
	)
	if err != nil {
		span.RecordError(err)
	}
	return frames, err
}

func (s *Session) dispatch(ctx context.Context, cmd Command) error {
	switch m := s.mode.(type) {
	case StartMode:
		s.handleStart(cmd)
	case ChooseAvatarMode:
		return s.handleAvatar(ctx, cmd)
	case WorldMode:
		return s.handleWorld(ctx, cmd)
	case BattleMode:
		s.handleBattle(ctx, m, cmd)
	case InventoryMode:
		s.handleInventory(ctx, m, cmd)
	case ChestMode:
		s.handleChest(ctx, m, cmd)
	case DataMode:
		switch cmd.(type) {
		case ToggleData, Escape:
			s.setMode(WorldMode{})
		}
	case GameOverMode:
		if _, ok := cmd.(Restart); ok {
			s.restart(ctx)
		}
	}
	return nil
}

// =============================================================================
// Mode handlers
// =============================================================================

func (s *Session) handleStart(cmd Command) {
	text, ok := cmd.(SubmitText)
	if !ok {
		return
	}
	s.name = strings.TrimSpace(text.Text)
	if s.name == "" {
		s.name = DefaultName
	}
	s.setMode(ChooseAvatarMode{})
}

func (s *Session) handleAvatar(ctx context.Context, cmd Command) error {
	text, ok := cmd.(SubmitText)
	if !ok {
		return nil
	}
	if !ValidAvatar(text.Text) {
		s.annotation = AvatarError
		return fmt.Errorf("avatar %q: %w", text.Text, ErrInvalidAvatar)
	}

	s.symbol = text.Text
	s.player = s.spawner.NewPlayer(s.name, s.symbol)
	s.logger.Info("player created",
		zap.String("name", s.name),
		zap.String("symbol", s.symbol),
	)

	s.load(LabelInit)
	s.enterWorld(ctx)
	return nil
}

func (s *Session) handleWorld(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case Move:
		return s.move(ctx, c.Dir)
	case ToggleInventory:
		s.setMode(InventoryMode{Return: WorldMode{}})
	case ToggleData:
		s.setMode(DataMode{})
	}
	return nil
}

func (s *Session) move(ctx context.Context, dir world.Direction) error {
	out := s.world.Move(ctx, s.player, &s.roster, dir)
	if out.Wrapped {
		s.logger.Debug("wrapped",
			zap.Int("world_x", out.World.X),
			zap.Int("world_y", out.World.Y),
			zap.Int("enemies", len(s.roster.Enemies)),
			zap.Int("chests", len(s.roster.Chests)),
		)
	}

	switch out.Kind {
	case world.OutcomeEnemy:
		s.logger.Info("enemy encounter", zap.Stringer("enemy", out.Enemy.ID), zap.Int("level", out.Enemy.Level))
		s.startBattle(ctx, out.Enemy)
	case world.OutcomeChest:
		s.logger.Info("chest encounter", zap.Stringer("chest", out.Chest.ID), zap.Int("items", len(out.Chest.Items)))
		s.setMode(ChestMode{Chest: out.Chest})
		if out.Chest.IsEmpty() {
			s.annotation = "The chest is empty"
		}
	case world.OutcomeBoss:
		boss, err := s.spawner.NewBoss(out.Boss)
		if err != nil {
			return fmt.Errorf("boss encounter: %w", err)
		}
		s.logger.Info("boss encounter", zap.String("boss", boss.Name))
		s.startBattle(ctx, boss)
	}
	return nil
}

func (s *Session) handleInventory(ctx context.Context, m InventoryMode, cmd Command) {
	switch c := cmd.(type) {
	case Move:
		dx, dy := c.Dir.Delta()
		loot.Navigate(&s.player.Inventory, dx, dy)
	case UseItem:
		if eff := s.loot.Use(ctx, s.player); eff.Used {
			s.annotation = eff.Message
			s.logger.Debug("item used", zap.String("item", string(eff.Item)), zap.Int("amount", eff.Amount))
		}
	case ToggleInventory, Escape:
		s.setMode(m.Return)
	}
}

func (s *Session) handleChest(ctx context.Context, m ChestMode, cmd Command) {
	switch c := cmd.(type) {
	case Move:
		dx, dy := c.Dir.Delta()
		loot.Navigate(&s.player.Inventory, dx, dy)
	case TakeChestItem:
		item, ok := s.loot.Transfer(ctx, s.player, m.Chest)
		if !ok {
			s.annotation = "The chest is empty"
			return
		}
		s.annotation = "Took " + s.itemName(item)
	case ExitChest, Escape:
		s.setMode(WorldMode{})
	}
}

// =============================================================================
// Sequences
// =============================================================================

// load plays a loading bar from 0 to LoadingSteps.
func (s *Session) load(label string) {
	for i := 0; i <= LoadingSteps; i++ {
		s.setMode(LoadingMode{Label: label, Progress: i})
		s.emit()
	}
}

// enterWorld shows the setup bar, places the entry batch and starts
// exploring.
func (s *Session) enterWorld(ctx context.Context) {
	s.load(LabelSetup)
	s.world.Populate(ctx, &s.roster, s.player.Level, s.cfg.InitialEnemies, s.cfg.InitialChests)
	s.setMode(WorldMode{})
}

// restart replaces the player with a fresh one under the same name and
// avatar and rebuilds the rosters.
func (s *Session) restart(ctx context.Context) {
	s.logger.Info("restart", zap.String("name", s.name), zap.Int("level_reached", s.player.Level))
	s.player = s.spawner.NewPlayer(s.name, s.symbol)
	s.roster.Reset()
	s.enterWorld(ctx)
}

// emit records the current state as an intermediate frame.
func (s *Session) emit() {
	s.frames = append(s.frames, s.Snapshot())
}

// setMode switches modes and clears the annotation.
func (s *Session) setMode(m Mode) {
	if from := s.mode.State(); from != m.State() && m.State() != StateLoading {
		s.logger.Debug("mode", zap.Stringer("from", from), zap.Stringer("to", m.State()))
	}
	s.mode = m
	s.annotation = ""
}

func (s *Session) itemName(kind entity.ItemKind) string {
	if def := s.spawner.Items().GetByCode(string(kind)); def != nil {
		return def.Name
	}
	return string(kind)
}

// ValidAvatar reports whether text is exactly one displayable character.
// Combining sequences and emoji count as one character.
func ValidAvatar(text string) bool {
	if uniseg.GraphemeClusterCount(text) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsGraphic(r) && !unicode.IsSpace(r)
}
