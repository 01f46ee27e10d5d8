package ui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/samdwyer/luckybattlefield/internal/game"
)

// Frame pacing for the multi-frame sequences the session emits.
const (
	LoadingDelay    = 40 * time.Millisecond
	ProjectileDelay = 12 * time.Millisecond
)

// App runs the interactive loop: draw, wait for a key, hand the command to
// the session and play back the frames it returns.
type App struct {
	screen   *Screen
	renderer *Renderer
	input    Input
	session  *game.Session
	logger   *zap.Logger
	sleep    func(time.Duration)
}

// NewApp wires a session to a screen.
func NewApp(screen *Screen, session *game.Session, logger *zap.Logger) *App {
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		session:  session,
		logger:   logger,
		sleep:    time.Sleep,
	}
}

// Run executes the main loop until the player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.renderer.Render(a.session.Snapshot(), a.input.Pending())

	// Wake PollEvent when ctx ends.
	stop := context.AfterFunc(ctx, func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for !a.session.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch ev := a.screen.PollEvent().(type) {
		case nil:
			// Screen finalized.
			return nil
		case *tcell.EventResize:
			a.screen.Sync()
			a.renderer.Render(a.session.Snapshot(), a.input.Pending())
		case *tcell.EventKey:
			if err := a.handleKey(ctx, ev); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) error {
	cmd, ok := a.input.Translate(ev, a.session.Mode().State())
	if !ok {
		a.renderer.Render(a.session.Snapshot(), a.input.Pending())
		return nil
	}

	frames, err := a.session.Handle(ctx, cmd)
	if err != nil && !errors.Is(err, game.ErrInvalidAvatar) {
		return err
	}
	if err != nil {
		a.logger.Debug("avatar rejected", zap.Error(err))
	}
	a.play(frames)
	return nil
}

// play draws frames in order, pausing on animated ones.
func (a *App) play(frames []game.Snapshot) {
	for i, f := range frames {
		a.renderer.Render(f, a.input.Pending())
		if i == len(frames)-1 {
			break
		}
		switch {
		case f.State == game.StateLoading:
			a.sleep(LoadingDelay)
		case f.Shot != nil:
			a.sleep(ProjectileDelay)
		}
	}
}
