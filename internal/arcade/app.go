package arcade

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/arcade-classics/internal/config"
	"golang.org/x/sync/errgroup"
)

type App struct {
	log      *logrus.Logger
	cfg      *config.Config
	screen   tcell.Screen
	rnd      *rand.Rand
	registry *Registry
}

// New wires an app to an initialized screen. Start finalizes the screen
// when it returns.
func New(log *logrus.Logger, cfg *config.Config, screen tcell.Screen, rnd *rand.Rand, registry *Registry) *App {
	return &App{
		log:      log,
		cfg:      cfg,
		screen:   screen,
		rnd:      rnd,
		registry: registry,
	}
}

// Start runs the launcher until the user quits or ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	shell := NewShell(&Context{
		Screen: a.screen,
		Log:    a.log,
		Rand:   a.rnd,
		Config: a.cfg,
	}, a.registry)

	loopCtx, stop := context.WithCancel(ctx)
	defer stop()

	events := make(chan tcell.Event, 16)
	g, gCtx := errgroup.WithContext(loopCtx)
	g.Go(func() error {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gCtx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer a.screen.Fini()
		defer stop()
		return a.loop(gCtx, shell, events)
	})

	a.log.WithField("tick_rate", a.cfg.TickRate).Info("arcade started")
	err := g.Wait()
	a.log.Info("arcade stopped")
	return err
}

func (a *App) loop(ctx context.Context, shell *Shell, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TickRate))
	defer ticker.Stop()

	shell.Draw()
	a.screen.Show()
	for !shell.Done() {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				a.screen.Sync()
				continue
			}
			shell.HandleEvent(ev)
		case <-ticker.C:
			shell.Tick()
			shell.Draw()
			a.screen.Show()
		}
	}
	return nil
}
