package main

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vancomm/arcade-classics/internal/arcade"
	"github.com/vancomm/arcade-classics/internal/config"
	"github.com/vancomm/arcade-classics/internal/logging"
	"github.com/vancomm/arcade-classics/internal/mines"
)

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// applyQuery overrides the minesweeper settings with a query string such
// as width=16&height=16&mine_count=40&rule=through-flags.
func applyQuery(cfg *config.Config, query string) error {
	values, err := url.ParseQuery(query)
	if err != nil {
		return fmt.Errorf("unable to parse minesweeper params: %w", err)
	}
	defaults, err := cfg.Minesweeper.GameParams()
	if err != nil {
		return err
	}
	p, err := mines.ParseGameParams(values, defaults)
	if err != nil {
		return err
	}
	cfg.Minesweeper = config.Minesweeper{
		Width:     p.Width,
		Height:    p.Height,
		MineCount: p.MineCount,
		Rule:      p.Rule.String(),
	}
	return nil
}

func main() {
	flags := config.NewFlagSet(os.Args[0])
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [minesweeper params]\n", os.Args[0])
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	// the screen owns the terminal, so startup errors go to stderr and
	// everything after that to the log file
	cfg, err := config.Load(flags)
	if err != nil {
		logrus.Fatal("unable to load config: ", err)
	}
	if query := flags.Arg(0); query != "" {
		if err := applyQuery(cfg, query); err != nil {
			logrus.Fatal(err)
		}
	}

	log, err := logging.New(cfg)
	if err != nil {
		logrus.Fatal("unable to set up logging: ", err)
	}
	log.Info("starting up")
	log.WithFields(cfg.Fields()).Debug("config")

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal("unable to create screen: ", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal("unable to initialize screen: ", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	app := arcade.New(log, cfg, screen, createRand(cfg.Seed), arcade.Games())
	if err := app.Start(mainCtx); err != nil {
		log.Error("exit reason: ", err)
		stop()
		os.Exit(1)
	}
}
