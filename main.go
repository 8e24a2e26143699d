package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/tri-rot-bouncy/internal/chime"
	"github.com/iburimskiy/tri-rot-bouncy/internal/config"
	"github.com/iburimskiy/tri-rot-bouncy/internal/game"
)

func main() {
	configPath := flag.String("config", "", "YAML options file.")
	sound := flag.Bool("sound", false, "Play a chime when a node settles.")
	debug := flag.Bool("debug", false, "Show the debug overlay.")
	dialogs := flag.Bool("dialogs", true, "Report fatal errors in a dialog.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	delay := flag.Duration("delay", config.FrameDelay, "Delay between animation frames.")
	flag.Parse()

	log := newLogger(slog.LevelInfo)

	opts := config.Default()
	if *configPath != "" {
		var err error
		if opts, err = config.Load(*configPath); err != nil {
			fatal(opts, log, err)
		}
	}

	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sound":
			opts.Sound = *sound
		case "debug":
			opts.Debug = *debug
		case "dialogs":
			opts.Dialogs = *dialogs
		case "log-level":
			opts.LogLevel = *logLevel
		case "delay":
			opts.FrameDelay = *delay
		}
	})
	if err := opts.Validate(); err != nil {
		fatal(opts, log, err)
	}

	level, _ := config.ParseLevel(opts.LogLevel)
	log = newLogger(level)
	log.Debug("options", "options", opts)

	g := game.NewGame(opts, log)
	if opts.Sound {
		p := chime.NewPlayer(log)
		if err := p.Init(); err != nil {
			log.Warn("sound disabled", "err", err)
		} else {
			g.Scene().OnSettle(p.Settled)
		}
	}

	ebiten.SetWindowSize(opts.Window.Width, opts.Window.Height)
	ebiten.SetWindowTitle(opts.Window.Title)

	start := time.Now()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(opts, log, err)
	}
	log.Info("bye", "uptime", time.Since(start).Round(time.Second))
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func fatal(opts config.Options, log *slog.Logger, err error) {
	log.Error("fatal", "err", err)
	if opts.Dialogs {
		if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle)); derr != nil {
			log.Debug("error dialog", "err", derr)
		}
	}
	os.Exit(1)
}
