package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for options the host cannot run with.
var ErrInvalid = errors.New("invalid options")

// Options are the host-level settings. The scene constants above are fixed
// and deliberately absent here.
type Options struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	FrameDelay time.Duration `yaml:"frameDelay"`
	Sound      bool          `yaml:"sound"`
	Dialogs    bool          `yaml:"dialogs"`
	Debug      bool          `yaml:"debug"`
	LogLevel   string        `yaml:"logLevel"`
}

// Default returns the built-in options.
func Default() Options {
	var o Options
	o.Window.Width = WindowWidth
	o.Window.Height = WindowHeight
	o.Window.Title = WindowTitle
	o.FrameDelay = FrameDelay
	o.Dialogs = true
	o.LogLevel = "info"
	return o
}

// Load reads a YAML file and overlays it on Default. Fields missing from the
// file keep their default values, and an empty file keeps all of them.
// Unknown keys are an error.
func Load(path string) (Options, error) {
	o := Default()

	f, err := os.Open(path)
	if err != nil {
		return o, fmt.Errorf("open options: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return o, fmt.Errorf("decode options %s: %w", path, err)
	}
	return o, o.Validate()
}

// Validate reports whether the options describe a usable window and pacing.
func (o Options) Validate() error {
	if o.Window.Width <= 0 || o.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, o.Window.Width, o.Window.Height)
	}
	if o.FrameDelay < 0 {
		return fmt.Errorf("%w: frame delay %v", ErrInvalid, o.FrameDelay)
	}
	if _, err := ParseLevel(o.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a config log level name to a slog level. An empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, name)
}
