package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/viant/treewalk/document"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='read json input'"`
	Y     bool `cli:"name=y aliases=yaml desc='read yaml input'"`
	M     bool `cli:"name=m aliases=msgpack desc='read msgpack input'"`
	Color bool `cli:"name=color desc='colour output'"`
	V     bool `cli:"name=v desc='log debug messages to stderr'"`

	Main *cli.Command

	logger *slog.Logger
}

// inputFormat returns format selected by flags, then by file extension; YAML reads JSON too
func (cfg *MainConfig) inputFormat(path string) document.Format {
	switch {
	case cfg.M:
		return document.Msgpack
	case cfg.J:
		return document.JSON
	case cfg.Y:
		return document.YAML
	}
	if path != "" && path != "-" {
		if format, err := document.FormatOf(path); err == nil {
			return format
		}
	}
	return document.YAML
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) log() *slog.Logger {
	if cfg.logger == nil {
		cfg.logger = newLogger(cfg.V, os.Stderr)
	}
	return cfg.logger
}

func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type ExtractConfig struct {
	*MainConfig
	R bool `cli:"name=r desc='recurse into nested composites'"`

	Command *cli.Command
}

type DocConfig struct {
	*MainConfig

	Command *cli.Command
}

type SearchConfig struct {
	*MainConfig
	All bool   `cli:"name=all desc='report every match instead of the first'"`
	Key string `cli:"name=key desc='match only properties with this key'"`

	Command *cli.Command
}

type MatchConfig struct {
	*MainConfig

	Command *cli.Command
}
