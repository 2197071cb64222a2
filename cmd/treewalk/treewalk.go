package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/viant/treewalk/document"
)

func treewalkMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y, cfg.M) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml] -m[sgpack]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	cfg.log().Debug("running command", "command", args[0], "args", args[1:])
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

// operands parses command options and splits the remaining arguments into
// required operands and an optional document file, "-" or none meaning stdin
func operands(cmd *cli.Command, name string, cc *cli.Context, args []string, required int) ([]string, string, error) {
	args, err := cmd.Parse(cc, args)
	if err != nil {
		cmd.Usage(cc, err)
		return nil, "", cli.ExitCodeErr(1)
	}
	if len(args) < required || len(args) > required+1 {
		return nil, "", fmt.Errorf("%w: %s requires %d argument(s) and an optional file", cli.ErrUsage, name, required)
	}
	file := "-"
	if len(args) > required {
		file = args[required]
	}
	return args[:required], file, nil
}

func (cfg *MainConfig) load(cc *cli.Context, path string) (any, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	format := cfg.inputFormat(path)
	doc, err := decodeInput(r, format)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	cfg.log().Debug("document loaded", "path", path, "format", format)
	return doc, nil
}

func decodeInput(r io.Reader, format document.Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return document.Decode(data, format)
}
