package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/viant/treewalk"
	"github.com/viant/treewalk/access"
	"github.com/viant/treewalk/conv"
	"github.com/viant/treewalk/document"
)

func keys(cfg *ExtractConfig, cc *cli.Context, args []string) error {
	_, file, err := operands(cfg.Command, "keys", cc, args, 0)
	if err != nil {
		return err
	}
	doc, err := cfg.load(cc, file)
	if err != nil {
		return err
	}
	result, err := treewalk.Keys(doc, cfg.R)
	if err != nil {
		return err
	}
	return newPrinter(cc.Out, cfg.colorize(cc.Out)).printValue(result)
}

func values(cfg *ExtractConfig, cc *cli.Context, args []string) error {
	_, file, err := operands(cfg.Command, "values", cc, args, 0)
	if err != nil {
		return err
	}
	doc, err := cfg.load(cc, file)
	if err != nil {
		return err
	}
	result, err := treewalk.Values(doc, cfg.R)
	if err != nil {
		return err
	}
	return newPrinter(cc.Out, cfg.colorize(cc.Out)).printValue(result)
}

func flat(cfg *DocConfig, cc *cli.Context, args []string) error {
	doc, err := cfg.document(cc, args, "flat")
	if err != nil {
		return err
	}
	result, err := treewalk.Flatten(doc)
	if err != nil {
		return err
	}
	return newPrinter(cc.Out, cfg.colorize(cc.Out)).printValue(result)
}

func highest(cfg *DocConfig, cc *cli.Context, args []string) error {
	doc, err := cfg.document(cc, args, "highest")
	if err != nil {
		return err
	}
	result, err := treewalk.Highest(doc)
	if err != nil {
		return err
	}
	return newPrinter(cc.Out, cfg.colorize(cc.Out)).printText(conv.FormatNumber(result))
}

func lowest(cfg *DocConfig, cc *cli.Context, args []string) error {
	doc, err := cfg.document(cc, args, "lowest")
	if err != nil {
		return err
	}
	result, err := treewalk.Lowest(doc)
	if err != nil {
		return err
	}
	return newPrinter(cc.Out, cfg.colorize(cc.Out)).printText(conv.FormatNumber(result))
}

func typeOf(cfg *DocConfig, cc *cli.Context, args []string) error {
	doc, err := cfg.document(cc, args, "type")
	if err != nil {
		return err
	}
	return newPrinter(cc.Out, cfg.colorize(cc.Out)).printText(access.TypeOf(doc))
}

func (cfg *DocConfig) document(cc *cli.Context, args []string, name string) (any, error) {
	_, file, err := operands(cfg.Command, name, cc, args, 0)
	if err != nil {
		return nil, err
	}
	return cfg.load(cc, file)
}

func path(cfg *SearchConfig, cc *cli.Context, args []string) error {
	value, doc, err := cfg.operands(cc, args, "path")
	if err != nil {
		return err
	}
	p := newPrinter(cc.Out, cfg.colorize(cc.Out))
	var opts []treewalk.Option
	if cfg.Key != "" {
		opts = append(opts, treewalk.WithKey(cfg.Key))
	}
	if !cfg.All {
		opts = append(opts, treewalk.WithLimit(1))
	}
	matches, err := treewalk.Find(doc, value, opts...)
	if err != nil {
		return cfg.searchErr(err, value)
	}
	for _, match := range matches {
		if err := p.printPaths(match.Path.String()); err != nil {
			return err
		}
	}
	return nil
}

func ref(cfg *SearchConfig, cc *cli.Context, args []string) error {
	value, doc, err := cfg.operands(cc, args, "ref")
	if err != nil {
		return err
	}
	p := newPrinter(cc.Out, cfg.colorize(cc.Out))
	if !cfg.All {
		holder, err := treewalk.RefByPair(doc, cfg.Key, value)
		if err != nil {
			return cfg.searchErr(err, value)
		}
		return p.printValue(holder)
	}
	holders, err := treewalk.RefsByPair(doc, cfg.Key, value)
	if err != nil {
		return cfg.searchErr(err, value)
	}
	return p.printValue(holders)
}

func (cfg *SearchConfig) operands(cc *cli.Context, args []string, name string) (any, any, error) {
	values, file, err := operands(cfg.Command, name, cc, args, 1)
	if err != nil {
		return nil, nil, err
	}
	doc, err := cfg.load(cc, file)
	if err != nil {
		return nil, nil, err
	}
	return document.DecodeScalar(values[0]), doc, nil
}

func (cfg *SearchConfig) searchErr(err error, value any) error {
	if errors.Is(err, treewalk.ErrNotFound) {
		cfg.log().Debug("no match", "key", cfg.Key, "value", value)
		return cli.ExitCodeErr(1)
	}
	return fmt.Errorf("search for %v: %w", value, err)
}

func selectPaths(cfg *MatchConfig, cc *cli.Context, args []string) error {
	pattern, doc, err := cfg.operands(cc, args, "select")
	if err != nil {
		return err
	}
	paths, err := treewalk.Select(doc, pattern)
	if err != nil {
		return err
	}
	return newPrinter(cc.Out, cfg.colorize(cc.Out)).printPaths(paths...)
}

func filter(cfg *MatchConfig, cc *cli.Context, args []string) error {
	expression, doc, err := cfg.operands(cc, args, "filter")
	if err != nil {
		return err
	}
	paths, err := treewalk.Filter(doc, expression)
	if err != nil {
		return err
	}
	return newPrinter(cc.Out, cfg.colorize(cc.Out)).printPaths(paths...)
}

func (cfg *MatchConfig) operands(cc *cli.Context, args []string, name string) (string, any, error) {
	values, file, err := operands(cfg.Command, name, cc, args, 1)
	if err != nil {
		return "", nil, err
	}
	doc, err := cfg.load(cc, file)
	if err != nil {
		return "", nil, err
	}
	return values[0], doc, nil
}
