package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "treewalk").
		WithSynopsis("treewalk [-j|-y|-m] [-color] [-v] command [opts] [args] [file]").
		WithDescription("treewalk inspects nested json, yaml and msgpack documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return treewalkMain(cfg, cc, args)
		}).
		WithSubs(
			KeysCommand(cfg),
			ValuesCommand(cfg),
			FlatCommand(cfg),
			HighestCommand(cfg),
			LowestCommand(cfg),
			PathCommand(cfg),
			RefCommand(cfg),
			SelectCommand(cfg),
			FilterCommand(cfg),
			TypeCommand(cfg))
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExtractConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "keys").
		WithAliases("k").
		WithSynopsis("keys [-r] [file]").
		WithDescription("list top level keys, or every key with -r").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func ValuesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExtractConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "values").
		WithAliases("v", "vals").
		WithSynopsis("values [-r] [file]").
		WithDescription("list top level values, or every leaf value with -r").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return values(cfg, cc, args)
		})
}

func FlatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DocConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "flat").
		WithAliases("f").
		WithSynopsis("flat [file]").
		WithDescription("flatten every property at every depth into one object, later keys win").
		WithRun(func(cc *cli.Context, args []string) error {
			return flat(cfg, cc, args)
		})
}

func HighestCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DocConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "highest").
		WithAliases("max").
		WithSynopsis("highest [file]").
		WithDescription("print the highest number at any depth").
		WithRun(func(cc *cli.Context, args []string) error {
			return highest(cfg, cc, args)
		})
}

func LowestCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DocConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "lowest").
		WithAliases("min").
		WithSynopsis("lowest [file]").
		WithDescription("print the lowest number at any depth").
		WithRun(func(cc *cli.Context, args []string) error {
			return lowest(cfg, cc, args)
		})
}

func PathCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SearchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "path").
		WithAliases("p").
		WithSynopsis("path [-all] [-key k] <value> [file]").
		WithDescription("print dot paths of properties loosely equal to value").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return path(cfg, cc, args)
		})
}

func RefCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SearchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "ref").
		WithAliases("r").
		WithSynopsis("ref [-all] [-key k] <value> [file]").
		WithDescription("print composites holding properties loosely equal to value").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ref(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "select").
		WithAliases("s", "sel").
		WithSynopsis("select <glob> [file]").
		WithDescription("print dot paths matching a glob, * matches one key and ** any depth").
		WithRun(func(cc *cli.Context, args []string) error {
			return selectPaths(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "filter").
		WithAliases("w", "where").
		WithSynopsis("filter <expr> [file]").
		WithDescription(filterDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

const filterDescription = `print dot paths of properties for which a boolean expression holds.

The expression sees the following variables:

  key      property key
  value    property value
  path     dot path of the property
  depth    number of keys in path
  leaf     true when value is not descended into
  number   numeric value, 0 for non numbers
  numeric  true when value is a number

Example: filter 'numeric && number > 10 && path startsWith "items."'`

func TypeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DocConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "type").
		WithAliases("t").
		WithSynopsis("type [file]").
		WithDescription("print the type name of the document root").
		WithRun(func(cc *cli.Context, args []string) error {
			return typeOf(cfg, cc, args)
		})
}
