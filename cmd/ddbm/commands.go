package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default from file suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "depth",
			Description: "maximum nesting levels of any top-level key, 1 to 10 (default 3)",
			Type:        cli.NamedFuncOpt(cfg.depthOpt, "(levels)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ddbm").
		WithSynopsis("ddbm [opts] command [opts]").
		WithDescription("ddbm converts json and yaml documents to DynamoDB items.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ddbmMain(cfg, cc, args)
		}).
		WithSubs(
			MarshalCommand(cfg),
			LevelsCommand(cfg),
			DiffCommand(cfg))
}

func MarshalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MarshalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("marshal").
		WithAliases("m").
		WithOpts(opts...).
		WithSynopsis("marshal [opts] [files]").
		WithDescription("marshal documents to DynamoDB items").
		WithRun(func(cc *cli.Context, args []string) error {
			return marshal(cfg, cc, args)
		})
	cfg.Marshal = cmd
	return cmd
}

func LevelsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LevelsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Levels, "levels").
		WithAliases("l").
		WithSynopsis("levels [files]").
		WithDescription("show the nesting levels used by each top-level key, deepest first").
		WithRun(func(cc *cli.Context, args []string) error {
			return levels(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("diff the DynamoDB items of two documents, exiting 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
