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
			Name:        "vars",
			Aliases:     []string{"v"},
			Description: "comma separated variable ordering, eg -vars a,b,c",
			Type:        cli.NamedFuncOpt(cfg.varsOpt, "(vars)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, dot/d",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "bdd").
		WithSynopsis("bdd [opts] command [opts]").
		WithDescription("bdd builds reduced ordered binary decision diagrams from Boolean formulas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bddMain(cfg, cc, args)
		}).
		WithSubs(
			BuildCommand(cfg),
			CheckCommand(cfg),
			EqCommand(cfg),
			RunCommand(cfg))
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build -vars a,b,c [opts] <formula>").
		WithDescription("build a diagram from a formula and encode it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c", "ch").
		WithSynopsis("check -vars a,b,c [opts] <formula>").
		WithDescription("report tautology, contradiction, satisfying count and support").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func EqCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EqConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Eq, "eq").
		WithSynopsis("eq -vars a,b,c [opts] <formula> <formula>").
		WithDescription("decide whether two formulas denote the same function").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eq(cfg, cc, args)
		})
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Run, "run").
		WithAliases("r").
		WithSynopsis("run [opts] <suite.yaml>").
		WithDescription("run a YAML suite of formulas, writing exports per case").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}
