package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/robdd/suite"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: run takes exactly one suite file", cli.ErrUsage)
	}
	s, err := suite.Load(args[0])
	if err != nil {
		return err
	}
	var ropts []suite.RunOption
	if cfg.OutDir != "" {
		ropts = append(ropts, suite.OutDir(cfg.OutDir))
	}
	if cfg.NoWrite {
		ropts = append(ropts, suite.NoWrite())
	}
	return s.Run(cc.Out, ropts...)
}
