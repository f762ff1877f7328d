package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/robdd/encode"
	"github.com/signadot/robdd/parse"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: build takes exactly one formula", cli.ErrUsage)
	}
	m, err := cfg.manager()
	if err != nil {
		return err
	}
	root, err := parse.Parse(m, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.AllNodes(!cfg.Reach))
	return encode.Encode(m, root, cc.Out, opts...)
}
