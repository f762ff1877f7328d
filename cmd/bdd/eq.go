package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/robdd/encode"
	"github.com/signadot/robdd/parse"
	"github.com/signadot/robdd/satcheck"
)

func eq(cfg *EqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eq.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eq takes exactly two formulas", cli.ErrUsage)
	}
	m, err := cfg.manager()
	if err != nil {
		return err
	}
	x, err := parse.Parse(m, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[0], err)
	}
	y, err := parse.Parse(m, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[1], err)
	}
	if cfg.Verify {
		same, err := satcheck.Equivalent(m, x, y)
		if err != nil {
			return err
		}
		if same != (x == y) {
			return fmt.Errorf("solver disagrees: equivalent=%v with refs %d, %d", same, x, y)
		}
	}
	if x == y {
		fmt.Fprintf(cc.Out, "equivalent: %d\n", x)
		return nil
	}
	fmt.Fprintf(cc.Out, "not equivalent: %d vs %d\n", x, y)
	diff, err := m.Xor(x, y)
	if err != nil {
		return err
	}
	assign, err := m.Anysat(diff)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "differs under: %s\n", renderAssign(m.Ordering(), assign))
	if cfg.Diff {
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(
			encode.MustString(m, x, encode.AllNodes(false)),
			encode.MustString(m, y, encode.AllNodes(false)),
			false)
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	}
	return cli.ExitCodeErr(1)
}
