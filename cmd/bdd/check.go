package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/scott-cotton/cli"

	"github.com/signadot/robdd/parse"
	"github.com/signadot/robdd/satcheck"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: check takes exactly one formula", cli.ErrUsage)
	}
	m, err := cfg.manager()
	if err != nil {
		return err
	}
	root, err := parse.Parse(m, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	count, err := m.Satcount(root)
	if err != nil {
		return err
	}
	reach, err := m.Reachable(root)
	if err != nil {
		return err
	}
	supp, err := m.Support(root)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cc.Out, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "formula:\t%s\n", args[0])
	fmt.Fprintf(tw, "ordering:\t%v\n", m.Ordering())
	fmt.Fprintf(tw, "root:\t%d\n", root)
	fmt.Fprintf(tw, "nodes:\t%d\n", m.NodeCount())
	fmt.Fprintf(tw, "reachable:\t%d\n", len(reach))
	fmt.Fprintf(tw, "support:\t%v\n", orderedSupport(m.Ordering(), supp))
	fmt.Fprintf(tw, "sat count:\t%s\n", count)
	switch {
	case m.IsTrue(root):
		fmt.Fprintf(tw, "result:\tTAUTOLOGY\n")
	case m.IsFalse(root):
		fmt.Fprintf(tw, "result:\tCONTRADICTION\n")
	default:
		assign, err := m.Anysat(root)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "result:\tSATISFIABLE\n")
		fmt.Fprintf(tw, "witness:\t%s\n", renderAssign(m.Ordering(), assign))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !cfg.Verify {
		return nil
	}
	sat, err := satcheck.Sat(m, root)
	if err != nil {
		return err
	}
	taut, err := satcheck.Tautology(m, root)
	if err != nil {
		return err
	}
	if sat != !m.IsFalse(root) || taut != m.IsTrue(root) {
		return fmt.Errorf("solver disagrees: sat=%v tautology=%v with root %d", sat, taut, root)
	}
	fmt.Fprintf(cc.Out, "verified: solver agrees\n")
	return nil
}

func orderedSupport(ordering []string, supp mapset.Set[string]) []string {
	res := make([]string, 0, supp.Cardinality())
	for _, v := range ordering {
		if supp.Contains(v) {
			res = append(res, v)
		}
	}
	return res
}

func renderAssign(ordering []string, assign map[string]bool) string {
	var parts []string
	for _, v := range ordering {
		val, ok := assign[v]
		if !ok {
			continue
		}
		b := '0'
		if val {
			b = '1'
		}
		parts = append(parts, fmt.Sprintf("%s=%c", v, b))
	}
	if len(parts) == 0 {
		return "(any assignment)"
	}
	return strings.Join(parts, " ")
}
