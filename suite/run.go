package suite

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/robdd/bdd"
	"github.com/signadot/robdd/encode"
	"github.com/signadot/robdd/parse"
	"github.com/signadot/robdd/satcheck"
)

// RunOption configures Run.
type RunOption func(*runOpts)

type runOpts struct {
	outDir  string
	noWrite bool
}

// OutDir overrides the suite's output directory.
func OutDir(dir string) RunOption {
	return func(o *runOpts) { o.outDir = dir }
}

// NoWrite skips export files, leaving only the report on w.
func NoWrite() RunOption {
	return func(o *runOpts) { o.noWrite = true }
}

// Run builds every case in order, writing a report to w and one export
// file per requested format under the output directory.  The first
// failing case aborts the run and its error names the case.
func (s *Suite) Run(w io.Writer, opts ...RunOption) error {
	ro := &runOpts{outDir: s.OutDir}
	for _, opt := range opts {
		opt(ro)
	}
	if !ro.noWrite {
		if err := ensureDir(ro.outDir); err != nil {
			return err
		}
	}
	for i := range s.Cases {
		if err := runCase(w, &s.Cases[i], ro); err != nil {
			return fmt.Errorf("case %q: %w", s.Cases[i].Name, err)
		}
	}
	return nil
}

func ensureDir(dir string) error {
	st, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(dir, 0755)
		}
		return err
	}
	if !st.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", dir)
	}
	return nil
}

func runCase(w io.Writer, c *Case, ro *runOpts) error {
	banner := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintf(w, "Test: %s\n", c.Name)
	fmt.Fprintf(w, "Formula: %s\n", c.Formula)
	fmt.Fprintf(w, "Variables: %v\n", c.Vars)
	fmt.Fprintf(w, "%s\n", banner)

	m, err := bdd.New(c.Vars)
	if err != nil {
		return err
	}
	root, err := parse.Parse(m, c.Formula)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  Root node: %d\n", root)
	fmt.Fprintf(w, "  Total nodes: %d\n", m.NodeCount())
	count, err := m.Satcount(root)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  Satisfying assignments: %s\n", count)
	switch root {
	case bdd.True:
		fmt.Fprintln(w, "  Result: TAUTOLOGY (always true)")
	case bdd.False:
		fmt.Fprintln(w, "  Result: CONTRADICTION (always false)")
	}
	if c.Verify {
		if err := verifyCase(m, root); err != nil {
			return err
		}
		fmt.Fprintln(w, "  Verified: solver agrees")
	}
	if ro.noWrite {
		return nil
	}
	base := filepath.Join(ro.outDir, strings.ReplaceAll(c.Name, " ", "_"))
	names := make([]string, 0, len(c.Formats))
	for _, f := range c.Formats {
		fn := base + f.Suffix()
		if err := writeExport(m, root, fn, f); err != nil {
			return err
		}
		names = append(names, fn)
	}
	fmt.Fprintf(w, "  Saved: %s\n", strings.Join(names, ", "))
	return nil
}

func verifyCase(m *bdd.Manager, root bdd.Ref) error {
	sat, err := satcheck.Sat(m, root)
	if err != nil {
		return err
	}
	if sat != (root != bdd.False) {
		return fmt.Errorf("%w: sat=%v with root %d", ErrVerify, sat, root)
	}
	taut, err := satcheck.Tautology(m, root)
	if err != nil {
		return err
	}
	if taut != (root == bdd.True) {
		return fmt.Errorf("%w: tautology=%v with root %d", ErrVerify, taut, root)
	}
	return nil
}

func writeExport(m *bdd.Manager, root bdd.Ref, path string, format encode.Format) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := encode.Encode(m, root, bw, encode.EncodeFormat(format)); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
