package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/signadot/robdd/bdd"
	"github.com/signadot/robdd/encode"
	"github.com/signadot/robdd/parse"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='color text listings'"`
	Strict bool `cli:"name=strict desc='reject unknown characters in formulas'"`

	Vars      []string
	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) varsOpt(cc *cli.Context, a string) (any, error) {
	vs := strings.Split(a, ",")
	for i := range vs {
		vs[i] = strings.TrimSpace(vs[i])
	}
	cfg.Vars = vs
	return vs, nil
}

func (cfg *MainConfig) fmtFunc(fp **encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) manager() (*bdd.Manager, error) {
	if len(cfg.Vars) == 0 {
		return nil, fmt.Errorf("%w: -vars is required", cli.ErrUsage)
	}
	return bdd.New(cfg.Vars)
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Strict {
		return []parse.ParseOption{parse.Strict()}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.OutFormat != nil {
		res = append(res, encode.EncodeFormat(*cfg.OutFormat))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type BuildConfig struct {
	*MainConfig
	Reach bool `cli:"name=reach desc='list only nodes reachable from the root'"`

	Build *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Verify bool `cli:"name=verify desc='cross-check answers with the SAT solver'"`

	Check *cli.Command
}

type EqConfig struct {
	*MainConfig
	Diff   bool `cli:"name=d aliases=diff desc='show a diff of the text listings'"`
	Verify bool `cli:"name=verify desc='cross-check answers with the SAT solver'"`

	Eq *cli.Command
}

type RunConfig struct {
	*MainConfig
	OutDir  string `cli:"name=outdir desc='override the suite output directory'"`
	NoWrite bool   `cli:"name=n aliases=dry desc='report only, write no export files'"`

	Run *cli.Command
}
