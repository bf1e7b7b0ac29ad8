package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdcore/serializer/variable"
	"github.com/gdcore/serializer/varexpr"

	"github.com/scott-cotton/cli"
)

func varMain(cfg *VarConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Var.Parse(cc, args)
	if err != nil {
		return err
	}
	var r io.Reader
	switch len(args) {
	case 0:
		r = cc.In
	case 1:
		if args[0] == "-" {
			r = cc.In
			break
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	default:
		return fmt.Errorf("%w: var takes at most one file, got %v", cli.ErrUsage, args)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	v, err := variable.FromJSON(d)
	if err != nil {
		return err
	}
	if cfg.Expr != "" {
		v, err = varexpr.Eval(cfg.Expr, v)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(cc.Out, variable.ToJSON(v)+"\n")
	return err
}
