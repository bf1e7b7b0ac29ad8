package main

import (
	"fmt"
	"io"

	"github.com/gdcore/serializer/encode"
	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Element) (bool, error) {
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.Merge {
		p, err := libdiff.MergePatch(a, b)
		if err != nil {
			return false, err
		}
		_, err = w.Write(append(p, '\n'))
		return true, err
	}
	paint := map[libdiff.ChangeKind]func(string, ...any) string{
		libdiff.Added:    fmt.Sprintf,
		libdiff.Removed:  fmt.Sprintf,
		libdiff.Modified: fmt.Sprintf,
	}
	if cfg.colored(w) {
		paint[libdiff.Added] = color.New(color.FgGreen).Sprintf
		paint[libdiff.Removed] = color.New(color.FgRed).Sprintf
		paint[libdiff.Modified] = color.New(color.FgYellow).Sprintf
	}
	for _, c := range changes {
		line := paint[c.Kind]("%-8s %s", c.Kind, c.Path)
		switch {
		case c.Text != "":
			line += ": " + c.Text
		case c.From != nil && c.To != nil:
			line += ": " + encode.MustString(c.From) + " -> " + encode.MustString(c.To)
		case c.From != nil:
			line += ": " + encode.MustString(c.From)
		case c.To != nil:
			line += ": " + encode.MustString(c.To)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return false, err
		}
	}
	return true, nil
}
