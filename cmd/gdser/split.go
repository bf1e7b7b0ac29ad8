package main

import (
	"fmt"

	"github.com/gdcore/serializer/splitfs"
	"github.com/gdcore/serializer/splitter"

	"github.com/scott-cotton/cli"
)

func split(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: split requires a project and an optional destination, got %v", cli.ErrUsage, args)
	}
	src, dst := args[0], args[0]
	if len(args) == 2 {
		dst = args[1]
	}
	root, err := getObjFile(cc, src, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", src, err)
	}
	layout, err := cfg.layout()
	if err != nil {
		return err
	}
	layout.Split = true
	if err := splitfs.Save(dst, root, layout, theLog); err != nil {
		return err
	}
	theLog.Info("split project", "file", dst, "patterns", layout.Patterns)
	return nil
}

func unsplit(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: unsplit requires a project, got %v", cli.ErrUsage, args)
	}
	layout, err := cfg.layout()
	if err != nil {
		return err
	}
	root, err := splitfs.Load(args[0], layout, theLog)
	if root == nil {
		return err
	}
	if les := splitter.LoadErrors(err); len(les) != 0 {
		theLog.Warn("some units could not be loaded", "count", len(les))
	} else if err != nil {
		return err
	}
	return writeObj(cc.Out, root, cfg.encOpts(cc.Out)...)
}
