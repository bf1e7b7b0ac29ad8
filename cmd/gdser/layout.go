package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func layout(cfg *LayoutConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Layout.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: layout takes no args, got %v", cli.ErrUsage, args)
	}
	l, err := cfg.layout()
	if err != nil {
		return err
	}
	d, err := l.Marshal()
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
