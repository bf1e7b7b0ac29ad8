package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gdcore/serializer/encode"
	"github.com/gdcore/serializer/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		e, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := viewElement(cfg, cc.Out, e); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func viewElement(cfg *ViewConfig, w io.Writer, e *ir.Element) error {
	if cfg.IR {
		d, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	}
	opts := cfg.encOpts(w)
	if cfg.Indent > 0 {
		opts = append(opts, encode.EncodeIndent(cfg.Indent))
	}
	return writeObj(w, e, opts...)
}
