package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdcore/serializer/encode"
	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Element, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// writeObj encodes e to w, ending the output with a newline.
func writeObj(w io.Writer, e *ir.Element, opts ...encode.EncodeOption) error {
	d, err := encode.EncodeBytes(e, opts...)
	if err != nil {
		return err
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}
