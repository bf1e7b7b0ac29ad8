package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdcore/serializer/encode"
	"github.com/gdcore/serializer/format"
	"github.com/gdcore/serializer/parse"
	"github.com/gdcore/serializer/splitfs"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	AnyRoot bool `cli:"name=anyroot desc='accept any xml root element'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	X bool `cli:"name=x aliases=xml desc='do i/o in xml'"`

	LayoutFile string `cli:"name=layout desc='yaml file describing how projects are split'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat returns the format selected with -j or -x.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.J:
		return format.JSONFormat, true
	case cfg.X:
		return format.XMLFormat, true
	}
	return 0, false
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if f, ok := cfg.flagFormat(); ok {
		res = append(res, parse.ParseFormat(f))
	}
	if cfg.InFormat != nil {
		res = append(res, parse.ParseFormat(*cfg.InFormat))
	}
	if cfg.AnyRoot {
		res = append(res, parse.ParseAnyRoot())
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	f, _ := cfg.flagFormat()
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether output to w is colored: -color forces it,
// otherwise terminals are colored.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// layout returns the layout given with -layout, or the default one.  A
// format given with -j, -x or -O overrides the layout format.
func (cfg *MainConfig) layout() (*splitfs.Layout, error) {
	l := splitfs.DefaultLayout()
	if cfg.LayoutFile != "" {
		var err error
		l, err = splitfs.LoadLayout(cfg.LayoutFile)
		if err != nil {
			return nil, err
		}
	}
	if f, ok := cfg.flagFormat(); ok {
		l.Format = f
	}
	if cfg.OutFormat != nil {
		l.Format = *cfg.OutFormat
	}
	return l, nil
}

type ViewConfig struct {
	*MainConfig

	IR     bool `cli:"name=ir desc='dump the element tree'"`
	Indent int  `cli:"name=indent desc='indent json by this many spaces'"`
	View   *cli.Command
}

type SplitConfig struct {
	*MainConfig

	Split *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='output a json merge patch'"`

	Diff *cli.Command
}

type VarConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='expression over the children of the variable'"`

	Var *cli.Command
}

type LayoutConfig struct {
	*MainConfig

	Layout *cli.Command
}
