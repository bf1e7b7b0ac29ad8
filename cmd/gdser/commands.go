package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, xml/x",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, xml/x",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "gdser").
		WithSynopsis("gdser [opts] command [opts]").
		WithDescription("gdser reads, writes, splits and compares project files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gdserMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			SplitCommand(cfg),
			UnsplitCommand(cfg),
			DiffCommand(cfg),
			VarCommand(cfg),
			LayoutCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view project files, converting between json and xml").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Split, "split").
		WithAliases("s").
		WithSynopsis("split [opts] <project> [dest]").
		WithDescription("write a project with its units in their own files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return split(cfg, cc, args)
		})
}

func UnsplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Split, "unsplit").
		WithAliases("u").
		WithSynopsis("unsplit [opts] <project>").
		WithDescription("reassemble a split project and write it whole").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unsplit(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-merge] a b").
		WithDescription("diff project files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func VarCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VarConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("var").
		WithSynopsis("var [-e expr] [file]").
		WithDescription("read a variable from json and evaluate an expression over it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return varMain(cfg, cc, args)
		})
	cfg.Var = cmd
	return cmd
}

func LayoutCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LayoutConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Layout, "layout").
		WithSynopsis("layout").
		WithDescription("print the layout in effect as yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return layout(cfg, cc, args)
		})
}
