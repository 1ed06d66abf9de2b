package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ddbitem"
	"github.com/signadot/ddbitem/encode"
	"github.com/signadot/ddbitem/format"
	"github.com/signadot/ddbitem/gomap"
	"github.com/signadot/ddbitem/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output json in compact wire format'"`
	Indent  int  `cli:"name=indent desc='spaces per json nesting level (default 2)'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	PatchFile string `cli:"name=patch desc='json patch file applied to each document before marshalling'"`

	InFormat, OutFormat *format.Format
	MaxDepth            int

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

// inFormat returns the format for reading path. Without a format option
// it is taken from the file suffix.
func (cfg *MainConfig) inFormat(path string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	case path == "-":
		return format.JSONFormat
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Y {
		return format.YAMLFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(path))}
}

func (cfg *MainConfig) mapOpts() []gomap.MapOption {
	if cfg.MaxDepth == 0 {
		return nil
	}
	return []gomap.MapOption{gomap.MaxDepth(cfg.MaxDepth)}
}

// tool returns the pipeline for reading path.
func (cfg *MainConfig) tool(path string) (*ddbitem.Tool, error) {
	t := &ddbitem.Tool{
		ParseOptions: cfg.parseOpts(path),
		MapOptions:   cfg.mapOpts(),
	}
	if cfg.PatchFile == "" {
		return t, nil
	}
	d, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return nil, fmt.Errorf("error reading patch: %w", err)
	}
	t.Patch = d
	return t, nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
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

// plainOpts are the encode options without colors.
func (cfg *MainConfig) plainOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.plainOpts()
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type MarshalConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only check that documents marshal'"`

	Marshal *cli.Command
}

type LevelsConfig struct {
	*MainConfig

	Levels *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
