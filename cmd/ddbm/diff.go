package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/ddbitem/encode"
	"github.com/signadot/ddbitem/gomap"
	"github.com/signadot/ddbitem/libdiff"

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
	from, err := renderFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := renderFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	lines := libdiff.Lines(from, to)
	if !libdiff.Changed(lines) {
		return nil
	}
	if err := writeLines(cc.Out, lines, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// renderFile renders the items of path without color, for diffing.
func renderFile(cfg *MainConfig, cc *cli.Context, path string) (string, error) {
	opts := cfg.plainOpts()
	buf := bytes.NewBuffer(nil)
	n := 0
	err := marshalFile(cfg, cc, path, func(_ int, m *gomap.Marshaller) error {
		if err := writeSep(buf, n, opts...); err != nil {
			return err
		}
		n++
		return encode.Encode(m.Item(), buf, opts...)
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeLines(w io.Writer, lines []libdiff.Line, colors bool) error {
	if !colors {
		_, err := io.WriteString(w, libdiff.Format(lines))
		return err
	}
	for _, ln := range lines {
		s := ln.Op.Prefix() + ln.Text
		switch ln.Op {
		case libdiff.Insert:
			s = color.GreenString("%s", s)
		case libdiff.Delete:
			s = color.RedString("%s", s)
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}
