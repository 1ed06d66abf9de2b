package main

import (
	"github.com/signadot/ddbitem/encode"
	"github.com/signadot/ddbitem/gomap"

	"github.com/scott-cotton/cli"
)

func levels(cfg *LevelsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Levels.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	n := 0
	for _, file := range inputs(args) {
		err := marshalFile(cfg.MainConfig, cc, file, func(_ int, m *gomap.Marshaller) error {
			if err := writeSep(cc.Out, n, opts...); err != nil {
				return err
			}
			n++
			return encode.EncodeLevels(m.AttributeLevels(), cc.Out, opts...)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
