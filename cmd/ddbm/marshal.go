package main

import (
	"io"

	"github.com/signadot/ddbitem/encode"
	"github.com/signadot/ddbitem/gomap"

	"github.com/scott-cotton/cli"
)

func marshal(cfg *MarshalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Marshal.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	n := 0
	for _, file := range inputs(args) {
		err := marshalFile(cfg.MainConfig, cc, file, func(_ int, m *gomap.Marshaller) error {
			if cfg.Quiet {
				return nil
			}
			if err := writeSep(cc.Out, n, opts...); err != nil {
				return err
			}
			n++
			return encode.Encode(m.Item(), cc.Out, opts...)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// writeSep separates the i'th yaml document from the previous one. JSON
// output is one item after another.
func writeSep(w io.Writer, i int, opts ...encode.EncodeOption) error {
	if i == 0 || !encode.FormatFromOpts(opts...).IsYAML() {
		return nil
	}
	_, err := io.WriteString(w, "---\n")
	return err
}
