package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/ddbitem/format"
	"github.com/signadot/ddbitem/gomap"

	"github.com/scott-cotton/cli"
)

// readDocs reads path, or stdin for "-". YAML input is split into its
// documents; JSON input is a single document.
func readDocs(cc *cli.Context, path string, fmat format.Format) ([][]byte, error) {
	var r io.Reader
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
	if !fmat.IsYAML() {
		return [][]byte{d}, nil
	}
	return splitDocs(d), nil
}

// splitDocs splits a YAML stream at "---" lines. Text after the marker,
// such as a comment, stays with the document it starts. Empty documents
// are dropped.
func splitDocs(d []byte) [][]byte {
	var (
		res [][]byte
		cur []byte
	)
	flush := func() {
		if len(bytes.TrimSpace(cur)) != 0 {
			res = append(res, cur)
		}
		cur = nil
	}
	for len(d) > 0 {
		line := d
		if i := bytes.IndexByte(d, '\n'); i >= 0 {
			line = d[:i+1]
		}
		d = d[len(line):]
		if rest, ok := docStart(line); ok {
			flush()
			cur = append(cur, rest...)
			continue
		}
		cur = append(cur, line...)
	}
	flush()
	return res
}

// docStart reports whether line is a document marker, returning the text
// after the marker.
func docStart(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimRight(line, "\r\n")
	if !bytes.HasPrefix(trimmed, []byte("---")) {
		return nil, false
	}
	rest := trimmed[3:]
	if len(rest) == 0 {
		return nil, true
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return nil, false
	}
	return line[4:], true
}

// marshalFile marshals each document of path, calling f with the index of
// the document and the result.
func marshalFile(cfg *MainConfig, cc *cli.Context, path string, f func(int, *gomap.Marshaller) error) error {
	docs, err := readDocs(cc, path, cfg.inFormat(path))
	if err != nil {
		return err
	}
	tool, err := cfg.tool(path)
	if err != nil {
		return err
	}
	for i, doc := range docs {
		m, err := tool.Run(doc)
		if err != nil {
			return fmt.Errorf("error marshalling %s document %d: %w", path, i, err)
		}
		if err := f(i, m); err != nil {
			return err
		}
	}
	return nil
}

// inputs returns the files named by args, or stdin.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
