package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ddbitem/encode"
	"github.com/signadot/ddbitem/format"
	"github.com/signadot/ddbitem/gomap"
	"github.com/signadot/ddbitem/ir"
	"github.com/signadot/ddbitem/libdiff"

	"github.com/scott-cotton/cli"
)

func TestSplitDocs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"{}", []string{"{}"}},
		{"a: 1\n---\nb: 2\n", []string{"a: 1\n", "b: 2\n"}},
		{"---\na: 1\n---\n\n---\nb: 2", []string{"a: 1\n", "b: 2"}},
		{"a: 1\r\n---\r\nb: 2\r\n", []string{"a: 1\r\n", "b: 2\r\n"}},
		{"--- # first\na: 1\n---\t# second\nb: 2\n", []string{"# first\na: 1\n", "# second\nb: 2\n"}},
		{"a: ----\nb: |\n  ---\n", []string{"a: ----\nb: |\n  ---\n"}},
		{"", []string{}},
	}
	for _, tc := range tests {
		docs := splitDocs([]byte(tc.in))
		got := make([]string, len(docs))
		for i, d := range docs {
			got[i] = string(d)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestReadDocsSplitsOnlyYAML(t *testing.T) {
	dir := t.TempDir()
	in := []byte("{\"a\": 1}\n---\n{\"b\": 2}\n")
	for name, want := range map[string]int{"doc.json": 1, "doc.yaml": 2} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, in, 0644); err != nil {
			t.Fatal(err)
		}
		docs, err := readDocs(nil, p, (&MainConfig{}).inFormat(p))
		if err != nil {
			t.Fatal(err)
		}
		if len(docs) != want {
			t.Errorf("%s: got %d documents, want %d", name, len(docs), want)
		}
	}
}

func TestPlainOptsIndent(t *testing.T) {
	m := ir.NewMap().Append("a", ir.FromBool(true))
	got := encode.MustString(m, (&MainConfig{Indent: 4}).plainOpts()...)
	if got != "{\n    \"a\": {\n        \"BOOL\": true\n    }\n}" {
		t.Errorf("got %q", got)
	}
	got = encode.MustString(m, (&MainConfig{WireOut: true}).plainOpts()...)
	if got != `{"a":{"BOOL":true}}` {
		t.Errorf("got %q", got)
	}
}

func TestInputs(t *testing.T) {
	if diff := cmp.Diff([]string{"-"}, inputs(nil)); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, inputs([]string{"a", "b"})); diff != "" {
		t.Error(diff)
	}
}

func TestFormats(t *testing.T) {
	yaml := format.YAMLFormat
	tests := []struct {
		name string
		cfg  *MainConfig
		path string
		in   format.Format
		out  format.Format
	}{
		{"default", &MainConfig{}, "x.json", format.JSONFormat, format.JSONFormat},
		{"suffix", &MainConfig{}, "x.yml", format.YAMLFormat, format.JSONFormat},
		{"stdin", &MainConfig{}, "-", format.JSONFormat, format.JSONFormat},
		{"y", &MainConfig{Y: true}, "x.json", format.YAMLFormat, format.YAMLFormat},
		{"j", &MainConfig{J: true}, "x.yaml", format.JSONFormat, format.JSONFormat},
		{"I", &MainConfig{J: true, InFormat: &yaml}, "x.json", format.YAMLFormat, format.JSONFormat},
		{"O", &MainConfig{OutFormat: &yaml}, "x.json", format.JSONFormat, format.YAMLFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.inFormat(tc.path); got != tc.in {
				t.Errorf("in: got %s want %s", got, tc.in)
			}
			if got := tc.cfg.outFormat(); got != tc.out {
				t.Errorf("out: got %s want %s", got, tc.out)
			}
		})
	}
}

func TestDepthOpt(t *testing.T) {
	cfg := &MainConfig{}
	if _, err := cfg.depthOpt(nil, "5"); err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 5 || len(cfg.mapOpts()) != 1 {
		t.Errorf("depth not recorded: %d", cfg.MaxDepth)
	}
	for _, a := range []string{"0", "11", "three", ""} {
		_, err := cfg.depthOpt(nil, a)
		if !errors.Is(err, cli.ErrUsage) || !errors.Is(err, gomap.ErrInvalidDepthBound) {
			t.Errorf("%q: got %v", a, err)
		}
	}
	if len((&MainConfig{}).mapOpts()) != 0 {
		t.Error("no depth option should give no map options")
	}
}

func TestToolPatchFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "patch.json")
	if err := os.WriteFile(p, []byte(`[{"op":"add","path":"/b","value":{"c":1}}]`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{PatchFile: p, MaxDepth: 1}
	tool, err := cfg.tool("x.json")
	if err != nil {
		t.Fatal(err)
	}
	m, err := tool.Run([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []gomap.Level{{Key: "b", Depth: 1}, {Key: "a", Depth: 0}}
	if diff := cmp.Diff(want, m.AttributeLevels()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	cfg.PatchFile = filepath.Join(t.TempDir(), "missing.json")
	if _, err := cfg.tool("x.json"); err == nil {
		t.Error("expected error for missing patch file")
	}
}

func TestWriteSep(t *testing.T) {
	yaml := format.YAMLFormat
	buf := bytes.NewBuffer(nil)
	for i := 0; i < 3; i++ {
		writeSep(buf, i, (&MainConfig{OutFormat: &yaml}).plainOpts()...)
		writeSep(buf, i, (&MainConfig{}).plainOpts()...)
	}
	if buf.String() != "---\n---\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteLines(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	lines := []libdiff.Line{{Op: libdiff.Equal, Text: "{"}, {Op: libdiff.Delete, Text: "a"}, {Op: libdiff.Insert, Text: "b"}}
	if err := writeLines(buf, lines, false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != " {\n-a\n+b\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestCount(t *testing.T) {
	if count(true, false, true) != 2 || count() != 0 {
		t.Error("bad count")
	}
}
