package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
	}
	if _, err := Format(7).MarshalText(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"item.json":     JSONFormat,
		"item.yaml":     YAMLFormat,
		"dir/item.yml":  YAMLFormat,
		"noext":         JSONFormat,
		"dir.yaml/item": JSONFormat,
		"item.jsonc":    JSONFormat,
		"-":             JSONFormat,
	}
	for in, want := range tests {
		if got := FromPath(in); got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if YAMLFormat.Suffix() != ".yaml" || JSONFormat.Suffix() != ".json" {
		t.Error("unexpected suffixes")
	}
}
