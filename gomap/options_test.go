package gomap

import (
	"errors"
	"testing"
)

func TestParseMaxDepth(t *testing.T) {
	good := map[string]int{"1": 1, "3": 3, " 10 ": 10}
	for in, want := range good {
		got, err := ParseMaxDepth(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %d want %d", in, got, want)
		}
	}
	for _, in := range []string{"0", "11", "-3", "2.5", "three", ""} {
		if _, err := ParseMaxDepth(in); !errors.Is(err, ErrInvalidDepthBound) {
			t.Errorf("%q: expected ErrInvalidDepthBound, got %v", in, err)
		}
	}
}

func TestMapConfigDefaults(t *testing.T) {
	cfg := newMapConfig()
	if cfg.maxDepth != DefaultMaxDepth || cfg.recursionLimit != DefaultRecursionLimit {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	cfg = newMapConfig(MaxDepth(5), RecursionLimit(20))
	if cfg.maxDepth != 5 || cfg.recursionLimit != 20 {
		t.Errorf("options not applied: %+v", cfg)
	}
	cfg = newMapConfig(RecursionLimit(0))
	if cfg.recursionLimit != DefaultRecursionLimit {
		t.Errorf("RecursionLimit(0) = %d", cfg.recursionLimit)
	}
}

func TestMarshalErrorString(t *testing.T) {
	e := &MarshalError{FieldPath: "a.b", Message: "boom", Err: ErrUnsupportedType}
	if e.Error() != "marshal error at a.b: boom" {
		t.Errorf("got %q", e.Error())
	}
	e.FieldPath = ""
	if e.Error() != "marshal error: boom" {
		t.Errorf("got %q", e.Error())
	}
	if !errors.Is(e, ErrUnsupportedType) {
		t.Error("Unwrap lost the sentinel")
	}
}
