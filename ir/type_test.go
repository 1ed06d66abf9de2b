package ir

import (
	"errors"
	"testing"
)

func TestTagText(t *testing.T) {
	for _, tag := range Tags() {
		d, err := tag.MarshalText()
		if err != nil {
			t.Fatalf("marshal %d: %v", tag, err)
		}
		var got Tag
		if err := got.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if got != tag {
			t.Errorf("%q: got %s want %s", d, got, tag)
		}
	}
}

func TestTagStrings(t *testing.T) {
	want := map[Tag]string{
		StringTag: "S",
		NumberTag: "N",
		BoolTag:   "BOOL",
		MapTag:    "M",
		ListTag:   "L",
	}
	for tag, s := range want {
		if tag.String() != s {
			t.Errorf("%d: got %q want %q", tag, tag.String(), s)
		}
	}
	if Tag(42).String() != "<unknown tag>" {
		t.Errorf("unexpected string for unknown tag: %q", Tag(42).String())
	}
}

func TestTagBad(t *testing.T) {
	var tag Tag
	if err := tag.UnmarshalText([]byte("NS")); !errors.Is(err, ErrBadTag) {
		t.Errorf("expected ErrBadTag, got %v", err)
	}
	if _, err := Tag(-1).MarshalText(); !errors.Is(err, ErrBadTag) {
		t.Errorf("expected ErrBadTag, got %v", err)
	}
}
