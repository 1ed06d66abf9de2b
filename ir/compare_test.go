package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqual(t *testing.T) {
	sample := func() *Value {
		return FromMap(NewMap().
			Append("s", FromString("s")).
			Append("l", FromList(FromNumber("1"), FromBool(false))))
	}
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{name: "same", a: sample(), b: sample(), want: true},
		{name: "nil both", want: true},
		{name: "nil one", a: FromString("x"), want: false},
		{name: "tag differs", a: FromString("1"), b: FromNumber("1"), want: false},
		{name: "number differs", a: FromNumber("1"), b: FromNumber("1.0"), want: false},
		{name: "bool differs", a: FromBool(true), b: FromBool(false), want: false},
		{
			name: "order differs",
			a:    FromMap(NewMap().Append("a", FromBool(true)).Append("b", FromBool(true))),
			b:    FromMap(NewMap().Append("b", FromBool(true)).Append("a", FromBool(true))),
			want: false,
		},
		{name: "bare differs", a: BareMap(nil), b: FromMap(nil), want: false},
		{name: "list length", a: FromList(FromString("a")), b: FromList(), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	orig := FromMap(NewMap().
		Append("m", FromMap(NewMap().Append("x", FromString("x")))).
		Append("l", FromList(FromNumber("3"))))
	c := orig.Clone()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}
	c.M.Values[0].M.Values[0].S = "changed"
	c.M.Values[1].L[0].N = "4"
	if orig.M.Get("m").M.Get("x").S != "x" {
		t.Error("clone shares map payload with original")
	}
	if orig.M.Get("l").L[0].N != "3" {
		t.Error("clone shares list payload with original")
	}
}

func TestMapGet(t *testing.T) {
	m := NewMap().Append("a", FromString("1"))
	if m.Get("a") == nil || m.Get("a").S != "1" {
		t.Errorf("Get(a) = %v", m.Get("a"))
	}
	if m.Get("b") != nil {
		t.Errorf("Get(b) = %v, want nil", m.Get("b"))
	}
	var nilMap *Map
	if nilMap.Len() != 0 || nilMap.Get("a") != nil {
		t.Error("nil map should be empty")
	}
}
