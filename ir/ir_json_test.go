package ir

import (
	"testing"
)

func TestValueJSON(t *testing.T) {
	tests := []struct {
		name string
		in   *Value
		want string
	}{
		{name: "string", in: FromString("s"), want: `{"S":"s"}`},
		{name: "escaped string", in: FromString("a\"b"), want: `{"S":"a\"b"}`},
		{name: "number", in: FromNumber("1.2"), want: `{"N":"1.2"}`},
		{name: "true", in: FromBool(true), want: `{"BOOL":true}`},
		{name: "false", in: FromBool(false), want: `{"BOOL":false}`},
		{name: "empty map", in: FromMap(nil), want: `{"M":{}}`},
		{name: "empty list", in: FromList(), want: `{"L":[]}`},
		{name: "bare map", in: BareMap(NewMap().Append("a", FromNumber("1"))), want: `{"a":{"N":"1"}}`},
		{name: "bare map in list", in: FromList(BareMap(nil)), want: `{"L":[{}]}`},
		{
			name: "nested",
			in: FromMap(NewMap().
				Append("z", FromNumber("1")).
				Append("a", FromList(FromString("x"), FromMap(NewMap().Append("b", FromBool(true)))))),
			want: `{"M":{"z":{"N":"1"},"a":{"L":[{"S":"x"},{"M":{"b":{"BOOL":true}}}]}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.in.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tt.want {
				t.Errorf("got %s want %s", d, tt.want)
			}
		})
	}
}

func TestMapJSONKeepsOrder(t *testing.T) {
	m := NewMap().
		Append("item", FromMap(NewMap().Append("k", FromString("v")))).
		Append("b", FromNumber("2")).
		Append("a", FromNumber("1"))
	d, err := m.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"item":{"M":{"k":{"S":"v"}}},"b":{"N":"2"},"a":{"N":"1"}}`
	if string(d) != want {
		t.Errorf("got %s want %s", d, want)
	}
}

func TestValueJSONBadTag(t *testing.T) {
	m := NewMap().Append("x", &Value{Tag: Tag(99)})
	if _, err := m.MarshalJSON(); err == nil {
		t.Error("expected error for bad tag")
	}
}
