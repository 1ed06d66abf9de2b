package ir

import "fmt"

// Tag identifies the wire type of a Value.
type Tag int

const (
	StringTag Tag = iota
	NumberTag
	BoolTag
	MapTag
	ListTag
)

func (t Tag) String() string {
	s, ok := map[Tag]string{
		StringTag: "S",
		NumberTag: "N",
		BoolTag:   "BOOL",
		MapTag:    "M",
		ListTag:   "L",
	}[t]
	if ok {
		return s
	}
	return "<unknown tag>"
}

func (t Tag) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadTag, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(d []byte) error {
	tt, ok := map[string]Tag{
		"S":    StringTag,
		"N":    NumberTag,
		"BOOL": BoolTag,
		"M":    MapTag,
		"L":    ListTag,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadTag, d)
	}
	*t = tt
	return nil
}

func Tags() []Tag {
	return []Tag{
		StringTag,
		NumberTag,
		BoolTag,
		MapTag,
		ListTag,
	}
}

func (t Tag) valid() bool {
	return t >= StringTag && t <= ListTag
}
