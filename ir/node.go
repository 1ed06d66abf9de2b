package ir

// Value is a tagged attribute value.
type Value struct {
	Tag Tag

	S    string
	N    string
	BOOL bool
	M    *Map
	L    []*Value

	// Bare maps render as their entries without the M tag. Maps inside
	// lists are bare.
	Bare bool
}

// Map is an ordered mapping from attribute names to Values.
type Map struct {
	Keys   []string
	Values []*Value
}

func NewMap() *Map {
	return &Map{}
}

// Append adds a key at the end of m. Append does not check for duplicates.
func (m *Map) Append(key string, v *Value) *Map {
	m.Keys = append(m.Keys, key)
	m.Values = append(m.Values, v)
	return m
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Keys)
}

func (m *Map) keys() []string {
	if m == nil {
		return nil
	}
	return m.Keys
}

func (m *Map) Get(key string) *Value {
	if m == nil {
		return nil
	}
	for i, k := range m.Keys {
		if k == key {
			return m.Values[i]
		}
	}
	return nil
}

func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	res := &Map{
		Keys:   make([]string, len(m.Keys)),
		Values: make([]*Value, len(m.Values)),
	}
	copy(res.Keys, m.Keys)
	for i, v := range m.Values {
		res.Values[i] = v.Clone()
	}
	return res
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{}
	*res = *v
	res.M = v.M.Clone()
	if v.L != nil {
		res.L = make([]*Value, len(v.L))
		for i, e := range v.L {
			res.L[i] = e.Clone()
		}
	}
	return res
}

func FromString(s string) *Value {
	return &Value{Tag: StringTag, S: s}
}

// FromNumber returns a number Value. n must already be a decimal string.
func FromNumber(n string) *Value {
	return &Value{Tag: NumberTag, N: n}
}

func FromBool(b bool) *Value {
	return &Value{Tag: BoolTag, BOOL: b}
}

func FromMap(m *Map) *Value {
	if m == nil {
		m = NewMap()
	}
	return &Value{Tag: MapTag, M: m}
}

// BareMap returns a map Value which renders without its tag.
func BareMap(m *Map) *Value {
	v := FromMap(m)
	v.Bare = true
	return v
}

func FromList(vs ...*Value) *Value {
	if vs == nil {
		vs = []*Value{}
	}
	return &Value{Tag: ListTag, L: vs}
}
