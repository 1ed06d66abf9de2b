package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Map is a native mapping which keeps keys in insertion order.
//
// The zero value is an empty map ready to use.
type Map struct {
	keys   []string
	values []any
	index  map[string]int
}

func NewMap() *Map {
	return &Map{}
}

// FromPairs builds a Map from alternating keys and values. It panics if
// kvs has odd length or a key is not a string.
func FromPairs(kvs ...any) *Map {
	if len(kvs)%2 != 0 {
		panic(fmt.Sprintf("gomap.FromPairs: odd number of arguments (%d)", len(kvs)))
	}
	m := &Map{}
	for i := 0; i < len(kvs); i += 2 {
		k, ok := kvs[i].(string)
		if !ok {
			panic(fmt.Sprintf("gomap.FromPairs: key %d is %T, not string", i/2, kvs[i]))
		}
		m.Set(k, kvs[i+1])
	}
	return m
}

// Set assigns v to k. A new key is appended; an existing one keeps its
// position.
func (m *Map) Set(k string, v any) *Map {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[k]; ok {
		m.values[i] = v
		return m
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.values = append(m.values, v)
	return m
}

func (m *Map) Get(k string) (any, bool) {
	if m == nil || m.index == nil {
		return nil, false
	}
	i, ok := m.index[k]
	if !ok {
		return nil, false
	}
	return m.values[i], true
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	res := make([]string, len(m.keys))
	copy(res, m.keys)
	return res
}

// Range calls f for each entry in order until f returns false.
func (m *Map) Range(f func(k string, v any) bool) {
	if m == nil {
		return
	}
	for i, k := range m.keys {
		if !f(k, m.values[i]) {
			return
		}
	}
}

// MarshalJSON renders m as a JSON object keeping key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := json.Marshal(m.values[i])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
