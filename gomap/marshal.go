package gomap

import (
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/signadot/ddbitem/debug"
	"github.com/signadot/ddbitem/ir"
)

// Level is the number of mapping levels consumed by a top-level key.
type Level struct {
	Key   string
	Depth int
}

// Marshaller holds the result of converting one root mapping. Its outputs
// are computed by New and never change afterwards.
type Marshaller struct {
	maxDepth       int
	recursionLimit int

	item   *ir.Map
	keys   []string
	levels map[string]int
}

// track says whose nesting levels a mapping consumes. At the root, each
// entry starts tracking its own key; below that the key is inherited. A
// zero track is untracked.
type track struct {
	root bool
	key  string
}

func (t track) child(key string) track {
	if t.root {
		return track{key: key}
	}
	return track{key: t.key}
}

// New marshals root, which must be a mapping.
func New(root any, opts ...MapOption) (*Marshaller, error) {
	cfg := newMapConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	entries, ok := mapEntries(deref(root))
	if !ok {
		return nil, &MarshalError{
			Message: fmt.Sprintf("expected a mapping, got %s", typeName(root)),
			Err:     ErrInvalidInputKind,
		}
	}
	m := &Marshaller{
		maxDepth:       cfg.maxDepth,
		recursionLimit: cfg.recursionLimit,
		keys:           make([]string, len(entries)),
		levels:         make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		m.keys[i] = e.key
		m.levels[e.key] = 0
	}
	item, err := m.marshalEntries(entries, track{root: true}, "", 0)
	if err != nil {
		if debug.Marshal() {
			debug.Logf("marshal failed: %v\n", err)
		}
		return nil, err
	}
	m.item = item
	return m, nil
}

// Marshal marshals root and returns only the item.
func Marshal(root any, opts ...MapOption) (*ir.Map, error) {
	m, err := New(root, opts...)
	if err != nil {
		return nil, err
	}
	return m.item, nil
}

// Item returns a copy of the marshalled item: the root keys mapped to
// tagged values, not wrapped in an M tag.
func (m *Marshaller) Item() *ir.Map {
	return m.item.Clone()
}

// AttributeLevels returns the depth ledger sorted by descending depth.
// Keys of equal depth keep their order in the root mapping.
func (m *Marshaller) AttributeLevels() []Level {
	res := make([]Level, len(m.keys))
	for i, k := range m.keys {
		res[i] = Level{Key: k, Depth: m.levels[k]}
	}
	slices.SortStableFunc(res, func(a, b Level) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return res
}

// Levels returns the depth ledger keyed by top-level key.
func (m *Marshaller) Levels() map[string]int {
	res := make(map[string]int, len(m.levels))
	for k, v := range m.levels {
		res[k] = v
	}
	return res
}

func (m *Marshaller) MaxDepth() int {
	return m.maxDepth
}

// enter consumes one nesting level for t, if it is tracked.
func (m *Marshaller) enter(t track, path string) error {
	if t.key == "" {
		return nil
	}
	n := m.levels[t.key]
	if n >= m.maxDepth {
		return &MarshalError{
			FieldPath: path,
			Key:       t.key,
			Message:   fmt.Sprintf("item key '%s' exceeds maximum nesting levels of %d", t.key, m.maxDepth),
			Err:       ErrNestingLimitExceeded,
		}
	}
	m.levels[t.key] = n + 1
	if debug.Marshal() {
		debug.Logf("%s: key %q at level %d of %d\n", path, t.key, n+1, m.maxDepth)
	}
	return nil
}

func (m *Marshaller) marshalEntries(entries []entry, t track, path string, rec int) (*ir.Map, error) {
	if rec > m.recursionLimit {
		return nil, m.recursionError(path)
	}
	res := ir.NewMap()
	for _, e := range entries {
		v, err := m.marshalEntry(e.value, t.child(e.key), joinKey(path, e.key), rec)
		if err != nil {
			return nil, err
		}
		res.Append(e.key, v)
	}
	return res, nil
}

// marshalEntry marshals the value of a mapping entry. Mapping values
// descend under t; list elements are marshalled untracked, and mappings
// among them come back bare.
func (m *Marshaller) marshalEntry(v any, t track, path string, rec int) (*ir.Value, error) {
	v = deref(v)
	if entries, ok := mapEntries(v); ok {
		if err := m.enter(t, path); err != nil {
			return nil, err
		}
		sub, err := m.marshalEntries(entries, t, path, rec+1)
		if err != nil {
			return nil, err
		}
		return ir.FromMap(sub), nil
	}
	if elems, ok := listElems(v); ok {
		return m.marshalList(elems, path, rec+1)
	}
	return primitive(v, path)
}

func (m *Marshaller) marshalList(elems []any, path string, rec int) (*ir.Value, error) {
	if rec > m.recursionLimit {
		return nil, m.recursionError(path)
	}
	res := make([]*ir.Value, len(elems))
	for i, e := range elems {
		v, err := m.marshalEntry(e, track{}, fmt.Sprintf("%s[%d]", path, i), rec)
		if err != nil {
			return nil, err
		}
		if v.Tag == ir.MapTag {
			v.Bare = true
		}
		res[i] = v
	}
	return ir.FromList(res...), nil
}

func (m *Marshaller) recursionError(path string) error {
	return &MarshalError{
		FieldPath: path,
		Message:   fmt.Sprintf("nesting exceeds recursion limit of %d", m.recursionLimit),
		Err:       ErrRecursionTooDeep,
	}
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

type entry struct {
	key   string
	value any
}

// mapEntries returns the entries of v in visiting order if v is a mapping.
func mapEntries(v any) ([]entry, bool) {
	switch x := v.(type) {
	case *Map:
		if x == nil {
			return nil, false
		}
		return orderedEntries(x), true
	case Map:
		return orderedEntries(&x), true
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		res := make([]entry, len(keys))
		for i, k := range keys {
			res[i] = entry{key: k, value: x[k]}
		}
		return res, true
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Map || val.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	res := make([]entry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		res = append(res, entry{key: iter.Key().String(), value: iter.Value().Interface()})
	}
	slices.SortFunc(res, func(a, b entry) int {
		return cmp.Compare(a.key, b.key)
	})
	return res, true
}

func orderedEntries(m *Map) []entry {
	res := make([]entry, 0, m.Len())
	m.Range(func(k string, v any) bool {
		res = append(res, entry{key: k, value: v})
		return true
	})
	return res
}

// listElems returns the elements of v if v is a slice or array. Nil slices
// are empty lists. Byte slices are binary data, which has no tag here.
func listElems(v any) ([]any, bool) {
	if x, ok := v.([]any); ok {
		return x, true
	}
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}
	res := make([]any, val.Len())
	for i := range res {
		res[i] = val.Index(i).Interface()
	}
	return res, true
}

func deref(v any) any {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer && !val.IsNil() {
		if _, ok := val.Interface().(*Map); ok {
			break
		}
		val = val.Elem()
	}
	if !val.IsValid() {
		return nil
	}
	return val.Interface()
}

func primitive(v any, path string) (*ir.Value, error) {
	if n, ok := v.(json.Number); ok {
		s := n.String()
		if !validNumber(s) {
			return nil, unsupported(v, path, fmt.Sprintf("%q is not a number", s))
		}
		return ir.FromNumber(s), nil
	}
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromNumber(strconv.FormatInt(val.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromNumber(strconv.FormatUint(val.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		s, err := formatFloat(val.Float(), val.Type().Bits())
		if err != nil {
			return nil, unsupported(v, path, err.Error())
		}
		return ir.FromNumber(s), nil
	}
	return nil, unsupported(v, path, "")
}

func unsupported(v any, path, detail string) error {
	msg := fmt.Sprintf("no tag for values of type %s", typeName(v))
	if detail != "" {
		msg += ": " + detail
	}
	return &MarshalError{
		FieldPath: path,
		Message:   msg,
		Err:       ErrUnsupportedType,
	}
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
