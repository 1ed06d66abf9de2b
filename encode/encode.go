// Package encode renders marshalled items and depth ledgers as JSON or
// YAML.
//
// JSON output is the DynamoDB wire form, indented by default and compact
// with EncodeWire. JSON may be colored with EncodeColors. YAML output keeps
// key order and quotes number payloads so they stay strings.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/ddbitem/format"
	"github.com/signadot/ddbitem/gomap"
	"github.com/signadot/ddbitem/ir"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Tag, ColorAttr, string) string
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes the item m followed by a newline.
func Encode(m *ir.Map, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	if es.format.IsYAML() {
		return encodeYAML(yamlMap(m), w)
	}
	if err := es.writeMap(w, m, ir.MapTag); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// EncodeLevels writes a depth ledger as an object from key to depth, in
// the order given.
func EncodeLevels(levels []gomap.Level, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	if es.format.IsYAML() {
		ms := make(yaml.MapSlice, len(levels))
		for i, lvl := range levels {
			ms[i] = yaml.MapItem{Key: lvl.Key, Value: lvl.Depth}
		}
		return encodeYAML(ms, w)
	}
	if len(levels) == 0 {
		return writeString(w, "{}\n")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, lvl := range levels {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
		if err := es.writeKey(w, ir.MapTag, lvl.Key); err != nil {
			return err
		}
		if err := writeString(w, es.color(ir.NumberTag, ValueColor, strconv.Itoa(lvl.Depth))); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.writeNL(w); err != nil {
		return err
	}
	return writeString(w, "}\n")
}

func (es *EncState) color(t ir.Tag, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) writeNL(w io.Writer) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

// writeKey writes a quoted key and its separator. sepTag selects the
// separator color of the enclosing container.
func (es *EncState) writeKey(w io.Writer, sepTag ir.Tag, key string) error {
	q, err := quote(key)
	if err != nil {
		return err
	}
	sep := ":"
	if !es.wire {
		sep = ": "
	}
	return writeString(w, es.color(ir.MapTag, KeyColor, q)+es.color(sepTag, SepColor, sep))
}

func (es *EncState) writeMap(w io.Writer, m *ir.Map, sepTag ir.Tag) error {
	if m.Len() == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, k := range m.Keys {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
		if err := es.writeKey(w, sepTag, k); err != nil {
			return err
		}
		if err := es.writeValue(w, m.Values[i]); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
	}
	es.depth--
	if err := es.writeNL(w); err != nil {
		return err
	}
	return writeString(w, "}")
}

func (es *EncState) writeValue(w io.Writer, v *ir.Value) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ir.ErrBadTag)
	}
	if v.Tag == ir.MapTag && v.Bare {
		return es.writeMap(w, v.M, ir.MapTag)
	}
	tag, err := v.Tag.MarshalText()
	if err != nil {
		return err
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	if err := es.writeNL(w); err != nil {
		return err
	}
	q, _ := quote(string(tag))
	sep := ":"
	if !es.wire {
		sep = ": "
	}
	if err := writeString(w, es.color(v.Tag, TagColor, q)+es.color(v.Tag, SepColor, sep)); err != nil {
		return err
	}
	switch v.Tag {
	case ir.StringTag, ir.NumberTag:
		s := v.S
		if v.Tag == ir.NumberTag {
			s = v.N
		}
		q, err := quote(s)
		if err != nil {
			return err
		}
		err = writeString(w, es.color(v.Tag, ValueColor, q))
		if err != nil {
			return err
		}
	case ir.BoolTag:
		if err := writeString(w, es.color(v.Tag, ValueColor, strconv.FormatBool(v.BOOL))); err != nil {
			return err
		}
	case ir.MapTag:
		if err := es.writeMap(w, v.M, ir.MapTag); err != nil {
			return err
		}
	case ir.ListTag:
		if err := es.writeList(w, v.L); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.writeNL(w); err != nil {
		return err
	}
	return writeString(w, "}")
}

func (es *EncState) writeList(w io.Writer, vs []*ir.Value) error {
	if len(vs) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range vs {
		if i > 0 {
			if err := writeString(w, es.color(ir.ListTag, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
		if err := es.writeValue(w, v); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	es.depth--
	if err := es.writeNL(w); err != nil {
		return err
	}
	return writeString(w, "]")
}

func quote(s string) (string, error) {
	d, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
