package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON renders v in the DynamoDB wire form, e.g. {"N":"1.2"}. A
// bare map renders as a plain object of tagged values.
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := v.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON renders m as a JSON object keeping key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := m.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) writeJSON(buf *bytes.Buffer) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrBadTag)
	}
	if v.Tag == MapTag && v.Bare {
		return v.M.writeJSON(buf)
	}
	tag, err := v.Tag.MarshalText()
	if err != nil {
		return err
	}
	buf.WriteString(`{"`)
	buf.Write(tag)
	buf.WriteString(`":`)
	switch v.Tag {
	case StringTag:
		if err := writeJSONString(buf, v.S); err != nil {
			return err
		}
	case NumberTag:
		if err := writeJSONString(buf, v.N); err != nil {
			return err
		}
	case BoolTag:
		if v.BOOL {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case MapTag:
		if err := v.M.writeJSON(buf); err != nil {
			return err
		}
	case ListTag:
		buf.WriteByte('[')
		for i, e := range v.L {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return nil
}

func (m *Map) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range m.keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := m.Values[i].writeJSON(buf); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}
