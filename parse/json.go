package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/ddbitem/gomap"

	"github.com/tidwall/jsonc"
)

// parseJSON decodes JSON with comments and trailing commas allowed.
func parseJSON(d []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(d)))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
		return nil, fmt.Errorf("unexpected %q at offset %d", x, dec.InputOffset())
	default:
		// string, json.Number, bool or nil
		return x, nil
	}
}

func decodeJSONObject(dec *json.Decoder) (*gomap.Map, error) {
	m := gomap.NewMap()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}
		v, err := decodeJSON(dec)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", key, err)
		}
		m.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeJSONArray(dec *json.Decoder) ([]any, error) {
	res := []any{}
	for dec.More() {
		v, err := decodeJSON(dec)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", len(res), err)
		}
		res = append(res, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}
