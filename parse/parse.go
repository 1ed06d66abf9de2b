// Package parse loads native documents from JSON, JSONC or YAML, keeping
// the key order of every mapping.
//
// Mappings come back as *gomap.Map, sequences as []any. JSON numbers are
// json.Number so their text reaches the item unchanged; YAML numbers are
// the integer or float kinds the YAML decoder picks.
package parse

import (
	"fmt"

	"github.com/signadot/ddbitem/debug"
	"github.com/signadot/ddbitem/format"
	"github.com/signadot/ddbitem/gomap"
)

// Parse decodes the first document in d. The document must be a mapping.
func Parse(d []byte, opts ...ParseOption) (*gomap.Map, error) {
	po := &parseOpts{}
	for _, f := range opts {
		f(po)
	}
	var (
		v   any
		err error
	)
	switch po.format {
	case format.YAMLFormat:
		v, err = parseYAML(d)
	default:
		v, err = parseJSON(d)
	}
	if err != nil {
		return nil, err
	}
	m, ok := v.(*gomap.Map)
	if !ok {
		return nil, fmt.Errorf("%w: %s document is %s, not a mapping", gomap.ErrInvalidInputKind, po.format, kind(v))
	}
	if debug.Parse() {
		debug.Logf("parsed %s mapping with keys %v\n", po.format, m.Keys())
	}
	return m, nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	default:
		return "a number"
	}
}
