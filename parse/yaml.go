package parse

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/ddbitem/gomap"

	"github.com/goccy/go-yaml"
)

func parseYAML(d []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAML(v), nil
}

// fromYAML replaces the decoder's ordered maps with *gomap.Map. Keys which
// are not strings are rendered with fmt.Sprint.
func fromYAML(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		m := gomap.NewMap()
		for _, item := range x {
			m.Set(keyString(item.Key), fromYAML(item.Value))
		}
		return m
	case map[string]any:
		m := gomap.NewMap()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			m.Set(k, fromYAML(x[k]))
		}
		return m
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = fromYAML(e)
		}
		return res
	default:
		return v
	}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
