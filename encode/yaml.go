package encode

import (
	"io"

	"github.com/signadot/ddbitem/ir"

	"github.com/goccy/go-yaml"
)

func encodeYAML(v any, w io.Writer) error {
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func yamlMap(m *ir.Map) yaml.MapSlice {
	res := make(yaml.MapSlice, m.Len())
	for i := 0; i < m.Len(); i++ {
		res[i] = yaml.MapItem{Key: m.Keys[i], Value: yamlValue(m.Values[i])}
	}
	return res
}

func yamlValue(v *ir.Value) yaml.MapSlice {
	if v.Tag == ir.MapTag && v.Bare {
		return yamlMap(v.M)
	}
	var payload any
	switch v.Tag {
	case ir.StringTag:
		payload = v.S
	case ir.NumberTag:
		payload = v.N
	case ir.BoolTag:
		payload = v.BOOL
	case ir.MapTag:
		payload = yamlMap(v.M)
	case ir.ListTag:
		vs := make([]any, len(v.L))
		for i, e := range v.L {
			vs[i] = yamlValue(e)
		}
		payload = vs
	}
	return yaml.MapSlice{{Key: v.Tag.String(), Value: payload}}
}
