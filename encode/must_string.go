package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/ddbitem/ir"
)

func MustString(m *ir.Map, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(m, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
