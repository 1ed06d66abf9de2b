package ddbitem

import (
	"fmt"

	"github.com/signadot/ddbitem/debug"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies the RFC 6902 JSON patch to the JSON document doc. Objects
// the patch walks through, the root included, come back with their keys
// sorted.
func Patch(doc, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("applying %d patch ops\n", len(ops))
	}
	res, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patched document %s\n", res)
	}
	return res, nil
}
