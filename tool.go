// Package ddbitem converts JSON and YAML documents into DynamoDB items.
//
// The conversion itself lives in gomap; a Tool strings together parsing,
// an optional JSON patch and marshalling.
package ddbitem

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/ddbitem/gomap"
	"github.com/signadot/ddbitem/parse"
)

type Tool struct {
	ParseOptions []parse.ParseOption
	MapOptions   []gomap.MapOption
	// Patch, if set, is a JSON patch applied to each document before
	// marshalling.
	Patch []byte
}

func DefaultTool() *Tool {
	return &Tool{}
}

// Run parses d and marshals the resulting mapping.
func (t *Tool) Run(d []byte) (*gomap.Marshaller, error) {
	doc, err := parse.Parse(d, t.ParseOptions...)
	if err != nil {
		return nil, err
	}
	return t.Marshal(doc)
}

// Marshal patches doc if the tool has a patch, then marshals it.
func (t *Tool) Marshal(doc *gomap.Map) (*gomap.Marshaller, error) {
	if len(t.Patch) != 0 {
		var err error
		doc, err = t.patch(doc)
		if err != nil {
			return nil, err
		}
	}
	return gomap.New(doc, t.MapOptions...)
}

func (t *Tool) patch(doc *gomap.Map) (*gomap.Map, error) {
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("error encoding document for patch: %w", err)
	}
	d, err = Patch(d, t.Patch)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, parse.ParseJSON())
}
