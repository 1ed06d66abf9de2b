// Package gomap converts native Go values into DynamoDB tagged items.
//
// A Marshaller takes a root mapping and produces an ir.Map whose entries
// are tagged attribute values, together with a depth ledger recording how
// many levels of nested mappings each top-level attribute consumed.
//
// # Native values
//
// Strings, booleans, every integer and float kind, json.Number, slices,
// arrays and mappings are supported. Mappings are *Map (ordered) or Go maps
// with string keys, whose keys are visited in sorted order since Go maps
// carry no insertion order. Non-nil pointers are followed. Anything else,
// including nil, []byte, NaN and infinities, fails with ErrUnsupportedType.
//
// # Nesting
//
// Each top-level key whose value is a mapping is tracked: every mapping
// entered below it, itself included, consumes one level. Once a key has
// consumed MaxDepth levels, entering another mapping fails with
// ErrNestingLimitExceeded. Mappings inside lists are not tracked, nor is
// anything below them.
//
//	m, err := gomap.New(gomap.FromPairs(
//		"item", gomap.FromPairs("dict", gomap.FromPairs("n", 1)),
//	))
//	// m.Item(): {"item":{"M":{"dict":{"M":{"n":{"N":"1"}}}}}}
//	// m.AttributeLevels(): [{item 2}]
package gomap
