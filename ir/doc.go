// Package ir provides the tagged representation of DynamoDB items.
//
// A Value is a single-entry object on the wire whose key is a type tag and
// whose payload depends on the tag:
//
//   - S: a string, unchanged
//   - N: a number rendered as a decimal string
//   - BOOL: a boolean
//   - M: an ordered map from attribute names to Values
//   - L: an ordered list of Values
//
// The payload lives in the field named after the tag, so a Value works as a
// tagged union much like the wire form:
//
//	{"M": {"name": {"S": "x"}, "size": {"N": "3"}}}
//
// is
//
//	FromMap(NewMap().Append("name", FromString("x")).Append("size", FromNumber("3")))
//
// A marshalled item is a bare Map: the root attributes are not wrapped in
// an outer M tag.
//
// Values are plain data. They carry no parent pointers, and Clone returns
// a deep copy.
package ir
