package gomap

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInputKind     = errors.New("invalid input kind")
	ErrInvalidDepthBound    = errors.New("invalid depth bound")
	ErrNestingLimitExceeded = errors.New("nesting limit exceeded")
	ErrUnsupportedType      = errors.New("unsupported type")
	ErrRecursionTooDeep     = errors.New("recursion too deep")
)

// MarshalError represents an error during marshaling
type MarshalError struct {
	FieldPath string // Field path (e.g., "item.dict.tags[2]")
	Key       string // Top-level key the failure is attributed to, if any
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}
