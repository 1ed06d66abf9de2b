package ir

import "errors"

var (
	ErrBadTag = errors.New("bad tag")
)
