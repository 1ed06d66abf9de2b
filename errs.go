package ddbitem

import "errors"

var ErrPatch = errors.New("patch error")
