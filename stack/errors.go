package stack

import "errors"

// ErrEmpty is returned by Pop when the stack has no items.
var ErrEmpty = errors.New("stack: empty")
