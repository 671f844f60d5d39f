package queue

import "errors"

// ErrEmpty is returned by Dequeue when the queue has no items.
var ErrEmpty = errors.New("queue: empty")
