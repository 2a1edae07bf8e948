package workflow

import "errors"

// ErrUnsupportedAction is fatal to the caller; unlike missing name lookups it
// is never resolved to a no-op and never retried.
var ErrUnsupportedAction = errors.New("unsupported workflow action")
