package notify

import "errors"

// ErrUnknownGenerator is returned when Config names a handle generator that
// does not exist.
var ErrUnknownGenerator = errors.New("unknown handle generator")
