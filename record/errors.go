package record

import "errors"

// Sentinel errors for entity decoding.
var (
	ErrMissingID = errors.New("record has no id")
	ErrInvalidID = errors.New("record id must be a non-zero integer")
)
