package anycow

import "errors"

var (
	ErrUnsupported = errors.New("operation not supported by this variant")
	ErrConsumed    = errors.New("value already moved out")
)
