package converter

import "errors"

var (
	// ErrUnknownKind is returned for a kind without a converter.
	ErrUnknownKind = errors.New("unknown converter kind")
	// ErrUnknownRoot is returned when no kind matches a document root.
	ErrUnknownRoot = errors.New("unknown document root")
)
