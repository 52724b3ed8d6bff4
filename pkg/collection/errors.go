package collection

import "errors"

var (
	// ErrTypeMismatch is returned when a payload is not of the collection's
	// payload type.
	ErrTypeMismatch = errors.New("payload type mismatch")
	// ErrUnsupportedPayloadType is returned when a query needs a payload
	// capability the collection's payload type does not provide.
	ErrUnsupportedPayloadType = errors.New("unsupported payload type")
)
