package route

import "errors"

// Shape errors for input that cannot be read as deliveries and a path.
// Their messages are reported to callers verbatim.
var (
	ErrInvalidInputFormat    = errors.New("Invalid input format")
	ErrInvalidDeliveryFormat = errors.New("Invalid delivery format")
	ErrInvalidAddressFormat  = errors.New("Invalid address format")
)
