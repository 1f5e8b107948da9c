package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAccountID   = errors.New("account identifier is required")
	ErrInvalidAccountID = errors.New("account identifier must not contain whitespace or slashes")
	ErrEmptyUsername    = errors.New("username is required")
	ErrInvalidIndex     = errors.New("credential index must not be negative")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
)
