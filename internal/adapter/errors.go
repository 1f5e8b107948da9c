package adapter

import (
	"errors"

	"github.com/MKhiriev/go-autofill-vault/internal/app"
)

var (
	// ErrMasterPasswordNotProvided is returned when the daemon gave up
	// waiting for an unlock. It is the only retryable vault failure.
	ErrMasterPasswordNotProvided = errors.New(app.MsgMasterPasswordNotProvided)

	// ErrRequestFailed wraps any other failure reported by the gateway.
	ErrRequestFailed = errors.New("vault request failed")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrAgentRejected is returned when the fill agent answers with an
	// error status (for example, the form fields were not found).
	ErrAgentRejected = errors.New("fill agent rejected the request")

	// ErrInvalidDestination is returned for an account identifier that
	// cannot be turned into a destination.
	ErrInvalidDestination = errors.New("invalid destination")

	// ErrEmptyPromptCommand is returned when a command prompt is configured
	// without a command.
	ErrEmptyPromptCommand = errors.New("empty prompt command")
)
