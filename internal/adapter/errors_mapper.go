package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-autofill-vault/internal/app"
	"github.com/MKhiriev/go-autofill-vault/models"
)

// mapHTTPError converts a non-2xx response into a sentinel error. Error
// bodies are tagged gateway responses; their message is preserved.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	var tagged models.Response
	if err := json.Unmarshal(resp.Body(), &tagged); err == nil && tagged.Message != "" {
		message = tagged.Message
	}

	if message == app.MsgMasterPasswordNotProvided {
		return ErrMasterPasswordNotProvided
	}

	switch resp.StatusCode() {
	case http.StatusLocked:
		return ErrMasterPasswordNotProvided
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrRequestFailed, resp.StatusCode(), message)
	}
}

// responseError converts a failure-tagged gateway response into an error.
func responseError(r models.Response) error {
	if r.IsSuccess() {
		return nil
	}
	if r.Message == app.MsgMasterPasswordNotProvided {
		return ErrMasterPasswordNotProvided
	}
	return fmt.Errorf("%w: %s", ErrRequestFailed, r.Message)
}
