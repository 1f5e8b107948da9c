package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-autofill-vault/internal/app"
	"github.com/MKhiriev/go-autofill-vault/internal/service"
	"github.com/MKhiriev/go-autofill-vault/internal/store"
	"github.com/MKhiriev/go-autofill-vault/internal/utils"
	"github.com/MKhiriev/go-autofill-vault/models"
)

var errorStatusMap = map[error]int{
	service.ErrKeyTimeout:         http.StatusLocked,
	service.ErrInvalidCredential:  http.StatusBadRequest,
	service.ErrCredentialNotFound: http.StatusNotFound,
	service.ErrDecryption:         http.StatusUnprocessableEntity,
	ErrInvalidIndex:               http.StatusBadRequest,
	ErrInvalidTimeout:             http.StatusBadRequest,

	store.ErrCorruptedValue: http.StatusInternalServerError,
	store.ErrStorage:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with a tagged failure body. A key timeout always
// carries the exact message clients retry on.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	switch status {
	case http.StatusLocked:
		message = app.MsgMasterPasswordNotProvided
	case http.StatusInternalServerError:
		message = app.MsgInternalServerError
	}

	_, _ = utils.WriteJSON(w, models.FailureResponse(message), status)
}
