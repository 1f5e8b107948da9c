package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-autofill-vault/internal/app"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/utils"
	"github.com/MKhiriev/go-autofill-vault/models"
)

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.CredentialService.List(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listCredentials").Msg("error listing credentials")
		writeError(w, err)
		return
	}
	if records == nil {
		records = []models.CredentialRecord{}
	}

	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) addCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credential models.PlainCredential
	if err := utils.DecodeJSON(r, &credential); err != nil {
		log.Err(err).Str("func", "*Handler.addCredential").Msg("invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.FailureResponse(app.MsgInvalidDataProvided), http.StatusBadRequest)
		return
	}

	if err := h.services.CredentialService.Add(r.Context(), credential); err != nil {
		log.Err(err).Str("func", "*Handler.addCredential").Msg("error adding credential")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	index, err := indexParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var credential models.PlainCredential
	if err = utils.DecodeJSON(r, &credential); err != nil {
		log.Err(err).Str("func", "*Handler.updateCredential").Msg("invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.FailureResponse(app.MsgInvalidDataProvided), http.StatusBadRequest)
		return
	}

	if err = h.services.CredentialService.Update(r.Context(), index, credential); err != nil {
		log.Err(err).Str("func", "*Handler.updateCredential").Int("index", index).Msg("error updating credential")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err = h.services.CredentialService.Delete(r.Context(), index); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteCredential").Int("index", index).Msg("error deleting credential")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revealCredential(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	credential, err := h.services.CredentialService.Reveal(r.Context(), index)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.revealCredential").Int("index", index).Msg("error revealing credential")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, credential, http.StatusOK)
}

func indexParam(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		return 0, ErrInvalidIndex
	}
	return index, nil
}
