package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-autofill-vault/internal/app"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/service"
	"github.com/MKhiriev/go-autofill-vault/internal/utils"
	"github.com/MKhiriev/go-autofill-vault/models"
)

const (
	// maxUnlockWait caps the long-poll duration a caller may ask for.
	maxUnlockWait = 10 * time.Minute
	// unlockWaitGrace leaves room to write the answer once the wait ends.
	unlockWaitGrace = 5 * time.Second
)

// handleMessage passes one gateway message through. Gateway results are
// answered with 200 whatever their status; only an undecodable body is a
// transport error.
func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.Request
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.handleMessage").Msg("invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.FailureResponse(app.MsgInvalidDataProvided), http.StatusBadRequest)
		return
	}

	if caller, ok := utils.GetCallerFromContext(r.Context()); ok {
		log.Debug().Str("caller", caller).Str("action", string(req.Action)).Msg("gateway message")
	}

	resp := h.services.Gateway.Handle(r.Context(), req)
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

// awaitUnlock blocks until the vault is unlocked or the requested timeout
// (default 60s) passes.
func (h *Handler) awaitUnlock(w http.ResponseWriter, r *http.Request) {
	timeout := service.DefaultKeyWaitTimeout
	if raw := r.URL.Query().Get("timeout"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			writeError(w, ErrInvalidTimeout)
			return
		}
		timeout = min(parsed, maxUnlockWait)
	}

	// The server write timeout covers ordinary requests, not a long-poll.
	err := http.NewResponseController(w).SetWriteDeadline(time.Now().Add(timeout + unlockWaitGrace))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.awaitUnlock").Msg("write deadline not extended")
	}

	unlocked := h.services.Gateway.AwaitUnlock(r.Context(), timeout)
	_, _ = utils.WriteJSON(w, models.UnlockWaitResult{Unlocked: unlocked}, http.StatusOK)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.AppInfoService.GetStatus(r.Context()), http.StatusOK)
}
