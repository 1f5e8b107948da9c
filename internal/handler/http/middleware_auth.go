package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-autofill-vault/internal/app"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/utils"
	"github.com/MKhiriev/go-autofill-vault/models"
)

// auth requires a bearer token signed with the daemon's sign key. The
// token subject names the calling surface and is stored in the request
// context under [utils.CallerCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			_, _ = utils.WriteJSON(w, models.FailureResponse(ErrEmptyAuthorizationHeader.Error()), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			_, _ = utils.WriteJSON(w, models.FailureResponse(err.Error()), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			_, _ = utils.WriteJSON(w, models.FailureResponse(app.MsgTokenIsExpiredOrInvalid), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.CallerCtxKey, token.Caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
