package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The bearer token must be signed with the configured key and issuer. Its
// subject becomes the account ID of the request context, which is where the
// store looks it up. Rejected requests get 401 with a NOT_AUTHENTICATED
// envelope so the client reports the account as unavailable.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		accountID, err := h.authenticate(r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("request rejected")
			writeError(w, r, adapter.NewError(adapter.CodeNotAuthenticated, "%s", err))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccountID(r.Context(), accountID)))
	})
}

func (h *Handler) authenticate(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, h.app.TokenSignKey, h.app.TokenIssuer)
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	return token.AccountID, nil
}
