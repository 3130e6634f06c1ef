package http

import (
	"net/http"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/service"
	"github.com/MKhiriev/go-message-keeper/internal/utils"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/rs/zerolog"
)

// linkQueryParam carries the message link token on public routes.
const linkQueryParam = "link"

// basicAuth authenticates the Basic credentials of the request and stores
// the principal, together with the credentials, in the request context.
// Requests without credentials are answered with 401 and a Basic challenge.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			writeError(w, r, service.ErrUnauthorized)
			return
		}

		creds := models.Credentials{Username: username, Password: password}
		user, err := h.services.Authenticator.Authenticate(r.Context(), creds)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r)
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", user.ID.String())
		})

		ctx := utils.WithPrincipal(l.WithContext(r.Context()), user, creds)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// linkAuth resolves the ?link= token of a public message route and stores
// the link in the request context.
func (h *Handler) linkAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		messageID, err := messageIDParam(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		token := r.URL.Query().Get(linkQueryParam)
		link, err := h.services.LinkAuthenticator.AuthenticateLink(r.Context(), messageID, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := utils.WithMessageLink(r.Context(), link)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
