package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-message-keeper/internal/adapter"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/service"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/MKhiriev/go-message-keeper/internal/utils"
	"github.com/MKhiriev/go-message-keeper/internal/validators"
	"github.com/MKhiriev/go-message-keeper/internal/workers"
)

const (
	internalErrorDetail = "Internal server error"
	basicChallenge      = `Basic realm="message-keeper"`
)

// errorRule maps every error matching target to a status. An empty detail
// means the error text itself is shown to the client.
type errorRule struct {
	target error
	status int
	detail string
}

// errorRules is checked in order; the first match wins.
var errorRules = []errorRule{
	{target: validators.ErrValidation, status: http.StatusBadRequest},
	{target: ErrInvalidJSON, status: http.StatusBadRequest},
	{target: ErrInvalidPathParam, status: http.StatusBadRequest},

	{target: service.ErrUnauthorized, status: http.StatusUnauthorized, detail: "Incorrect username or password"},
	{target: service.ErrMissingLink, status: http.StatusUnauthorized, detail: "Missing message link"},
	{target: service.ErrUnknownLink, status: http.StatusForbidden, detail: "Unknown message link"},
	{target: service.ErrMissingPermissions, status: http.StatusForbidden, detail: "Missing permission(s) required to perform this action"},
	{target: service.ErrForbidden, status: http.StatusForbidden, detail: "Action not permitted on this message"},

	{target: service.ErrUserNotFound, status: http.StatusNotFound, detail: "User not found"},
	{target: service.ErrDeviceNotFound, status: http.StatusNotFound, detail: "Device not found"},
	{target: service.ErrMessageNotFound, status: http.StatusNotFound, detail: "Message not found"},
	{target: service.ErrFileNotFound, status: http.StatusNotFound, detail: "File not found"},
	{target: service.ErrLinkNotFound, status: http.StatusNotFound, detail: "Link not found"},
	{target: service.ErrPermissionNotFound, status: http.StatusNotFound, detail: "Permission not found"},

	{target: service.ErrUserExists, status: http.StatusConflict, detail: "User already exists"},
	{target: service.ErrDeviceExists, status: http.StatusConflict, detail: "Device already exists"},
	{target: service.ErrFileExists, status: http.StatusConflict, detail: "File already exists"},
	{target: service.ErrAlreadyViewed, status: http.StatusConflict, detail: "Message already viewed by this device"},
	{target: service.ErrSelfPermission, status: http.StatusBadRequest, detail: "Cannot set permissions for the message owner"},
	{target: store.ErrInvalidData, status: http.StatusBadRequest, detail: "Invalid data"},

	{target: workers.ErrQueueFull, status: http.StatusServiceUnavailable, detail: "Server is busy, try again later"},
	{target: workers.ErrQueueStopped, status: http.StatusServiceUnavailable, detail: "Server is shutting down"},
	{target: store.ErrNoQueue, status: http.StatusServiceUnavailable, detail: "Background processing is unavailable"},

	{target: adapter.ErrUnavailable, status: http.StatusBadGateway, detail: "Auth service unavailable"},
	{target: adapter.ErrDecodingResponse, status: http.StatusBadGateway, detail: "Invalid auth service response"},
}

// statusFromError returns the status and client-facing detail for err.
func statusFromError(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, "Request body too large"
	}

	var upstream *adapter.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Status, upstream.Detail
	}

	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			if rule.detail == "" {
				return rule.status, err.Error()
			}
			return rule.status, rule.detail
		}
	}
	return http.StatusInternalServerError, internalErrorDetail
}

// writeError logs err and answers with its mapped status. Every 401 carries
// a WWW-Authenticate challenge, the upstream one when the auth service sent
// it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, detail := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		challenge := basicChallenge
		var upstream *adapter.UpstreamError
		if errors.As(err, &upstream) && upstream.WWWAuthenticate != "" {
			challenge = upstream.WWWAuthenticate
		}
		w.Header().Set("WWW-Authenticate", challenge)
	}

	utils.WriteError(w, status, detail)
}
