package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/utils"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxJSONBodySize = 1 << 20

// decodeJSON reads the JSON body of r into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodeValid decodes the body into dst and runs the request validator on it.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := decodeJSON(w, r, dst); err != nil {
		return err
	}
	return h.validator.Validate(r.Context(), dst)
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %w", ErrInvalidPathParam, name, err)
	}
	return id, nil
}

func messageIDParam(r *http.Request) (uuid.UUID, error) {
	return uuidParam(r, "message_id")
}

func principal(r *http.Request) (models.AuthUser, error) {
	user, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return models.AuthUser{}, ErrMissingPrincipal
	}
	return user, nil
}

func messageLink(r *http.Request) (models.MessageLink, error) {
	link, ok := utils.GetMessageLinkFromContext(r.Context())
	if !ok {
		return models.MessageLink{}, ErrMissingLinkContext
	}
	return link, nil
}

// principalAndMessage is the common prologue of every per-message route.
func principalAndMessage(r *http.Request) (models.AuthUser, uuid.UUID, error) {
	user, err := principal(r)
	if err != nil {
		return models.AuthUser{}, uuid.Nil, err
	}
	messageID, err := messageIDParam(r)
	if err != nil {
		return models.AuthUser{}, uuid.Nil, err
	}
	return user, messageID, nil
}

func writeOK(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
