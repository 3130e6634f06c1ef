// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-message-keeper/internal/validators"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	user, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	messages, err := h.services.MessageService.ListMessages(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, messages, http.StatusOK)
}

func (h *Handler) createMessage(w http.ResponseWriter, r *http.Request) {
	user, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var received models.ReceivedMessage
	if err = h.decodeValid(w, r, &received); err != nil {
		writeError(w, r, err)
		return
	}

	message, err := h.services.MessageService.CreateMessage(r.Context(), user.ID, received)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, message, http.StatusCreated)
}

// deleteMessages takes a JSON array of message ids. Ids of messages the
// principal does not own are skipped by the background job.
func (h *Handler) deleteMessages(w http.ResponseWriter, r *http.Request) {
	user, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var ids []uuid.UUID
	if err = decodeJSON(w, r, &ids); err != nil {
		writeError(w, r, err)
		return
	}
	if err = validators.ValidateMessageIDs(ids); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MessageService.DeleteMessages(r.Context(), user.ID, ids); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message, err := h.services.MessageService.GetMessage(r.Context(), user.ID, messageID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, message, http.StatusOK)
}

func (h *Handler) updateMessage(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.MessageUpdate
	if err = h.decodeValid(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	message, err := h.services.MessageService.UpdateMessage(r.Context(), user.ID, messageID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, message, http.StatusOK)
}

func (h *Handler) markViewed(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ViewService.MarkViewed(r.Context(), user.ID, messageID, chi.URLParam(r, "device_name")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
