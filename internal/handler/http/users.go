package http

import (
	"net/http"

	"github.com/MKhiriev/go-message-keeper/internal/validators"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/go-chi/chi/v5"
)

// createUser serves POST and PUT /users/{username}. The principal needs the
// CREATE_USER flag.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	user, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	username := chi.URLParam(r, "username")
	if err = validators.ValidateUsername(username); err != nil {
		writeError(w, r, err)
		return
	}

	var received models.ReceivedUser
	if err = h.decodeValid(w, r, &received); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user, username, received)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, created, http.StatusCreated)
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, user, http.StatusOK)
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err = h.decodeValid(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), user, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
