package http

import (
	"net/http"

	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

func targetUserParam(r *http.Request) (uuid.UUID, error) {
	return uuidParam(r, "user_id")
}

func (h *Handler) listPermissions(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	permissions, err := h.services.PermissionService.ListPermissions(r.Context(), user.ID, messageID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]models.PermissionResponse, 0, len(permissions))
	for _, permission := range permissions {
		response = append(response, permission.ToResponse())
	}
	writeOK(w, r, response, http.StatusOK)
}

func (h *Handler) getPermission(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	targetID, err := targetUserParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	permission, err := h.services.PermissionService.GetPermission(r.Context(), user.ID, messageID, targetID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, permission.ToResponse(), http.StatusOK)
}

// setPermission grants or replaces the permissions of another user.
func (h *Handler) setPermission(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	targetID, err := targetUserParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var received models.ReceivedPermission
	if err = h.decodeValid(w, r, &received); err != nil {
		writeError(w, r, err)
		return
	}

	permission, err := h.services.PermissionService.SetPermission(r.Context(), user.ID, messageID, targetID, received.Permissions)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, permission.ToResponse(), http.StatusOK)
}

func (h *Handler) deletePermission(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	targetID, err := targetUserParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PermissionService.DeletePermission(r.Context(), user.ID, messageID, targetID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
