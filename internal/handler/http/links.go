package http

import (
	"net/http"

	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listLinks(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	links, err := h.services.LinkService.ListLinks(r.Context(), user.ID, messageID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]models.LinkResponse, 0, len(links))
	for _, link := range links {
		response = append(response, link.ToResponse())
	}
	writeOK(w, r, response, http.StatusOK)
}

func (h *Handler) createLink(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var received models.ReceivedMessageLink
	if err = h.decodeValid(w, r, &received); err != nil {
		writeError(w, r, err)
		return
	}

	link, err := h.services.LinkService.CreateLink(r.Context(), user.ID, messageID, received)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, link.ToResponse(), http.StatusCreated)
}

func (h *Handler) deleteLink(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.LinkService.DeleteLink(r.Context(), user.ID, messageID, chi.URLParam(r, "token")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
