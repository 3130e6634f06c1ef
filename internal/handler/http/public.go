package http

import (
	"net/http"
)

// getLinkedMessage serves GET /messages/{message_id}?link=.
func (h *Handler) getLinkedMessage(w http.ResponseWriter, r *http.Request) {
	link, err := messageLink(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message, err := h.services.MessageService.GetLinkedMessage(r.Context(), link)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, message, http.StatusOK)
}

func (h *Handler) downloadLinkedFile(w http.ResponseWriter, r *http.Request) {
	link, err := messageLink(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	fileName, err := fileNameParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	file, content, err := h.services.FileService.DownloadLinkedFile(r.Context(), link, fileName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	streamFile(w, r, file, content)
}

// lookupLink returns the link named by ?link= without checking its expiry.
// Instances in remote auth mode call it to resolve links they do not store.
func (h *Handler) lookupLink(w http.ResponseWriter, r *http.Request) {
	messageID, err := messageIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	link, err := h.services.LinkService.GetLink(r.Context(), messageID, r.URL.Query().Get(linkQueryParam))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, link.ToResponse(), http.StatusOK)
}
