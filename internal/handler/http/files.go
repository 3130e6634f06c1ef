package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/validators"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/go-chi/chi/v5"
)

func fileNameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "file_name")
	if err := validators.ValidateFileName(name); err != nil {
		return "", err
	}
	return name, nil
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	files, err := h.services.FileService.ListFiles(r.Context(), user.ID, messageID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, files, http.StatusOK)
}

// uploadFile stores the raw request body as the named file. The content type
// is taken from the request header and sniffed when absent.
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	fileName, err := fileNameParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	upload := models.FileUpload{
		FileName:    fileName,
		ContentType: r.Header.Get("Content-Type"),
		Content:     http.MaxBytesReader(w, r.Body, h.maxUploadSize),
	}

	file, err := h.services.FileService.UploadFile(r.Context(), user.ID, messageID, upload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, file, http.StatusCreated)
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	fileName, err := fileNameParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	file, content, err := h.services.FileService.DownloadFile(r.Context(), user.ID, messageID, fileName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	streamFile(w, r, file, content)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	user, messageID, err := principalAndMessage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	fileName, err := fileNameParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.FileService.DeleteFile(r.Context(), user.ID, messageID, fileName); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// streamFile copies content to the response and closes it. Once the header
// is sent a failed copy can only be logged.
func streamFile(w http.ResponseWriter, r *http.Request, file models.File, content io.ReadCloser) {
	defer content.Close()

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Last-Modified", file.SetAt.UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content); err != nil {
		logger.FromRequest(r).Err(err).
			Str("message_id", file.MessageID.String()).
			Str("file_name", file.FileName).
			Msg("failed to stream file content")
	}
}
