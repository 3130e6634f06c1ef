package http

import (
	"net/http"

	"github.com/MKhiriev/go-message-keeper/internal/utils"
)

// notFound answers unknown paths and unsupported methods alike.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, "Not Found")
}
