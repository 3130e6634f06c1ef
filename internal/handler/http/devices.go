package http

import (
	"net/http"

	"github.com/MKhiriev/go-message-keeper/internal/validators"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	user, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	devices, err := h.services.DeviceService.ListDevices(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]models.DeviceResponse, 0, len(devices))
	for _, device := range devices {
		response = append(response, device.ToResponse())
	}
	writeOK(w, r, response, http.StatusOK)
}

func (h *Handler) createDevice(w http.ResponseWriter, r *http.Request) {
	user, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var received models.ReceivedDevice
	if err = h.decodeValid(w, r, &received); err != nil {
		writeError(w, r, err)
		return
	}

	device, err := h.services.DeviceService.CreateDevice(r.Context(), user.ID, received)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, device.ToResponse(), http.StatusCreated)
}

func (h *Handler) updateDevice(w http.ResponseWriter, r *http.Request) {
	user, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.DeviceUpdate
	if err = h.decodeValid(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	device, err := h.services.DeviceService.UpdateDevice(r.Context(), user.ID, chi.URLParam(r, "device_name"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r, device.ToResponse(), http.StatusOK)
}

// deleteDevices takes a JSON array of device names. Deletion happens in the
// background, hence 202.
func (h *Handler) deleteDevices(w http.ResponseWriter, r *http.Request) {
	user, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var names []string
	if err = decodeJSON(w, r, &names); err != nil {
		writeError(w, r, err)
		return
	}
	if err = validators.ValidateDeviceNames(names); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.DeviceService.DeleteDevices(r.Context(), user.ID, names); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
