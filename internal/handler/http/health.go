package http

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeOK(w, r, healthResponse{Status: "ok"}, http.StatusOK)
}
