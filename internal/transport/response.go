package transport

import (
	"net/http"

	"github.com/go-chi/render"
)

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	render.Status(r, status)
	render.JSON(w, r, payload)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, message string, details map[string]string) {
	WriteJSON(w, r, status, ErrorResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}
