package web

import (
	"encoding/json"
	"net/http"
)

// Envelope es el sobre uniforme de toda la API:
// {status: "success"|"error", payload?, message?, error?}.
// Antes cada módulo duplicaba su writeJSON; con cinco módulos ya
// conviene el helper compartido.
type Envelope struct {
	Status  string `json:"status"`
	Payload any    `json:"payload,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success responde {status: success, payload}.
func Success(w http.ResponseWriter, status int, payload any) {
	JSON(w, status, Envelope{Status: "success", Payload: payload})
}

// SuccessMessage responde {status: success, message} sin payload.
func SuccessMessage(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Status: "success", Message: message})
}

// Fail responde {status: error, error}.
func Fail(w http.ResponseWriter, status int, errMsg string) {
	JSON(w, status, Envelope{Status: "error", Error: errMsg})
}

// FailMessage responde {status: error, message} (lo usa mocks, que en
// validación devuelve message en vez de error).
func FailMessage(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Status: "error", Message: message})
}
