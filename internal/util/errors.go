// internal/util/errors.go
// Definisi error aplikasi standar + mapping ke HTTP status

package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string // e.g., "bad_input", "not_found", "conflict", "unauthorized", "internal"
	Message string
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func BadInput(msg string) AppError     { return AppError{Code: "bad_input", Message: msg} }
func NotFound(msg string) AppError     { return AppError{Code: "not_found", Message: msg} }
func Conflict(msg string) AppError     { return AppError{Code: "conflict", Message: msg} }
func Unauthorized(msg string) AppError { return AppError{Code: "unauthorized", Message: msg} }
func Unavailable(msg string) AppError  { return AppError{Code: "unavailable", Message: msg} }
func Internal(msg string) AppError     { return AppError{Code: "internal", Message: msg} }

// StatusOf memetakan code AppError ke HTTP status; error lain = 500.
func StatusOf(err error) int {
	var ae AppError
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Code {
	case "bad_input":
		return http.StatusBadRequest
	case "not_found":
		return http.StatusNotFound
	case "conflict":
		return http.StatusConflict
	case "unauthorized":
		return http.StatusUnauthorized
	case "unavailable":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON menulis payload JSON dengan status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError menulis {"error": code, "message": ...}. Error non-AppError tidak
// membocorkan detail internal.
func WriteError(w http.ResponseWriter, err error) {
	var ae AppError
	if !errors.As(err, &ae) {
		ae = Internal("internal error")
	}
	WriteJSON(w, StatusOf(ae), map[string]string{
		"error":   ae.Code,
		"message": ae.Message,
	})
}
