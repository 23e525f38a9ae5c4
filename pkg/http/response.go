package http

import (
	"encoding/json"
	"net/http"

	apperrors "agencysite/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

// ValidationResponse is the body of every field-level rejection.
type ValidationResponse struct {
	Errors []apperrors.FieldError `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data any `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError renders err. Internal failures never expose their cause.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)

	switch appErr.Code {
	case apperrors.CodeValidation:
		fields := appErr.Fields
		if fields == nil {
			fields = []apperrors.FieldError{}
		}
		return WriteJSON(w, http.StatusBadRequest, ValidationResponse{Errors: fields})
	case apperrors.CodeInternal:
		return WriteInternalError(w)
	}

	status := appErr.StatusCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return WriteJSON(w, status, ErrorResponse{
		Error:   appErr.Message,
		Details: appErr.Details,
	})
}

func WriteInternalError(w http.ResponseWriter) error {
	return WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: apperrors.InternalMessage})
}

func WriteMessage(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data})
}
