package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"tripdash/pkg/apperror"

	"github.com/rs/zerolog/log"
)

type SuccessResponse[T any] struct {
	Success   bool   `json:"success"`
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
	Data      T      `json:"data,omitempty"` // Omit if nil
}

type Error struct {
	Kind    apperror.Kind `json:"kind"` // this is ErrorCode not httpCode, its like VALIDATION_FAILED
	Message string        `json:"message,omitempty"`
	Details any           `json:"details,omitempty"` // slice or map
}

type ErrorResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"request_id"`
	Error     Error  `json:"error"`
}

// FailureEnvelope is the shape the backend uses for failures; proxy routes
// answer with it when the backend cannot be reached.
type FailureEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WriteJSON[T any](w http.ResponseWriter, status int, reqID string, message string, data T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	res := SuccessResponse[T]{
		Success:   true,
		RequestID: reqID,
		Message:   message,
		Data:      data,
	}

	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Error().Err(err).Msg("error in encoding Success Response and sending it to client")
	}
}

func FromAppError(w http.ResponseWriter, reqID string, err error) {

	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = &apperror.Error{
			Kind:    apperror.Internal,
			Message: "internal server error",
		}
	}

	httpStatus := apperror.HTTPStatus(appErr)
	WriteError(w, httpStatus, reqID, appErr.Kind, appErr.Message)
}

func WriteError(w http.ResponseWriter, httpStatusCode int, reqID string, code apperror.Kind, message string) {
	writeError(w, httpStatusCode, reqID, Error{Kind: code, Message: message})
}

func WriteValidationError(w http.ResponseWriter, reqID string, fields []FieldError) {
	writeError(w, http.StatusBadRequest, reqID, Error{
		Kind:    apperror.InvalidInput,
		Message: "request validation failed",
		Details: fields,
	})
}

func writeError(w http.ResponseWriter, httpStatusCode int, reqID string, e Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)

	res := ErrorResponse{
		Success:   false,
		RequestID: reqID,
		Error:     e,
	}

	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Error().Err(err).Msg("error in encoding Error Response and sending it to client")
	}
}

func WriteFailure(w http.ResponseWriter, httpStatusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)

	if err := json.NewEncoder(w).Encode(FailureEnvelope{Success: false, Message: message}); err != nil {
		log.Error().Err(err).Msg("error in encoding Failure Envelope and sending it to client")
	}
}
