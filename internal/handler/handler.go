package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ethnic-elite/internal/model"
	"ethnic-elite/internal/payment"

	"github.com/rs/zerolog"
)

// SessionHeader carries the shopper's session identifier.
const SessionHeader = "X-Session-ID"

// statusByCode maps domain error codes to HTTP statuses.
var statusByCode = map[string]int{
	model.ErrCodeSessionNotFound:       http.StatusNotFound,
	model.ErrCodeProductNotFound:       http.StatusNotFound,
	model.ErrCodeInvalidCategory:       http.StatusBadRequest,
	model.ErrCodeEmptyCart:             http.StatusBadRequest,
	model.ErrCodePaymentMethodRequired: http.StatusBadRequest,
	model.ErrCodeInvalidPaymentMethod:  http.StatusBadRequest,
	model.ErrCodeEmptyMessage:          http.StatusBadRequest,
	model.ErrCodeInvalidTransition:     http.StatusConflict,
	model.ErrCodeCheckoutBusy:          http.StatusConflict,
	model.ErrCodeStylistBusy:           http.StatusConflict,
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: model.ErrCodeInternalError, Message: message})
}

// writeDomainError translates domain and payment errors into JSON error
// responses; anything unrecognised becomes a 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status, ok := statusByCode[domainErr.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, model.ErrorResponse{Error: domainErr.Code, Message: domainErr.Message})
		return
	}

	var payErr *payment.Error
	if errors.As(err, &payErr) {
		writeJSON(w, http.StatusPaymentRequired, model.ErrorResponse{
			Error:   model.ErrCodePaymentFailed,
			Message: payErr.Message,
		})
		return
	}

	writeError(w, http.StatusInternalServerError, "internal error", logger)
}

// sessionID extracts the session identifier header.
func sessionID(r *http.Request) string {
	return r.Header.Get(SessionHeader)
}
