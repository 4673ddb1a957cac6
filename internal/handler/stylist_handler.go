package handler

import (
	"encoding/json"
	"net/http"

	"ethnic-elite/internal/model"
	"ethnic-elite/internal/service"

	"github.com/rs/zerolog"
)

// StylistHandler handles stylist chat HTTP requests.
type StylistHandler struct {
	service service.StylistService
	logger  zerolog.Logger
}

// NewStylistHandler creates a new stylist handler.
func NewStylistHandler(service service.StylistService, logger zerolog.Logger) *StylistHandler {
	return &StylistHandler{
		service: service,
		logger:  logger.With().Str("handler", "stylist").Logger(),
	}
}

// sendMessageRequest is the payload for a shopper chat message.
type sendMessageRequest struct {
	Text string `json:"text"`
}

// Messages handles GET /api/stylist/messages requests.
func (h *StylistHandler) Messages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	messages, err := h.service.Messages(r.Context(), sessionID(r))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// Send handles POST /api/stylist/messages requests. The response is the
// updated chat log, ending with the assistant's reply.
func (h *StylistHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: model.ErrCodeInvalidJSON, Message: "invalid request body"})
		return
	}

	messages, err := h.service.Send(r.Context(), sessionID(r), req.Text)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
