package handler

import (
	"net/http"
	"time"

	"ethnic-elite/internal/session"

	"github.com/rs/zerolog"
)

// SessionHandler handles session lifecycle requests.
type SessionHandler struct {
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessions *session.Manager, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger.With().Str("handler", "session").Logger(),
	}
}

// sessionResponse is the payload for a created session.
type sessionResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// Create handles POST /api/sessions requests.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess := h.sessions.Create()
	writeJSON(w, http.StatusCreated, sessionResponse{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt.UTC().Format(time.RFC3339),
	})
}
