package bot

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitecraft-ai/sitecraft/pkg/logger"
)

// WebhookHandler exposes the inbound event surface over HTTP. The chat
// transport adapter posts decoded chat events here.
type WebhookHandler struct {
	controller *Controller
	logger     *logger.Logger
}

// NewWebhookHandler creates the inbound event handler.
func NewWebhookHandler(controller *Controller, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{controller: controller, logger: log}
}

// commandEvent is a slash command from a user.
type commandEvent struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// textEvent is a free-text message from a user.
type textEvent struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

// callbackEvent is a button selection, with the opaque selection code.
type callbackEvent struct {
	UserID    int64  `json:"user_id"`
	MessageID int    `json:"message_id"`
	Data      string `json:"data"`
}

// Routes returns the router for the inbound event endpoints.
func (h *WebhookHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/command", h.command)
	r.Post("/text", h.text)
	r.Post("/callback", h.callback)
	return r
}

func (h *WebhookHandler) command(w http.ResponseWriter, r *http.Request) {
	var ev commandEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.controller.HandleCommand(r.Context(), ev.UserID, ev.Name)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *WebhookHandler) text(w http.ResponseWriter, r *http.Request) {
	var ev textEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.controller.HandleText(r.Context(), ev.UserID, ev.Text)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *WebhookHandler) callback(w http.ResponseWriter, r *http.Request) {
	var ev callbackEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.controller.HandleCallback(r.Context(), ev.UserID, ev.MessageID, ev.Data)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}
