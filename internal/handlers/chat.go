package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"fashionchat/internal/models"
)

// responder generates a reply for a message with its conversation history.
type responder interface {
	Respond(ctx context.Context, message string, history []models.ChatMessage) (string, map[string]interface{}, error)
}

type ChatHandler struct {
	responder responder
}

func NewChatHandler(responder responder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

// Chat answers a single chat turn. An empty message is still answered:
// the responder owns the "say something" reply, matching how the
// assistant behaves rather than rejecting the request.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	log.Printf("Received message (history length %d)", len(req.History))

	reply, metadata, err := h.responder.Respond(r.Context(), req.Message, req.History)
	if err != nil {
		log.Printf("Failed to generate response: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("AI_ERROR", "Error processing your request", r))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response: reply,
		Metadata: metadata,
	})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}
