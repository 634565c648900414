package handlers

//go:generate mockgen -destination=./generator_mock_test.go -package=handlers -source=assistant.go

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"assistant-relay/internal/models"
)

const (
	MissingMessageReply = "Message is required."
	FallbackReply       = "Sorry, AI is currently unavailable. Please try again later."

	maxRequestBody = 1 << 20
)

// replyGenerator is the text-generation backend behind the assistant.
type replyGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type AssistantHandler struct {
	generator replyGenerator
}

func NewAssistantHandler(generator replyGenerator) *AssistantHandler {
	return &AssistantHandler{generator: generator}
}

func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req models.AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, models.AssistantResponse{Reply: MissingMessageReply})
		return
	}

	// A client hanging up must not abort the call already sent to the model.
	ctx := context.WithoutCancel(r.Context())

	reply, err := h.generator.Generate(ctx, req.Message)
	if err != nil {
		log.Printf("⚠️ Gemini failed (request_id=%s): %v", r.Header.Get("X-Request-ID"), err)
		writeJSON(w, http.StatusOK, models.AssistantResponse{Reply: FallbackReply})
		return
	}

	writeJSON(w, http.StatusOK, models.AssistantResponse{Reply: reply})
}
