package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrEmptyReply is returned when Gemini answers without any usable text.
var ErrEmptyReply = errors.New("gemini returned no text")

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(apiKey, modelName string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("missing Gemini API key")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Generate sends prompt as the only text part and returns the model's text.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return replyFrom(resp)
}

// replyFrom turns a Gemini response into the reply text, treating a response
// without text as a failure.
func replyFrom(resp *genai.GenerateContentResponse) (string, error) {
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
		if reason := resp.Candidates[0].FinishReason; reason != genai.FinishReasonStop {
			log.Printf("WARNING: Gemini stopped due to %s", reason)
		}
	}

	text := extractText(resp)
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

// extractText reads the text parts of the first candidate only.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return ""
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return ""
	}

	var text strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return text.String()
}

// UnavailableGenerator stands in for Gemini when the client could not be
// created. Every call fails with Err.
type UnavailableGenerator struct {
	Err error
}

func (u UnavailableGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("Gemini client unavailable: %w", u.Err)
}
