package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"watchparty/internal/domain"
)

// regencyPersona is the fixed instruction sent with every translation
// request. The upstream model does all the work; this service only guards
// input and maps failures.
const regencyPersona = `You are a Regency-era English translator, inspired by the world of Bridgerton and the writing style of Lady Whistledown.

Your task: Rewrite the user's modern English text into eloquent, witty Regency-era English (early 1800s style).

Rules:
- Use formal, flowery, dramatic language typical of the Regency period
- Add wit, charm, and subtle sass — as Lady Whistledown would
- Use period-appropriate vocabulary (e.g., "I dare say", "most vexing", "the ton", "pray tell", "one must confess")
- Keep the core meaning intact but make it delightfully dramatic
- Keep the response to 1-3 paragraphs max
- Do NOT add any modern language or explanations — stay fully in character
- If the text is a greeting, respond with an appropriately grand Regency greeting
- End with a flourish when appropriate`

// fallbackTranslation is returned when the upstream answers with an empty
// completion.
const fallbackTranslation = "The translator is at a loss for words."

type translateService struct {
	client         domain.CompletionClient
	contextTimeout time.Duration
}

// NewTranslateService creates a TranslateService proxying the given
// completion client. client may be nil when no API key is configured;
// Translate then fails with ErrTranslatorUnconfigured.
func NewTranslateService(client domain.CompletionClient, timeout time.Duration) domain.TranslateService {
	return &translateService{client: client, contextTimeout: timeout}
}

func (s *translateService) Translate(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("text to translate is required: %w", domain.ErrInvalidInput)
	}
	if s.client == nil {
		return "", domain.ErrTranslatorUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	out, err := s.client.Complete(ctx, regencyPersona, text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if strings.TrimSpace(out) == "" {
		return fallbackTranslation, nil
	}
	return out, nil
}
