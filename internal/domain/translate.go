package domain

import (
	"context"
	"errors"
)

// Sentinel errors for the translator.
var (
	// ErrTranslatorUnconfigured means no API key is set for the upstream
	// completion service.
	ErrTranslatorUnconfigured = errors.New("translator is not configured")
	// ErrUpstream means the upstream completion service failed.
	ErrUpstream = errors.New("upstream service unavailable")
)

// CompletionClient calls an external text-completion endpoint with a
// system instruction and a user prompt (infrastructure port).
type CompletionClient interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// TranslateService rewrites modern text in Regency-era style.
type TranslateService interface {
	Translate(ctx context.Context, text string) (string, error)
}
