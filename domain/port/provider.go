package port

import (
	"context"

	"lingua-proxy/domain/entity"
)

// ChatProvider calls the upstream chat-completion service. jsonMode asks the
// provider for JSON-object output when it supports that; the returned content
// is still free-form text and goes through the output parser.
type ChatProvider interface {
	Complete(ctx context.Context, messages []entity.PromptMessage, jsonMode bool) (string, error)
}

// SpeechProvider calls the upstream text-to-speech service.
type SpeechProvider interface {
	Synthesize(ctx context.Context, text, voice string) (*entity.SpeechResult, error)
}
