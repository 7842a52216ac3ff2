// Package ai provides the conversational backends the chat session talks to.
// The proxy client mirrors the proxy server's /api/ai contract; the anthropic
// and gemini clients call their providers directly with local keys.
package ai

import "context"

// Client generates one assistant reply from a system prompt and user message.
type Client interface {
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Providers selectable via ai.provider.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)
