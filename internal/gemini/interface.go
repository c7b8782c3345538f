package gemini

import "context"

// Client sends a prompt to Gemini and returns the response text.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
