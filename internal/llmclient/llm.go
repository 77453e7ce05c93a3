// Package llmclient wraps the model invocation boundary: ordered role-tagged
// messages in, response text out. Cross-cutting concerns (caching) are
// applied as wrappers around the Client interface.
package llmclient

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("llmclient: empty response from model")

// Message is one role-tagged prompt message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is a chat-completion backend. Implementations do not retry; a slow
// or failing provider surfaces as an error to the caller.
type Client interface {
	Name() string
	ChatCompletion(ctx context.Context, messages []Message, maxTokens int) (string, error)
}
