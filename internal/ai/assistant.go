package ai

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by generators that have no backing model.
var ErrUnavailable = errors.New("text generation is not configured")

// ContentGenerator produces free text for a prompt. The system message may be empty.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// Unavailable is a ContentGenerator that always fails with ErrUnavailable.
// Callers fall back to their templated responses.
type Unavailable struct{}

func (Unavailable) GenerateContent(context.Context, string, string) (string, error) {
	return "", ErrUnavailable
}

// Model returns an empty identifier so logs do not claim a model is in use.
func (Unavailable) Model() string { return "" }
