package ai

import (
	"context"
	"errors"

	"github.com/talentscout/hiring-assistant/internal/profile"
	"github.com/talentscout/hiring-assistant/internal/prompt"
)

// ErrUnavailable marks the remote model capability as absent: no credential,
// no client, or a provider that could not be constructed. Callers treat it
// exactly like a transport failure and take the deterministic path.
var ErrUnavailable = errors.New("remote model is unavailable")

// Generator produces text from a prompt. The Gemini client implements it;
// tests substitute stubs.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Request carries everything a question source needs about the session.
type Request struct {
	Profile  *profile.Candidate
	History  []prompt.Turn
	Language string
}

// QuestionSource produces 3 to 5 screening questions for a completed profile.
// The remote implementation may fail; the bank implementation never does.
type QuestionSource interface {
	Questions(ctx context.Context, req *Request) ([]string, error)
}
