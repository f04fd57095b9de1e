package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/talentscout/hiring-assistant/internal/ai"
	"github.com/talentscout/hiring-assistant/internal/prompt"
	"github.com/talentscout/hiring-assistant/internal/util"
	"go.uber.org/zap"
)

const (
	defaultMaxLogLength = 200

	minQuestions = 3
	maxQuestions = 5
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Asker asks the remote model for tech-stack-tailored screening questions.
// It implements ai.QuestionSource.
type Asker struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewAsker(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Asker {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Asker{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Questions builds the tech-question prompt, queries the model and parses the
// response into a bounded question list. Any failure, including an
// unparseable response, is returned to the caller so it can fall back to the
// deterministic bank.
func (a *Asker) Questions(ctx context.Context, req *ai.Request) ([]string, error) {
	if a == nil || a.generator == nil {
		return nil, ai.ErrUnavailable
	}
	if req == nil || req.Profile == nil {
		return nil, fmt.Errorf("candidate profile is required")
	}

	text := prompt.TechQuestions(req.Profile, req.History, req.Language)

	a.logger.Debug("gemini question request",
		zap.Int("prompt_length", utf8.RuneCountInString(text)),
		zap.String("prompt_preview", util.TruncateForLog(text, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, text)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini question response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, a.maxLogLen)),
	)

	questions, err := parseQuestionList(raw)
	if err != nil {
		return nil, err
	}

	return questions, nil
}

var listMarker = regexp.MustCompile(`^(?:\d+[.)]\s*|[-*•]\s*)`)

// parseQuestionList turns the model output into a clean question list. The
// model is told to return a plain numbered list, but code fences, bullets and
// stray blank lines are tolerated. Fewer than three parsed questions is an
// error so the caller can fall back.
func parseQuestionList(raw string) ([]string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = stripCodeFence(cleaned)

	var questions []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		line = listMarker.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
		if len(questions) == maxQuestions {
			break
		}
	}

	if len(questions) < minQuestions {
		return nil, fmt.Errorf("parsed %d questions from model response, need at least %d", len(questions), minQuestions)
	}

	return questions, nil
}

func stripCodeFence(raw string) string {
	if !strings.HasPrefix(raw, "```") {
		return raw
	}

	raw = strings.TrimPrefix(raw, "```text")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSpace(raw)
	if idx := strings.LastIndex(raw, "```"); idx != -1 {
		raw = raw[:idx]
	}
	return strings.TrimSpace(raw)
}
