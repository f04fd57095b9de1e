package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/talentscout/hiring-assistant/internal/ai"
	"github.com/talentscout/hiring-assistant/internal/extract"
	"github.com/talentscout/hiring-assistant/internal/language"
	"github.com/talentscout/hiring-assistant/internal/profile"
	"github.com/talentscout/hiring-assistant/internal/prompt"
	"github.com/talentscout/hiring-assistant/internal/sentiment"
	"go.uber.org/zap"
)

// Speaker identifies who produced a turn.
type Speaker string

const (
	SpeakerUser  Speaker = "user"
	SpeakerAgent Speaker = "agent"
)

// EndReason records why a session ended.
type EndReason string

const (
	EndCompleted EndReason = "completed"
	EndUserExit  EndReason = "user_exit"
)

// Turn is one message in the conversation. Sentiment is set on user turns only.
type Turn struct {
	Speaker   Speaker
	Text      string
	Sentiment sentiment.Tone
}

// State is the full conversation state for one session. The engine is
// stateless between calls; the caller owns the state and passes it into every
// HandleTurn call.
type State struct {
	Turns     []Turn
	Candidate *profile.Candidate

	// Cursor indexes profile.Order; len(profile.Order) means collection is done.
	Cursor int

	Ended  bool
	Reason EndReason

	// Questions is the attached question set, immutable once produced.
	Questions []string

	// Language is the detected language code of the latest user message.
	Language string
}

// NewState starts a session at the first field with the opening greeting
// already recorded as an agent turn.
func NewState() *State {
	state := &State{
		Candidate: profile.New(),
		Language:  "en",
	}
	state.appendAgent(Greeting)
	return state
}

func (s *State) appendAgent(text string) {
	s.Turns = append(s.Turns, Turn{Speaker: SpeakerAgent, Text: text})
}

func (s *State) appendUser(text string, tone sentiment.Tone) {
	s.Turns = append(s.Turns, Turn{Speaker: SpeakerUser, Text: text, Sentiment: tone})
}

// promptHistory renders the conversation for prompt assembly.
func (s *State) promptHistory() []prompt.Turn {
	history := make([]prompt.Turn, 0, len(s.Turns))
	for _, turn := range s.Turns {
		history = append(history, prompt.Turn{Speaker: string(turn.Speaker), Text: turn.Text})
	}
	return history
}

var exitPattern = regexp.MustCompile(`(?i)\b(exit|quit|stop|bye|goodbye|end)\b`)

// opportunisticFields are pattern-based fields that may be filled from any
// turn, not only when their cursor is active.
var opportunisticFields = []profile.Field{
	profile.FieldEmail,
	profile.FieldPhone,
	profile.FieldExperienceYears,
}

// Engine drives the intake dialogue. The remote question source may be nil
// when no model is configured; the bank source must always be present.
type Engine struct {
	remote ai.QuestionSource
	bank   ai.QuestionSource
	logger *zap.Logger
}

func New(remote, bank ai.QuestionSource, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{remote: remote, bank: bank, logger: logger}
}

// HandleTurn processes one user message against the session state and returns
// the agent reply. It never fails: malformed input yields a clarifying
// re-prompt and question generation always succeeds via the deterministic
// fallback.
func (e *Engine) HandleTurn(ctx context.Context, state *State, text string) string {
	tone := sentiment.Classify(text)
	state.Language = language.Detect(text)
	state.appendUser(text, tone)

	reply := e.reply(ctx, state, text, tone)
	state.appendAgent(reply)
	return reply
}

func (e *Engine) reply(ctx context.Context, state *State, text string, tone sentiment.Tone) string {
	if state.Ended {
		return closingAck(state.Reason)
	}

	// Exit keywords take priority over everything else for the turn.
	if exitPattern.MatchString(text) {
		state.Ended = true
		state.Reason = EndUserExit
		e.logger.Info("session ended by user",
			zap.Int("turns", len(state.Turns)),
			zap.Bool("profile_complete", state.Candidate.Complete()),
		)
		return farewell(tone)
	}

	field := profile.Order[state.Cursor]
	value, err := extract.Extract(field, text)
	stored := false
	if err == nil {
		if setErr := state.Candidate.Set(field, value); setErr == nil {
			stored = true
			e.logger.Debug("field extracted",
				zap.String("field", string(field)),
				zap.String("sentiment", string(tone)),
			)
		} else {
			e.logger.Warn("extracted value rejected by profile",
				zap.String("field", string(field)),
				zap.Error(setErr),
			)
		}
	}

	e.enrich(state, text)
	e.advanceCursor(state)

	if state.Candidate.Complete() {
		return e.finish(ctx, state)
	}

	next := profile.Order[state.Cursor]
	if !stored && next == field {
		return clarifyPrompt(field)
	}

	return acknowledge(field) + " " + askPrompt(next)
}

// yearsUnitPattern gates opportunistic experience extraction: out of turn, a
// bare number is too ambiguous, so the unit must be spelled out.
var yearsUnitPattern = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:years?|yrs?)\b`)

// enrich opportunistically fills later pattern-based fields from the same
// turn, so "jane@example.com, +1 415 555 0100" records both at once.
func (e *Engine) enrich(state *State, text string) {
	for _, field := range opportunisticFields {
		if fieldIndex(field) <= state.Cursor || state.Candidate.Filled(field) {
			continue
		}
		target := text
		if field == profile.FieldExperienceYears {
			// The in-turn rule anchors at the start of the message; out of
			// turn, locate an explicit "N years" mention anywhere.
			match := yearsUnitPattern.FindString(text)
			if match == "" {
				continue
			}
			target = match
		}
		value, err := extract.Extract(field, target)
		if err != nil {
			continue
		}
		if err := state.Candidate.Set(field, value); err == nil {
			e.logger.Debug("field extracted opportunistically", zap.String("field", string(field)))
		}
	}
}

// advanceCursor moves the cursor past every already-filled field.
func (e *Engine) advanceCursor(state *State) {
	for state.Cursor < len(profile.Order) && state.Candidate.Filled(profile.Order[state.Cursor]) {
		state.Cursor++
	}
}

// finish enters the question-generation phase: the remote source first, the
// deterministic bank on any failure, then the terminal completed state.
func (e *Engine) finish(ctx context.Context, state *State) string {
	questions := e.generateQuestions(ctx, state)

	state.Questions = questions
	state.Ended = true
	state.Reason = EndCompleted

	var b strings.Builder
	b.WriteString("Thanks, I have all your details. Based on your tech stack, please share brief answers to these questions:\n")
	for i, question := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, question)
	}
	b.WriteString("We will review your answers and get back to you with next steps. Thank you for your time!")
	return b.String()
}

func (e *Engine) generateQuestions(ctx context.Context, state *State) []string {
	req := &ai.Request{
		Profile:  state.Candidate,
		History:  state.promptHistory(),
		Language: state.Language,
	}

	if e.remote != nil {
		questions, err := e.remote.Questions(ctx, req)
		if err == nil {
			e.logger.Info("questions generated by remote model", zap.Int("count", len(questions)))
			return questions
		}
		// Remote failures are never user-visible; the bank always answers.
		e.logger.Warn("remote question generation failed, falling back to bank", zap.Error(err))
	} else {
		e.logger.Debug("remote model not configured, using question bank")
	}

	questions, err := e.bank.Questions(ctx, req)
	if err != nil {
		// The bank contract is infallible; guard anyway.
		e.logger.Error("question bank failed", zap.Error(err))
		return nil
	}

	e.logger.Info("questions selected from bank", zap.Int("count", len(questions)))
	return questions
}

func fieldIndex(field profile.Field) int {
	for i, f := range profile.Order {
		if f == field {
			return i
		}
	}
	return len(profile.Order)
}
