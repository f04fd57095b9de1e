package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"github.com/talentscout/hiring-assistant/internal/profile"
)

//go:embed system.md
var systemTemplate string

//go:embed tech_questions.md
var techQuestionsTemplate string

// historyWindow bounds how many recent turns are rendered into a prompt.
const historyWindow = 8

// Turn is a single rendered conversation line for prompt assembly.
type Turn struct {
	Speaker string
	Text    string
}

// System renders the system prompt: role, guardrails, the running candidate
// profile and the recent conversation window.
func System(candidate *profile.Candidate, history []Turn) string {
	template := systemTemplate
	if strings.TrimSpace(template) == "" {
		template = "You are TalentScout, a hiring assistant.\n\nProfile:\n{{PROFILE_JSON}}\n\nConversation:\n{{HISTORY}}"
	}

	out := strings.ReplaceAll(template, "{{PROFILE_JSON}}", profileJSON(candidate))
	out = strings.ReplaceAll(out, "{{HISTORY}}", renderHistory(history))
	return out
}

// TechQuestions renders the question-generation prompt for the remote model.
// The language code tells the model which language to mirror.
func TechQuestions(candidate *profile.Candidate, history []Turn, language string) string {
	template := techQuestionsTemplate
	if strings.TrimSpace(template) == "" {
		template = "Tech stack: {{TECH_STACK}}\n\nCreate 3 to 5 short technical questions as a numbered list."
	}

	techStack := ""
	if stack, ok := candidate.TechStack(); ok {
		techStack = stack.String()
	}

	if language = strings.TrimSpace(language); language == "" {
		language = "en"
	}

	out := strings.ReplaceAll(template, "{{TECH_STACK}}", techStack)
	out = strings.ReplaceAll(out, "{{PROFILE_JSON}}", profileJSON(candidate))
	out = strings.ReplaceAll(out, "{{HISTORY}}", renderHistory(history))
	out = strings.ReplaceAll(out, "{{LANGUAGE}}", language)
	return out
}

func profileJSON(candidate *profile.Candidate) string {
	if candidate == nil {
		candidate = profile.New()
	}

	pretty, err := json.MarshalIndent(candidate.Snapshot(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(pretty)
}

func renderHistory(history []Turn) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	if len(history) == 0 {
		return "(no messages yet)"
	}

	lines := make([]string, 0, len(history))
	for _, turn := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Speaker, turn.Text))
	}
	return strings.Join(lines, "\n")
}
