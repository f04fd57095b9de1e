package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/talentscout/hiring-assistant/internal/profile"
)

func completeCandidate(t *testing.T) *profile.Candidate {
	t.Helper()

	candidate := profile.New()
	sets := []struct {
		field profile.Field
		value profile.Value
	}{
		{profile.FieldFullName, profile.Text("Jane Doe")},
		{profile.FieldEmail, profile.Email("jane@example.com")},
		{profile.FieldPhone, profile.Phone("+14155550100")},
		{profile.FieldExperienceYears, profile.Years(3)},
		{profile.FieldDesiredPosition, profile.Text("Backend Engineer")},
		{profile.FieldLocation, profile.Text("Berlin")},
		{profile.FieldTechStack, profile.Stack{"python", "django", "postgresql"}},
	}
	for _, s := range sets {
		if err := candidate.Set(s.field, s.value); err != nil {
			t.Fatalf("setting %s: %v", s.field, err)
		}
	}
	return candidate
}

func TestSystemPrompt(t *testing.T) {
	candidate := completeCandidate(t)
	history := []Turn{
		{Speaker: "agent", Text: "Could you share your full name?"},
		{Speaker: "user", Text: "Jane Doe"},
	}

	out := System(candidate, history)

	if strings.Contains(out, "{{") {
		t.Fatalf("unsubstituted placeholder in system prompt: %s", out)
	}
	if !strings.Contains(out, "jane@example.com") {
		t.Fatalf("expected profile json in prompt")
	}
	if !strings.Contains(out, "user: Jane Doe") {
		t.Fatalf("expected rendered history in prompt")
	}
}

func TestTechQuestionsPrompt(t *testing.T) {
	candidate := completeCandidate(t)

	out := TechQuestions(candidate, nil, "de")

	if strings.Contains(out, "{{") {
		t.Fatalf("unsubstituted placeholder in prompt: %s", out)
	}
	if !strings.Contains(out, "python, django, postgresql") {
		t.Fatalf("expected tech stack in prompt, got: %s", out)
	}
	if !strings.Contains(out, "language code: de") {
		t.Fatalf("expected language code in prompt")
	}
	if !strings.Contains(out, "(no messages yet)") {
		t.Fatalf("expected empty-history placeholder")
	}
}

func TestTechQuestionsPromptDefaultsLanguage(t *testing.T) {
	out := TechQuestions(completeCandidate(t), nil, "  ")
	if !strings.Contains(out, "language code: en") {
		t.Fatalf("expected default language code, got: %s", out)
	}
}

func TestHistoryWindowBounded(t *testing.T) {
	var history []Turn
	for i := 0; i < 20; i++ {
		history = append(history, Turn{Speaker: "user", Text: fmt.Sprintf("message-%d", i)})
	}

	out := TechQuestions(completeCandidate(t), history, "en")

	if strings.Contains(out, "message-11") {
		t.Fatalf("history window should drop old turns")
	}
	for i := 12; i < 20; i++ {
		if !strings.Contains(out, fmt.Sprintf("message-%d", i)) {
			t.Fatalf("expected recent turn message-%d in prompt", i)
		}
	}
}
