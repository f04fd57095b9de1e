package extract

import (
	"errors"
	"testing"

	"github.com/talentscout/hiring-assistant/internal/profile"
)

func TestExtractEmail(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"plain address", "jane@example.com", "jane@example.com", true},
		{"case preserved", "Jane.Doe+hr@Example.COM", "Jane.Doe+hr@Example.COM", true},
		{"embedded in sentence", "my email is jane@example.com thanks", "jane@example.com", true},
		{"first match wins", "a@b.io or c@d.io", "a@b.io", true},
		{"no address", "no email here", "", false},
		{"missing domain", "jane@", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := Extract(profile.FieldEmail, tc.text)
			if !tc.ok {
				if !errors.Is(err, ErrUnrecognized) {
					t.Fatalf("expected ErrUnrecognized, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if value.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, value.String())
			}
		})
	}
}

func TestExtractEmailIdempotent(t *testing.T) {
	first, err := Extract(profile.FieldEmail, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := Extract(profile.FieldEmail, first.String())
	if err != nil {
		t.Fatalf("unexpected error on re-extraction: %v", err)
	}

	if first.String() != second.String() {
		t.Fatalf("re-extraction changed the value: %q vs %q", first.String(), second.String())
	}
}

func TestExtractPhone(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"international", "+1 415-555-0100", "+14155550100", true},
		{"parentheses", "(415) 555-0100", "4155550100", true},
		{"plain digits", "4155550100", "4155550100", true},
		{"embedded", "call me at +49 30 901820 please", "+4930901820", true},
		{"too short", "12345", "", false},
		{"too long", "12345678901234567890", "", false},
		{"words only", "no number", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := Extract(profile.FieldPhone, tc.text)
			if !tc.ok {
				if !errors.Is(err, ErrUnrecognized) {
					t.Fatalf("expected ErrUnrecognized, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if value.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, value.String())
			}
		})
	}
}

func TestExtractPhoneIdempotent(t *testing.T) {
	first, err := Extract(profile.FieldPhone, "+1 415 555 0100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := Extract(profile.FieldPhone, first.String())
	if err != nil {
		t.Fatalf("unexpected error on re-extraction: %v", err)
	}

	if first.String() != second.String() {
		t.Fatalf("re-extraction changed the value: %q vs %q", first.String(), second.String())
	}
}

func TestExtractExperience(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"bare integer", "2", 2, true},
		{"decimal", "2.5", 2.5, true},
		{"with unit", "3 years", 3, true},
		{"yrs", "10 yrs", 10, true},
		{"no space", "7years", 7, true},
		{"zero", "0", 0, true},
		{"spelled out", "two", 0, false},
		{"negative", "-3", 0, false},
		{"trailing text", "5 years of backend work", 5, true},
		{"number not leading", "about 4 years", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := Extract(profile.FieldExperienceYears, tc.text)
			if !tc.ok {
				if !errors.Is(err, ErrUnrecognized) {
					t.Fatalf("expected ErrUnrecognized, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			years, ok := value.(profile.Years)
			if !ok {
				t.Fatalf("expected profile.Years, got %T", value)
			}
			if float64(years) != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, float64(years))
			}
		})
	}
}

func TestExtractFullName(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"simple", "Jane Doe", "Jane Doe", true},
		{"titlecased", "jane doe", "Jane Doe", true},
		{"three tokens", "Jean Claude Martin", "Jean Claude Martin", true},
		{"hyphenated", "Mary-Jane o'Neill", "Mary-jane O'neill", true},
		{"single token", "Jane", "", false},
		{"with digits", "Jane Doe 42", "", false},
		{"field keyword", "my email address", "", false},
		{"too many tokens", "one two three four five six", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := Extract(profile.FieldFullName, tc.text)
			if !tc.ok {
				if !errors.Is(err, ErrUnrecognized) {
					t.Fatalf("expected ErrUnrecognized, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if value.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, value.String())
			}
		})
	}
}

func TestExtractFreeText(t *testing.T) {
	for _, field := range []profile.Field{profile.FieldDesiredPosition, profile.FieldLocation} {
		value, err := Extract(field, "  Backend Engineer  ")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", field, err)
		}
		if value.String() != "Backend Engineer" {
			t.Fatalf("%s: expected trimmed text, got %q", field, value.String())
		}

		if _, err := Extract(field, ""); !errors.Is(err, ErrUnrecognized) {
			t.Fatalf("%s: expected empty input to be unrecognized", field)
		}
		if _, err := Extract(field, "12345"); !errors.Is(err, ErrUnrecognized) {
			t.Fatalf("%s: expected pure-numeric input to be unrecognized", field)
		}
		long := make([]byte, 81)
		for i := range long {
			long[i] = 'a'
		}
		if _, err := Extract(field, string(long)); !errors.Is(err, ErrUnrecognized) {
			t.Fatalf("%s: expected over-long input to be unrecognized", field)
		}
	}
}

func TestRulesCoverEveryField(t *testing.T) {
	for _, field := range profile.Order {
		if _, err := For(field); err != nil {
			t.Fatalf("missing rule for field %s: %v", field, err)
		}
	}
}
