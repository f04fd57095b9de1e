package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/talentscout/hiring-assistant/internal/profile"
)

var (
	emailPattern      = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	phonePattern      = regexp.MustCompile(`\+?\(?\d[\d\s\-().]{4,}\d`)
	experiencePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(?:\s*(?:years?|yrs?))?\b`)
)

const (
	freeTextMinLen = 2
	freeTextMaxLen = 80
	maxNameTokens  = 5
)

// fieldKeywords disqualify a message from being read as a person's name.
var fieldKeywords = []string{
	"email", "phone", "year", "experience", "position", "location", "tech", "stack",
}

type emailRule struct{}

func (r *emailRule) Field() profile.Field { return profile.FieldEmail }

func (r *emailRule) Extract(text string) (profile.Value, error) {
	match := emailPattern.FindString(text)
	if match == "" {
		return nil, ErrUnrecognized
	}
	return profile.Email(match), nil
}

type phoneRule struct{}

func (r *phoneRule) Field() profile.Field { return profile.FieldPhone }

// Extract accepts 7 to 15 digits with common separators and normalizes the
// number by stripping everything but digits and a leading plus.
func (r *phoneRule) Extract(text string) (profile.Value, error) {
	match := phonePattern.FindString(text)
	if match == "" {
		return nil, ErrUnrecognized
	}

	var normalized strings.Builder
	for i, ch := range match {
		if ch == '+' && i == 0 {
			normalized.WriteRune(ch)
			continue
		}
		if ch >= '0' && ch <= '9' {
			normalized.WriteRune(ch)
		}
	}

	digits := strings.TrimPrefix(normalized.String(), "+")
	if len(digits) < 7 || len(digits) > 15 {
		return nil, ErrUnrecognized
	}

	return profile.Phone(normalized.String()), nil
}

type experienceRule struct{}

func (r *experienceRule) Field() profile.Field { return profile.FieldExperienceYears }

func (r *experienceRule) Extract(text string) (profile.Value, error) {
	match := experiencePattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return nil, ErrUnrecognized
	}

	years, err := strconv.ParseFloat(match[1], 64)
	if err != nil || years < 0 {
		return nil, ErrUnrecognized
	}

	return profile.Years(years), nil
}

type fullNameRule struct{}

func (r *fullNameRule) Field() profile.Field { return profile.FieldFullName }

// Extract accepts two to five alphabetic tokens with no digits and none of
// the field keywords, returning the trimmed, titlecased name.
func (r *fullNameRule) Extract(text string) (profile.Value, error) {
	trimmed := strings.TrimSpace(text)
	tokens := strings.Fields(trimmed)
	if len(tokens) < 2 || len(tokens) > maxNameTokens {
		return nil, ErrUnrecognized
	}

	lower := strings.ToLower(trimmed)
	for _, keyword := range fieldKeywords {
		if strings.Contains(lower, keyword) {
			return nil, ErrUnrecognized
		}
	}

	titled := make([]string, 0, len(tokens))
	for _, token := range tokens {
		for _, ch := range token {
			if !unicode.IsLetter(ch) && ch != '\'' && ch != '-' && ch != '.' {
				return nil, ErrUnrecognized
			}
		}
		titled = append(titled, titlecase(token))
	}

	return profile.Text(strings.Join(titled, " ")), nil
}

func titlecase(token string) string {
	runes := []rune(strings.ToLower(token))
	if len(runes) == 0 {
		return token
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// freeTextRule accepts bounded free text for the position and location fields.
type freeTextRule struct {
	field profile.Field
}

func (r *freeTextRule) Field() profile.Field { return r.field }

func (r *freeTextRule) Extract(text string) (profile.Value, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < freeTextMinLen || len(trimmed) > freeTextMaxLen {
		return nil, ErrUnrecognized
	}

	hasLetter := false
	for _, ch := range trimmed {
		if unicode.IsLetter(ch) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return nil, ErrUnrecognized
	}

	return profile.Text(trimmed), nil
}
