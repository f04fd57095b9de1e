package extract

import (
	"errors"
	"fmt"

	"github.com/talentscout/hiring-assistant/internal/profile"
)

// ErrUnrecognized is returned when the input cannot be validated for the
// requested field. It is always recoverable: the caller re-prompts.
var ErrUnrecognized = errors.New("unrecognized input")

// Rule parses raw user text into a validated value for one profile field.
type Rule interface {
	Field() profile.Field
	Extract(text string) (profile.Value, error)
}

var rules = []Rule{
	&fullNameRule{},
	&emailRule{},
	&phoneRule{},
	&experienceRule{},
	&freeTextRule{field: profile.FieldDesiredPosition},
	&freeTextRule{field: profile.FieldLocation},
	&techStackRule{},
}

// Rules returns the extraction rules in the profile collection order.
func Rules() []Rule {
	return rules
}

// For returns the rule responsible for the given field.
func For(field profile.Field) (Rule, error) {
	for _, rule := range rules {
		if rule.Field() == field {
			return rule, nil
		}
	}
	return nil, fmt.Errorf("no extraction rule for field %s", field)
}

// Extract runs the field's rule against the text. It is a pure function: the
// only outcomes are a validated value or ErrUnrecognized.
func Extract(field profile.Field, text string) (profile.Value, error) {
	rule, err := For(field)
	if err != nil {
		return nil, err
	}
	return rule.Extract(text)
}
