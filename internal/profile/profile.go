package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// Field identifies a single candidate profile field.
type Field string

const (
	FieldFullName        Field = "full_name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldExperienceYears Field = "experience_years"
	FieldDesiredPosition Field = "desired_position"
	FieldLocation        Field = "location"
	FieldTechStack       Field = "tech_stack"
)

// Order is the fixed collection order for intake conversations.
var Order = []Field{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldExperienceYears,
	FieldDesiredPosition,
	FieldLocation,
	FieldTechStack,
}

// Value is a validated candidate field value. The concrete types below form a
// closed set; Candidate.Set rejects a value whose type does not match the field.
type Value interface {
	fmt.Stringer
}

// Text holds validated free-text fields: full name, desired position, location.
type Text string

func (t Text) String() string { return string(t) }

// Email holds a validated email address, case preserved.
type Email string

func (e Email) String() string { return string(e) }

// Phone holds a normalized phone number with separators stripped.
type Phone string

func (p Phone) String() string { return string(p) }

// Years holds a non-negative number of years of experience.
type Years float64

func (y Years) String() string {
	return strconv.FormatFloat(float64(y), 'f', -1, 64)
}

// Stack holds the declared technology keywords in declaration order.
type Stack []string

func (s Stack) String() string { return strings.Join(s, ", ") }

// Candidate is the mutable profile filled during a conversation. Fields are
// absent until a validated value is stored for them.
type Candidate struct {
	values map[Field]Value
}

func New() *Candidate {
	return &Candidate{values: make(map[Field]Value, len(Order))}
}

// Set stores a validated value for the field. It fails when the value type
// does not match the field or violates the field invariant, leaving the
// previous value untouched.
func (c *Candidate) Set(field Field, value Value) error {
	if value == nil {
		return fmt.Errorf("field %s: value is required", field)
	}

	switch field {
	case FieldFullName, FieldDesiredPosition, FieldLocation:
		text, ok := value.(Text)
		if !ok || strings.TrimSpace(string(text)) == "" {
			return fmt.Errorf("field %s: expected non-empty text, got %T", field, value)
		}
	case FieldEmail:
		if _, ok := value.(Email); !ok {
			return fmt.Errorf("field %s: expected email, got %T", field, value)
		}
	case FieldPhone:
		if _, ok := value.(Phone); !ok {
			return fmt.Errorf("field %s: expected phone, got %T", field, value)
		}
	case FieldExperienceYears:
		years, ok := value.(Years)
		if !ok {
			return fmt.Errorf("field %s: expected years, got %T", field, value)
		}
		if years < 0 {
			return fmt.Errorf("field %s: years must be non-negative", field)
		}
	case FieldTechStack:
		stack, ok := value.(Stack)
		if !ok || len(stack) == 0 {
			return fmt.Errorf("field %s: expected non-empty tech stack, got %T", field, value)
		}
	default:
		return fmt.Errorf("unknown field %s", field)
	}

	c.values[field] = value
	return nil
}

// Value returns the stored value for the field, if any.
func (c *Candidate) Value(field Field) (Value, bool) {
	v, ok := c.values[field]
	return v, ok
}

func (c *Candidate) Filled(field Field) bool {
	_, ok := c.values[field]
	return ok
}

// Complete reports whether every field in the collection order is filled.
func (c *Candidate) Complete() bool {
	for _, field := range Order {
		if !c.Filled(field) {
			return false
		}
	}
	return true
}

// NextMissing returns the first unfilled field in the collection order.
func (c *Candidate) NextMissing() (Field, bool) {
	for _, field := range Order {
		if !c.Filled(field) {
			return field, true
		}
	}
	return "", false
}

// TechStack returns the declared technology list, if filled.
func (c *Candidate) TechStack() (Stack, bool) {
	v, ok := c.values[FieldTechStack]
	if !ok {
		return nil, false
	}
	stack, ok := v.(Stack)
	return stack, ok
}

// Snapshot returns a serializable view of the profile. All fields are present
// as keys; unfilled fields map to nil so the consumer can tell absence from
// an empty value.
func (c *Candidate) Snapshot() map[string]any {
	snap := make(map[string]any, len(Order))
	for _, field := range Order {
		value, ok := c.values[field]
		if !ok {
			snap[string(field)] = nil
			continue
		}

		switch v := value.(type) {
		case Years:
			snap[string(field)] = float64(v)
		case Stack:
			snap[string(field)] = []string(v)
		default:
			snap[string(field)] = value.String()
		}
	}
	return snap
}
