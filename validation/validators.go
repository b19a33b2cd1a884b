// Package validation provides the per-argument validator pipeline. A
// validator checks either the raw text of a value before conversion
// (TextValidator), the typed value after conversion (ValueValidator), or
// both. Failure descriptions are surfaced in error messages and usage help.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validator is implemented by every validator. A validator additionally
// implements TextValidator, ValueValidator, or both.
type Validator interface {
	// Description returns a human-readable summary of the constraint,
	// e.g. "must be between 1 and 100".
	Description() string
}

// TextValidator checks the raw value text before conversion.
type TextValidator interface {
	Validator
	ValidateText(text string) error
}

// ValueValidator checks the typed value after conversion.
type ValueValidator interface {
	Validator
	ValidateValue(value interface{}) error
}

// Text wraps a function into a pre-conversion validator.
func Text(description string, fn func(text string) error) TextValidator {
	return &funcTextValidator{description: description, fn: fn}
}

// Value wraps a function into a post-conversion validator.
func Value(description string, fn func(value interface{}) error) ValueValidator {
	return &funcValueValidator{description: description, fn: fn}
}

type funcTextValidator struct {
	description string
	fn          func(string) error
}

func (v *funcTextValidator) Description() string { return v.description }

func (v *funcTextValidator) ValidateText(text string) error { return v.fn(text) }

type funcValueValidator struct {
	description string
	fn          func(interface{}) error
}

func (v *funcValueValidator) Description() string { return v.description }

func (v *funcValueValidator) ValidateValue(value interface{}) error { return v.fn(value) }

// NotEmpty requires a non-empty raw value.
func NotEmpty() TextValidator {
	return Text("must not be empty", func(text string) error {
		if len(text) == 0 {
			return fmt.Errorf("value must not be empty")
		}
		return nil
	})
}

// NotWhitespace requires a raw value containing at least one
// non-whitespace character.
func NotWhitespace() TextValidator {
	return Text("must not be blank", func(text string) error {
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("value must not be blank")
		}
		return nil
	})
}

// StringLength constrains the raw value's length in Unicode characters.
// Either bound may be negative to leave it open.
func StringLength(min, max int) TextValidator {
	description := lengthDescription(min, max)
	return Text(description, func(text string) error {
		n := utf8.RuneCountInString(text)
		if min >= 0 && n < min {
			return fmt.Errorf("value %s (length %d)", description, n)
		}
		if max >= 0 && n > max {
			return fmt.Errorf("value %s (length %d)", description, n)
		}
		return nil
	})
}

func lengthDescription(min, max int) string {
	switch {
	case min >= 0 && max >= 0:
		return fmt.Sprintf("must be between %d and %d characters", min, max)
	case min >= 0:
		return fmt.Sprintf("must be at least %d characters", min)
	case max >= 0:
		return fmt.Sprintf("must be at most %d characters", max)
	default:
		return "has no length constraint"
	}
}

// Pattern requires the raw value to match a regular expression. The pattern
// is compiled eagerly; an invalid pattern yields a validator that always
// fails, so misconfiguration surfaces on first use instead of silently
// passing. The description is used in error and help text.
func Pattern(pattern, description string) TextValidator {
	re, err := regexp.Compile(pattern)
	if description == "" {
		description = fmt.Sprintf("must match %s", pattern)
	}
	return Text(description, func(text string) error {
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if !re.MatchString(text) {
			return fmt.Errorf("value %q %s", text, description)
		}
		return nil
	})
}

// NotNull rejects nil typed values.
func NotNull() ValueValidator {
	return Value("must not be null", func(value interface{}) error {
		if value == nil {
			return fmt.Errorf("value must not be null")
		}
		return nil
	})
}

// Range constrains a numeric value to an inclusive range. Pass nil to leave
// a bound open. Non-numeric values fail validation.
func Range(min, max *float64) ValueValidator {
	return &rangeValidator{min: min, max: max}
}

type rangeValidator struct {
	min *float64
	max *float64
}

func (v *rangeValidator) Description() string {
	switch {
	case v.min != nil && v.max != nil:
		return fmt.Sprintf("must be between %v and %v", *v.min, *v.max)
	case v.min != nil:
		return fmt.Sprintf("must be at least %v", *v.min)
	case v.max != nil:
		return fmt.Sprintf("must be at most %v", *v.max)
	default:
		return "has no range constraint"
	}
}

func (v *rangeValidator) ValidateValue(value interface{}) error {
	num, ok := toFloat(value)
	if !ok {
		return fmt.Errorf("value %v is not numeric", value)
	}
	if v.min != nil && num < *v.min {
		return fmt.Errorf("value %v %s", value, v.Description())
	}
	if v.max != nil && num > *v.max {
		return fmt.Errorf("value %v %s", value, v.Description())
	}
	return nil
}

func toFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
