package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// EnumConfig tunes enum-value validation. Each field is a tristate: nil
// means "infer from FlagsLike".
type EnumConfig struct {
	// AllowUndefined accepts values outside the declared set. Defaults to
	// false.
	AllowUndefined *bool
	// AllowCombined accepts comma-separated combinations of values.
	// Defaults to FlagsLike.
	AllowCombined *bool
	// AllowNumeric accepts numeric input in addition to names. Defaults to
	// FlagsLike.
	AllowNumeric *bool
	// CaseSensitive compares names case-sensitively. Defaults to false.
	CaseSensitive *bool
	// FlagsLike marks the value set as combinable bit flags, which shifts
	// the defaults above.
	FlagsLike bool
}

// Enum validates the raw value against a declared set of names, optionally
// accepting combinations and numeric input. It runs before conversion so the
// declared converter only ever sees accepted text.
func Enum(values []string, cfg *EnumConfig) TextValidator {
	if cfg == nil {
		cfg = &EnumConfig{}
	}
	v := &enumValidator{
		values:         values,
		allowUndefined: resolve(cfg.AllowUndefined, false),
		allowCombined:  resolve(cfg.AllowCombined, cfg.FlagsLike),
		allowNumeric:   resolve(cfg.AllowNumeric, cfg.FlagsLike),
		caseSensitive:  resolve(cfg.CaseSensitive, false),
	}
	return v
}

func resolve(opt *bool, fallback bool) bool {
	if opt != nil {
		return *opt
	}
	return fallback
}

type enumValidator struct {
	values         []string
	allowUndefined bool
	allowCombined  bool
	allowNumeric   bool
	caseSensitive  bool
}

func (v *enumValidator) Description() string {
	return fmt.Sprintf("must be one of: %s", strings.Join(v.values, ", "))
}

func (v *enumValidator) ValidateText(text string) error {
	parts := []string{text}
	if v.allowCombined {
		parts = strings.Split(text, ",")
	}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if !v.accepts(part) {
			return fmt.Errorf("value %q %s", part, v.Description())
		}
	}
	return nil
}

func (v *enumValidator) accepts(part string) bool {
	if v.allowUndefined {
		return true
	}
	if v.allowNumeric {
		if _, err := strconv.ParseInt(part, 10, 64); err == nil {
			return true
		}
	}
	for _, candidate := range v.values {
		if v.caseSensitive {
			if part == candidate {
				return true
			}
		} else if strings.EqualFold(part, candidate) {
			return true
		}
	}
	return false
}
