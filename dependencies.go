package cmdargs

import (
	"fmt"
	"strings"
)

// Parse-scope dependency validators. They run during finalization, only for
// arguments that received a value, and inspect the has-value state of the
// rest of the set. Named arguments are resolved exactly, not by prefix.

type requiresValidator struct {
	names []string
	any   bool
}

// Requires builds a validator failing unless every named argument was also
// supplied.
func Requires(names ...string) ParseValidator {
	return &requiresValidator{names: names}
}

// RequiresAny builds a validator failing unless at least one of the named
// arguments was supplied.
func RequiresAny(names ...string) ParseValidator {
	return &requiresValidator{names: names, any: true}
}

func (v *requiresValidator) Description() string {
	if v.any {
		return fmt.Sprintf("requires any of %s", strings.Join(v.names, ", "))
	}
	return fmt.Sprintf("requires %s", strings.Join(v.names, ", "))
}

func (v *requiresValidator) ValidateParse(p *Parser, arg *Argument) error {
	var missing []string
	for _, name := range v.names {
		if p.HasValue(name) {
			if v.any {
				return nil
			}
			continue
		}
		missing = append(missing, name)
	}
	if len(missing) == 0 {
		return nil
	}
	if v.any {
		return fmt.Errorf("'%s' requires at least one of: %s", arg.Name, strings.Join(v.names, ", "))
	}
	return fmt.Errorf("'%s' requires: %s", arg.Name, strings.Join(missing, ", "))
}

type prohibitsValidator struct {
	names []string
}

// Prohibits builds a validator failing when any of the named arguments was
// supplied alongside the owning argument.
func Prohibits(names ...string) ParseValidator {
	return &prohibitsValidator{names: names}
}

func (v *prohibitsValidator) Description() string {
	return fmt.Sprintf("prohibits %s", strings.Join(v.names, ", "))
}

func (v *prohibitsValidator) ValidateParse(p *Parser, arg *Argument) error {
	for _, name := range v.names {
		if p.HasValue(name) {
			return fmt.Errorf("'%s' cannot be used together with '%s'", arg.Name, name)
		}
	}
	return nil
}
