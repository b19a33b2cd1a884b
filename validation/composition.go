package validation

import (
	"fmt"
	"strings"
)

// All combines validators; every member applicable to a phase must pass.
// The composite implements both phases and delegates to the members that
// implement each.
func All(validators ...Validator) Validator {
	return &allValidator{members: validators}
}

// Any combines validators; within each phase at least one applicable member
// must pass. A phase with no applicable members passes.
func Any(validators ...Validator) Validator {
	return &anyValidator{members: validators}
}

type allValidator struct {
	members []Validator
}

func (v *allValidator) Description() string {
	return joinDescriptions(v.members, " and ")
}

func (v *allValidator) ValidateText(text string) error {
	for _, m := range v.members {
		if tv, ok := m.(TextValidator); ok {
			if err := tv.ValidateText(text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *allValidator) ValidateValue(value interface{}) error {
	for _, m := range v.members {
		if vv, ok := m.(ValueValidator); ok {
			if err := vv.ValidateValue(value); err != nil {
				return err
			}
		}
	}
	return nil
}

type anyValidator struct {
	members []Validator
}

func (v *anyValidator) Description() string {
	return joinDescriptions(v.members, " or ")
}

func (v *anyValidator) ValidateText(text string) error {
	var failures []string
	applicable := false
	for _, m := range v.members {
		if tv, ok := m.(TextValidator); ok {
			applicable = true
			if err := tv.ValidateText(text); err == nil {
				return nil
			} else {
				failures = append(failures, err.Error())
			}
		}
	}
	if !applicable {
		return nil
	}
	return fmt.Errorf("no alternative matched: %s", strings.Join(failures, "; "))
}

func (v *anyValidator) ValidateValue(value interface{}) error {
	var failures []string
	applicable := false
	for _, m := range v.members {
		if vv, ok := m.(ValueValidator); ok {
			applicable = true
			if err := vv.ValidateValue(value); err == nil {
				return nil
			} else {
				failures = append(failures, err.Error())
			}
		}
	}
	if !applicable {
		return nil
	}
	return fmt.Errorf("no alternative matched: %s", strings.Join(failures, "; "))
}

func joinDescriptions(members []Validator, sep string) string {
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, m.Description())
	}
	return strings.Join(parts, sep)
}
