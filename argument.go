package cmdargs

import (
	"sort"

	"github.com/google/uuid"

	"github.com/quindle/cmdargs/validation"
)

// Argument describes one declared command-line argument. An Argument is
// built before parsing begins and is treated as immutable for the duration
// of a parse; validators may read but not mutate it.
type Argument struct {
	// Name is the canonical long name, unique within a parser under the
	// configured case comparison.
	Name string
	// Short is an optional single-character short name.
	Short rune
	// Aliases are additional long names.
	Aliases []string
	// ShortAliases are additional single-character short names.
	ShortAliases []rune
	// Description is used in usage output only.
	Description string
	// Category groups arguments in usage output only.
	Category string
	// Kind selects the value-accumulation behavior.
	Kind ArgumentKind
	// Position, when non-nil, makes the argument positional. Positions must
	// be contiguous from 0 across the positional arguments of a parser.
	Position *int
	// Required arguments without a default must receive a value or the
	// parse fails.
	Required bool
	// DefaultValue is applied when the argument is absent; nil means none.
	DefaultValue interface{}
	// AllowNull permits a converter to produce a nil value.
	AllowNull bool
	// Hidden removes the argument from usage output.
	Hidden bool
	// Secure solicits a non-echoed terminal value when none was supplied.
	Secure Secure
	// Converter converts value text; nil selects ConvertString. For
	// Dictionary arguments it is ignored in favor of KeyConverter and
	// ValueConverter.
	Converter ConverterFunc
	// KeyConverter converts dictionary keys; nil selects ConvertString.
	KeyConverter ConverterFunc
	// ValueConverter converts dictionary values; nil selects ConvertString.
	ValueConverter ConverterFunc
	// KeyValueSeparator splits dictionary entries, "=" by default.
	KeyValueSeparator string
	// MultiValueSeparator splits one occurrence of a MultiValue argument
	// into items; empty means items are supplied as separate occurrences.
	MultiValueSeparator string
	// GreedyValues lets a named MultiValue argument without an item
	// separator consume every following element up to the next named token.
	// Off by default; one occurrence then takes one value.
	GreedyValues bool
	// AllowDuplicateKeys overrides the parser duplicate policy for
	// dictionary keys; nil inherits it.
	AllowDuplicateKeys *bool
	// InlineOnly forbids taking the value from the following token; the
	// value must be attached with a name-value separator.
	InlineOnly bool
	// PreValidators run against the raw value text before conversion.
	PreValidators []validation.Validator
	// PostValidators run against the typed value after conversion.
	PostValidators []validation.Validator
	// ParseValidators run after binding completes, over the has-value state
	// of related arguments.
	ParseValidators []ParseValidator
	// Method is invoked when a Method-kind argument is set.
	Method MethodFunc

	id string
}

func (a *Argument) ensureInit() {
	if a.id == "" {
		a.id = uuid.New().String()
	}
	if a.KeyValueSeparator == "" {
		a.KeyValueSeparator = "="
	}
}

// ID returns the argument's stable identity key, assigned on registration.
func (a *Argument) ID() string {
	return a.id
}

// accumulates reports whether repeated occurrences add values instead of
// conflicting.
func (a *Argument) accumulates() bool {
	return a.Kind == MultiValue || a.Kind == Dictionary
}

// shortNames returns the short name and short aliases as strings.
func (a *Argument) shortNames() []string {
	var out []string
	if a.Short != 0 {
		out = append(out, string(a.Short))
	}
	for _, r := range a.ShortAliases {
		out = append(out, string(r))
	}
	return out
}

// isSwitch reports whether presence alone implies boolean true.
func (a *Argument) isSwitch() bool {
	return a.Kind == Switch
}

// positionals returns the positional arguments ordered by position, after
// checking the set invariants: contiguous positions from 0, no two
// arguments on the same position, at most one MultiValue positional which
// must be last, and no positional Dictionary or Method arguments.
func (p *Parser) positionals() ([]*Argument, error) {
	var args []*Argument
	p.arguments.ForEach(func(_ string, a *Argument) bool {
		if a.Position != nil {
			args = append(args, a)
		}
		return true
	})
	sort.SliceStable(args, func(i, j int) bool {
		return *args[i].Position < *args[j].Position
	})
	for i, a := range args {
		if *a.Position != i {
			if i > 0 && *a.Position == *args[i-1].Position {
				return nil, ErrPositionOccupied
			}
			return nil, ErrPositionsNotContiguous
		}
		switch a.Kind {
		case Dictionary, Method:
			return nil, ErrKindNotPositional
		case MultiValue:
			if i != len(args)-1 {
				return nil, ErrMultiValueNotLast
			}
		}
	}
	return args, nil
}
