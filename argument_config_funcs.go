package cmdargs

import (
	"github.com/quindle/cmdargs/validation"
)

// NewArg convenience initialization method to configure arguments
func NewArg(configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{}
	for _, config := range configs {
		config(argument, nil)
	}

	return argument
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	arg := &Argument{Name: "verbose"}
//	err := arg.Set(
//	    WithDescription("example argument"),
//	    WithKind(Switch),
//	    SetRequired(false),
//	)
//	if err != nil {
//	    // handle error
//	}
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	a.ensureInit()
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithShort sets the single-character short name. Short names live in their
// own namespace when a dedicated long prefix is configured, otherwise they
// are matched alongside long names.
func WithShort(short rune) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Short = short
	}
}

// WithAliases adds alternative long names. Aliases resolve exactly like the
// canonical name and participate in prefix matching.
func WithAliases(aliases ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Aliases = append(argument.Aliases, aliases...)
	}
}

// WithShortAliases adds alternative single-character short names.
func WithShortAliases(aliases ...rune) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ShortAliases = append(argument.ShortAliases, aliases...)
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Description = description
	}
}

// WithCategory groups the argument under a heading in usage output.
func WithCategory(category string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Category = category
	}
}

// WithKind - one of five kinds:
//  1. SingleValue - an argument which expects one value
//  2. MultiValue - an argument accumulating a list of values
//  3. Dictionary - an argument accumulating key=value pairs
//  4. Switch - a boolean argument which by default takes no value
//  5. Method - an argument invoking a callback when set
func WithKind(kind ArgumentKind) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Kind = kind
	}
}

// WithPosition makes the argument positional at the given zero-based index.
// Positions must be contiguous across a parser's positional arguments.
func WithPosition(position int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if position < 0 {
			*err = ErrPositionsNotContiguous
			return
		}
		pos := position
		argument.Position = &pos
	}
}

// SetRequired when true, the argument must be supplied on the command-line
// unless it declares a default value
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Required = required
	}
}

// WithDefault sets the value reported when the argument is absent. A default
// satisfies the required check.
func WithDefault(value interface{}) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultValue = value
	}
}

// WithConverter replaces the default string conversion of value text.
func WithConverter(converter ConverterFunc) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Converter = converter
	}
}

// WithKeyConverter sets the conversion of dictionary keys.
func WithKeyConverter(converter ConverterFunc) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.KeyConverter = converter
	}
}

// WithValueConverter sets the conversion of dictionary values.
func WithValueConverter(converter ConverterFunc) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ValueConverter = converter
	}
}

// WithKeyValueSeparator overrides the "=" separator in dictionary entries.
func WithKeyValueSeparator(separator string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.KeyValueSeparator = separator
	}
}

// WithMultiValueSeparator makes one occurrence of a MultiValue argument
// carry several items split on the separator, e.g. "a,b,c".
func WithMultiValueSeparator(separator string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.MultiValueSeparator = separator
	}
}

// SetGreedyValues lets a named MultiValue argument without an item
// separator consume every following element up to the next named token.
func SetGreedyValues(greedy bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.GreedyValues = greedy
	}
}

// SetAllowDuplicateKeys overrides the parser-level duplicate policy for
// dictionary keys of this argument.
func SetAllowDuplicateKeys(allow bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		v := allow
		argument.AllowDuplicateKeys = &v
	}
}

// SetInlineOnly forbids taking the value from the following element; the
// value must be attached with a name-value separator.
func SetInlineOnly(inlineOnly bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.InlineOnly = inlineOnly
	}
}

// SetAllowNull permits a converter to produce a nil value.
func SetAllowNull(allow bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.AllowNull = allow
	}
}

// SetHidden removes the argument from usage output.
func SetHidden(hidden bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Hidden = hidden
	}
}

// SetSecure marks the argument as secure. When supplied without a value the
// parser prompts on the terminal without echoing the input.
func SetSecure(secure bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Secure.IsSecure = secure
	}
}

// WithPrompt sets the terminal prompt of a secure argument.
func WithPrompt(prompt string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Secure.IsSecure = true
		argument.Secure.Prompt = prompt
	}
}

// WithPreValidators appends validators which run against the raw value text
// before conversion.
func WithPreValidators(validators ...validation.Validator) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.PreValidators = append(argument.PreValidators, validators...)
	}
}

// WithPostValidators appends validators which run against the typed value
// after conversion.
func WithPostValidators(validators ...validation.Validator) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.PostValidators = append(argument.PostValidators, validators...)
	}
}

// WithParseValidators appends validators which run after binding completes,
// over the has-value state of related arguments.
func WithParseValidators(validators ...ParseValidator) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ParseValidators = append(argument.ParseValidators, validators...)
	}
}

// WithRequires fails the parse when this argument is supplied without every
// named argument also being supplied.
func WithRequires(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ParseValidators = append(argument.ParseValidators, Requires(names...))
	}
}

// WithProhibits fails the parse when this argument is supplied together with
// any of the named arguments.
func WithProhibits(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ParseValidators = append(argument.ParseValidators, Prohibits(names...))
	}
}

// WithRequiresAny fails the parse unless at least one of the named arguments
// was also supplied.
func WithRequiresAny(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ParseValidators = append(argument.ParseValidators, RequiresAny(names...))
	}
}

// WithMethod makes the argument a Method argument invoking fn when set.
func WithMethod(fn MethodFunc) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Kind = Method
		argument.Method = fn
	}
}
