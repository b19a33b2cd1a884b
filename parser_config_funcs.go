package cmdargs

import (
	"io"

	"golang.org/x/text/language"

	"github.com/quindle/cmdargs/input"
)

// WithFlag is a wrapper for AddFlag which is used to define an argument
// under the given canonical name.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithFlag("output",
//			NewArg(
//				WithShort('o'),
//				WithDescription("output path"),
//				SetRequired(true))),
//		WithFlag("verbose",
//			NewArg(
//				WithShort('v'),
//				WithKind(Switch))))
func WithFlag(name string, argument *Argument) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if argument == nil {
			*err = ErrEmptyArgumentName
			return
		}
		argument.Name = name
		*err = p.AddFlag(argument)
	}
}

// WithArgumentPrefixes replaces the set of prefixes that introduce a named
// token, "-" by default. In long/short mode these are the short prefixes.
func WithArgumentPrefixes(prefixes ...string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.prefixes = prefixes
	}
}

// WithLongPrefix enables long/short mode: tokens starting with the long
// prefix carry long names, tokens starting with a short prefix carry short
// names, and the two namespaces resolve independently. Multi-character
// short-prefixed tokens expand into combined switches.
func WithLongPrefix(prefix string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.longPrefix = prefix
	}
}

// WithCaseSensitive switches name matching to exact case. Matching is
// case-insensitive by default.
func WithCaseSensitive(caseSensitive bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.caseSensitive = caseSensitive
	}
}

// WithValueSeparators replaces the runes that split an inline value from
// the name, ':' and '=' by default.
func WithValueSeparators(separators ...rune) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.separators = separators
	}
}

// WithWhitespaceSeparator controls whether a named argument may take its
// value from the following element. When disabled, values must be inline.
func WithWhitespaceSeparator(allowed bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.whitespaceSeparator = allowed
	}
}

// WithDuplicatePolicy sets what happens when a non-accumulating argument is
// supplied more than once.
func WithDuplicatePolicy(policy DuplicatePolicy) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.duplicates = policy
	}
}

// WithAutoPrefixAliases controls whether unambiguous prefixes of names and
// aliases resolve, enabled by default.
func WithAutoPrefixAliases(enabled bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.autoPrefixAliases = enabled
	}
}

// WithPrefixTermination sets the effect of the terminator element on the
// remaining input.
func WithPrefixTermination(mode PrefixTerminationMode) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.termination = mode
	}
}

// WithTerminator replaces the "--" terminator element.
func WithTerminator(terminator string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.terminator = terminator
	}
}

// WithCulture sets the locale used when converting numeric and date values,
// invariant by default.
func WithCulture(culture language.Tag) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.culture = culture
	}
}

// WithUnknownArgumentFunc installs the hook consulted when a named token
// resolves to no argument.
func WithUnknownArgumentFunc(fn UnknownArgumentFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.onUnknown = fn
	}
}

// WithArgumentParsedFunc installs the hook invoked after each bound value.
func WithArgumentParsedFunc(fn ArgumentParsedFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.onParsed = fn
	}
}

// WithDuplicateArgumentFunc installs the hook consulted on repeated
// occurrences, overriding the duplicate policy.
func WithDuplicateArgumentFunc(fn DuplicateArgumentFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.onDuplicate = fn
	}
}

// WithStderr redirects warnings and prompts.
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.stderr = w
	}
}

// WithTerminalReader replaces the terminal used for secure prompts, mainly
// for testing.
func WithTerminalReader(r input.TerminalReader) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.terminal = r
	}
}

// WithCommand registers a command on the parser's command set.
func WithCommand(cmd *Command) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		*err = p.AddCommand(cmd)
	}
}
