// Package errs defines the category-tagged errors produced while parsing a
// command line. Every failure the engine reports is an *Error carrying a
// Category for programmatic matching, the name of the argument that triggered
// it, and optionally a wrapped inner cause and a candidate-name list.
//
// Sentinel values such as ErrUnknownArgument can be matched with errors.Is
// regardless of the formatting arguments attached to a specific instance.
package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Category identifies the kind of parse failure.
type Category int

const (
	CategoryNone Category = iota
	CategoryUnknownArgument
	CategoryAmbiguousPrefixAlias
	CategoryCombinedShortNameNonSwitch
	CategoryMissingNamedArgumentValue
	CategoryTooManyArguments
	CategoryMissingRequiredArgument
	CategoryDuplicateArgument
	CategoryArgumentValueConversion
	CategoryInvalidDictionaryValue
	CategoryNullArgumentValue
	CategoryValidationFailed
	CategoryDependencyFailed
	CategoryApplyValueError
	CategoryCreateArgumentsTypeError
	CategoryUnknownCommand
	CategoryAmbiguousCommand
)

var categoryNames = map[Category]string{
	CategoryNone:                       "none",
	CategoryUnknownArgument:            "unknown_argument",
	CategoryAmbiguousPrefixAlias:       "ambiguous_prefix_alias",
	CategoryCombinedShortNameNonSwitch: "combined_short_name_non_switch",
	CategoryMissingNamedArgumentValue:  "missing_named_argument_value",
	CategoryTooManyArguments:           "too_many_arguments",
	CategoryMissingRequiredArgument:    "missing_required_argument",
	CategoryDuplicateArgument:          "duplicate_argument",
	CategoryArgumentValueConversion:    "argument_value_conversion",
	CategoryInvalidDictionaryValue:     "invalid_dictionary_value",
	CategoryNullArgumentValue:          "null_argument_value",
	CategoryValidationFailed:           "validation_failed",
	CategoryDependencyFailed:           "dependency_failed",
	CategoryApplyValueError:            "apply_value_error",
	CategoryCreateArgumentsTypeError:   "create_arguments_type_error",
	CategoryUnknownCommand:             "unknown_command",
	CategoryAmbiguousCommand:           "ambiguous_command",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Error is a parse error. Instances derived from the same sentinel through
// WithArgs, ForArgument, WithCandidates or Wrap compare equal to that
// sentinel under errors.Is.
type Error struct {
	sentinel   error
	category   Category
	format     string
	args       []interface{}
	argument   string
	candidates []string
	wrapped    error
}

// New creates a sentinel error for the given category. The format string is
// filled in by WithArgs on derived instances.
func New(category Category, format string) *Error {
	return &Error{
		sentinel: errors.New(format),
		category: category,
		format:   format,
	}
}

func (e *Error) clone() *Error {
	dup := *e
	return &dup
}

// WithArgs returns a copy of the error with formatting arguments applied.
func (e *Error) WithArgs(args ...interface{}) *Error {
	dup := e.clone()
	dup.args = args
	return dup
}

// ForArgument returns a copy of the error tagged with the name of the
// argument that triggered it.
func (e *Error) ForArgument(name string) *Error {
	dup := e.clone()
	dup.argument = name
	return dup
}

// WithCandidates returns a copy of the error carrying a sorted list of
// candidate names, used by ambiguous prefix-alias failures.
func (e *Error) WithCandidates(names []string) *Error {
	dup := e.clone()
	dup.candidates = make([]string, len(names))
	copy(dup.candidates, names)
	sort.Strings(dup.candidates)
	return dup
}

// Wrap returns a copy of the error chaining an inner cause.
func (e *Error) Wrap(err error) *Error {
	dup := e.clone()
	dup.wrapped = err
	return dup
}

func (e *Error) Error() string {
	msg := e.format
	if len(e.args) > 0 {
		msg = fmt.Sprintf(e.format, e.args...)
	}
	if len(e.candidates) > 0 {
		msg = fmt.Sprintf("%s (candidates: %s)", msg, strings.Join(e.candidates, ", "))
	}
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// Category returns the error's category tag.
func (e *Error) Category() Category {
	return e.category
}

// Argument returns the name of the argument the error relates to, or "".
func (e *Error) Argument() string {
	return e.argument
}

// Candidates returns the sorted candidate names of an ambiguous match.
func (e *Error) Candidates() []string {
	return e.candidates
}

// Unwrap exposes the inner cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Is reports whether target is the sentinel this error derives from.
func (e *Error) Is(target error) bool {
	if other, ok := target.(*Error); ok {
		return e.sentinel == other.sentinel
	}
	return false
}

// Sentinels for every category the binding engine reports.
var (
	ErrUnknownArgument            = New(CategoryUnknownArgument, "unknown argument '%s'")
	ErrAmbiguousPrefixAlias       = New(CategoryAmbiguousPrefixAlias, "'%s' is not a unique prefix of a known argument")
	ErrCombinedShortNameNonSwitch = New(CategoryCombinedShortNameNonSwitch, "short name '%s' in combined argument '%s' is not a switch")
	ErrMissingNamedArgumentValue  = New(CategoryMissingNamedArgumentValue, "argument '%s' expects a value")
	ErrTooManyArguments           = New(CategoryTooManyArguments, "too many positional arguments, starting at '%s'")
	ErrMissingRequiredArgument    = New(CategoryMissingRequiredArgument, "required argument '%s' was not supplied")
	ErrDuplicateArgument          = New(CategoryDuplicateArgument, "argument '%s' was supplied more than once")
	ErrArgumentValueConversion    = New(CategoryArgumentValueConversion, "could not convert '%s' for argument '%s'")
	ErrInvalidDictionaryValue     = New(CategoryInvalidDictionaryValue, "invalid dictionary value '%s' for argument '%s'")
	ErrNullArgumentValue          = New(CategoryNullArgumentValue, "argument '%s' does not allow a null value")
	ErrValidationFailed           = New(CategoryValidationFailed, "invalid value '%s' for argument '%s'")
	ErrDependencyFailed           = New(CategoryDependencyFailed, "dependency check failed for argument '%s'")
	ErrApplyValueError            = New(CategoryApplyValueError, "could not apply value to argument '%s'")
	ErrCreateArgumentsType        = New(CategoryCreateArgumentsTypeError, "could not finalize the arguments target")
	ErrUnknownCommand             = New(CategoryUnknownCommand, "unknown command '%s'")
	ErrAmbiguousCommand           = New(CategoryAmbiguousCommand, "'%s' is not a unique prefix of a known command")
)

// CategoryOf extracts the category of err, or CategoryNone when err is not a
// parse error.
func CategoryOf(err error) Category {
	var parseErr *Error
	if errors.As(err, &parseErr) {
		return parseErr.category
	}
	return CategoryNone
}
