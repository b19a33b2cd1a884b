package cmdargs

import (
	"errors"
	"io"

	"golang.org/x/text/language"

	"github.com/quindle/cmdargs/input"
	"github.com/quindle/cmdargs/types/orderedmap"
)

// ArgumentKind classifies how an argument consumes and stores values.
type ArgumentKind int

const (
	// SingleValue denotes an argument holding one converted value.
	SingleValue ArgumentKind = iota
	// MultiValue denotes an argument accumulating an ordered list of values
	// across occurrences, or from one delimited occurrence when an item
	// separator is configured.
	MultiValue
	// Dictionary denotes an argument accumulating key=value pairs.
	Dictionary
	// Switch denotes a boolean argument whose presence alone means true.
	Switch
	// Method denotes an argument which invokes a callback when set; the
	// callback may cancel the parse.
	Method
)

// DuplicatePolicy controls what happens when a non-accumulating argument is
// supplied more than once.
type DuplicatePolicy int

const (
	// DuplicateError fails the parse with a DuplicateArgument error.
	DuplicateError DuplicatePolicy = iota
	// DuplicateAllow keeps the last occurrence.
	DuplicateAllow
	// DuplicateWarn writes a warning to the parser's stderr writer and
	// keeps the last occurrence.
	DuplicateWarn
)

// PrefixTerminationMode controls the effect of the prefix terminator
// (by default "--") on the remaining input.
type PrefixTerminationMode int

const (
	// TerminationNone gives the terminator no special meaning.
	TerminationNone PrefixTerminationMode = iota
	// TerminationPositionalOnly treats every element after the terminator
	// as positional regardless of leading prefixes.
	TerminationPositionalOnly
	// TerminationCancelWithSuccess stops parsing at the terminator with a
	// success-like cancellation; the terminator and everything after it are
	// reported unconsumed.
	TerminationCancelWithSuccess
)

// CancelMode is returned by hooks and Method callbacks to stop a parse.
type CancelMode int

const (
	// CancelNone continues parsing.
	CancelNone CancelMode = iota
	// CancelAbort stops parsing; the outcome is a non-success cancellation.
	CancelAbort
	// CancelAbortWithHelp stops parsing and flags that help was requested.
	CancelAbortWithHelp
	// CancelSuccess stops parsing; the outcome counts as success.
	CancelSuccess
	// CancelSuccessWithHelp stops parsing as success and flags that help
	// was requested.
	CancelSuccessWithHelp
)

func (c CancelMode) cancels() bool {
	return c != CancelNone
}

func (c CancelMode) successLike() bool {
	return c == CancelSuccess || c == CancelSuccessWithHelp
}

func (c CancelMode) helpRequested() bool {
	return c == CancelAbortWithHelp || c == CancelSuccessWithHelp
}

// UnknownArgumentAction is returned by an UnknownArgumentFunc hook.
type UnknownArgumentAction int

const (
	// UnknownError lets the unknown token become a terminal error.
	UnknownError UnknownArgumentAction = iota
	// UnknownIgnore skips the token and continues parsing.
	UnknownIgnore
	// UnknownCancel cancels the parse without success.
	UnknownCancel
	// UnknownCancelWithSuccess cancels the parse as success.
	UnknownCancelWithSuccess
)

// DuplicateAction is returned by a DuplicateArgumentFunc hook.
type DuplicateAction int

const (
	// DuplicateUseNew replaces the stored value with the new occurrence.
	DuplicateUseNew DuplicateAction = iota
	// DuplicateKeepOld keeps the first occurrence's value.
	DuplicateKeepOld
	// DuplicateReject fails the parse with a DuplicateArgument error.
	DuplicateReject
)

// UnknownArgumentFunc decides what to do with an unresolvable name token.
// name is the candidate name text, raw the literal token.
type UnknownArgumentFunc func(name string, raw string) UnknownArgumentAction

// ArgumentParsedFunc is invoked after each successfully bound value and may
// request cancellation.
type ArgumentParsedFunc func(p *Parser, arg *Argument, value interface{}) CancelMode

// DuplicateArgumentFunc decides how to treat a repeated occurrence of a
// non-accumulating argument.
type DuplicateArgumentFunc func(p *Parser, arg *Argument, oldValue interface{}, newText string) DuplicateAction

// MethodFunc is the callback of a Method-kind argument.
type MethodFunc func(p *Parser, arg *Argument, value interface{}) CancelMode

// ConverterFunc converts raw value text into a typed value using the
// configured culture. Returning (nil, nil) yields a null value, accepted
// only for arguments that allow null.
type ConverterFunc func(text string, culture language.Tag) (interface{}, error)

// ConfigureParserFunc is used when building a Parser with NewParserWith.
type ConfigureParserFunc func(p *Parser, err *error)

// ConfigureArgumentFunc is used when building an Argument with NewArg.
type ConfigureArgumentFunc func(a *Argument, err *error)

// CommandFunc is the callback associated with a resolved command.
type CommandFunc func(p *Parser, cmd *Command) error

// ConfigureCommandFunc is used when building a Command with NewCommand.
type ConfigureCommandFunc func(command *Command)

// ParseValidator checks cross-argument conditions after binding completes,
// e.g. requires/prohibits relations. It runs only for arguments that
// received a value.
type ParseValidator interface {
	Description() string
	ValidateParse(p *Parser, arg *Argument) error
}

// Secure marks an argument whose value, when omitted on the command line,
// is solicited from the terminal without echo.
type Secure struct {
	IsSecure bool
	Prompt   string
}

// Configuration-time errors, reported while declaring arguments rather than
// while parsing.
var (
	ErrEmptyArgumentName      = errors.New("argument name must not be empty")
	ErrArgumentAlreadyExists  = errors.New("an argument with this name, alias or short name already exists")
	ErrPositionOccupied       = errors.New("another argument already occupies this position")
	ErrPositionsNotContiguous = errors.New("positional arguments must occupy contiguous positions starting at 0")
	ErrMultiValueNotLast      = errors.New("a multi-value positional argument must be last")
	ErrKindNotPositional      = errors.New("dictionary and method arguments cannot be positional")
	ErrCommandAlreadyExists   = errors.New("a command with this name or alias already exists")
	ErrNoCommandName          = errors.New("no command name was supplied")
)

// Parser holds a set of argument descriptors plus parsing configuration and
// runs the binding engine over raw argument vectors. A Parser may be reused
// across sequential Parse calls; per-parse state is reset each time.
type Parser struct {
	arguments *orderedmap.OrderedMap[string, *Argument]
	lookup    map[string]string
	shorts    map[string]string

	commands      *orderedmap.OrderedMap[string, *Command]
	commandLookup map[string]string

	prefixes            []string
	longPrefix          string
	caseSensitive       bool
	separators          []rune
	terminator          string
	termination         PrefixTerminationMode
	duplicates          DuplicatePolicy
	autoPrefixAliases   bool
	whitespaceSeparator bool
	culture             language.Tag

	onUnknown   UnknownArgumentFunc
	onParsed    ArgumentParsedFunc
	onDuplicate DuplicateArgumentFunc

	stderr   io.Writer
	terminal input.TerminalReader

	target    interface{}
	fields    []boundField
	finalizer func() error

	run *parseRun
}
