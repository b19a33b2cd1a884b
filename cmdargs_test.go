package cmdargs

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/quindle/cmdargs/errs"
	"github.com/quindle/cmdargs/validation"
)

func TestParser_ParseWellFormed(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("output", NewArg(WithShort('o'), SetRequired(true))),
		WithFlag("verbose", NewArg(WithShort('v'), WithKind(Switch))),
		WithFlag("count", NewArg(WithConverter(ConvertInt))))
	require.NoError(t, err)

	result := p.Parse([]string{"-output", "out.txt", "-verbose", "-count:3"})
	require.Equal(t, StatusSuccess, result.Status, "parse should succeed: %v", result.Err)

	out, ok := p.Get("output")
	assert.True(t, ok)
	assert.Equal(t, "out.txt", out)
	assert.Equal(t, true, p.GetBool("verbose"))
	count, _ := p.Get("count")
	assert.Equal(t, 3, count)
}

func TestParser_InlineSeparators(t *testing.T) {
	p, err := NewParserWith(WithFlag("name", NewArg()))
	require.NoError(t, err)

	for _, input := range []string{"-name=joe", "-name:joe"} {
		result := p.Parse([]string{input})
		require.True(t, result.Success(), "input %q should parse", input)
		assert.Equal(t, "joe", p.GetString("name"))
	}
}

func TestParser_EmptyInlineValue(t *testing.T) {
	p, err := NewParserWith(WithFlag("name", NewArg()))
	require.NoError(t, err)

	result := p.Parse([]string{"-name:"})
	require.True(t, result.Success())

	value, ok := p.Get("name")
	assert.True(t, ok, "an empty inline value is a value, not an omission")
	assert.Equal(t, "", value)
}

func TestParser_UnknownArgument(t *testing.T) {
	p, err := NewParserWith(WithFlag("known", NewArg()))
	require.NoError(t, err)

	result := p.Parse([]string{"-known", "x", "-bogus", "y"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryUnknownArgument, result.Err.Category())
	assert.Equal(t, "bogus", result.ArgumentName)
	assert.Equal(t, []string{"-bogus", "y"}, result.Remaining,
		"remaining tokens start at the offending token")
	assert.True(t, errors.Is(result.Err, errs.ErrUnknownArgument))
	assert.Equal(t, "x", p.GetString("known"), "earlier bindings survive the error")
}

func TestParser_UnknownArgumentHook(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("known", NewArg()),
		WithUnknownArgumentFunc(func(name, raw string) UnknownArgumentAction {
			return UnknownIgnore
		}))
	require.NoError(t, err)

	result := p.Parse([]string{"-bogus", "-known", "x"})
	require.True(t, result.Success(), "ignored unknown token should not fail the parse")
	assert.Equal(t, "x", p.GetString("known"))
}

func TestParser_UnknownArgumentHookCancel(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("known", NewArg()),
		WithUnknownArgumentFunc(func(name, raw string) UnknownArgumentAction {
			return UnknownCancelWithSuccess
		}))
	require.NoError(t, err)

	result := p.Parse([]string{"-bogus", "rest"})
	assert.True(t, result.Canceled())
	assert.True(t, result.Success())
	assert.Equal(t, []string{"-bogus", "rest"}, result.Remaining)
}

func TestParser_UnknownArgumentHookAbort(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("known", NewArg()),
		WithUnknownArgumentFunc(func(name, raw string) UnknownArgumentAction {
			return UnknownCancel
		}))
	require.NoError(t, err)

	result := p.Parse([]string{"-bogus", "rest"})
	assert.True(t, result.Canceled())
	assert.False(t, result.Success(), "an abort cancellation does not count as success")
	assert.Equal(t, "bogus", result.ArgumentName)
	assert.Equal(t, []string{"-bogus", "rest"}, result.Remaining)
}

func TestParser_Idempotence(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("x", NewArg(WithKind(MultiValue))),
		WithFlag("flag", NewArg(WithKind(Switch))))
	require.NoError(t, err)

	args := []string{"-x", "a", "-x", "b", "-flag"}
	first := p.Parse(args)
	second := p.Parse(args)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, []interface{}{"a", "b"}, p.GetSlice("x"),
		"accumulation restarts on each parse")
}

func TestParser_MultiValueAccumulation(t *testing.T) {
	p, err := NewParserWith(WithFlag("X", NewArg(WithKind(MultiValue))))
	require.NoError(t, err)

	result := p.Parse([]string{"-X", "a", "-X", "b", "-X", "c"})
	require.True(t, result.Success())
	assert.Equal(t, []interface{}{"a", "b", "c"}, p.GetSlice("X"))
}

func TestParser_MultiValueDelimited(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("X", NewArg(WithKind(MultiValue), WithMultiValueSeparator(";"))))
	require.NoError(t, err)

	result := p.Parse([]string{"-X", "a;b;c"})
	require.True(t, result.Success())
	assert.Equal(t, []interface{}{"a", "b", "c"}, p.GetSlice("X"))
}

func TestParser_MultiValueTakesOneValuePerOccurrence(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("input", NewArg(WithPosition(0), SetRequired(true))),
		WithFlag("X", NewArg(WithKind(MultiValue))))
	require.NoError(t, err)

	result := p.Parse([]string{"-X", "a", "b"})
	require.True(t, result.Success(),
		"a non-greedy occurrence takes one value and leaves the rest: %v", result.Err)
	assert.Equal(t, []interface{}{"a"}, p.GetSlice("X"))
	assert.Equal(t, "b", p.GetString("input"), "the positional slot keeps its value")
}

func TestParser_MultiValueGreedy(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("X", NewArg(WithKind(MultiValue), SetGreedyValues(true))),
		WithFlag("flag", NewArg(WithKind(Switch))))
	require.NoError(t, err)

	result := p.Parse([]string{"-X", "a", "b", "c", "-flag"})
	require.True(t, result.Success())
	assert.Equal(t, []interface{}{"a", "b", "c"}, p.GetSlice("X"),
		"a greedy occurrence consumes up to the next named token")
	assert.True(t, p.GetBool("flag"))
}

func TestParser_AmbiguousPrefixAlias(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("Port", NewArg()),
		WithFlag("Prefix", NewArg()),
		WithFlag("Protocol", NewArg()))
	require.NoError(t, err)

	result := p.Parse([]string{"-p", "x"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryAmbiguousPrefixAlias, result.Err.Category())
	assert.Equal(t, []string{"Port", "Prefix", "Protocol"}, result.Err.Candidates())

	result = p.Parse([]string{"-pro", "tcp"})
	require.True(t, result.Success(), "'pro' is a unique prefix of Protocol")
	assert.Equal(t, "tcp", p.GetString("Protocol"))
}

func TestParser_ExactMatchBeatsPrefix(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("Port", NewArg(WithConverter(ConvertInt))),
		WithFlag("PortNumber", NewArg(WithConverter(ConvertInt))))
	require.NoError(t, err)

	result := p.Parse([]string{"-Port", "80"})
	require.True(t, result.Success())
	assert.True(t, p.HasValue("Port"))
	assert.False(t, p.HasValue("PortNumber"))
}

func TestParser_PrefixAliasDisabled(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("Protocol", NewArg()),
		WithAutoPrefixAliases(false))
	require.NoError(t, err)

	result := p.Parse([]string{"-pro", "tcp"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryUnknownArgument, result.Err.Category())
}

func TestParser_CombinedSwitches(t *testing.T) {
	newP := func() *Parser {
		p, err := NewParserWith(
			WithLongPrefix("--"),
			WithFlag("sync", NewArg(WithShort('s'), WithKind(Switch))),
			WithFlag("update", NewArg(WithShort('u'), WithKind(Switch))),
			WithFlag("file", NewArg(WithShort('f'))))
		require.NoError(t, err)
		return p
	}

	p := newP()
	result := p.Parse([]string{"-su"})
	require.True(t, result.Success(), "all-switch combination should bind: %v", result.Err)
	assert.True(t, p.GetBool("sync"))
	assert.True(t, p.GetBool("update"))

	p = newP()
	result = p.Parse([]string{"-sf"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryCombinedShortNameNonSwitch, result.Err.Category())
}

func TestParser_LongShortNamespaces(t *testing.T) {
	p, err := NewParserWith(
		WithLongPrefix("--"),
		WithFlag("verbose", NewArg(WithShort('v'), WithKind(Switch))))
	require.NoError(t, err)

	result := p.Parse([]string{"-v"})
	require.True(t, result.Success())
	assert.True(t, p.GetBool("verbose"))

	// a long token resolves through the long namespace only
	result = p.Parse([]string{"--verbose"})
	require.True(t, result.Success())
	assert.True(t, p.GetBool("verbose"))
}

func TestParser_DependencyValidation(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("Port", NewArg(WithConverter(ConvertInt), WithRequires("Address"))),
		WithFlag("Address", NewArg()))
	require.NoError(t, err)

	result := p.Parse([]string{"-Port", "9000"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryDependencyFailed, result.Err.Category())
	assert.Equal(t, "Port", result.ArgumentName)
	assert.True(t, p.HasValue("Port"), "the value binds before the dependency check runs")
	port, _ := p.Get("Port")
	assert.Equal(t, 9000, port)

	result = p.Parse([]string{"-Port", "9000", "-Address", "::1"})
	assert.True(t, result.Success())
}

func TestParser_Prohibits(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("quiet", NewArg(WithKind(Switch), WithProhibits("verbose"))),
		WithFlag("verbose", NewArg(WithKind(Switch))))
	require.NoError(t, err)

	result := p.Parse([]string{"-quiet", "-verbose"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryDependencyFailed, result.Err.Category())
}

func TestParser_RequiresAny(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("deploy", NewArg(WithKind(Switch), WithRequiresAny("staging", "production"))),
		WithFlag("staging", NewArg(WithKind(Switch))),
		WithFlag("production", NewArg(WithKind(Switch))))
	require.NoError(t, err)

	result := p.Parse([]string{"-deploy"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryDependencyFailed, result.Err.Category())

	result = p.Parse([]string{"-deploy", "-staging"})
	assert.True(t, result.Success())
}

func TestParser_DuplicatePolicyError(t *testing.T) {
	p, err := NewParserWith(WithFlag("name", NewArg()))
	require.NoError(t, err)

	result := p.Parse([]string{"-name", "a", "-name", "b"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryDuplicateArgument, result.Err.Category())
}

func TestParser_DuplicatePolicyAllow(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("name", NewArg()),
		WithDuplicatePolicy(DuplicateAllow))
	require.NoError(t, err)

	result := p.Parse([]string{"-name", "a", "-name", "b"})
	require.True(t, result.Success())
	assert.Equal(t, "b", p.GetString("name"), "last occurrence wins")
}

func TestParser_DuplicatePolicyWarn(t *testing.T) {
	var stderr bytes.Buffer
	p, err := NewParserWith(
		WithFlag("name", NewArg()),
		WithDuplicatePolicy(DuplicateWarn),
		WithStderr(&stderr))
	require.NoError(t, err)

	result := p.Parse([]string{"-name", "a", "-name", "b"})
	require.True(t, result.Success())
	assert.Equal(t, "b", p.GetString("name"))
	assert.Contains(t, stderr.String(), "name")
}

func TestParser_DuplicateHookKeepOld(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("name", NewArg()),
		WithDuplicateArgumentFunc(func(_ *Parser, _ *Argument, _ interface{}, _ string) DuplicateAction {
			return DuplicateKeepOld
		}))
	require.NoError(t, err)

	result := p.Parse([]string{"-name", "a", "-name", "b"})
	require.True(t, result.Success())
	assert.Equal(t, "a", p.GetString("name"), "hook keeps the first occurrence")
}

func TestParser_PositionalScenario(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("arg1", NewArg(WithPosition(0), SetRequired(true))),
		WithFlag("arg2", NewArg(WithPosition(1), WithConverter(ConvertInt), WithDefault(42))),
		WithFlag("arg6", NewArg(SetRequired(true))))
	require.NoError(t, err)

	result := p.Parse([]string{"val1", "2", "-arg6", "val6"})
	require.Equal(t, StatusSuccess, result.Status, "scenario should succeed: %v", result.Err)
	assert.Equal(t, "val1", p.GetString("arg1"))
	arg2, _ := p.Get("arg2")
	assert.Equal(t, 2, arg2)
	assert.Equal(t, "val6", p.GetString("arg6"))
}

func TestParser_PositionalDefault(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("arg1", NewArg(WithPosition(0))),
		WithFlag("arg2", NewArg(WithPosition(1), WithDefault(42))))
	require.NoError(t, err)

	result := p.Parse([]string{"only"})
	require.True(t, result.Success())
	arg2, ok := p.Get("arg2")
	assert.True(t, ok)
	assert.Equal(t, 42, arg2)
	assert.False(t, p.HasValue("arg2"), "a default is not an explicit value")
}

func TestParser_TooManyArguments(t *testing.T) {
	p, err := NewParserWith(WithFlag("arg1", NewArg(WithPosition(0))))
	require.NoError(t, err)

	result := p.Parse([]string{"a", "b"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryTooManyArguments, result.Err.Category())
	assert.Equal(t, []string{"b"}, result.Remaining)
}

func TestParser_TrailingMultiValuePositional(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("first", NewArg(WithPosition(0))),
		WithFlag("rest", NewArg(WithPosition(1), WithKind(MultiValue))))
	require.NoError(t, err)

	result := p.Parse([]string{"a", "b", "c", "d"})
	require.True(t, result.Success())
	assert.Equal(t, "a", p.GetString("first"))
	assert.Equal(t, []interface{}{"b", "c", "d"}, p.GetSlice("rest"))
}

func TestParser_PrefixTerminationPositionalOnly(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("Arg1", NewArg(WithPosition(0))),
		WithFlag("Arg2", NewArg(WithPosition(1))),
		WithFlag("Arg3", NewArg(WithPosition(2))),
		WithFlag("Arg4", NewArg(WithKind(Switch))))
	require.NoError(t, err)

	result := p.Parse([]string{"Foo", "--", "-Arg4", "Bar"})
	require.Equal(t, StatusSuccess, result.Status, "terminator suppresses name interpretation: %v", result.Err)
	assert.Equal(t, "Foo", p.GetString("Arg1"))
	assert.Equal(t, "-Arg4", p.GetString("Arg2"))
	assert.Equal(t, "Bar", p.GetString("Arg3"))
	assert.False(t, p.HasValue("Arg4"))
}

func TestParser_PrefixTerminationCancelWithSuccess(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("name", NewArg()),
		WithPrefixTermination(TerminationCancelWithSuccess))
	require.NoError(t, err)

	result := p.Parse([]string{"-name", "x", "--", "rest", "-more"})
	assert.True(t, result.Canceled())
	assert.True(t, result.Success())
	assert.Equal(t, []string{"--", "rest", "-more"}, result.Remaining,
		"the terminator itself is reported unconsumed")
	assert.Equal(t, "x", p.GetString("name"))
}

func TestParser_PrefixTerminationNone(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("arg1", NewArg(WithPosition(0))),
		WithPrefixTermination(TerminationNone))
	require.NoError(t, err)

	// without termination "--" classifies like any other prefixed element
	result := p.Parse([]string{"--"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryUnknownArgument, result.Err.Category())
	assert.Equal(t, "-", result.ArgumentName)
}

func TestParser_NegativeNumberPositional(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("offset", NewArg(WithPosition(0), WithConverter(ConvertInt))))
	require.NoError(t, err)

	result := p.Parse([]string{"-5"})
	require.True(t, result.Success(), "a negative number is not a named token: %v", result.Err)
	offset, _ := p.Get("offset")
	assert.Equal(t, -5, offset)
}

func TestParser_MissingNamedArgumentValue(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("name", NewArg()),
		WithFlag("flag", NewArg(WithKind(Switch))))
	require.NoError(t, err)

	result := p.Parse([]string{"-name"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryMissingNamedArgumentValue, result.Err.Category())

	result = p.Parse([]string{"-name", "-flag"})
	require.Equal(t, StatusError, result.Status,
		"a following named token is not consumed as a value")
	assert.Equal(t, errs.CategoryMissingNamedArgumentValue, result.Err.Category())
}

func TestParser_InlineOnly(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("level", NewArg(SetInlineOnly(true))))
	require.NoError(t, err)

	result := p.Parse([]string{"-level:3"})
	require.True(t, result.Success())
	assert.Equal(t, "3", p.GetString("level"))

	result = p.Parse([]string{"-level", "3"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryMissingNamedArgumentValue, result.Err.Category())
}

func TestParser_WhitespaceSeparatorDisabled(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("level", NewArg()),
		WithWhitespaceSeparator(false))
	require.NoError(t, err)

	result := p.Parse([]string{"-level=3"})
	require.True(t, result.Success())
	assert.Equal(t, "3", p.GetString("level"))

	result = p.Parse([]string{"-level", "3"})
	require.Equal(t, StatusError, result.Status,
		"without the whitespace separator every value must be inline")
	assert.Equal(t, errs.CategoryMissingNamedArgumentValue, result.Err.Category())
}

func TestParser_MissingRequiredArgument(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("needed", NewArg(SetRequired(true))),
		WithFlag("other", NewArg()))
	require.NoError(t, err)

	result := p.Parse([]string{"-other", "x"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryMissingRequiredArgument, result.Err.Category())
	assert.Equal(t, "needed", result.ArgumentName)
}

func TestParser_RequiredWithDefault(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("needed", NewArg(SetRequired(true), WithDefault("fallback"))))
	require.NoError(t, err)

	result := p.Parse(nil)
	require.True(t, result.Success(), "a default satisfies the required check")
	assert.Equal(t, "fallback", p.GetString("needed"))
}

func TestParser_ConversionError(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("count", NewArg(WithConverter(ConvertInt))))
	require.NoError(t, err)

	result := p.Parse([]string{"-count", "many"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryArgumentValueConversion, result.Err.Category())
	assert.NotNil(t, result.Err.Unwrap(), "the converter's failure is wrapped as the inner cause")
}

func TestParser_CultureConversion(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("ratio", NewArg(WithConverter(ConvertFloat64))),
		WithCulture(language.German))
	require.NoError(t, err)

	result := p.Parse([]string{"-ratio", "1.234,5"})
	require.True(t, result.Success(), "German separators should convert: %v", result.Err)
	ratio, _ := p.Get("ratio")
	assert.Equal(t, 1234.5, ratio)
}

func TestParser_CaseSensitivity(t *testing.T) {
	p, err := NewParserWith(WithFlag("verbose", NewArg(WithKind(Switch))))
	require.NoError(t, err)

	result := p.Parse([]string{"-VERBOSE"})
	require.True(t, result.Success(), "matching is case-insensitive by default")

	p, err = NewParserWith(
		WithFlag("verbose", NewArg(WithKind(Switch))),
		WithCaseSensitive(true))
	require.NoError(t, err)

	result = p.Parse([]string{"-VERBOSE"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryUnknownArgument, result.Err.Category())
}

func TestParser_MethodArgument(t *testing.T) {
	invoked := false
	p, err := NewParserWith(
		WithFlag("version", NewArg(WithMethod(func(_ *Parser, _ *Argument, _ interface{}) CancelMode {
			invoked = true
			return CancelSuccess
		}))),
		WithFlag("other", NewArg()))
	require.NoError(t, err)

	result := p.Parse([]string{"-version", "-other", "x"})
	assert.True(t, invoked)
	assert.True(t, result.Canceled())
	assert.True(t, result.Success())
	assert.Equal(t, []string{"-other", "x"}, result.Remaining,
		"cancellation leaves the rest unconsumed")
}

func TestParser_ArgumentParsedHookHelp(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("help", NewArg(WithKind(Switch))),
		WithArgumentParsedFunc(func(_ *Parser, arg *Argument, _ interface{}) CancelMode {
			if arg.Name == "help" {
				return CancelSuccessWithHelp
			}
			return CancelNone
		}))
	require.NoError(t, err)

	result := p.Parse([]string{"-help"})
	assert.True(t, result.Canceled())
	assert.True(t, result.Success())
	assert.True(t, result.HelpRequested)
	assert.Equal(t, "help", result.ArgumentName)
}

func TestParser_Validators(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("name", NewArg(
			WithPreValidators(validation.StringLength(2, 8)))),
		WithFlag("port", NewArg(
			WithConverter(ConvertInt),
			WithPostValidators(validation.Range(f64(1), f64(65535))))))
	require.NoError(t, err)

	result := p.Parse([]string{"-name", "x"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryValidationFailed, result.Err.Category())
	assert.False(t, p.HasValue("name"), "a value failing validation is not set")

	result = p.Parse([]string{"-port", "99999"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryValidationFailed, result.Err.Category())

	result = p.Parse([]string{"-name", "joe", "-port", "8080"})
	require.True(t, result.Success(), "valid values should pass: %v", result.Err)
}

func TestParser_ParseString(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("message", NewArg()),
		WithFlag("flag", NewArg(WithKind(Switch))))
	require.NoError(t, err)

	result := p.ParseString(`-message "hello world" -flag`)
	require.True(t, result.Success(), "quoted splitting should work: %v", result.Err)
	assert.Equal(t, "hello world", p.GetString("message"))
	assert.True(t, p.GetBool("flag"))
}

func TestParser_AddFlagConflicts(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.AddFlag(&Argument{Name: "name", Short: 'n'}))

	err := p.AddFlag(&Argument{Name: "name"})
	assert.ErrorIs(t, err, ErrArgumentAlreadyExists)

	err = p.AddFlag(&Argument{Name: "other", Short: 'n'})
	assert.ErrorIs(t, err, ErrArgumentAlreadyExists)

	err = p.AddFlag(&Argument{Name: "alias-clash", Aliases: []string{"name"}})
	assert.ErrorIs(t, err, ErrArgumentAlreadyExists)

	err = p.AddFlag(&Argument{})
	assert.ErrorIs(t, err, ErrEmptyArgumentName)
}

func TestParser_PositionInvariants(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("a", NewArg(WithPosition(0))),
		WithFlag("b", NewArg(WithPosition(2))))
	require.NoError(t, err)

	result := p.Parse([]string{"x", "y"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryCreateArgumentsTypeError, result.Err.Category())
	assert.ErrorIs(t, result.Err.Unwrap(), ErrPositionsNotContiguous)
}

func TestParser_MultiValuePositionalNotLast(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("files", NewArg(WithPosition(0), WithKind(MultiValue))),
		WithFlag("dest", NewArg(WithPosition(1))))
	require.NoError(t, err)

	result := p.Parse([]string{"a", "b"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryCreateArgumentsTypeError, result.Err.Category())
	assert.ErrorIs(t, result.Err.Unwrap(), ErrMultiValueNotLast)
}

func f64(v float64) *float64 {
	return &v
}
