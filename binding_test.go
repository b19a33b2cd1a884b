package cmdargs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/quindle/cmdargs/errs"
)

func TestParser_DictionaryAccumulation(t *testing.T) {
	p, err := NewParserWith(WithFlag("prop", NewArg(WithKind(Dictionary))))
	require.NoError(t, err)

	result := p.Parse([]string{"-prop", "a=1", "-prop", "b=2"})
	require.True(t, result.Success(), "dictionary entries should bind: %v", result.Err)

	dict := p.GetDictionary("prop")
	require.NotNil(t, dict)
	assert.Equal(t, []interface{}{"a", "b"}, dict.Keys(), "insertion order is preserved")
	value, ok := dict.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", value)
}

func TestParser_DictionaryInvalidEntry(t *testing.T) {
	p, err := NewParserWith(WithFlag("prop", NewArg(WithKind(Dictionary))))
	require.NoError(t, err)

	result := p.Parse([]string{"-prop", "noseparator"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryInvalidDictionaryValue, result.Err.Category())
}

func TestParser_DictionaryDuplicateKey(t *testing.T) {
	p, err := NewParserWith(WithFlag("prop", NewArg(WithKind(Dictionary))))
	require.NoError(t, err)

	result := p.Parse([]string{"-prop", "a=1", "-prop", "a=2"})
	require.Equal(t, StatusError, result.Status, "duplicate keys follow the duplicate policy")
	assert.Equal(t, errs.CategoryInvalidDictionaryValue, result.Err.Category())
}

func TestParser_DictionaryDuplicateKeyAllowed(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("prop", NewArg(WithKind(Dictionary), SetAllowDuplicateKeys(true))))
	require.NoError(t, err)

	result := p.Parse([]string{"-prop", "a=1", "-prop", "a=2"})
	require.True(t, result.Success())

	dict := p.GetDictionary("prop")
	value, _ := dict.Get("a")
	assert.Equal(t, "2", value, "the last occurrence wins")
	assert.Equal(t, 1, dict.Len())
}

func TestParser_DictionaryCustomSeparatorAndConverters(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("limit", NewArg(
			WithKind(Dictionary),
			WithKeyValueSeparator("->"),
			WithValueConverter(ConvertInt))))
	require.NoError(t, err)

	result := p.Parse([]string{"-limit", "cpu->4", "-limit", "mem->512"})
	require.True(t, result.Success(), "custom separator should split: %v", result.Err)

	dict := p.GetDictionary("limit")
	cpu, _ := dict.Get("cpu")
	assert.Equal(t, 4, cpu)
	mem, _ := dict.Get("mem")
	assert.Equal(t, 512, mem)
}

type fakeTerminal struct {
	secret string
}

func (fakeTerminal) IsTerminal(int) bool {
	return true
}

func (f fakeTerminal) ReadPassword(int) ([]byte, error) {
	return []byte(f.secret), nil
}

func TestParser_SecureArgumentPrompts(t *testing.T) {
	var out bytes.Buffer
	p, err := NewParserWith(
		WithFlag("password", NewArg(WithPrompt("secret: "))),
		WithStderr(&out),
		WithTerminalReader(fakeTerminal{secret: "hunter2"}))
	require.NoError(t, err)

	result := p.Parse([]string{"-password"})
	require.True(t, result.Success(), "secure prompt should fill the value: %v", result.Err)
	assert.Equal(t, "hunter2", p.GetString("password"))
	assert.Contains(t, out.String(), "secret: ")
}

func TestParser_SecureArgumentInlineSkipsPrompt(t *testing.T) {
	var out bytes.Buffer
	p, err := NewParserWith(
		WithFlag("password", NewArg(SetSecure(true))),
		WithStderr(&out),
		WithTerminalReader(fakeTerminal{secret: "unused"}))
	require.NoError(t, err)

	result := p.Parse([]string{"-password:direct"})
	require.True(t, result.Success())
	assert.Equal(t, "direct", p.GetString("password"))
	assert.Empty(t, out.String(), "an inline value suppresses the prompt")
}

func TestParser_GettersBeforeParse(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("name", NewArg(WithDefault("anon"))),
		WithFlag("bare", NewArg()))
	require.NoError(t, err)

	value, ok := p.Get("name")
	assert.True(t, ok, "defaults are visible before any parse")
	assert.Equal(t, "anon", value)
	assert.False(t, p.HasValue("name"))

	_, ok = p.Get("bare")
	assert.False(t, ok)
	_, ok = p.Get("never-declared")
	assert.False(t, ok)
}

func TestParser_GetByAliasAndShort(t *testing.T) {
	p, err := NewParserWith(
		WithFlag("output", NewArg(WithShort('o'), WithAliases("out"))))
	require.NoError(t, err)

	result := p.Parse([]string{"-out", "file.txt"})
	require.True(t, result.Success())
	assert.Equal(t, "file.txt", p.GetString("output"))
	assert.Equal(t, "file.txt", p.GetString("out"))
	assert.Equal(t, "file.txt", p.GetString("o"))
}

func TestParser_NullValueRejected(t *testing.T) {
	null := func(string, language.Tag) (interface{}, error) {
		return nil, nil
	}

	p, err := NewParserWith(WithFlag("val", NewArg(WithConverter(null))))
	require.NoError(t, err)

	result := p.Parse([]string{"-val", "x"})
	require.Equal(t, StatusError, result.Status)
	assert.Equal(t, errs.CategoryNullArgumentValue, result.Err.Category())

	p, err = NewParserWith(
		WithFlag("val", NewArg(WithConverter(null), SetAllowNull(true))))
	require.NoError(t, err)

	result = p.Parse([]string{"-val", "x"})
	require.True(t, result.Success(), "null is accepted when the argument allows it")
}
