package cmdargs

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/quindle/cmdargs/errs"
	"github.com/quindle/cmdargs/internal/culture"
	"github.com/quindle/cmdargs/internal/parse"
	"github.com/quindle/cmdargs/types/queue"
)

type tokenKind int

const (
	tokenPositional tokenKind = iota
	tokenNamed
	tokenTerminator
)

// token is an interpreted unit of input: a named token carrying a candidate
// argument name and optional inline value, or a positional token carrying
// literal text. Tokens are produced and consumed within one parse pass.
type token struct {
	kind     tokenKind
	name     string
	short    bool
	combined bool
	inline   *string
	raw      string
}

// tokenizer splits the raw argument vector into tokens, honoring the
// configured prefixes, separators and prefix-termination mode. Combined
// short switches expand into one token per character, buffered on a queue.
type tokenizer struct {
	p             *Parser
	pending       *queue.Q[token]
	allPositional bool
	numericNames  bool
}

func newTokenizer(p *Parser) *tokenizer {
	return &tokenizer{
		p:            p,
		pending:      queue.New[token](),
		numericNames: p.hasNumericNames(),
	}
}

// next produces the next token. The second return value is false at the end
// of input.
func (t *tokenizer) next(state parse.State) (token, bool, *errs.Error) {
	if tok, ok := t.pending.Dequeue(); ok {
		return tok, true, nil
	}
	for {
		if !state.Advance() {
			return token{}, false, nil
		}
		raw := state.Current()
		if t.allPositional {
			return token{kind: tokenPositional, raw: raw}, true, nil
		}
		if t.p.termination != TerminationNone && raw == t.p.terminator {
			if t.p.termination == TerminationPositionalOnly {
				t.allPositional = true
				continue
			}
			return token{kind: tokenTerminator, raw: raw}, true, nil
		}
		return t.classify(raw)
	}
}

func (t *tokenizer) classify(raw string) (token, bool, *errs.Error) {
	if t.p.longPrefix != "" {
		if rest, ok := strip(raw, t.p.longPrefix); ok {
			name, inline := t.splitSeparator(rest)
			return token{kind: tokenNamed, name: name, inline: inline, raw: raw}, true, nil
		}
		if rest, ok := t.stripShortPrefix(raw); ok {
			if t.looksNumeric(raw) {
				return token{kind: tokenPositional, raw: raw}, true, nil
			}
			return t.shortToken(raw, rest)
		}
		return token{kind: tokenPositional, raw: raw}, true, nil
	}
	if rest, ok := t.stripShortPrefix(raw); ok {
		if t.looksNumeric(raw) {
			return token{kind: tokenPositional, raw: raw}, true, nil
		}
		name, inline := t.splitSeparator(rest)
		return token{kind: tokenNamed, name: name, inline: inline, raw: raw}, true, nil
	}
	return token{kind: tokenPositional, raw: raw}, true, nil
}

// shortToken produces a single short-name token, or expands a multi-rune
// name run into combined switches. Every rune must resolve to a Switch
// argument; the inline value, if any, goes to the last one.
func (t *tokenizer) shortToken(raw, rest string) (token, bool, *errs.Error) {
	name, inline := t.splitSeparator(rest)
	runes := []rune(name)
	if len(runes) <= 1 {
		return token{kind: tokenNamed, name: name, short: true, inline: inline, raw: raw}, true, nil
	}
	for _, r := range runes {
		arg, err := t.p.resolveShort(string(r))
		if err != nil || !arg.isSwitch() {
			return token{}, false, errs.ErrCombinedShortNameNonSwitch.
				WithArgs(string(r), raw).
				ForArgument(string(r))
		}
	}
	for i, r := range runes {
		tok := token{kind: tokenNamed, name: string(r), short: true, combined: true, raw: raw}
		if i == len(runes)-1 {
			tok.inline = inline
		}
		t.pending.Enqueue(tok)
	}
	first, _ := t.pending.Dequeue()
	return first, true, nil
}

// looksNamed reports whether raw would be classified as a named token or a
// terminator, i.e. whether it stops whitespace-separated value consumption.
func (t *tokenizer) looksNamed(raw string) bool {
	if t.allPositional {
		return false
	}
	if t.p.termination != TerminationNone && raw == t.p.terminator {
		return true
	}
	if t.p.longPrefix != "" {
		if _, ok := strip(raw, t.p.longPrefix); ok {
			return true
		}
	}
	if _, ok := t.stripShortPrefix(raw); ok {
		return !t.looksNumeric(raw)
	}
	return false
}

func (t *tokenizer) stripShortPrefix(raw string) (string, bool) {
	for _, prefix := range t.p.prefixes {
		if rest, ok := strip(raw, prefix); ok {
			return rest, true
		}
	}
	return "", false
}

// looksNumeric reports whether a prefixed token is really a negative number.
// Only applies when no declared name could be mistaken for one.
func (t *tokenizer) looksNumeric(raw string) bool {
	if t.numericNames {
		return false
	}
	_, err := strconv.ParseFloat(culture.Normalize(raw, t.p.culture), 64)
	return err == nil
}

// splitSeparator splits a name run from its inline value at the first
// name-value separator. A trailing separator yields an empty inline value,
// which is valid input, distinct from no inline value at all.
func (t *tokenizer) splitSeparator(s string) (string, *string) {
	idx := strings.IndexFunc(s, func(r rune) bool {
		for _, sep := range t.p.separators {
			if r == sep {
				return true
			}
		}
		return false
	})
	if idx < 0 {
		return s, nil
	}
	_, width := utf8.DecodeRuneInString(s[idx:])
	inline := s[idx+width:]
	return s[:idx], &inline
}

func strip(raw, prefix string) (string, bool) {
	if prefix != "" && strings.HasPrefix(raw, prefix) && len(raw) > len(prefix) {
		return raw[len(prefix):], true
	}
	return "", false
}
