// Copyright 2024-2026, the cmdargs authors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package cmdargs provides support for command-line argument processing.
//
// It supports 5 kinds of arguments:
//
//	SingleValue - an argument holding one converted value
//	MultiValue  - an argument accumulating an ordered list of values
//	Dictionary  - an argument accumulating ordered key=value pairs
//	Switch      - a boolean argument whose presence alone means true
//	Method      - an argument invoking a callback, which may cancel the parse
//
// Arguments are matched by canonical name, by alias, by single-rune short
// name, or by unambiguous prefix of a name or alias. Values follow their
// name either inline after a separator rune (":" or "=" by default) or as
// the next whitespace-separated element. Positional values fill declared
// positional slots in order. Commands and sub-commands (Command) are
// supported and dispatch over the elements a parse leaves unconsumed.
package cmdargs

import (
	"fmt"
	"os"

	"golang.org/x/text/language"

	"github.com/quindle/cmdargs/errs"
	"github.com/quindle/cmdargs/input"
	"github.com/quindle/cmdargs/internal/parse"
	"github.com/quindle/cmdargs/types/orderedmap"
)

// NewParser creates an empty Parser with the default configuration: "-" as
// the sole name prefix, ":" and "=" as inline value separators, "--" as the
// prefix terminator in positional-only mode, case-insensitive matching,
// automatic prefix aliases, and duplicate occurrences treated as errors.
func NewParser() *Parser {
	return &Parser{
		arguments:           orderedmap.New[string, *Argument](),
		lookup:              map[string]string{},
		shorts:              map[string]string{},
		commands:            orderedmap.New[string, *Command](),
		commandLookup:       map[string]string{},
		prefixes:            []string{"-"},
		separators:          []rune{':', '='},
		terminator:          "--",
		termination:         TerminationPositionalOnly,
		duplicates:          DuplicateError,
		autoPrefixAliases:   true,
		whitespaceSeparator: true,
		culture:             language.Und,
		stderr:              os.Stderr,
		terminal:            input.DefaultTerminalReader{},
	}
}

// NewParserWith creates a Parser and applies configuration functions in
// order, reporting the first failure.
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	p := NewParser()
	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AddFlag registers an argument descriptor. The canonical name, every alias
// and the short name must be unique among all registered arguments; aliases
// share the namespace of canonical names.
func (p *Parser) AddFlag(arg *Argument) error {
	if arg == nil || arg.Name == "" {
		return ErrEmptyArgumentName
	}
	arg.ensureInit()

	names := append([]string{arg.Name}, arg.Aliases...)
	for _, name := range names {
		if name == "" {
			return ErrEmptyArgumentName
		}
		if _, taken := p.lookup[p.foldName(name)]; taken {
			return fmt.Errorf("%w: '%s'", ErrArgumentAlreadyExists, name)
		}
	}
	shorts := arg.shortNames()
	for _, short := range shorts {
		if _, taken := p.shorts[p.foldName(short)]; taken {
			return fmt.Errorf("%w: '%s'", ErrArgumentAlreadyExists, short)
		}
	}
	if arg.Position != nil {
		if *arg.Position < 0 {
			return ErrPositionsNotContiguous
		}
		if arg.Kind == Dictionary || arg.Kind == Method {
			return ErrKindNotPositional
		}
		var conflict error
		p.arguments.ForEach(func(_ string, other *Argument) bool {
			if other.Position != nil && *other.Position == *arg.Position {
				conflict = fmt.Errorf("%w: position %d", ErrPositionOccupied, *arg.Position)
				return false
			}
			return true
		})
		if conflict != nil {
			return conflict
		}
	}

	key := p.foldName(arg.Name)
	p.arguments.Set(key, arg)
	for _, name := range names {
		p.lookup[p.foldName(name)] = key
	}
	for _, short := range shorts {
		p.shorts[p.foldName(short)] = key
	}
	return nil
}

// GetArgument returns the descriptor registered under name, which may be a
// canonical name, an alias or a short name. Prefix aliases do not apply.
func (p *Parser) GetArgument(name string) (*Argument, bool) {
	return p.findArgument(name)
}

// Arguments returns the registered descriptors in declaration order.
func (p *Parser) Arguments() []*Argument {
	out := make([]*Argument, 0, p.arguments.Len())
	p.arguments.ForEach(func(_ string, arg *Argument) bool {
		out = append(out, arg)
		return true
	})
	return out
}

// Parse runs the binding engine over args, which must not include the
// program name. The returned result reports success, a terminal error, or a
// cancellation, together with the elements left unconsumed.
func (p *Parser) Parse(args []string) *ParseResult {
	p.run = newParseRun()
	state := parse.NewState(args)

	positional, err := p.positionals()
	if err != nil {
		p.fail(errs.ErrCreateArgumentsType.Wrap(err), state, 0)
		return p.result()
	}
	p.run.positional = positional

	p.parseAll(state)
	return p.result()
}

// ParseString splits a single command line with shell quoting rules and
// parses the resulting elements.
func (p *Parser) ParseString(line string) *ParseResult {
	args, err := parse.Split(line)
	if err != nil {
		p.run = newParseRun()
		p.fail(errs.ErrCreateArgumentsType.Wrap(err), parse.NewState(nil), 0)
		return p.result()
	}
	return p.Parse(args)
}

// Get returns the bound value of the named argument, falling back to its
// declared default. The second return reports whether either was available.
func (p *Parser) Get(name string) (interface{}, bool) {
	arg, ok := p.findArgument(name)
	if !ok {
		return nil, false
	}
	if p.run != nil && p.run.set[arg.id] {
		return p.run.values[arg.id], true
	}
	if arg.DefaultValue != nil {
		return arg.DefaultValue, true
	}
	return nil, false
}

// HasValue reports whether the named argument was explicitly supplied during
// the last parse. Defaults do not count.
func (p *Parser) HasValue(name string) bool {
	arg, ok := p.findArgument(name)
	if !ok || p.run == nil {
		return false
	}
	return p.run.set[arg.id]
}

// GetString returns the bound value rendered as a string, or "" when the
// argument has no value.
func (p *Parser) GetString(name string) string {
	value, ok := p.Get(name)
	if !ok || value == nil {
		return ""
	}
	if s, isString := value.(string); isString {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// GetBool returns the bound value as a bool, false when absent or not a
// bool.
func (p *Parser) GetBool(name string) bool {
	value, ok := p.Get(name)
	if !ok {
		return false
	}
	b, _ := value.(bool)
	return b
}

// GetSlice returns the accumulated values of a multi-value argument in
// binding order.
func (p *Parser) GetSlice(name string) []interface{} {
	value, ok := p.Get(name)
	if !ok {
		return nil
	}
	list, _ := value.([]interface{})
	return list
}

// GetDictionary returns the accumulated entries of a dictionary argument.
// Entries preserve first-insertion order.
func (p *Parser) GetDictionary(name string) *orderedmap.OrderedMap[interface{}, interface{}] {
	value, ok := p.Get(name)
	if !ok {
		return nil
	}
	dict, _ := value.(*orderedmap.OrderedMap[interface{}, interface{}])
	return dict
}
