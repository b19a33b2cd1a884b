package cmdargs

import (
	"strings"

	"github.com/quindle/cmdargs/errs"
)

// Name resolution maps a token's name text to an argument descriptor.
// Exact matches (canonical name, then alias, then short name) always win
// over prefix matches. Prefix-alias matching collects every name and alias
// beginning with the candidate run: a single owning argument is a match,
// several produce an AmbiguousPrefixAlias failure carrying the sorted
// canonical names. In long/short mode the long and short namespaces are
// resolved independently.

func (p *Parser) foldName(name string) string {
	if p.caseSensitive {
		return name
	}
	return strings.ToLower(name)
}

func (p *Parser) resolveToken(tok token) (*Argument, *errs.Error) {
	if tok.short && p.longPrefix != "" {
		return p.resolveShort(tok.name)
	}
	return p.resolveLong(tok.name)
}

func (p *Parser) resolveLong(name string) (*Argument, *errs.Error) {
	key := p.foldName(name)
	if canonical, ok := p.lookup[key]; ok {
		arg, _ := p.arguments.Get(canonical)
		return arg, nil
	}
	if p.longPrefix == "" {
		// default mode: short names share the namespace
		if canonical, ok := p.shorts[key]; ok {
			arg, _ := p.arguments.Get(canonical)
			return arg, nil
		}
	}
	if p.autoPrefixAliases {
		if arg, candidates := p.prefixMatch(key); arg != nil {
			return arg, nil
		} else if len(candidates) > 1 {
			return nil, errs.ErrAmbiguousPrefixAlias.
				WithArgs(name).
				WithCandidates(candidates).
				ForArgument(name)
		}
	}
	return nil, errs.ErrUnknownArgument.WithArgs(name).ForArgument(name)
}

func (p *Parser) resolveShort(name string) (*Argument, *errs.Error) {
	if canonical, ok := p.shorts[p.foldName(name)]; ok {
		arg, _ := p.arguments.Get(canonical)
		return arg, nil
	}
	return nil, errs.ErrUnknownArgument.WithArgs(name).ForArgument(name)
}

// prefixMatch collects every argument owning a name or alias that starts
// with the folded candidate. Exactly one owner is a unique match even when
// several of its aliases match; several owners return their canonical names.
func (p *Parser) prefixMatch(folded string) (*Argument, []string) {
	var owners []string
	var match *Argument
	p.arguments.ForEach(func(_ string, arg *Argument) bool {
		if p.ownsPrefix(arg, folded) {
			owners = append(owners, arg.Name)
			match = arg
		}
		return true
	})
	if len(owners) == 1 {
		return match, owners
	}
	return nil, owners
}

func (p *Parser) ownsPrefix(arg *Argument, folded string) bool {
	if strings.HasPrefix(p.foldName(arg.Name), folded) {
		return true
	}
	for _, alias := range arg.Aliases {
		if strings.HasPrefix(p.foldName(alias), folded) {
			return true
		}
	}
	return false
}

// findArgument resolves a declared name, alias or short name exactly. Used
// by getters and dependency validators, never with prefix matching.
func (p *Parser) findArgument(name string) (*Argument, bool) {
	key := p.foldName(name)
	if canonical, ok := p.lookup[key]; ok {
		return p.argumentByCanonical(canonical)
	}
	if canonical, ok := p.shorts[key]; ok {
		return p.argumentByCanonical(canonical)
	}
	return nil, false
}

func (p *Parser) argumentByCanonical(canonical string) (*Argument, bool) {
	arg, ok := p.arguments.Get(canonical)
	return arg, ok
}

// hasNumericNames reports whether any declared name or alias could be
// mistaken for a negative number, which disables numeric reclassification
// of prefixed tokens.
func (p *Parser) hasNumericNames() bool {
	numeric := false
	p.arguments.ForEach(func(_ string, arg *Argument) bool {
		names := append([]string{arg.Name}, arg.Aliases...)
		for _, name := range names {
			if name == "" {
				continue
			}
			c := name[0]
			if c == '-' || c == '.' || (c >= '0' && c <= '9') {
				numeric = true
				return false
			}
		}
		return true
	})
	return numeric
}
