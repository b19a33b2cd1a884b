package cmdargs

import (
	"strings"

	"github.com/quindle/cmdargs/errs"
	"github.com/quindle/cmdargs/internal/parse"
	"github.com/quindle/cmdargs/types/queue"
)

// Command defines a named subcommand wrapping its own argument set.
// Commands may nest to represent sub-subcommands.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Hidden      bool
	Subcommands []*Command
	// Setup declares the command's arguments on the parser built for it.
	Setup func(p *Parser) error
	// Callback runs when the command is executed after a successful parse.
	Callback CommandFunc
}

// AddCommand registers a top-level command. Command names and aliases share
// one namespace under the parser's case comparison.
func (p *Parser) AddCommand(cmd *Command) error {
	if cmd == nil || cmd.Name == "" {
		return ErrNoCommandName
	}
	names := append([]string{cmd.Name}, cmd.Aliases...)
	for _, name := range names {
		if _, taken := p.commandLookup[p.foldName(name)]; taken {
			return ErrCommandAlreadyExists
		}
	}
	key := p.foldName(cmd.Name)
	p.commands.Set(key, cmd)
	for _, name := range names {
		p.commandLookup[p.foldName(name)] = key
	}
	return nil
}

// GetCommand returns the command registered under name or one of its
// aliases. Prefix matching does not apply.
func (p *Parser) GetCommand(name string) (*Command, bool) {
	if canonical, ok := p.commandLookup[p.foldName(name)]; ok {
		return p.commands.Get(canonical)
	}
	return nil, false
}

// Commands returns the visible registered commands in declaration order.
// Hidden commands are excluded.
func (p *Parser) Commands() []*Command {
	var out []*Command
	p.commands.ForEach(func(_ string, cmd *Command) bool {
		if !cmd.Hidden {
			out = append(out, cmd)
		}
		return true
	})
	return out
}

// resolveCommand applies the same exact-then-prefix algorithm as argument
// resolution over the command registry. Hidden commands still resolve.
func (p *Parser) resolveCommand(name string) (*Command, *errs.Error) {
	folded := p.foldName(name)
	if canonical, ok := p.commandLookup[folded]; ok {
		cmd, _ := p.commands.Get(canonical)
		return cmd, nil
	}
	var owners []string
	var match *Command
	p.commands.ForEach(func(canonical string, cmd *Command) bool {
		if p.commandOwnsPrefix(cmd, folded) {
			owners = append(owners, cmd.Name)
			match = cmd
		}
		return true
	})
	switch len(owners) {
	case 1:
		return match, nil
	case 0:
		return nil, errs.ErrUnknownCommand.WithArgs(name).ForArgument(name)
	default:
		return nil, errs.ErrAmbiguousCommand.
			WithArgs(name).
			WithCandidates(owners).
			ForArgument(name)
	}
}

func (p *Parser) commandOwnsPrefix(cmd *Command, folded string) bool {
	names := append([]string{cmd.Name}, cmd.Aliases...)
	for _, name := range names {
		if strings.HasPrefix(p.foldName(name), folded) {
			return true
		}
	}
	return false
}

// CommandResult is the outcome of dispatching a command line. It embeds the
// innermost parse result and exposes the resolved command chain.
type CommandResult struct {
	*ParseResult
	// Command is the innermost resolved command.
	Command *Command
	// Parser is the innermost parser, holding the bound values.
	Parser *Parser

	chain *queue.Q[*Command]
}

// Execute runs the innermost command's callback. It is a no-op when the
// parse did not succeed or the command has no callback.
func (r *CommandResult) Execute() error {
	if !r.Success() || r.Command == nil || r.Command.Callback == nil {
		return nil
	}
	return r.Command.Callback(r.Parser, r.Command)
}

// ExecuteAll runs the callbacks of every command on the resolved chain,
// outermost first, stopping at the first failure.
func (r *CommandResult) ExecuteAll() error {
	if !r.Success() {
		return nil
	}
	for r.chain.Len() > 0 {
		cmd, _ := r.chain.Dequeue()
		if cmd.Callback == nil {
			continue
		}
		if err := cmd.Callback(r.Parser, cmd); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch resolves args[0] as a command, builds the command's own parser,
// and descends into subcommands as long as the next element resolves to
// one. The innermost parser binds the elements that remain.
func (p *Parser) Dispatch(args []string) *CommandResult {
	chain := queue.New[*Command]()
	result := &CommandResult{chain: chain}
	if len(args) == 0 {
		result.ParseResult = &ParseResult{
			Status: StatusError,
			Err:    errs.ErrUnknownCommand.WithArgs("").Wrap(ErrNoCommandName),
		}
		return result
	}

	scope := p
	rest := args
	for {
		cmd, cerr := scope.resolveCommand(rest[0])
		if cerr != nil {
			result.ParseResult = &ParseResult{
				Status:       StatusError,
				Err:          cerr,
				ArgumentName: cerr.Argument(),
				Remaining:    append([]string(nil), rest...),
			}
			return result
		}
		chain.Enqueue(cmd)
		result.Command = cmd
		rest = rest[1:]

		sub := p.newCommandParser()
		if err := sub.setupCommand(cmd); err != nil {
			result.ParseResult = &ParseResult{
				Status:       StatusError,
				Err:          errs.ErrCreateArgumentsType.Wrap(err),
				ArgumentName: cmd.Name,
			}
			return result
		}
		result.Parser = sub

		if len(cmd.Subcommands) > 0 && len(rest) > 0 {
			if _, serr := sub.resolveCommand(rest[0]); serr == nil {
				scope = sub
				continue
			}
		}
		result.ParseResult = sub.Parse(rest)
		return result
	}
}

// DispatchString splits a command line with shell quoting rules before
// dispatching.
func (p *Parser) DispatchString(line string) *CommandResult {
	args, err := parse.Split(line)
	if err != nil {
		return &CommandResult{
			ParseResult: &ParseResult{
				Status: StatusError,
				Err:    errs.ErrCreateArgumentsType.Wrap(err),
			},
			chain: queue.New[*Command](),
		}
	}
	return p.Dispatch(args)
}

// newCommandParser builds a fresh parser for a resolved command, inheriting
// the dispatching parser's configuration and hooks.
func (p *Parser) newCommandParser() *Parser {
	sub := NewParser()
	sub.prefixes = append([]string(nil), p.prefixes...)
	sub.longPrefix = p.longPrefix
	sub.caseSensitive = p.caseSensitive
	sub.separators = append([]rune(nil), p.separators...)
	sub.terminator = p.terminator
	sub.termination = p.termination
	sub.duplicates = p.duplicates
	sub.autoPrefixAliases = p.autoPrefixAliases
	sub.whitespaceSeparator = p.whitespaceSeparator
	sub.culture = p.culture
	sub.onUnknown = p.onUnknown
	sub.onParsed = p.onParsed
	sub.onDuplicate = p.onDuplicate
	sub.stderr = p.stderr
	sub.terminal = p.terminal
	return sub
}

func (p *Parser) setupCommand(cmd *Command) error {
	if cmd.Setup != nil {
		if err := cmd.Setup(p); err != nil {
			return err
		}
	}
	for _, sub := range cmd.Subcommands {
		if err := p.AddCommand(sub); err != nil {
			return err
		}
	}
	return nil
}
