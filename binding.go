package cmdargs

import (
	"fmt"
	"strings"

	"github.com/quindle/cmdargs/errs"
	"github.com/quindle/cmdargs/input"
	"github.com/quindle/cmdargs/internal/parse"
	"github.com/quindle/cmdargs/types/orderedmap"
	"github.com/quindle/cmdargs/types/queue"
)

// parseRun is the mutable state of one Parse invocation, owned exclusively
// by the binding engine. It is recreated at the start of every parse so a
// descriptor set can be reused across sequential parses.
type parseRun struct {
	values      map[string]interface{}
	set         map[string]bool
	status      Status
	trigger     string
	help        bool
	successLike bool
	remaining   []string
	err         *errs.Error
	positional  []*Argument
	posIndex    int
	secure      *queue.Q[*Argument]
}

func newParseRun() *parseRun {
	return &parseRun{
		values: map[string]interface{}{},
		set:    map[string]bool{},
		secure: queue.New[*Argument](),
	}
}

func (p *Parser) fail(err *errs.Error, state parse.State, from int) {
	p.run.status = StatusError
	p.run.err = err
	p.run.trigger = err.Argument()
	p.run.remaining = state.Remaining(from)
}

func (p *Parser) cancelAt(mode CancelMode, trigger string, state parse.State, from int) {
	p.run.status = StatusCanceled
	p.run.trigger = trigger
	p.run.help = mode.helpRequested()
	p.run.successLike = mode.successLike()
	p.run.remaining = state.Remaining(from)
}

func (p *Parser) result() *ParseResult {
	return &ParseResult{
		Status:        p.run.status,
		Err:           p.run.err,
		ArgumentName:  p.run.trigger,
		HelpRequested: p.run.help,
		SuccessLike:   p.run.successLike,
		Remaining:     p.run.remaining,
	}
}

func (p *Parser) parseAll(state parse.State) {
	tz := newTokenizer(p)
	for p.run.status == StatusNone {
		tok, ok, terr := tz.next(state)
		if terr != nil {
			p.fail(terr, state, state.Pos())
			return
		}
		if !ok {
			break
		}
		switch tok.kind {
		case tokenTerminator:
			// the terminator itself counts as unconsumed
			p.cancelAt(CancelSuccess, "", state, state.Pos())
		case tokenNamed:
			p.bindNamed(tok, state, tz)
		default:
			p.bindPositional(tok, state)
		}
	}
	if p.run.status == StatusNone {
		p.finalize(state)
	}
}

func (p *Parser) bindNamed(tok token, state parse.State, tz *tokenizer) {
	arg, rerr := p.resolveToken(tok)
	if rerr != nil {
		if p.onUnknown != nil && rerr.Category() == errs.CategoryUnknownArgument {
			switch p.onUnknown(tok.name, tok.raw) {
			case UnknownIgnore:
				return
			case UnknownCancel:
				p.cancelAt(CancelAbort, tok.name, state, state.Pos())
				return
			case UnknownCancelWithSuccess:
				p.cancelAt(CancelSuccess, tok.name, state, state.Pos())
				return
			}
		}
		p.fail(rerr, state, state.Pos())
		return
	}

	var texts []string
	switch {
	case tok.inline != nil:
		texts = []string{*tok.inline}
	case arg.isSwitch() || arg.Kind == Method:
		texts = []string{"true"}
	case arg.Secure.IsSecure:
		// value solicited from the terminal at finalize
		p.run.secure.Enqueue(arg)
		return
	default:
		if !p.canConsumeValue(arg, tok) || state.Pos()+1 >= state.Len() || tz.looksNamed(state.Peek()) {
			p.fail(errs.ErrMissingNamedArgumentValue.WithArgs(arg.Name).ForArgument(arg.Name), state, state.Pos())
			return
		}
		state.Advance()
		texts = []string{state.Current()}
		if arg.Kind == MultiValue && arg.GreedyValues && arg.MultiValueSeparator == "" {
			for state.Pos()+1 < state.Len() && !tz.looksNamed(state.Peek()) {
				state.Advance()
				texts = append(texts, state.Current())
			}
		}
	}

	for _, text := range texts {
		if serr := p.setValue(arg, text, state); serr != nil {
			p.fail(serr, state, state.Pos())
			return
		}
		if p.run.status != StatusNone {
			return
		}
	}
}

func (p *Parser) canConsumeValue(arg *Argument, tok token) bool {
	if tok.combined || arg.InlineOnly {
		return false
	}
	return p.whitespaceSeparator
}

func (p *Parser) bindPositional(tok token, state parse.State) {
	arg := p.nextPositionalArg()
	if arg == nil {
		p.fail(errs.ErrTooManyArguments.WithArgs(tok.raw), state, state.Pos())
		return
	}
	if serr := p.setValue(arg, tok.raw, state); serr != nil {
		p.fail(serr, state, state.Pos())
	}
}

// nextPositionalArg returns the next unfilled positional slot. A trailing
// MultiValue positional keeps consuming once reached.
func (p *Parser) nextPositionalArg() *Argument {
	if p.run.posIndex >= len(p.run.positional) {
		return nil
	}
	arg := p.run.positional[p.run.posIndex]
	if !(arg.Kind == MultiValue && p.run.posIndex == len(p.run.positional)-1) {
		p.run.posIndex++
	}
	return arg
}

// setValue runs the full value-application pipeline for one occurrence:
// pre-conversion validators, conversion, accumulation, post-conversion
// validators, duplicate handling, storage, and the parsed notification.
func (p *Parser) setValue(arg *Argument, text string, state parse.State) *errs.Error {
	if verr := p.preValidate(arg, text); verr != nil {
		return verr
	}

	var stored interface{}
	switch arg.Kind {
	case Dictionary:
		if derr := p.applyDictValue(arg, text); derr != nil {
			return derr
		}
		stored = p.run.values[arg.id]
	case MultiValue:
		items := []string{text}
		if arg.MultiValueSeparator != "" {
			items = strings.Split(text, arg.MultiValueSeparator)
		}
		list, _ := p.run.values[arg.id].([]interface{})
		for _, item := range items {
			value, cerr := p.convertOne(arg, arg.converterFor(), item)
			if cerr != nil {
				return cerr
			}
			if verr := p.postValidate(arg, item, value); verr != nil {
				return verr
			}
			list = append(list, value)
		}
		p.run.values[arg.id] = list
		stored = list
	default:
		value, cerr := p.convertOne(arg, arg.converterFor(), text)
		if cerr != nil {
			return cerr
		}
		if verr := p.postValidate(arg, text, value); verr != nil {
			return verr
		}
		if p.run.set[arg.id] {
			if derr := p.handleDuplicate(arg, text, &value); derr != nil {
				return derr
			}
		}
		p.run.values[arg.id] = value
		stored = value
	}
	p.run.set[arg.id] = true

	if arg.Kind == Method && arg.Method != nil {
		if mode := arg.Method(p, arg, stored); mode.cancels() {
			p.cancelAt(mode, arg.Name, state, state.Pos()+1)
			return nil
		}
	}
	if p.onParsed != nil {
		if mode := p.onParsed(p, arg, stored); mode.cancels() {
			p.cancelAt(mode, arg.Name, state, state.Pos()+1)
		}
	}
	return nil
}

func (p *Parser) preValidate(arg *Argument, text string) *errs.Error {
	for _, v := range arg.PreValidators {
		if tv, ok := v.(textChecker); ok {
			if err := tv.ValidateText(text); err != nil {
				return errs.ErrValidationFailed.
					WithArgs(text, arg.Name).
					ForArgument(arg.Name).
					Wrap(err)
			}
		}
	}
	return nil
}

func (p *Parser) postValidate(arg *Argument, text string, value interface{}) *errs.Error {
	for _, v := range arg.PostValidators {
		if vv, ok := v.(valueChecker); ok {
			if err := vv.ValidateValue(value); err != nil {
				return errs.ErrValidationFailed.
					WithArgs(text, arg.Name).
					ForArgument(arg.Name).
					Wrap(err)
			}
		}
	}
	return nil
}

// textChecker and valueChecker mirror validation.TextValidator and
// validation.ValueValidator structurally, so a validator list can hold
// either without the engine importing concrete types.
type textChecker interface {
	ValidateText(text string) error
}

type valueChecker interface {
	ValidateValue(value interface{}) error
}

func (p *Parser) convertOne(arg *Argument, conv ConverterFunc, text string) (interface{}, *errs.Error) {
	value, err := conv(text, p.culture)
	if err != nil {
		return nil, errs.ErrArgumentValueConversion.
			WithArgs(text, arg.Name).
			ForArgument(arg.Name).
			Wrap(err)
	}
	if value == nil && !arg.AllowNull {
		return nil, errs.ErrNullArgumentValue.WithArgs(arg.Name).ForArgument(arg.Name)
	}
	return value, nil
}

func (p *Parser) handleDuplicate(arg *Argument, newText string, newValue *interface{}) *errs.Error {
	old := p.run.values[arg.id]
	if p.onDuplicate != nil {
		switch p.onDuplicate(p, arg, old, newText) {
		case DuplicateKeepOld:
			*newValue = old
			return nil
		case DuplicateUseNew:
			return nil
		case DuplicateReject:
			return errs.ErrDuplicateArgument.WithArgs(arg.Name).ForArgument(arg.Name)
		}
	}
	switch p.duplicates {
	case DuplicateAllow:
		return nil
	case DuplicateWarn:
		fmt.Fprintf(p.stderr, "warning: argument '%s' was supplied more than once\n", arg.Name)
		return nil
	default:
		return errs.ErrDuplicateArgument.WithArgs(arg.Name).ForArgument(arg.Name)
	}
}

// applyDictValue splits a key=value entry, converts both sides and inserts
// them into the accumulating ordered map, honoring the duplicate-key policy.
func (p *Parser) applyDictValue(arg *Argument, text string) *errs.Error {
	sep := arg.KeyValueSeparator
	idx := strings.Index(text, sep)
	if idx < 0 {
		return errs.ErrInvalidDictionaryValue.
			WithArgs(text, arg.Name).
			ForArgument(arg.Name).
			Wrap(fmt.Errorf("missing '%s' separator", sep))
	}
	key, kerr := p.convertOne(arg, arg.keyConverterFor(), text[:idx])
	if kerr != nil {
		return kerr
	}
	value, verr := p.convertOne(arg, arg.valueConverterFor(), text[idx+len(sep):])
	if verr != nil {
		return verr
	}
	if perr := p.postValidate(arg, text, value); perr != nil {
		return perr
	}

	dict, _ := p.run.values[arg.id].(*orderedmap.OrderedMap[interface{}, interface{}])
	if dict == nil {
		dict = orderedmap.New[interface{}, interface{}]()
		p.run.values[arg.id] = dict
	}
	if old, existed := dict.Set(key, value); existed {
		if p.onDuplicate != nil {
			switch p.onDuplicate(p, arg, old, text) {
			case DuplicateKeepOld:
				dict.Set(key, old)
				return nil
			case DuplicateUseNew:
				return nil
			case DuplicateReject:
				dict.Set(key, old)
				return p.duplicateKeyError(arg, text, key)
			}
		}
		allow := p.duplicates != DuplicateError
		if arg.AllowDuplicateKeys != nil {
			allow = *arg.AllowDuplicateKeys
		}
		if !allow {
			dict.Set(key, old)
			return p.duplicateKeyError(arg, text, key)
		}
		if arg.AllowDuplicateKeys == nil && p.duplicates == DuplicateWarn {
			fmt.Fprintf(p.stderr, "warning: duplicate key '%v' for argument '%s'\n", key, arg.Name)
		}
	}
	return nil
}

func (p *Parser) duplicateKeyError(arg *Argument, text string, key interface{}) *errs.Error {
	return errs.ErrInvalidDictionaryValue.
		WithArgs(text, arg.Name).
		ForArgument(arg.Name).
		Wrap(errs.ErrDuplicateArgument.WithArgs(fmt.Sprintf("%v", key)))
}

// finalize runs after all tokens are consumed: secure prompts, parse-scope
// validators, the required check, and target construction. Failures here do
// not roll back already-bound values.
func (p *Parser) finalize(state parse.State) {
	for p.run.secure.Len() > 0 {
		arg, _ := p.run.secure.Dequeue()
		if p.run.set[arg.id] {
			continue
		}
		prompt := arg.Secure.Prompt
		if prompt == "" {
			prompt = "password: "
		}
		text, err := input.SecureString(prompt, p.stderr, p.terminal)
		if err != nil {
			p.fail(errs.ErrMissingNamedArgumentValue.
				WithArgs(arg.Name).
				ForArgument(arg.Name).
				Wrap(err), state, state.Len())
			return
		}
		if serr := p.setValue(arg, text, state); serr != nil {
			p.fail(serr, state, state.Len())
			return
		}
		if p.run.status != StatusNone {
			return
		}
	}

	p.arguments.ForEach(func(_ string, arg *Argument) bool {
		if !p.run.set[arg.id] {
			return true
		}
		for _, v := range arg.ParseValidators {
			if err := v.ValidateParse(p, arg); err != nil {
				p.fail(errs.ErrDependencyFailed.
					WithArgs(arg.Name).
					ForArgument(arg.Name).
					Wrap(err), state, state.Len())
				return false
			}
		}
		return true
	})
	if p.run.status != StatusNone {
		return
	}

	p.arguments.ForEach(func(_ string, arg *Argument) bool {
		if arg.Required && !p.run.set[arg.id] && arg.DefaultValue == nil {
			p.fail(errs.ErrMissingRequiredArgument.
				WithArgs(arg.Name).
				ForArgument(arg.Name), state, state.Len())
			return false
		}
		return true
	})
	if p.run.status != StatusNone {
		return
	}

	if err := p.applyFields(); err != nil {
		p.fail(err, state, state.Len())
		return
	}
	if p.finalizer != nil {
		if err := p.finalizer(); err != nil {
			p.fail(errs.ErrCreateArgumentsType.Wrap(err), state, state.Len())
			return
		}
	}
	p.run.status = StatusSuccess
}
