// Package parse holds the low-level primitives the binding engine iterates
// with: a cursor over the raw argument vector and shell-style splitting of
// single-string command lines.
package parse

import "errors"

// ErrInvalidPosition is returned when an out-of-range position is accessed.
var ErrInvalidPosition = errors.New("invalid position")

// State is a cursor over the raw argument list. The engine starts before the
// first element; Advance moves onto the next one.
type State interface {
	Pos() int                      // current position, -1 before the first Advance
	SetPos(pos int)                // reposition the cursor
	Skip()                         // skip the element after the current one
	Args() []string                // the whole argument list
	Current() string               // element at the current position
	At(pos int) (string, error)    // element at an arbitrary position
	Peek() string                  // next element without advancing, "" at the end
	Advance() bool                 // move to the next element
	Len() int                      // number of elements
	Remaining(from int) []string   // copy of the elements from position from onward
}

type sliceState struct {
	pos  int
	args []string
}

// NewState creates a State positioned before the first element of args.
func NewState(args []string) State {
	return &sliceState{pos: -1, args: args}
}

func (s *sliceState) Pos() int {
	return s.pos
}

func (s *sliceState) SetPos(pos int) {
	s.pos = pos
}

func (s *sliceState) Skip() {
	s.pos++
}

func (s *sliceState) Args() []string {
	return s.args
}

func (s *sliceState) Current() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

func (s *sliceState) At(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}
	return s.args[pos], nil
}

func (s *sliceState) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}
	return ""
}

func (s *sliceState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

func (s *sliceState) Len() int {
	return len(s.args)
}

func (s *sliceState) Remaining(from int) []string {
	if from < 0 {
		from = 0
	}
	if from >= len(s.args) {
		return nil
	}
	rest := make([]string, len(s.args)-from)
	copy(rest, s.args[from:])
	return rest
}
