// Package input reads secure values from the terminal.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotATerminal is returned when stdin is not attached to a terminal.
var ErrNotATerminal = errors.New("not attached to a terminal")

// TerminalReader abstracts the terminal for testability.
type TerminalReader interface {
	IsTerminal(fd int) bool
	ReadPassword(fd int) ([]byte, error)
}

// DefaultTerminalReader reads from the process terminal via x/term.
type DefaultTerminalReader struct{}

func (DefaultTerminalReader) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (DefaultTerminalReader) ReadPassword(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

// SecureString prompts on w and reads a line from the terminal without echo.
func SecureString(prompt string, w io.Writer, reader TerminalReader) (string, error) {
	if reader == nil {
		reader = DefaultTerminalReader{}
	}
	fd := int(os.Stdin.Fd())
	if !reader.IsTerminal(fd) {
		return "", ErrNotATerminal
	}
	fmt.Fprint(w, prompt)
	bytes, err := reader.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
