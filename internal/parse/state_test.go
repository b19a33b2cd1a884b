package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateCursor(t *testing.T) {
	s := NewState([]string{"a", "b", "c"})
	assert.Equal(t, -1, s.Pos(), "the cursor starts before the first element")
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "a", s.Peek())

	assert.True(t, s.Advance())
	assert.Equal(t, "a", s.Current())
	assert.Equal(t, "b", s.Peek())

	assert.True(t, s.Advance())
	assert.True(t, s.Advance())
	assert.Equal(t, "c", s.Current())
	assert.Equal(t, "", s.Peek(), "peeking past the end yields the empty string")
	assert.False(t, s.Advance())
}

func TestStateAt(t *testing.T) {
	s := NewState([]string{"a", "b"})
	v, err := s.At(1)
	assert.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = s.At(2)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = s.At(-1)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestStateRemaining(t *testing.T) {
	s := NewState([]string{"a", "b", "c"})
	assert.Equal(t, []string{"b", "c"}, s.Remaining(1))
	assert.Equal(t, []string{"a", "b", "c"}, s.Remaining(-5))
	assert.Nil(t, s.Remaining(3))

	rest := s.Remaining(0)
	rest[0] = "mutated"
	assert.Equal(t, "a", s.Args()[0], "remaining returns a copy")
}

func TestSplit(t *testing.T) {
	args, err := Split(`-message "hello world" -n 3`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"-message", "hello world", "-n", "3"}, args)

	args, err = Split("")
	assert.NoError(t, err)
	assert.Empty(t, args)

	_, err = Split(`"unterminated`)
	assert.Error(t, err)
}
