package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	base := &codedError{code: "CARD_STATE"}
	wrapped := Wrap(Wrap(base, "lock card"), "record purchase")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsIdentity(t *testing.T) {
	sentinel := New("card not found")

	assert.True(t, Is(Wrapf(sentinel, "card %d", 7), sentinel))
	assert.True(t, Is(Join(New("other"), WithStack(sentinel)), sentinel))
	assert.Equal(t, "card 7: card not found", Wrapf(sentinel, "card %d", 7).Error())
}
