package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(NewValidationError("bad")))
	assert.Equal(t, KindNotFound, KindOf(NewNotFoundError("product with id %d not found", 3)))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("wrapped: %w", NewConflictError("nope"))))
	assert.Equal(t, KindUnhandled, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnhandled, KindOf(nil))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewUnhandledError("Invalid request body", cause)

	assert.Equal(t, "Invalid request body: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
}
