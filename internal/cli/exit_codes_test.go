package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitBlocked, ExitCode(NewExitError(ExitBlocked)))
	assert.Equal(t, ExitBlocked, ExitCode(fmt.Errorf("wrapped: %w", NewExitError(ExitBlocked))))
}

func TestExitErrorHasNoMessage(t *testing.T) {
	err := NewExitError(ExitBlocked)

	assert.True(t, isExitError(err))
	assert.Empty(t, err.Error())
	assert.False(t, isExitError(errors.New("boom")))
}
