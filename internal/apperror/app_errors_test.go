package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateErrorsShareTheParent(t *testing.T) {
	assert.ErrorIs(t, ErrMatchOver, ErrInvalidState)
	assert.ErrorIs(t, ErrInvalidTargetScore, ErrInvalidState)
	assert.NotErrorIs(t, ErrInvalidMove, ErrInvalidState)
}

func TestMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("failed to play round: %w", ErrInvalidMove), "invalid move"},
		{fmt.Errorf("failed to play round: %w", ErrMatchOver), "match is already over, reset to play again"},
		{fmt.Errorf("%w: got 0", ErrInvalidTargetScore), "invalid match state: invalid target score"},
		{ErrSessionNotFound, "session not found"},
		{errors.New("dial tcp: connection refused"), "internal error"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Message(tc.err))
	}
}
