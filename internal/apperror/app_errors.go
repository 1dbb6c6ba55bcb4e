package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidState = errors.New("invalid match state")

	ErrMatchOver          = fmt.Errorf("%w: match is already over", ErrInvalidState)
	ErrInvalidTargetScore = fmt.Errorf("%w: invalid target score", ErrInvalidState)

	ErrSessionNotFound  = errors.New("session not found")
	ErrMalformedRequest = errors.New("malformed request")
)

// Message - returns the text safe to show a player for err; unknown errors are hidden.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidMove):
		return ErrInvalidMove.Error()
	case errors.Is(err, ErrMatchOver):
		return "match is already over, reset to play again"
	case errors.Is(err, ErrInvalidTargetScore):
		return ErrInvalidTargetScore.Error()
	case errors.Is(err, ErrInvalidState):
		return ErrInvalidState.Error()
	case errors.Is(err, ErrSessionNotFound):
		return ErrSessionNotFound.Error()
	case errors.Is(err, ErrMalformedRequest):
		return ErrMalformedRequest.Error()
	default:
		return "internal error"
	}
}
