package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/rps-backend/internal/apperror"
)

type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
)

// Moves lists every valid move in display order.
var Moves = [...]Move{Rock, Paper, Scissors}

// beats maps a move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

func (that Move) IsValid() bool {
	_, ok := beats[that]
	return ok
}

// Beats - reports whether that defeats other.
func (that Move) Beats(other Move) bool {
	loser, ok := beats[that]
	return ok && loser == other
}

func (that Move) String() string {
	return string(that)
}

// ParseMove - converts user input into a Move.
func ParseMove(raw string) (Move, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "scissor" {
		value = string(Scissors)
	}

	move := Move(value)
	if !move.IsValid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMove, raw)
	}

	return move, nil
}
