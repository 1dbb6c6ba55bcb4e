package rps

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/rps-backend/internal/apperror"
	"github.com/rocketscienceinc/rps-backend/internal/entity"
)

// Source - random source used to pick the computer move. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type Engine struct {
	source Source
}

func NewEngine(source Source) *Engine {
	return &Engine{source: source}
}

// ComputerMove - picks one of the three moves uniformly at random.
func (that *Engine) ComputerMove() entity.Move {
	return entity.Moves[that.source.IntN(len(entity.Moves))]
}

// ResolveRound - decides the round from the user's point of view.
func ResolveRound(userMove, computerMove entity.Move) entity.RoundOutcome {
	switch {
	case userMove == computerMove:
		return entity.Draw
	case userMove.Beats(computerMove):
		return entity.UserWin
	default:
		return entity.ComputerWin
	}
}

// PlayRound - plays one round against a freshly generated computer move and returns the new state.
func (that *Engine) PlayRound(state entity.MatchState, userMove entity.Move) (entity.MatchState, entity.RoundOutcome, error) {
	if !userMove.IsValid() {
		return state, "", fmt.Errorf("%w: %q", apperror.ErrInvalidMove, userMove)
	}

	if err := confirmPlayable(state); err != nil {
		return state, "", err
	}

	computerMove := that.ComputerMove()
	outcome := ResolveRound(userMove, computerMove)

	next := state
	switch outcome {
	case entity.UserWin:
		next.UserScore++
	case entity.ComputerWin:
		next.ComputerScore++
	}

	record := entity.RoundRecord{
		Index:        len(state.History) + 1,
		UserMove:     userMove,
		ComputerMove: computerMove,
		Outcome:      outcome,
	}

	// the caller keeps the old state, so history must not share its backing array
	next.History = append(slices.Clip(state.History), record)
	next.LastRound = &record
	next.MatchOver = next.ReachedTarget()

	return next, outcome, nil
}

// NextRound - clears the resolved round so the UI can prompt for another move.
func NextRound(state entity.MatchState) entity.MatchState {
	if state.MatchOver {
		return state
	}

	state.LastRound = nil

	return state
}

// ResetMatch - starts a fresh match, keeping the previous target score unless a new one is given.
func ResetMatch(state entity.MatchState, targetScore *int) (entity.MatchState, error) {
	target := state.TargetScore
	if target <= 0 {
		target = entity.DefaultTargetScore
	}

	if targetScore != nil {
		target = *targetScore
	}

	return NewMatch(target)
}

func NewMatch(targetScore int) (entity.MatchState, error) {
	if targetScore <= 0 {
		return entity.MatchState{}, fmt.Errorf("%w: must be positive, got %d", apperror.ErrInvalidTargetScore, targetScore)
	}

	return entity.NewMatchState(targetScore), nil
}

func confirmPlayable(state entity.MatchState) error {
	switch {
	case state.MatchOver:
		return apperror.ErrMatchOver
	case state.TargetScore <= 0:
		return fmt.Errorf("%w: must be positive, got %d", apperror.ErrInvalidTargetScore, state.TargetScore)
	default:
		return nil
	}
}
