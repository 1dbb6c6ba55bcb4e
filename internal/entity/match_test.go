package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchState_Phase(t *testing.T) {
	t.Run("New match awaits a move", func(t *testing.T) {
		// Given: a fresh match
		state := NewMatchState(3)

		// Then: it is waiting for the user
		assert.Equal(t, PhaseAwaitingMove, state.Phase())
		assert.Empty(t, state.History)
		assert.NotNil(t, state.History)
	})

	t.Run("Resolved round is reported until cleared", func(t *testing.T) {
		// Given: a match with a last round
		state := NewMatchState(3)
		state.LastRound = &RoundRecord{Index: 1, UserMove: Rock, ComputerMove: Rock, Outcome: Draw}

		// Then: the round is resolved
		assert.Equal(t, PhaseRoundResolved, state.Phase())
	})

	t.Run("Match over wins over everything", func(t *testing.T) {
		state := MatchState{TargetScore: 3, UserScore: 3, MatchOver: true, LastRound: &RoundRecord{}}

		assert.Equal(t, PhaseMatchOver, state.Phase())
	})
}

func TestMatchState_Winner(t *testing.T) {
	t.Run("No winner while running", func(t *testing.T) {
		state := MatchState{TargetScore: 3, UserScore: 2, ComputerScore: 2}

		assert.Equal(t, WinnerNone, state.Winner())
		assert.False(t, state.ReachedTarget())
	})

	t.Run("User wins at target", func(t *testing.T) {
		state := MatchState{TargetScore: 3, UserScore: 3, ComputerScore: 1, MatchOver: true}

		assert.Equal(t, WinnerUser, state.Winner())
		assert.True(t, state.ReachedTarget())
	})

	t.Run("Computer wins at target", func(t *testing.T) {
		state := MatchState{TargetScore: 5, UserScore: 4, ComputerScore: 5, MatchOver: true}

		assert.Equal(t, WinnerComputer, state.Winner())
	})
}

func TestMatchState_MaxRounds(t *testing.T) {
	assert.Equal(t, 5, NewMatchState(3).MaxRounds())
	assert.Equal(t, 19, NewMatchState(10).MaxRounds())
}
