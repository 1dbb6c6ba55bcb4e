package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rps-backend/internal/entity"
)

func records(n int) []entity.RoundRecord {
	history := make([]entity.RoundRecord, 0, n)
	for i := 1; i <= n; i++ {
		history = append(history, entity.RoundRecord{
			Index:        i,
			UserMove:     entity.Rock,
			ComputerMove: entity.Scissors,
			Outcome:      entity.UserWin,
		})
	}

	return history
}

func TestMoveLabel(t *testing.T) {
	assert.Equal(t, "🪨 Rock", MoveLabel(entity.Rock))
	assert.Equal(t, "📄 Paper", MoveLabel(entity.Paper))
	assert.Equal(t, "✂️ Scissors", MoveLabel(entity.Scissors))
	assert.Equal(t, "?", MoveLabel(""))
}

func TestMatchBanner(t *testing.T) {
	t.Run("Empty while the match runs", func(t *testing.T) {
		assert.Empty(t, MatchBanner(entity.MatchState{TargetScore: 3, UserScore: 2}))
	})

	t.Run("User banner carries the best-of count", func(t *testing.T) {
		state := entity.MatchState{TargetScore: 3, UserScore: 3, MatchOver: true}

		assert.Equal(t, "🏆 You Won the Game! (Best of 5)", MatchBanner(state))
	})

	t.Run("Computer banner", func(t *testing.T) {
		state := entity.MatchState{TargetScore: 5, ComputerScore: 5, MatchOver: true}

		assert.Equal(t, "😢 Computer Won the Game! (Best of 9)", MatchBanner(state))
	})
}

func TestRecentHistory(t *testing.T) {
	t.Run("Shows the last five rounds newest first", func(t *testing.T) {
		// Given: seven played rounds
		history := records(7)

		// When: building the recent history
		lines := RecentHistory(history)

		// Then: rounds 7 down to 3 are listed
		require.Len(t, lines, RecentHistoryLimit)
		assert.Equal(t, "Round 7: 🪨 Rock vs ✂️ Scissors -> You Win! 🎉", lines[0])
		assert.Contains(t, lines[4], "Round 3:")
	})

	t.Run("Does not reorder the source history", func(t *testing.T) {
		history := records(3)

		lines := RecentHistory(history)

		require.Len(t, lines, 3)
		assert.Equal(t, 1, history[0].Index)
		assert.Contains(t, lines[0], "Round 3:")
	})

	t.Run("Empty history", func(t *testing.T) {
		assert.Empty(t, RecentHistory(nil))
	})
}

func TestNewView(t *testing.T) {
	t.Run("Fresh match shows placeholders", func(t *testing.T) {
		view := NewView(entity.NewMatchState(3))

		assert.Equal(t, entity.PhaseAwaitingMove, view.Phase)
		assert.Equal(t, "?", view.UserChoice)
		assert.Equal(t, "?", view.ComputerChoice)
		assert.Empty(t, view.Result)
		assert.Empty(t, view.History)
	})

	t.Run("Resolved round shows both moves and the outcome", func(t *testing.T) {
		state := entity.NewMatchState(3)
		state.History = records(1)
		state.UserScore = 1
		state.LastRound = &state.History[0]

		view := NewView(state)

		assert.Equal(t, "🪨 Rock", view.UserChoice)
		assert.Equal(t, "✂️ Scissors", view.ComputerChoice)
		assert.Equal(t, "You Win! 🎉", view.Result)
		assert.Equal(t, 1, view.UserScore)
	})

	t.Run("Finished match shows the banner", func(t *testing.T) {
		state := entity.NewMatchState(1)
		state.History = records(1)
		state.UserScore = 1
		state.MatchOver = true
		state.LastRound = &state.History[0]

		view := NewView(state)

		assert.Equal(t, entity.PhaseMatchOver, view.Phase)
		assert.Equal(t, "🏆 You Won the Game! (Best of 1)", view.Result)
	})
}
