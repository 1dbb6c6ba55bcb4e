// Package presentation maps game values to the strings shown to players.
package presentation

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/rps-backend/internal/entity"
)

// RecentHistoryLimit - how many rounds the history panel shows.
const RecentHistoryLimit = 5

// TargetScoreOptions - target scores offered by the settings menu.
var TargetScoreOptions = []int{3, 5, 7, 10}

var moveLabels = map[entity.Move]string{
	entity.Rock:     "🪨 Rock",
	entity.Paper:    "📄 Paper",
	entity.Scissors: "✂️ Scissors",
}

var outcomeMessages = map[entity.RoundOutcome]string{
	entity.UserWin:     "You Win! 🎉",
	entity.ComputerWin: "Computer Wins! 💻",
	entity.Draw:        "Match Draw! 🤝",
}

// MoveLabel - returns "?" for an unknown or missing move.
func MoveLabel(move entity.Move) string {
	if label, ok := moveLabels[move]; ok {
		return label
	}

	return "?"
}

func OutcomeMessage(outcome entity.RoundOutcome) string {
	return outcomeMessages[outcome]
}

// MatchBanner - returns the end-of-match banner, empty while the match is running.
func MatchBanner(state entity.MatchState) string {
	switch state.Winner() {
	case entity.WinnerUser:
		return fmt.Sprintf("🏆 You Won the Game! (Best of %d)", state.MaxRounds())
	case entity.WinnerComputer:
		return fmt.Sprintf("😢 Computer Won the Game! (Best of %d)", state.MaxRounds())
	default:
		return ""
	}
}

// ResultMessage - the headline for the current state: the banner if the match is over,
// otherwise the last round's outcome.
func ResultMessage(state entity.MatchState) string {
	if banner := MatchBanner(state); banner != "" {
		return banner
	}

	if state.LastRound != nil {
		return OutcomeMessage(state.LastRound.Outcome)
	}

	return ""
}

func HistoryLine(record entity.RoundRecord) string {
	return fmt.Sprintf("Round %d: %s vs %s -> %s",
		record.Index, MoveLabel(record.UserMove), MoveLabel(record.ComputerMove), OutcomeMessage(record.Outcome))
}

// RecentHistory - the last RecentHistoryLimit rounds, newest first.
func RecentHistory(history []entity.RoundRecord) []string {
	start := max(len(history)-RecentHistoryLimit, 0)

	recent := slices.Clone(history[start:])
	slices.Reverse(recent)

	lines := make([]string, 0, len(recent))
	for _, record := range recent {
		lines = append(lines, HistoryLine(record))
	}

	return lines
}

// View is the render-ready form of a match, shared by every transport.
type View struct {
	Phase          string   `json:"phase"`
	UserScore      int      `json:"user_score"`
	ComputerScore  int      `json:"computer_score"`
	TargetScore    int      `json:"target_score"`
	UserChoice     string   `json:"user_choice"`
	ComputerChoice string   `json:"computer_choice"`
	Result         string   `json:"result,omitempty"`
	History        []string `json:"history"`
}

func NewView(state entity.MatchState) View {
	view := View{
		Phase:          state.Phase(),
		UserScore:      state.UserScore,
		ComputerScore:  state.ComputerScore,
		TargetScore:    state.TargetScore,
		UserChoice:     MoveLabel(""),
		ComputerChoice: MoveLabel(""),
		Result:         ResultMessage(state),
		History:        RecentHistory(state.History),
	}

	if state.LastRound != nil {
		view.UserChoice = MoveLabel(state.LastRound.UserMove)
		view.ComputerChoice = MoveLabel(state.LastRound.ComputerMove)
	}

	return view
}
