package entity

type RoundOutcome string

const (
	UserWin     RoundOutcome = "user_win"
	ComputerWin RoundOutcome = "computer_win"
	Draw        RoundOutcome = "draw"
)

// Opposite - swaps the winning side, a draw stays a draw.
func (that RoundOutcome) Opposite() RoundOutcome {
	switch that {
	case UserWin:
		return ComputerWin
	case ComputerWin:
		return UserWin
	default:
		return that
	}
}

func (that RoundOutcome) IsDecisive() bool {
	return that == UserWin || that == ComputerWin
}
