package entity

const DefaultTargetScore = 3

const (
	PhaseAwaitingMove  = "awaiting_move"
	PhaseRoundResolved = "round_resolved"
	PhaseMatchOver     = "match_over"

	WinnerUser     = "user"
	WinnerComputer = "computer"
	WinnerNone     = ""
)

type RoundRecord struct {
	Index        int          `json:"index"`
	UserMove     Move         `json:"user_move"`
	ComputerMove Move         `json:"computer_move"`
	Outcome      RoundOutcome `json:"outcome"`
}

// MatchState is a value: operations return a new state instead of mutating the old one.
type MatchState struct {
	UserScore     int           `json:"user_score"`
	ComputerScore int           `json:"computer_score"`
	TargetScore   int           `json:"target_score"`
	History       []RoundRecord `json:"history"`
	MatchOver     bool          `json:"match_over"`

	// LastRound is the round shown until the next round starts.
	LastRound *RoundRecord `json:"last_round,omitempty"`
}

func NewMatchState(targetScore int) MatchState {
	return MatchState{
		TargetScore: targetScore,
		History:     []RoundRecord{},
	}
}

func (that MatchState) Phase() string {
	switch {
	case that.MatchOver:
		return PhaseMatchOver
	case that.LastRound != nil:
		return PhaseRoundResolved
	default:
		return PhaseAwaitingMove
	}
}

// Winner - returns the side that reached the target score, or WinnerNone while the match is running.
func (that MatchState) Winner() string {
	if !that.MatchOver {
		return WinnerNone
	}

	if that.UserScore >= that.TargetScore {
		return WinnerUser
	}

	return WinnerComputer
}

// ReachedTarget - reports whether either score is at or above the target.
func (that MatchState) ReachedTarget() bool {
	return that.UserScore >= that.TargetScore || that.ComputerScore >= that.TargetScore
}

// MaxRounds - the "best of N" count for the configured target, draws excluded.
func (that MatchState) MaxRounds() int {
	return 2*that.TargetScore - 1
}

func (that MatchState) Rounds() int {
	return len(that.History)
}
