package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/rps-backend/internal/entity"
	"github.com/rocketscienceinc/rps-backend/internal/presentation"
)

const (
	actionConnect    = "connect"
	actionRoundPlay  = "round:play"
	actionRoundNext  = "round:next"
	actionMatchReset = "match:reset"
	actionError      = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	SessionID   string `json:"session_id,omitempty"`
	Move        string `json:"move,omitempty"`
	TargetScore *int   `json:"target_score,omitempty"`
}

type ResponsePayload struct {
	SessionID string              `json:"session_id,omitempty"`
	Match     *entity.MatchState  `json:"match,omitempty"`
	Outcome   entity.RoundOutcome `json:"outcome,omitempty"`
	View      *presentation.View  `json:"view,omitempty"`
	Error     string              `json:"error,omitempty"`
}

func newSessionPayload(session *entity.Session) ResponsePayload {
	view := presentation.NewView(session.Match)

	return ResponsePayload{
		SessionID: session.ID,
		Match:     &session.Match,
		View:      &view,
	}
}
