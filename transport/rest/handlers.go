package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/rps-backend/internal/apperror"
	"github.com/rocketscienceinc/rps-backend/internal/entity"
	"github.com/rocketscienceinc/rps-backend/internal/presentation"
)

const maxBodyBytes = 1 << 12

type playRoundRequest struct {
	Move string `json:"move"`
}

type resetMatchRequest struct {
	TargetScore *int `json:"target_score,omitempty"`
}

type sessionResponse struct {
	SessionID string              `json:"session_id"`
	Match     entity.MatchState   `json:"match"`
	Outcome   entity.RoundOutcome `json:"outcome,omitempty"`
	View      presentation.View   `json:"view"`
}

type optionsResponse struct {
	Moves        []moveOption `json:"moves"`
	TargetScores []int        `json:"target_scores"`
}

type moveOption struct {
	Move  entity.Move `json:"move"`
	Label string      `json:"label"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newSessionResponse(session *entity.Session) sessionResponse {
	return sessionResponse{
		SessionID: session.ID,
		Match:     session.Match,
		View:      presentation.NewView(session.Match),
	}
}

func (that *Server) options(w http.ResponseWriter, _ *http.Request) {
	moves := make([]moveOption, 0, len(entity.Moves))
	for _, move := range entity.Moves {
		moves = append(moves, moveOption{Move: move, Label: presentation.MoveLabel(move)})
	}

	that.writeJSON(w, http.StatusOK, optionsResponse{
		Moves:        moves,
		TargetScores: presentation.TargetScoreOptions,
	})
}

func (that *Server) createSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.GetOrCreateSession(r.Context(), "")
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newSessionResponse(session))
}

func (that *Server) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (that *Server) endSession(w http.ResponseWriter, r *http.Request) {
	if err := that.sessions.EndSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) playRound(w http.ResponseWriter, r *http.Request) {
	var req playRoundRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	move, err := entity.ParseMove(req.Move)
	if err != nil {
		that.writeError(w, err)
		return
	}

	session, outcome, err := that.sessions.PlayRound(r.Context(), chi.URLParam(r, "sessionID"), move)
	if err != nil {
		that.writeError(w, err)
		return
	}

	resp := newSessionResponse(session)
	resp.Outcome = outcome

	that.writeJSON(w, http.StatusOK, resp)
}

func (that *Server) nextRound(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.NextRound(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (that *Server) resetMatch(w http.ResponseWriter, r *http.Request) {
	// the body is optional, an empty one keeps the current target score
	var req resetMatchRequest
	if err := decodeBody(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, err)
		return
	}

	session, err := that.sessions.ResetMatch(r.Context(), chi.URLParam(r, "sessionID"), req.TargetScore)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMalformedRequest, err)
	}

	return nil
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: apperror.Message(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrInvalidTargetScore),
		errors.Is(err, apperror.ErrMalformedRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
