package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/rps-backend/internal/apperror"
	"github.com/rocketscienceinc/rps-backend/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	sessionID := conn.sessionID
	if payloadReq.SessionID != "" {
		sessionID = payloadReq.SessionID
	}

	session, err := that.sessions.GetOrCreateSession(ctx, sessionID)
	if err != nil {
		log.Error("failed to get or create session", "error", err)
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	conn.sessionID = session.ID

	if err = conn.writeJSON(newResponse(msg.Action, newSessionPayload(session))); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected session", "session", session.ID)

	return nil
}

func (that *Server) handleRoundPlay(ctx context.Context, msg *Message, conn *connection) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	move, err := entity.ParseMove(payloadReq.Move)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	session, outcome, err := that.sessions.PlayRound(ctx, that.sessionID(conn, payloadReq), move)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	payloadResp := newSessionPayload(session)
	payloadResp.Outcome = outcome

	return conn.writeJSON(newResponse(msg.Action, payloadResp))
}

func (that *Server) handleRoundNext(ctx context.Context, msg *Message, conn *connection) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	session, err := that.sessions.NextRound(ctx, that.sessionID(conn, payloadReq))
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	return conn.writeJSON(newResponse(msg.Action, newSessionPayload(session)))
}

func (that *Server) handleMatchReset(ctx context.Context, msg *Message, conn *connection) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	session, err := that.sessions.ResetMatch(ctx, that.sessionID(conn, payloadReq), payloadReq.TargetScore)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	return conn.writeJSON(newResponse(msg.Action, newSessionPayload(session)))
}

// sessionID - the payload's session wins over the one bound to the connection.
func (that *Server) sessionID(conn *connection, payload RequestPayload) string {
	if payload.SessionID != "" {
		return payload.SessionID
	}

	return conn.sessionID
}

// sendErrorResponse - reports err to the client and returns it for logging.
func (that *Server) sendErrorResponse(conn *connection, action string, err error) error {
	that.sendError(conn, action, apperror.Message(err))
	return err
}

func (that *Server) sendError(conn *connection, action, message string) {
	if err := conn.writeJSON(newResponse(action, ResponsePayload{Error: message})); err != nil {
		that.logger.Error("failed to send error response", "action", action, "error", err)
	}
}

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", apperror.ErrMalformedRequest, err)
	}

	return payload, nil
}

func newResponse(action string, payload ResponsePayload) Message {
	return Message{
		Action:  action,
		Payload: mustMarshal(payload),
	}
}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
