package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rps-backend/internal/entity"
	"github.com/rocketscienceinc/rps-backend/internal/repository"
	"github.com/rocketscienceinc/rps-backend/internal/rps"
	"github.com/rocketscienceinc/rps-backend/internal/usecase"
)

// scissorsSource makes the computer always play scissors.
type scissorsSource struct{}

func (scissorsSource) IntN(int) int { return 2 }

func startServer(t *testing.T) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewSessionManager(logger, repository.NewMemorySessionRepository(0),
		rps.NewEngine(scissorsSource{}), usecase.MatchSettings{DefaultTargetScore: 2, MaxTargetScore: 10})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	srv := httptest.NewServer(New(logger, manager).Handler(ctx))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) (*websocket.Conn, *http.Response) {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, resp
}

func roundTrip(t *testing.T, conn *websocket.Conn, action string, payload any) (string, ResponsePayload) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: raw}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))

	var resp ResponsePayload
	require.NoError(t, json.Unmarshal(reply.Payload, &resp))

	return reply.Action, resp
}

func TestServer_Connect(t *testing.T) {
	// Given: a running server
	url := startServer(t)

	// When: a client connects without a cookie
	conn, resp := dial(t, url)

	// Then: a session cookie is issued and connect returns the same session
	var cookieValue string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookie {
			cookieValue = cookie.Value
		}
	}
	require.NotEmpty(t, cookieValue)

	action, payload := roundTrip(t, conn, actionConnect, RequestPayload{})
	assert.Equal(t, actionConnect, action)
	assert.Equal(t, cookieValue, payload.SessionID)
	require.NotNil(t, payload.Match)
	assert.Equal(t, 2, payload.Match.TargetScore)
	require.NotNil(t, payload.View)
	assert.Equal(t, entity.PhaseAwaitingMove, payload.View.Phase)
}

func TestServer_PlayMatch(t *testing.T) {
	// Given: a connected client in a match to two
	conn, _ := dial(t, startServer(t))
	_, connected := roundTrip(t, conn, actionConnect, RequestPayload{})

	// When: the user plays rock twice against scissors
	action, first := roundTrip(t, conn, actionRoundPlay, RequestPayload{Move: "rock"})
	require.Equal(t, actionRoundPlay, action)
	assert.Equal(t, entity.UserWin, first.Outcome)
	assert.Equal(t, "You Win! 🎉", first.View.Result)

	_, next := roundTrip(t, conn, actionRoundNext, RequestPayload{})
	assert.Equal(t, entity.PhaseAwaitingMove, next.View.Phase)

	_, second := roundTrip(t, conn, actionRoundPlay, RequestPayload{SessionID: connected.SessionID, Move: "Rock"})

	// Then: the match is over with a banner
	require.NotNil(t, second.Match)
	assert.True(t, second.Match.MatchOver)
	assert.Equal(t, "🏆 You Won the Game! (Best of 3)", second.View.Result)
	assert.Len(t, second.View.History, 2)

	// And: further play is refused until a reset
	_, refused := roundTrip(t, conn, actionRoundPlay, RequestPayload{Move: "paper"})
	assert.Contains(t, refused.Error, "match is already over")

	target := 5
	_, reset := roundTrip(t, conn, actionMatchReset, RequestPayload{TargetScore: &target})
	require.NotNil(t, reset.Match)
	assert.Equal(t, 5, reset.Match.TargetScore)
	assert.Empty(t, reset.Match.History)
}

func TestServer_Errors(t *testing.T) {
	conn, _ := dial(t, startServer(t))
	roundTrip(t, conn, actionConnect, RequestPayload{})

	t.Run("Invalid move", func(t *testing.T) {
		action, payload := roundTrip(t, conn, actionRoundPlay, RequestPayload{Move: "lizard"})

		assert.Equal(t, actionRoundPlay, action)
		assert.Equal(t, "invalid move", payload.Error)
	})

	t.Run("Target score above the limit", func(t *testing.T) {
		target := 50
		_, payload := roundTrip(t, conn, actionMatchReset, RequestPayload{TargetScore: &target})

		assert.Contains(t, payload.Error, "invalid target score")
	})

	t.Run("Unknown action", func(t *testing.T) {
		action, payload := roundTrip(t, conn, "game:turn", RequestPayload{})

		assert.Equal(t, actionError, action)
		assert.Contains(t, payload.Error, "unknown action")
	})

	t.Run("Unknown session", func(t *testing.T) {
		_, payload := roundTrip(t, conn, actionRoundNext, RequestPayload{SessionID: "missing"})

		assert.Equal(t, "session not found", payload.Error)
	})
}

func TestServer_OversizedMessage(t *testing.T) {
	// Given: a connected client
	conn, _ := dial(t, startServer(t))
	roundTrip(t, conn, actionConnect, RequestPayload{})

	// When: it sends a message above the read limit
	huge := RequestPayload{Move: strings.Repeat("r", 2*maxMessageBytes)}
	raw, err := json.Marshal(huge)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Message{Action: actionRoundPlay, Payload: raw}))

	// Then: the server closes the connection as too big
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseMessageTooBig), "got %v", err)
}
