package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/play"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err, "client should connect")
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestPlayRoundTrip(t *testing.T) {
	conn := dial(t, New(6, 7, "alphabeta", 2))

	require.NoError(t, conn.WriteJSON(clientMessage{Column: 3}))

	var human serverMessage
	require.NoError(t, conn.ReadJSON(&human))
	require.Equal(t, "update", human.Type)
	require.Equal(t, "X", human.Player, "first update reflects the client's move")
	require.Equal(t, 3, human.Column)
	require.Equal(t, "playing", human.Status)
	require.NotEmpty(t, human.Board)

	var bot serverMessage
	require.NoError(t, conn.ReadJSON(&bot))
	require.Equal(t, "update", bot.Type)
	require.Equal(t, "O", bot.Player, "second update is the agent's reply")
	require.Equal(t, "playing", bot.Status)
}

func TestPlayRejectsIllegalColumn(t *testing.T) {
	conn := dial(t, New(6, 7, "alphabeta", 2))

	require.NoError(t, conn.WriteJSON(clientMessage{Column: 9}))

	var msg serverMessage
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "error", msg.Type)
	require.Equal(t, "playing", msg.Status, "an illegal move does not end the game")
}

func TestPlayToTerminalStatus(t *testing.T) {
	// Drive a whole game: always play the first column whose top cell is
	// still open. The game must end with a terminal status within
	// rows x cols placements.
	conn := dial(t, New(6, 7, "alphabeta", 2))

	board := ""
	for move := 0; move < 6*7; move++ {
		require.NoError(t, conn.WriteJSON(clientMessage{Column: firstOpenColumn(t, board, 7)}))

		var human serverMessage
		require.NoError(t, conn.ReadJSON(&human))
		require.Equal(t, "update", human.Type, "a playable column must be accepted")
		if human.Status != "playing" {
			return
		}

		var bot serverMessage
		require.NoError(t, conn.ReadJSON(&bot))
		require.Equal(t, "update", bot.Type)
		if bot.Status != "playing" {
			return
		}
		board = bot.Board
	}
	t.Fatal("game should reach a terminal status before the board overflows")
}

// firstOpenColumn reads a board dump (top row first) and returns the first
// column with an empty top cell.
func firstOpenColumn(t *testing.T, dump string, cols int) int {
	t.Helper()
	if dump == "" {
		return 0
	}
	top := strings.SplitN(dump, "\n", 2)[0]
	for c := 0; c < cols; c++ {
		if top[c] == '.' {
			return c
		}
	}
	t.Fatal("no open column left")
	return -1
}
