package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"connectfour/game"
	"connectfour/searcher/agent"
)

// Server exposes a websocket endpoint where a remote client plays against a
// search agent. One game per connection: the client is Player1 and sends
// the column it plays; the server places the client's disc, answers with
// the agent's reply, and reports the game status after each placement. All
// rules live in the core; the server only relays columns and snapshots.
type Server struct {
	rows     int
	cols     int
	strategy string
	depth    int
	upgrader websocket.Upgrader
}

func New(rows, cols int, strategy string, depth int) *Server {
	return &Server{
		rows:     rows,
		cols:     cols,
		strategy: strategy,
		depth:    depth,
	}
}

// Handler returns the HTTP handler serving the /play endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/play", s.handlePlay)
	return mux
}

type clientMessage struct {
	Column int `json:"column"`
}

type serverMessage struct {
	Type   string `json:"type"` // "update", "error"
	Player string `json:"player,omitempty"`
	Column int    `json:"column,omitempty"`
	Board  string `json:"board,omitempty"`
	Status string `json:"status"` // "playing", "player1_won", "player2_won", "draw"
	Error  string `json:"error,omitempty"`
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	board, err := game.NewBoard(s.rows, s.cols)
	if err != nil {
		log.Error().Err(err).Msg("failed to create board")
		return
	}
	bot, err := agent.NewSearchAgent(s.strategy, s.depth)
	if err != nil {
		log.Error().Err(err).Msg("failed to create agent")
		return
	}

	log.Info().Msgf("new game: %dx%d board against %s at depth %d", s.rows, s.cols, s.strategy, s.depth)

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Info().Err(err).Msg("connection closed")
			return
		}

		if board.Terminal() {
			s.send(conn, serverMessage{Type: "error", Error: "game is over", Status: status(board)})
			continue
		}
		if msg.Column < 0 || msg.Column >= board.Cols() || !board.Placeable(msg.Column) {
			s.send(conn, serverMessage{Type: "error", Error: "column is not playable", Status: status(board)})
			continue
		}

		board = place(board, game.Player1, msg.Column)
		s.send(conn, update(board, game.Player1, msg.Column))
		if board.Terminal() {
			continue
		}

		column, ok, _ := bot.FindMove(game.Player2, board)
		if !ok { // No legal reply: the board is full
			continue
		}
		board = place(board, game.Player2, column)
		s.send(conn, update(board, game.Player2, column))
	}
}

func (s *Server) send(conn *websocket.Conn, msg serverMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Warn().Err(err).Msg("failed to write message")
	}
}

func place(b *game.Board, player game.Slot, column int) *game.Board {
	next := b.Clone()
	if err := next.Place(player, column); err != nil {
		panic(err) // Placeable was checked
	}
	return next
}

func update(b *game.Board, player game.Slot, column int) serverMessage {
	return serverMessage{
		Type:   "update",
		Player: player.String(),
		Column: column,
		Board:  b.Dump(),
		Status: status(b),
	}
}

func status(b *game.Board) string {
	switch b.WhoWins() {
	case game.Player1:
		return "player1_won"
	case game.Player2:
		return "player2_won"
	default:
		if b.HasDraw() {
			return "draw"
		}
		return "playing"
	}
}
