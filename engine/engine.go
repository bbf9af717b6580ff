package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher/agent"
)

// Engine alternates two agents on one board until the game is over. It owns
// the turn discipline the core leaves to collaborators: whose move it is,
// terminal detection, and treating a "no move" result as forfeiting.
type Engine struct {
	Board  *game.Board
	Agents map[game.Slot]agent.Agent
}

// Local wires player1 and player2 to a fresh game on b.
func Local(b *game.Board, player1, player2 agent.Agent) *Engine {
	return &Engine{
		Board: b,
		Agents: map[game.Slot]agent.Agent{
			game.Player1: player1,
			game.Player2: player2,
		},
	}
}

// Run plays the game to the end and returns the winner (EmptySlot for a
// draw), the game metric, and one move metric per turn.
func (e *Engine) Run() (game.Slot, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	current := game.Player1
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %v (%s) is starting", current, e.Agents[current].Name())

	step := 1
	for !e.Board.Terminal() {
		column, ok, metric := e.Agents[current].FindMove(current, e.Board)
		if !ok {
			// No legal move forfeits the turn; with nothing placeable the
			// game cannot continue.
			log.Info().Msgf("player %v has no legal move and forfeits", current)
			break
		}

		next := e.Board.Clone()
		if err := next.Place(current, column); err != nil {
			panic(err) // Agent returned an unplayable column
		}
		e.Board = next

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       current.String(),
			Column:       column,
			SearchMetric: metric,
		})
		log.Debug().Msgf("step %d: player %v plays column %d\n%s", step, current, column, e.Board.Dump())

		current = current.Opponent()
		step++
	}

	winner := e.Board.WhoWins()
	end := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: game.Player1.String(),
		Winner:         winnerLabel(winner),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     step - 1,
	}

	if winner != game.EmptySlot {
		log.Info().Msgf("game over after %d moves, winner: %v", gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("game over after %d moves, draw", gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics
}

func winnerLabel(winner game.Slot) string {
	if winner == game.EmptySlot {
		return ""
	}
	return winner.String()
}
