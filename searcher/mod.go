package searcher

import (
	"fmt"

	"connectfour/experiments/metrics"
	"connectfour/game"
)

// Strategy decides which column to play for a player on a board, exploring
// at most depthLimit plies before falling back to static evaluation.
// FindMove returns ok=false when the position has no legal placement (the
// caller treats this as forfeiting the turn) or when depthLimit <= 0, since
// no expansion happens at the top level.
type Strategy interface {
	Name() string
	FindMove(player game.Slot, b *game.Board, depthLimit int) (column int, ok bool)
}

// ChooseMove is the single entry point collaborators call: compute the best
// column for player on b within depthLimit plies using strategy s.
func ChooseMove(s Strategy, player game.Slot, b *game.Board, depthLimit int) (int, bool) {
	return s.FindMove(player, b, depthLimit)
}

// New builds a strategy by name: "minimax", "alphabeta" or "expectimax".
func New(name string, opts ...Option) (Strategy, error) {
	switch name {
	case "minimax":
		return NewMinimax(opts...), nil
	case "alphabeta":
		return NewAlphaBeta(opts...), nil
	case "expectimax":
		return NewExpectimax(opts...), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

type options struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
}

type Option func(*options)

// WithEvaluationFn overrides the static evaluation heuristic.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(o *options) {
		if evaluate != nil {
			o.evaluate = evaluate
		}
	}
}

// WithCollector attaches a metrics collector to the search.
func WithCollector(c metrics.Collector) Option {
	return func(o *options) {
		if c != nil {
			o.metrics = c
		}
	}
}

func newOptions(opts []Option) options {
	o := options{ // Default values
		evaluate: game.EvaluateSegments,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// expand generates the successors of a non-terminal interior node. A board
// with no successors is full, and a full board is terminal, so an empty
// set here means terminal detection is broken. That is a fatal invariant
// violation, never a draw.
func expand(toMove game.Slot, b *game.Board) []game.Successor {
	succs := game.Successors(toMove, b)
	if len(succs) == 0 {
		panic(fmt.Sprintf("non-terminal board has no successors:\n%s", b.Dump()))
	}
	return succs
}
