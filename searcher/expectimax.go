package searcher

import (
	"math"

	"connectfour/game"
)

// Expectimax keeps Minimax's maximizing nodes but models the adversary as
// picking uniformly at random among legal moves: adversary turns become
// expectation nodes averaging the successor values with equal weight.
type Expectimax struct {
	options
}

func NewExpectimax(opts ...Option) *Expectimax {
	return &Expectimax{options: newOptions(opts)}
}

func (e *Expectimax) Name() string { return "expectimax" }

func (e *Expectimax) FindMove(player game.Slot, b *game.Board, depthLimit int) (int, bool) {
	e.metrics.Start(e.Name(), depthLimit)
	col, _, ok := e.search(player, b, depthLimit)
	return col, ok
}

func (e *Expectimax) search(player game.Slot, b *game.Board, depthLimit int) (int, float64, bool) {
	if depthLimit <= 0 {
		return 0, 0, false
	}

	column := -1
	best := math.Inf(-1)
	for _, succ := range game.Successors(player, b) {
		score := e.value(player, player.Opponent(), succ.Board, depthLimit-1)
		if score > best {
			best = score
			column = succ.Column
		}
	}
	if column < 0 { // No legal moves
		return 0, 0, false
	}
	return column, best, true
}

func (e *Expectimax) value(maximizer, toMove game.Slot, b *game.Board, depth int) float64 {
	if b.Terminal() || depth == 0 {
		e.metrics.AddLeaf()
		return e.evaluate(maximizer, b)
	}
	e.metrics.AddNode()

	next := toMove.Opponent()
	if toMove == maximizer {
		best := math.Inf(-1)
		for _, succ := range expand(toMove, b) {
			best = math.Max(best, e.value(maximizer, next, succ.Board, depth-1))
		}
		return best
	}

	succs := expand(toMove, b)
	prob := 1 / float64(len(succs))
	var expected float64
	for _, succ := range succs {
		expected += prob * e.value(maximizer, next, succ.Board, depth-1)
	}
	return expected
}
