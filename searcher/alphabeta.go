package searcher

import (
	"math"

	"connectfour/game"
)

// AlphaBeta is minimax with alpha-beta pruning. It visits successors in the
// same column order as Minimax and skips only provably irrelevant subtrees,
// so for any input it returns the same column and score as Minimax.
type AlphaBeta struct {
	options
}

func NewAlphaBeta(opts ...Option) *AlphaBeta {
	return &AlphaBeta{options: newOptions(opts)}
}

func (a *AlphaBeta) Name() string { return "alphabeta" }

func (a *AlphaBeta) FindMove(player game.Slot, b *game.Board, depthLimit int) (int, bool) {
	a.metrics.Start(a.Name(), depthLimit)
	col, _, ok := a.search(player, b, depthLimit)
	return col, ok
}

func (a *AlphaBeta) search(player game.Slot, b *game.Board, depthLimit int) (int, float64, bool) {
	if depthLimit <= 0 {
		return 0, 0, false
	}

	column := -1
	best := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, succ := range game.Successors(player, b) {
		score := a.value(player, player.Opponent(), succ.Board, depthLimit-1, alpha, beta)
		if score > best {
			best = score
			column = succ.Column
		}
		// The top level acts as a maximizing node: raise alpha, never cut.
		alpha = math.Max(alpha, best)
	}
	if column < 0 { // No legal moves
		return 0, 0, false
	}
	return column, best, true
}

// value computes the same quantity as Minimax.value with two extra bounds:
// alpha, the score the maximizing side already has guaranteed, and beta,
// the score the minimizing side already has guaranteed. Once the running
// best at a node proves the node irrelevant to its parent, the remaining
// successors are never explored.
func (a *AlphaBeta) value(maximizer, toMove game.Slot, b *game.Board, depth int, alpha, beta float64) float64 {
	if b.Terminal() || depth == 0 {
		a.metrics.AddLeaf()
		return a.evaluate(maximizer, b)
	}
	a.metrics.AddNode()

	next := toMove.Opponent()
	if toMove == maximizer {
		best := math.Inf(-1)
		for _, succ := range expand(toMove, b) {
			best = math.Max(best, a.value(maximizer, next, succ.Board, depth-1, alpha, beta))
			if best >= beta {
				a.metrics.AddCutoff()
				return best
			}
			alpha = math.Max(alpha, best)
		}
		return best
	}

	worst := math.Inf(1)
	for _, succ := range expand(toMove, b) {
		worst = math.Min(worst, a.value(maximizer, next, succ.Board, depth-1, alpha, beta))
		if worst <= alpha {
			a.metrics.AddCutoff()
			return worst
		}
		beta = math.Min(beta, worst)
	}
	return worst
}
