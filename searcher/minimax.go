package searcher

import (
	"math"

	"connectfour/game"
)

// Minimax explores the full game tree to the depth limit, assuming the
// opponent plays the move worst for the maximizing player.
type Minimax struct {
	options
}

func NewMinimax(opts ...Option) *Minimax {
	return &Minimax{options: newOptions(opts)}
}

func (m *Minimax) Name() string { return "minimax" }

func (m *Minimax) FindMove(player game.Slot, b *game.Board, depthLimit int) (int, bool) {
	m.metrics.Start(m.Name(), depthLimit)
	col, _, ok := m.search(player, b, depthLimit)
	return col, ok
}

// search returns the chosen column and its score. The first column to
// achieve the strictly greatest score wins ties; later equal scores never
// replace it.
func (m *Minimax) search(player game.Slot, b *game.Board, depthLimit int) (int, float64, bool) {
	if depthLimit <= 0 {
		return 0, 0, false
	}

	column := -1
	best := math.Inf(-1)
	for _, succ := range game.Successors(player, b) {
		score := m.value(player, player.Opponent(), succ.Board, depthLimit-1)
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

// value is the minimax value of a node from maximizer's perspective.
// maximizer stays fixed at the top-level caller's player; toMove alternates
// each ply. All search-wide state is threaded explicitly.
func (m *Minimax) value(maximizer, toMove game.Slot, b *game.Board, depth int) float64 {
	if b.Terminal() || depth == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(maximizer, b)
	}
	m.metrics.AddNode()

	next := toMove.Opponent()
	if toMove == maximizer {
		best := math.Inf(-1)
		for _, succ := range expand(toMove, b) {
			best = math.Max(best, m.value(maximizer, next, succ.Board, depth-1))
		}
		return best
	}

	worst := math.Inf(1)
	for _, succ := range expand(toMove, b) {
		worst = math.Min(worst, m.value(maximizer, next, succ.Board, depth-1))
	}
	return worst
}
