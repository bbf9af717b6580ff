package agent

import (
	"golang.org/x/exp/rand"

	"connectfour/experiments/metrics"
	"connectfour/game"
)

// randomAgent plays uniformly at random among legal columns. It is the
// adversary model Expectimax assumes, which makes it the natural sparring
// partner in experiments.
type randomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string { return "random" }

func (a *randomAgent) FindMove(player game.Slot, b *game.Board) (int, bool, metrics.SearchMetric) {
	legal := make([]int, 0, b.Cols())
	for c := 0; c < b.Cols(); c++ {
		if b.Placeable(c) {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		return 0, false, metrics.SearchMetric{Strategy: a.Name()}
	}
	return legal[a.rng.Intn(len(legal))], true, metrics.SearchMetric{Strategy: a.Name()}
}
