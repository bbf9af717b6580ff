package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
)

// Agent picks a move for a player on a board. ok=false means the agent has
// no legal move and forfeits the turn.
type Agent interface {
	Name() string
	FindMove(player game.Slot, b *game.Board) (column int, ok bool, metric metrics.SearchMetric)
}

type searchAgent struct {
	strategy   searcher.Strategy
	depthLimit int
	collector  metrics.Collector
}

// NewSearchAgent returns an agent driving the named search strategy with a
// fixed depth limit, collecting per-move search metrics.
func NewSearchAgent(strategy string, depthLimit int, opts ...searcher.Option) (Agent, error) {
	collector := metrics.NewCollector()
	opts = append(opts, searcher.WithCollector(collector))
	s, err := searcher.New(strategy, opts...)
	if err != nil {
		return nil, err
	}
	return &searchAgent{
		strategy:   s,
		depthLimit: depthLimit,
		collector:  collector,
	}, nil
}

func (a *searchAgent) Name() string { return a.strategy.Name() }

func (a *searchAgent) FindMove(player game.Slot, b *game.Board) (int, bool, metrics.SearchMetric) {
	column, ok := searcher.ChooseMove(a.strategy, player, b, a.depthLimit)
	return column, ok, a.collector.Complete()
}
