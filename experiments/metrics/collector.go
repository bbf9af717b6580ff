package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one search invocation.
type SearchMetric struct {
	Strategy string
	Depth    int
	Duration time.Duration
	Nodes    int // Expanded interior nodes
	Leaves   int // Statically evaluated boards
	Cutoffs  int // Alpha-beta prunes; zero for the other strategies
}

type MoveMetric struct {
	Step   int
	Player string
	Column int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates counters during one search. Strategies call Start
// on entry and the Add methods while exploring; the caller that owns the
// collector reads the result with Complete after the search returns.
type Collector interface {
	Start(strategy string, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	strategy  string
	depth     int
	startTime time.Time
	nodes     atomic.Int32
	leaves    atomic.Int32
	cutoffs   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, depth int) {
	m.strategy = strategy
	m.depth = depth
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy: m.strategy,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for searches nobody measures.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth int) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddLeaf()                         {}
func (m *dummyCollector) AddCutoff()                       {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
