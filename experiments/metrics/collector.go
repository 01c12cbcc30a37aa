package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes the work done by a single move search.
type SearchMetric struct {
	Algorithm    string
	Goroutines   int
	Duration     time.Duration
	Evaluations  int // terminal utilities plus heuristic cutoffs
	Nodes        int // states visited by minimax, tree nodes created by MCTS
	Episodes     int // MCTS iterations
	FullPlayouts int // MCTS rollouts that reached a terminal state
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" for a draw or an unfinished game
	Utility        float64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers counters for one search call. Implementations must be
// safe for use by the goroutines of that call.
type Collector interface {
	Start(algorithm string, goroutines int)
	AddEvaluation()
	AddNode()
	AddEpisode()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	algorithm    string
	goroutines   int
	startTime    time.Time
	evaluations  atomic.Int64
	nodes        atomic.Int64
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, goroutines int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.goroutines = goroutines
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:    m.algorithm,
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Evaluations:  int(m.evaluations.Load()),
		Nodes:        int(m.nodes.Load()),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
	}
}

// dummyCollector only tracks what the engine needs for timing statistics.
type dummyCollector struct {
	algorithm string
	startTime time.Time
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, goroutines int) {
	m.algorithm = algorithm
	m.startTime = time.Now()
}
func (m *dummyCollector) AddEvaluation()  {}
func (m *dummyCollector) AddNode()        {}
func (m *dummyCollector) AddEpisode()     {}
func (m *dummyCollector) AddFullPlayout() {}
func (m *dummyCollector) Complete() SearchMetric {
	return SearchMetric{Algorithm: m.algorithm, Duration: time.Since(m.startTime)}
}
