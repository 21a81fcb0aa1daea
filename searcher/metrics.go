package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric totals the work done by every search since the collector
// was created.
type SearchMetric struct {
	Searches int64
	Nodes    int64 // Every node entered, leaves included
	Leaves   int64 // Nodes scored by the evaluation function
	Cutoffs  int64 // Alpha-beta cutoffs taken
	Duration time.Duration
}

type Collector interface {
	Start()
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	searches  atomic.Int64
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
	elapsed   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
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

// Complete closes the current search and returns the running totals.
func (m *collector) Complete() SearchMetric {
	m.searches.Add(1)
	m.elapsed.Add(int64(time.Since(m.startTime)))
	return SearchMetric{
		Searches: m.searches.Load(),
		Nodes:    m.nodes.Load(),
		Leaves:   m.leaves.Load(),
		Cutoffs:  m.cutoffs.Load(),
		Duration: time.Duration(m.elapsed.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
