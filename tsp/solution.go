package tsp

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/bbtsp/core"
)

// Solution is the record shared by all workers of one search: the best tour
// so far, its cost, five node counters and the lifecycle state.
//
// Counters are individually atomic; nothing ties a counter update to a tour
// update. The tour/cost pair and the state are guarded by mu.
type Solution struct {
	mu      sync.Mutex
	state   State
	tour    *core.Graph
	elapsed time.Duration

	cost      atomic.Int64 // mirrors the best cost for lock-free reads
	finalized atomic.Bool

	generated  atomic.Int64
	branched   atomic.Int64
	pruned     atomic.Int64
	infeasible atomic.Int64
	optimal    atomic.Int64

	lowBound, highBound int64
}

// NewSolution returns a Pending solution whose best cost is math.MaxInt.
func NewSolution() *Solution {
	s := &Solution{}
	s.cost.Store(math.MaxInt)

	return s
}

// Offer records tour with the given cost if it beats the current best and
// reports whether it did. The first accepted tour moves Pending to Feasible.
//
// Errors:
//   - ErrSolutionFinalized after Finalize.
func (s *Solution) Offer(tour *core.Graph, cost int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Terminal() {
		return false, ErrSolutionFinalized
	}
	if int64(cost) >= s.cost.Load() {
		return false, nil
	}
	s.tour = tour
	s.cost.Store(int64(cost))
	s.state = Feasible

	return true, nil
}

// Finalize moves Feasible to Resolved or Pending to Infeasible.
//
// Errors:
//   - ErrSolutionFinalized if the state is already terminal.
func (s *Solution) Finalize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case Feasible:
		s.state = Resolved
	case Pending:
		s.state = Infeasible
	default:
		return ErrSolutionFinalized
	}
	s.finalized.Store(true)

	return nil
}

func (s *Solution) add(c *atomic.Int64, n int) error {
	if s.finalized.Load() {
		return ErrSolutionFinalized
	}
	c.Add(int64(n))

	return nil
}

// AddGenerated counts n newly created subproblems.
func (s *Solution) AddGenerated(n int) error { return s.add(&s.generated, n) }

// AddBranched counts n subproblems that were split.
func (s *Solution) AddBranched(n int) error { return s.add(&s.branched, n) }

// AddBoundPruned counts n subproblems discarded by the bound.
func (s *Solution) AddBoundPruned(n int) error { return s.add(&s.pruned, n) }

// AddInfeasible counts n subproblems whose 1-tree was incomplete.
func (s *Solution) AddInfeasible(n int) error { return s.add(&s.infeasible, n) }

// AddOptimalClosed counts n subproblems closed as improving tours.
func (s *Solution) AddOptimalClosed(n int) error { return s.add(&s.optimal, n) }

func (s *Solution) setElapsed(d time.Duration) {
	s.mu.Lock()
	s.elapsed = d
	s.mu.Unlock()
}

func (s *Solution) setBoundRange(lo, hi int64) {
	s.mu.Lock()
	s.lowBound, s.highBound = lo, hi
	s.mu.Unlock()
}

// State returns the lifecycle state.
func (s *Solution) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Cost returns the best tour cost, or math.MaxInt while none is known.
func (s *Solution) Cost() int { return int(s.cost.Load()) }

// Tour returns a copy of the best tour graph, or nil.
func (s *Solution) Tour() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tour == nil {
		return nil
	}

	return s.tour.Clone()
}

// Elapsed returns the wall time of the search.
func (s *Solution) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.elapsed
}

// Generated counts every subproblem created, the root included.
func (s *Solution) Generated() int { return int(s.generated.Load()) }

// Branched counts subproblems that were split.
func (s *Solution) Branched() int { return int(s.branched.Load()) }

// BoundPruned counts subproblems discarded by the bound.
func (s *Solution) BoundPruned() int { return int(s.pruned.Load()) }

// Infeasible counts subproblems with an incomplete 1-tree.
func (s *Solution) Infeasible() int { return int(s.infeasible.Load()) }

// OptimalClosed counts subproblems accepted as improving tours.
func (s *Solution) OptimalClosed() int { return int(s.optimal.Load()) }

// ClosedNodes is bound-pruned + infeasible + optimal-closed.
func (s *Solution) ClosedNodes() int {
	return s.BoundPruned() + s.Infeasible() + s.OptimalClosed()
}

// ActiveNodes is generated − (closed + branched): subproblems still queued
// or in flight, plus any discarded without a verdict.
func (s *Solution) ActiveNodes() int {
	return s.Generated() - (s.ClosedNodes() + s.Branched())
}

// Path walks the best tour from its smallest node, each step taking the
// first incident edge that does not lead back to the node just left,
// until it returns to the start.
//
// Errors:
//   - ErrNoTour in Pending or Infeasible state.
//   - ErrNotHamiltonian if the walk strands or exceeds |V| steps.
func (s *Solution) Path() ([]core.Edge, error) {
	s.mu.Lock()
	state, tour := s.state, s.tour
	s.mu.Unlock()

	if state == Pending || state == Infeasible || tour == nil {
		return nil, fmt.Errorf("Path: state %s: %w", state, ErrNoTour)
	}

	return walkCycle(tour)
}

func walkCycle(tour *core.Graph) ([]core.Edge, error) {
	ids := tour.Nodes()
	if len(ids) == 0 {
		return nil, ErrNotHamiltonian
	}
	start := ids[0]
	prev, cur := start, start
	path := make([]core.Edge, 0, len(ids))
	for {
		out, err := tour.EdgesOf(cur)
		if err != nil {
			return nil, fmt.Errorf("walkCycle: %w", err)
		}
		next := -1
		for i, e := range out {
			if e.V != prev {
				next = i
				break
			}
		}
		if next < 0 || len(path) == len(ids) {
			return nil, ErrNotHamiltonian
		}
		e := out[next]
		path = append(path, e)
		prev, cur = cur, e.V
		if cur == start {
			break
		}
	}
	if len(path) != len(ids) {
		return nil, ErrNotHamiltonian
	}

	return path, nil
}

// Stats is a point-in-time copy of a Solution's figures.
type Stats struct {
	State         State
	Cost          int
	Elapsed       time.Duration
	Generated     int
	Branched      int
	BoundPruned   int
	Infeasible    int
	OptimalClosed int
	Active        int
	// LowestBound and HighestBound are the extreme bounds popped during the
	// search. Diagnostic only; updates race freely.
	LowestBound  int64
	HighestBound int64
}

// Stats returns a snapshot. Counters are read one by one, so the snapshot
// is only consistent once the search has stopped.
func (s *Solution) Stats() Stats {
	s.mu.Lock()
	st := Stats{
		State:        s.state,
		Elapsed:      s.elapsed,
		LowestBound:  s.lowBound,
		HighestBound: s.highBound,
	}
	s.mu.Unlock()

	st.Cost = s.Cost()
	st.Generated = s.Generated()
	st.Branched = s.Branched()
	st.BoundPruned = s.BoundPruned()
	st.Infeasible = s.Infeasible()
	st.OptimalClosed = s.OptimalClosed()
	st.Active = s.ActiveNodes()

	return st
}

// Statistics renders the node counters as a short report.
func (s *Solution) Statistics() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Throughout the search process, %d nodes were generated. Among them:\n", s.Generated())
	fmt.Fprintf(&sb, "- %d served as branching points, creating new paths;\n", s.Branched())
	fmt.Fprintf(&sb, "- %d were terminated as candidate solutions;\n", s.OptimalClosed())
	fmt.Fprintf(&sb, "- %d were pruned due to boundary limitations;\n", s.BoundPruned())
	fmt.Fprintf(&sb, "- %d were discarded for being infeasible.\n", s.Infeasible())

	return sb.String()
}

// String describes the outcome according to the state.
func (s *Solution) String() string {
	state := s.State()
	switch state {
	case Resolved, Feasible:
		head := "Optimal solution found, cost"
		if state == Feasible {
			head = "Solvable, best cost"
		}
		path, err := s.Path()
		if err != nil {
			return fmt.Sprintf("%s: %d. Path unavailable: %v", head, s.Cost(), err)
		}
		return fmt.Sprintf("%s: %d. Path:\n%v", head, s.Cost(), path)
	case Infeasible:
		return "Unsolvable. No solution."
	default:
		return "Solution not found yet."
	}
}
