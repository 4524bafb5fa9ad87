package tsp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("tsp: graph is nil")

	// ErrEmptyGraph indicates that no node is left to tour.
	ErrEmptyGraph = errors.New("tsp: graph has no nodes")

	// ErrUnsolvable is matched by every *UnsolvableError.
	ErrUnsolvable = errors.New("tsp: instance is unsolvable")

	// ErrInvalidWorkers indicates a non-positive worker count.
	ErrInvalidWorkers = errors.New("tsp: worker count must be at least 1")

	// ErrUnknownPolicy indicates a queue policy outside BestFS/DFS.
	ErrUnknownPolicy = errors.New("tsp: unknown queue policy")

	// ErrRootNotFound indicates an explicit root that is not in the graph.
	ErrRootNotFound = errors.New("tsp: root node not found")

	// ErrConflictingConstraints indicates an edge both fixed and excluded.
	ErrConflictingConstraints = errors.New("tsp: edge is both fixed and excluded")

	// ErrSolutionFinalized indicates a mutation of a terminal Solution.
	ErrSolutionFinalized = errors.New("tsp: solution already finalized")

	// ErrNoTour indicates that no tour has been recorded.
	ErrNoTour = errors.New("tsp: no tour available")

	// ErrNotHamiltonian indicates a tour graph that is not a single cycle.
	ErrNotHamiltonian = errors.New("tsp: tour graph is not a Hamiltonian cycle")

	// ErrWorkerFault wraps a panic recovered inside a worker.
	ErrWorkerFault = errors.New("tsp: worker fault")

	// ErrTooLarge indicates an instance beyond the exact DP's reach.
	ErrTooLarge = errors.New("tsp: instance too large for exact DP")
)

// UnsolvableError lists the nodes with fewer than two incident edges.
type UnsolvableError struct {
	Nodes []int
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("tsp: instance is unsolvable: nodes %v have fewer than two edges", e.Nodes)
}

// Unwrap makes errors.Is(err, ErrUnsolvable) hold.
func (e *UnsolvableError) Unwrap() error { return ErrUnsolvable }

// Policy selects the work-queue ordering.
type Policy int

const (
	// BestFS pops the lowest bound first.
	BestFS Policy = iota
	// DFS pops the most recently pushed subproblem first.
	DFS
)

func (p Policy) String() string {
	switch p {
	case BestFS:
		return "BestFS"
	case DFS:
		return "DFS"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "BestFS" or "DFS" (any case) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bestfs":
		return BestFS, nil
	case "dfs":
		return DFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// State is the lifecycle position of a Solution.
type State int

const (
	// Pending: no tour yet.
	Pending State = iota
	// Feasible: at least one tour recorded, search still running.
	Feasible
	// Resolved: terminal, the recorded tour is optimal.
	Resolved
	// Infeasible: terminal, no tour exists.
	Infeasible
)

func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Feasible:
		return "Feasible"
	case Resolved:
		return "Resolved"
	case Infeasible:
		return "Infeasible"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether s admits no further transition.
func (s State) Terminal() bool {
	return s == Resolved || s == Infeasible
}
