package tsp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bbtsp/core"
)

// Engine runs one branch-and-bound search over a private copy of a graph.
// An Engine may be solved more than once; each Solve starts afresh.
type Engine struct {
	graph *core.Graph
	opts  Options
	log   logrus.FieldLogger

	lowBound  atomic.Int64
	highBound atomic.Int64

	// beforeEval, when set, runs at the start of every evaluation.
	beforeEval func(*Subproblem)
}

// NewEngine validates opts and snapshots g.
//
// Errors:
//   - ErrGraphNil, ErrInvalidWorkers, ErrUnknownPolicy.
func NewEngine(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return &Engine{
		graph: g.Clone(),
		opts:  o,
		log:   o.Logger.WithField("policy", o.Policy.String()),
	}, nil
}

// Options returns the effective configuration.
func (e *Engine) Options() Options { return e.opts }

// Solve searches for an optimal tour.
//
// Steps:
//  1. Clone the graph; reject or drop nodes with fewer than two edges.
//  2. Choose the root (explicit, else the smallest ID), build the root
//     subproblem, push it and count it as generated.
//  3. Start Workers goroutines in an errgroup.
//  4. Once a worker signals completion, wait up to ShutdownTimeout for the
//     pool; past that, cancel the workers, log a warning and wait once
//     more. If they are still busy, log an error and move on.
//  5. Record elapsed time and bound range, then Finalize.
//
// On ctx cancellation the search stops between pops and Solve returns the
// unfinalized Solution together with ctx's error.
//
// Errors:
//   - *UnsolvableError, ErrEmptyGraph, ErrRootNotFound.
//   - Errors wrapping ErrWorkerFault or ErrSolutionFinalized abort the run.
func (e *Engine) Solve(ctx context.Context) (*Solution, error) {
	base, err := e.prepare()
	if err != nil {
		return nil, err
	}
	root, err := e.pickRoot(base)
	if err != nil {
		return nil, err
	}
	rootSP, err := NewRootSubproblem(base, root)
	if err != nil {
		return nil, err
	}
	q, err := NewQueue(e.opts.Policy, e.opts.StrictQuiesce)
	if err != nil {
		return nil, err
	}

	sol := NewSolution()
	e.lowBound.Store(math.MaxInt64)
	e.highBound.Store(math.MinInt64)
	q.Push(rootSP)
	if err = sol.AddGenerated(1); err != nil {
		return nil, err
	}

	start := time.Now()
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	grp, gctx := errgroup.WithContext(runCtx)
	var completed atomic.Bool
	for i := 0; i < e.opts.Workers; i++ {
		id := i
		grp.Go(func() error { return e.work(gctx, id, q, sol, &completed) })
	}

	done := make(chan error, 1)
	go func() { done <- grp.Wait() }()

	forced := false
	select {
	case err = <-done:
	case <-q.Closed():
		t := time.NewTimer(e.opts.ShutdownTimeout)
		select {
		case err = <-done:
		case <-t.C:
			e.log.WithField("timeout", e.opts.ShutdownTimeout).Warn("workers did not stop in time; cancelling")
			forced = true
			cancel()
			t.Reset(e.opts.ShutdownTimeout)
			select {
			case err = <-done:
			case <-t.C:
				// Stragglers may still Offer; a finalized Solution rejects them.
				e.log.WithField("timeout", e.opts.ShutdownTimeout).Error("workers failed to terminate")
				err = nil
			}
		}
		t.Stop()
	}

	sol.setElapsed(time.Since(start))
	sol.setBoundRange(e.lowBound.Load(), e.highBound.Load())

	if err != nil && !(forced && errors.Is(err, context.Canceled)) {
		if ctx.Err() != nil {
			return sol, ctx.Err()
		}
		return sol, err
	}
	if ctx.Err() != nil && !completed.Load() {
		return sol, ctx.Err()
	}
	if err = sol.Finalize(); err != nil {
		return sol, err
	}

	e.log.WithFields(logrus.Fields{
		"state":     sol.State().String(),
		"cost":      sol.Cost(),
		"elapsed":   sol.Elapsed(),
		"generated": sol.Generated(),
		"branched":  sol.Branched(),
		"pruned":    sol.BoundPruned(),
	}).Info("search finished")

	return sol, nil
}

// prepare clones the graph and applies the degree check.
func (e *Engine) prepare() (*core.Graph, error) {
	base := e.graph.Clone()

	var deficient []int
	for _, id := range base.Nodes() {
		d, err := base.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("prepare: %w", err)
		}
		if d < 2 {
			deficient = append(deficient, id)
		}
	}
	if len(deficient) > 0 {
		if !e.opts.DropDeficient {
			return nil, &UnsolvableError{Nodes: deficient}
		}
		for _, id := range deficient {
			if err := base.RemoveNode(id); err != nil {
				return nil, fmt.Errorf("prepare: %w", err)
			}
		}
		e.log.WithField("nodes", deficient).Debug("dropped deficient nodes")
	}
	if base.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}

	return base, nil
}

func (e *Engine) pickRoot(base *core.Graph) (int, error) {
	if e.opts.HasRoot {
		if !base.HasNode(e.opts.Root) {
			return 0, fmt.Errorf("root %d: %w", e.opts.Root, ErrRootNotFound)
		}
		return e.opts.Root, nil
	}

	return base.Nodes()[0], nil
}

// work is one worker's loop.
func (e *Engine) work(ctx context.Context, id int, q Queue, sol *Solution, completed *atomic.Bool) error {
	log := e.log.WithField("worker", id)
	for !completed.Load() {
		sp, ok := q.Pop(ctx, idleTimeout)
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			if q.Idle() && completed.CompareAndSwap(false, true) {
				log.Debug("queue idle; signalling completion")
				q.Close()
			}
			continue
		}

		err := e.evaluateSafely(sp, q, sol, log)
		q.Done()
		if err != nil {
			return err
		}
	}

	return nil
}

// evaluateSafely turns a panic in evaluate into an ErrWorkerFault.
func (e *Engine) evaluateSafely(sp *Subproblem, q Queue, sol *Solution, log logrus.FieldLogger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerFault, r)
		}
	}()

	return e.evaluate(sp, q, sol, log)
}

// evaluate closes or branches one subproblem.
func (e *Engine) evaluate(sp *Subproblem, q Queue, sol *Solution, log logrus.FieldLogger) error {
	if e.beforeEval != nil {
		e.beforeEval(sp)
	}
	e.observeBound(int64(sp.Bound()))

	if !sp.Feasible() {
		return sol.AddInfeasible(1)
	}
	if sp.Bound() >= sol.Cost() {
		return sol.AddBoundPruned(1)
	}

	if sp.Hamiltonian() {
		won, err := sol.Offer(sp.OneTree(), sp.Bound())
		if err != nil {
			return err
		}
		if !won {
			return sol.AddBoundPruned(1)
		}
		log.WithFields(logrus.Fields{"cost": sp.Bound(), "depth": sp.Depth()}).Debug("improved tour")
		return sol.AddOptimalClosed(1)
	}

	children, err := Branch(sp)
	if err != nil {
		return err
	}
	for _, c := range children {
		q.Push(c)
	}
	if err = sol.AddGenerated(len(children)); err != nil {
		return err
	}

	return sol.AddBranched(1)
}

// observeBound widens the diagnostic bound range. Lost updates are harmless.
func (e *Engine) observeBound(b int64) {
	for {
		lo := e.lowBound.Load()
		if b >= lo || e.lowBound.CompareAndSwap(lo, b) {
			break
		}
	}
	for {
		hi := e.highBound.Load()
		if b <= hi || e.highBound.CompareAndSwap(hi, b) {
			break
		}
	}
}
