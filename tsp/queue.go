package tsp

import (
	"context"
	"sync"
	"time"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Queue is the blocking work queue shared by the workers.
//
// Pop marks the returned subproblem as in flight until Done is called for
// it; Idle consults that count when the queue runs in strict mode.
type Queue interface {
	// Push adds sp. It never blocks; pushes after Close are dropped.
	Push(sp *Subproblem)
	// Pop waits up to timeout for a subproblem. ok is false on timeout,
	// ctx cancellation or Close.
	Pop(ctx context.Context, timeout time.Duration) (sp *Subproblem, ok bool)
	// Done releases one subproblem returned by Pop.
	Done()
	// Idle reports whether no more work can appear.
	Idle() bool
	// Len returns the number of queued subproblems.
	Len() int
	// Close wakes every waiter and makes further Pops fail.
	Close()
	// Closed is closed by Close.
	Closed() <-chan struct{}
}

// store is the ordering behind a Queue.
type store interface {
	push(sp *Subproblem)
	pop() (*Subproblem, bool)
	size() int
}

// compareSubproblems orders by ascending bound; at equal bound a
// Hamiltonian subproblem goes first.
func compareSubproblems(a, b interface{}) int {
	x, y := a.(*Subproblem), b.(*Subproblem)
	switch {
	case x.bound < y.bound:
		return -1
	case x.bound > y.bound:
		return 1
	case x.hamiltonian && !y.hamiltonian:
		return -1
	case !x.hamiltonian && y.hamiltonian:
		return 1
	default:
		return 0
	}
}

type bestFirst struct{ pq *priorityqueue.Queue }

func (s bestFirst) push(sp *Subproblem) { s.pq.Enqueue(sp) }
func (s bestFirst) size() int           { return s.pq.Size() }
func (s bestFirst) pop() (*Subproblem, bool) {
	v, ok := s.pq.Dequeue()
	if !ok {
		return nil, false
	}

	return v.(*Subproblem), true
}

type lastInFirstOut struct{ st *arraystack.Stack }

func (s lastInFirstOut) push(sp *Subproblem) { s.st.Push(sp) }
func (s lastInFirstOut) size() int           { return s.st.Size() }
func (s lastInFirstOut) pop() (*Subproblem, bool) {
	v, ok := s.st.Pop()
	if !ok {
		return nil, false
	}

	return v.(*Subproblem), true
}

// NewQueue returns an empty queue ordered by p. With strict set, Idle also
// requires that every popped subproblem has been marked Done.
//
// Errors:
//   - ErrUnknownPolicy for p outside BestFS/DFS.
func NewQueue(p Policy, strict bool) (Queue, error) {
	var s store
	switch p {
	case BestFS:
		s = bestFirst{pq: priorityqueue.NewWith(compareSubproblems)}
	case DFS:
		s = lastInFirstOut{st: arraystack.New()}
	default:
		return nil, ErrUnknownPolicy
	}

	return &workQueue{
		items:  s,
		strict: strict,
		notify: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}, nil
}

// workQueue guards a store with a mutex. notify carries at most one
// pending wake-up; a Pop that leaves items behind passes the wake-up on.
type workQueue struct {
	mu       sync.Mutex
	items    store
	inflight int
	strict   bool

	notify    chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
}

func (q *workQueue) Push(sp *Subproblem) {
	select {
	case <-q.closed:
		return
	default:
	}
	q.mu.Lock()
	q.items.push(sp)
	q.mu.Unlock()
	q.signal()
}

func (q *workQueue) signal() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

func (q *workQueue) Pop(ctx context.Context, timeout time.Duration) (*Subproblem, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-q.closed:
			return nil, false
		default:
		}

		q.mu.Lock()
		sp, ok := q.items.pop()
		if ok {
			q.inflight++
		}
		left := q.items.size()
		q.mu.Unlock()
		if ok {
			if left > 0 {
				q.signal()
			}
			return sp, true
		}

		select {
		case <-q.notify:
		case <-timer.C:
			return nil, false
		case <-ctx.Done():
			return nil, false
		case <-q.closed:
			return nil, false
		}
	}
}

func (q *workQueue) Done() {
	q.mu.Lock()
	if q.inflight > 0 {
		q.inflight--
	}
	q.mu.Unlock()
}

func (q *workQueue) Idle() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.strict {
		return q.items.size() == 0 && q.inflight == 0
	}

	return q.items.size() == 0
}

func (q *workQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.size()
}

func (q *workQueue) Close() {
	q.closeOnce.Do(func() { close(q.closed) })
}

func (q *workQueue) Closed() <-chan struct{} {
	return q.closed
}
