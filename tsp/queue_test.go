package tsp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(bound int, hamiltonian bool) *Subproblem {
	return &Subproblem{bound: bound, hamiltonian: hamiltonian}
}

func drain(t *testing.T, q Queue) []*Subproblem {
	t.Helper()
	var out []*Subproblem
	for q.Len() > 0 {
		sp, ok := q.Pop(context.Background(), time.Second)
		require.True(t, ok)
		q.Done()
		out = append(out, sp)
	}

	return out
}

func TestQueue_BestFirstOrder(t *testing.T) {
	q, err := NewQueue(BestFS, true)
	require.NoError(t, err)

	plain3 := stub(3, false)
	tour3 := stub(3, true)
	for _, sp := range []*Subproblem{stub(5, false), plain3, stub(1, false), tour3} {
		q.Push(sp)
	}

	got := drain(t, q)
	require.Len(t, got, 4)
	assert.Equal(t, 1, got[0].bound)
	assert.Same(t, tour3, got[1])
	assert.Same(t, plain3, got[2])
	assert.Equal(t, 5, got[3].bound)
}

func TestQueue_DepthFirstOrder(t *testing.T) {
	q, err := NewQueue(DFS, true)
	require.NoError(t, err)

	in := []*Subproblem{stub(1, false), stub(9, false), stub(4, true)}
	for _, sp := range in {
		q.Push(sp)
	}

	got := drain(t, q)
	require.Len(t, got, 3)
	assert.Same(t, in[2], got[0])
	assert.Same(t, in[1], got[1])
	assert.Same(t, in[0], got[2])
}

func TestQueue_UnknownPolicy(t *testing.T) {
	_, err := NewQueue(Policy(7), true)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestQueue_PopTimesOut(t *testing.T) {
	q, err := NewQueue(BestFS, true)
	require.NoError(t, err)

	start := time.Now()
	_, ok := q.Pop(context.Background(), 30*time.Millisecond)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestQueue_PopWakesOnPush(t *testing.T) {
	q, err := NewQueue(DFS, true)
	require.NoError(t, err)

	want := stub(2, false)
	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Push(want)
	}()

	got, ok := q.Pop(context.Background(), 5*time.Second)
	require.True(t, ok)
	assert.Same(t, want, got)
}

func TestQueue_PopHonoursContext(t *testing.T) {
	q, err := NewQueue(BestFS, true)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	_, ok := q.Pop(ctx, 5*time.Second)
	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second)
}

func TestQueue_CloseReleasesWaiters(t *testing.T) {
	q, err := NewQueue(BestFS, true)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]bool, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = q.Pop(context.Background(), 10*time.Second)
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	q.Close()
	q.Close() // idempotent
	wg.Wait()

	for _, ok := range results {
		assert.False(t, ok)
	}
	select {
	case <-q.Closed():
	default:
		t.Fatal("Closed channel still open")
	}

	q.Push(stub(1, false))
	assert.Equal(t, 0, q.Len(), "push after close must be dropped")
}

func TestQueue_IdleStrict(t *testing.T) {
	q, err := NewQueue(BestFS, true)
	require.NoError(t, err)
	assert.True(t, q.Idle())

	q.Push(stub(1, false))
	assert.False(t, q.Idle())

	_, ok := q.Pop(context.Background(), time.Second)
	require.True(t, ok)
	assert.False(t, q.Idle(), "in-flight work keeps a strict queue busy")

	q.Done()
	assert.True(t, q.Idle())
}

func TestQueue_IdleLenient(t *testing.T) {
	q, err := NewQueue(DFS, false)
	require.NoError(t, err)

	q.Push(stub(1, false))
	_, ok := q.Pop(context.Background(), time.Second)
	require.True(t, ok)
	assert.True(t, q.Idle(), "a lenient queue only looks at its length")
	q.Done()
}

func TestQueue_ConcurrentProducersConsumers(t *testing.T) {
	q, err := NewQueue(BestFS, true)
	require.NoError(t, err)

	const producers, perProducer = 4, 250
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(stub(p*perProducer+i, false))
			}
		}(p)
	}

	var (
		mu   sync.Mutex
		seen = make(map[int]bool)
		cwg  sync.WaitGroup
	)
	for c := 0; c < 3; c++ {
		cwg.Add(1)
		go func() {
			defer cwg.Done()
			for {
				sp, ok := q.Pop(context.Background(), 50*time.Millisecond)
				if !ok {
					return
				}
				mu.Lock()
				seen[sp.bound] = true
				mu.Unlock()
				q.Done()
			}
		}()
	}
	wg.Wait()
	cwg.Wait()

	// Consumers may give up before producers finish; collect the rest.
	for _, sp := range drain(t, q) {
		seen[sp.bound] = true
	}
	assert.Len(t, seen, producers*perProducer)
	assert.True(t, q.Idle())
}
