package tsp

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bbtsp/core"
)

func TestEvaluateSafely_RecoversPanic(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	e, err := NewEngine(g)
	require.NoError(t, err)
	q, err := NewQueue(BestFS, true)
	require.NoError(t, err)

	// A nil subproblem panics on the first field access.
	err = e.evaluateSafely(nil, q, NewSolution(), e.log)
	assert.ErrorIs(t, err, ErrWorkerFault)
}

func TestEvaluate_FinalizedSolutionAborts(t *testing.T) {
	sp, err := NewRootSubproblem(ringGraph(t, 4), 1)
	require.NoError(t, err)
	e, err := NewEngine(ringGraph(t, 4))
	require.NoError(t, err)
	q, err := NewQueue(DFS, true)
	require.NoError(t, err)

	sol := NewSolution()
	require.NoError(t, sol.Finalize())
	err = e.evaluate(sp, q, sol, e.log)
	assert.ErrorIs(t, err, ErrSolutionFinalized)
}

func TestSolve_WorkerFaultAbortsRun(t *testing.T) {
	e, err := NewEngine(ringGraph(t, 5), WithWorkers(2))
	require.NoError(t, err)
	e.beforeEval = func(sp *Subproblem) {
		if sp.Depth() == 0 {
			panic("bound computation failed")
		}
	}

	sol, err := e.Solve(context.Background())
	assert.ErrorIs(t, err, ErrWorkerFault)
	require.NotNil(t, sol)
	assert.Equal(t, Pending, sol.State())
	assert.False(t, sol.State().Terminal())
	assert.NoError(t, sol.Finalize(), "an aborted run leaves the solution open")
}

// releaseOnWarn closes ch the first time a warning is logged.
type releaseOnWarn struct {
	once sync.Once
	ch   chan struct{}
}

func (r *releaseOnWarn) Levels() []logrus.Level { return []logrus.Level{logrus.WarnLevel} }

func (r *releaseOnWarn) Fire(*logrus.Entry) error {
	r.once.Do(func() { close(r.ch) })
	return nil
}

// blockingRootEngine builds a lenient two-worker engine over a 4-ring whose
// root evaluation waits on release. The idle worker declares completion
// while the other still holds the root.
func blockingRootEngine(t *testing.T, timeout time.Duration, release <-chan struct{}) (*Engine, *logtest.Hook, *logrus.Logger) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	hook := logtest.NewLocal(logger)

	e, err := NewEngine(ringGraph(t, 4),
		WithWorkers(2),
		WithStrictQuiescence(false),
		WithShutdownTimeout(timeout),
		WithLogger(logger),
	)
	require.NoError(t, err)
	e.beforeEval = func(sp *Subproblem) {
		if sp.Depth() == 0 {
			<-release
		}
	}

	return e, hook, logger
}

func messages(hook *logtest.Hook, level logrus.Level) []string {
	var out []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == level {
			out = append(out, entry.Message)
		}
	}

	return out
}

func TestSolve_ForcedShutdownStillFinalizes(t *testing.T) {
	rel := &releaseOnWarn{ch: make(chan struct{})}
	e, hook, logger := blockingRootEngine(t, 200*time.Millisecond, rel.ch)
	logger.AddHook(rel)

	sol, err := e.Solve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"workers did not stop in time; cancelling"}, messages(hook, logrus.WarnLevel))
	assert.Empty(t, messages(hook, logrus.ErrorLevel))
	assert.Equal(t, Resolved, sol.State())
	assert.Equal(t, 4, sol.Cost())
}

func TestSolve_ShutdownGivesUpOnStragglers(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	e, hook, _ := blockingRootEngine(t, 30*time.Millisecond, release)

	start := time.Now()
	sol, err := e.Solve(context.Background())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	assert.Equal(t, []string{"workers did not stop in time; cancelling"}, messages(hook, logrus.WarnLevel))
	assert.Equal(t, []string{"workers failed to terminate"}, messages(hook, logrus.ErrorLevel))
	// The root never finished, so no tour was recorded before finalizing.
	assert.Equal(t, Infeasible, sol.State())
}

func ringGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		require.NoError(t, g.AddEdge(i, i%n+1, 1))
	}

	return g
}
