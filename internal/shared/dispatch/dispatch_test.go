package dispatch_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-shortlink/internal/shared/dispatch"
	"go-shortlink/internal/shared/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type dropCounter struct {
	metrics.Nop
	mu      sync.Mutex
	dropped []string
}

func (c *dropCounter) IncTasksDropped(task string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropped = append(c.dropped, task)
}

func (c *dropCounter) tasks() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.dropped...)
}

func TestDispatcher_RunsTasks(t *testing.T) {
	// Setup
	d := dispatch.New(10, 2, time.Second, zap.NewNop(), nil)
	d.Start()

	var ran atomic.Int64

	// Act
	for i := 0; i < 5; i++ {
		ok := d.Dispatch("count", func(context.Context) error {
			ran.Add(1)
			return nil
		})
		require.True(t, ok)
	}

	// Assert
	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, int64(5), ran.Load())
}

func TestDispatcher_FullQueue_DropsWithoutBlocking(t *testing.T) {
	// Setup: not started, so nothing drains the queue
	sink := &dropCounter{}
	d := dispatch.New(2, 1, time.Second, zap.NewNop(), sink)
	noop := func(context.Context) error { return nil }

	// Act
	start := time.Now()
	first := d.Dispatch("a", noop)
	second := d.Dispatch("b", noop)
	third := d.Dispatch("c", noop)

	// Assert
	assert.True(t, first)
	assert.True(t, second)
	assert.False(t, third)
	assert.Equal(t, []string{"c"}, sink.tasks())
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestDispatcher_FullQueue_CountsDropUnderTaskName(t *testing.T) {
	// Setup
	sink := &dropCounter{}
	d := dispatch.New(1, 1, time.Second, zap.NewNop(), sink)
	noop := func(context.Context) error { return nil }
	require.True(t, d.Dispatch("click", noop))

	// Act
	accepted := d.Dispatch("link-created", noop)

	// Assert
	assert.False(t, accepted)
	assert.Equal(t, []string{"link-created"}, sink.tasks())
}

func TestDispatcher_TaskGetsTimeoutContext(t *testing.T) {
	d := dispatch.New(1, 1, 50*time.Millisecond, zap.NewNop(), nil)
	d.Start()

	errCh := make(chan error, 1)
	d.Dispatch("slow", func(ctx context.Context) error {
		<-ctx.Done()
		errCh <- ctx.Err()
		return ctx.Err()
	})

	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	case <-time.After(2 * time.Second):
		t.Fatal("task context was never cancelled")
	}
	require.NoError(t, d.Close(context.Background()))
}

func TestDispatcher_FailingAndPanickingTasks_DoNotStopWorkers(t *testing.T) {
	d := dispatch.New(10, 1, time.Second, zap.NewNop(), nil)
	d.Start()

	var ran atomic.Bool
	d.Dispatch("fails", func(context.Context) error { return errors.New("peer down") })
	d.Dispatch("panics", func(context.Context) error { panic("boom") })
	d.Dispatch("ok", func(context.Context) error {
		ran.Store(true)
		return nil
	})

	require.NoError(t, d.Close(context.Background()))
	assert.True(t, ran.Load())
}

func TestDispatcher_DispatchAfterClose_Rejected(t *testing.T) {
	d := dispatch.New(10, 1, time.Second, zap.NewNop(), nil)
	d.Start()
	require.NoError(t, d.Close(context.Background()))

	ok := d.Dispatch("late", func(context.Context) error { return nil })

	assert.False(t, ok)
	assert.NoError(t, d.Close(context.Background()))
}

func TestDispatcher_CloseRespectsContext(t *testing.T) {
	d := dispatch.New(1, 1, 5*time.Second, zap.NewNop(), nil)
	d.Start()

	release := make(chan struct{})
	defer close(release)
	d.Dispatch("stuck", func(context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := d.Close(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
