package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls chan time.Time
	err   error
	count atomic.Int32
}

func newFakeRunner(err error) *fakeRunner {
	return &fakeRunner{calls: make(chan time.Time, 16), err: err}
}

func (r *fakeRunner) RunPass(_ context.Context, now time.Time) (*models.PassResult, error) {
	err := r.err
	r.count.Add(1)
	r.calls <- now
	if err != nil {
		return nil, err
	}
	return &models.PassResult{StartedAt: now}, nil
}

func (r *fakeRunner) next(t *testing.T) time.Time {
	t.Helper()
	select {
	case now := <-r.calls:
		return now
	case <-time.After(2 * time.Second):
		t.Fatal("pass was not triggered")
		return time.Time{}
	}
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestScheduler_RunsImmediatelyAndOnEveryTick(t *testing.T) {
	start := time.Date(2024, time.May, 15, 14, 30, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	runner := newFakeRunner(nil)
	s := New(runner, clock, 15*time.Minute, newTestLogger())

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.Running())

	// первый проход сразу после старта
	assert.Equal(t, start, runner.next(t))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(15 * time.Minute)
	assert.Equal(t, start.Add(15*time.Minute), runner.next(t))

	clock.Advance(15 * time.Minute)
	assert.Equal(t, start.Add(30*time.Minute), runner.next(t))

	s.Stop()
	s.Wait()
	assert.False(t, s.Running())
	assert.EqualValues(t, 3, runner.count.Load())
}

func TestScheduler_NoTicksAfterStop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	runner := newFakeRunner(nil)
	s := New(runner, clock, time.Minute, newTestLogger())

	require.NoError(t, s.Start(context.Background()))
	runner.next(t)

	s.Stop()
	s.Wait()
	clock.Advance(10 * time.Minute)

	assert.EqualValues(t, 1, runner.count.Load())
	// повторная остановка безопасна
	s.Stop()
}

func TestScheduler_TickRacingStopIsIgnored(t *testing.T) {
	for i := 0; i < 50; i++ {
		clock := clockwork.NewFakeClock()
		runner := newFakeRunner(nil)
		s := New(runner, clock, time.Minute, newTestLogger())

		require.NoError(t, s.Start(context.Background()))
		runner.next(t)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		cancel()

		// отмена и тик готовы одновременно
		s.Stop()
		clock.Advance(time.Minute)
		s.Wait()

		require.EqualValues(t, 1, runner.count.Load(), "iteration %d", i)
	}
}

func TestScheduler_PassErrorsDoNotStopLoop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	runner := newFakeRunner(service.ErrPassInProgress)
	s := New(runner, clock, time.Minute, newTestLogger())

	require.NoError(t, s.Start(context.Background()))
	runner.next(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	runner.err = errors.New("db down")
	clock.Advance(time.Minute)
	runner.next(t)

	s.Stop()
	s.Wait()
}

func TestScheduler_StartValidation(t *testing.T) {
	t.Run("неположительный интервал", func(t *testing.T) {
		s := New(newFakeRunner(nil), clockwork.NewFakeClock(), 0, newTestLogger())
		assert.Error(t, s.Start(context.Background()))
		assert.False(t, s.Running())
	})

	t.Run("повторный старт", func(t *testing.T) {
		runner := newFakeRunner(nil)
		s := New(runner, clockwork.NewFakeClock(), time.Minute, newTestLogger())
		require.NoError(t, s.Start(context.Background()))
		runner.next(t)

		assert.Error(t, s.Start(context.Background()))

		s.Stop()
		s.Wait()
	})
}

func TestScheduler_StopsWithParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := newFakeRunner(nil)
	s := New(runner, clockwork.NewFakeClock(), time.Minute, newTestLogger())

	require.NoError(t, s.Start(ctx))
	runner.next(t)
	cancel()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not exit after context cancellation")
	}
}
