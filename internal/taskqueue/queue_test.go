package taskqueue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestQueue(t *testing.T) {
	results := make([]int, 100)
	q, err := New(context.Background(), 4, 8, func(_ context.Context, i int) error {
		results[i] = i * i
		return nil
	})
	assert.NoError(t, err)
	defer q.Close()

	for i := range results {
		q.Submit(i)
	}
	assert.NoError(t, q.Wait())

	for i, v := range results {
		assert.Equal(t, i*i, v)
	}
}

func TestQueueSubmitJob(t *testing.T) {
	var sum atomic.Int64
	q, err := New(context.Background(), 2, 0, func(_ context.Context, i int) error {
		sum.Add(int64(i))
		return nil
	})
	assert.NoError(t, err)
	defer q.Close()

	q.Submit(1)
	q.SubmitJob(2, func(_ context.Context, i int) error {
		sum.Add(int64(10 * i))
		return nil
	})
	assert.NoError(t, q.Wait())
	assert.Equal(t, int64(21), sum.Load())
}

func TestQueueError(t *testing.T) {
	errFailed := errors.New("failed")
	var processed atomic.Int64
	q, err := New(context.Background(), 1, 16, func(_ context.Context, i int) error {
		processed.Add(1)
		if i == 0 {
			return errFailed
		}
		return nil
	})
	assert.NoError(t, err)
	defer q.Close()

	for i := range 10 {
		q.Submit(i)
	}
	err = q.Wait()
	assert.True(t, errors.Is(err, errFailed))
	assert.True(t, processed.Load() < 10)
}

func TestQueueCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q, err := New(ctx, 2, 4, func(context.Context, int) error {
		return nil
	})
	assert.NoError(t, err)
	defer q.Close()

	q.Submit(1)
	assert.True(t, errors.Is(q.Wait(), context.Canceled))
}

func TestQueueInvalid(t *testing.T) {
	_, err := New(context.Background(), 0, 0, func(context.Context, int) error { return nil })
	assert.True(t, errors.Is(err, ErrNoWorkers))

	_, err = New[int](context.Background(), 1, 0, nil)
	assert.Error(t, err)
}
