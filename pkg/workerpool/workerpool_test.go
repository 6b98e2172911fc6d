package workerpool

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReturnsResult(t *testing.T) {
	pool := NewWorkerPool(2, 4)
	defer pool.Close()

	resCh := make(chan Result, 1)
	require.NoError(t, pool.Submit(Task{Key: "1", Fn: func() (any, error) { return 42, nil }, ResultC: resCh}))
	res := <-resCh
	assert.Equal(t, 42, res.Value)
	assert.NoError(t, res.Err)

	boom := errors.New("boom")
	require.NoError(t, pool.Submit(Task{Key: "1", Fn: func() (any, error) { return nil, boom }, ResultC: resCh}))
	assert.ErrorIs(t, (<-resCh).Err, boom)
}

func TestSameKeyRunsInOrder(t *testing.T) {
	pool := NewWorkerPool(4, 64)
	defer pool.Close()

	var (
		mu      sync.Mutex
		order   []int
		running int32
		overlap bool
		wg      sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		err := pool.Submit(Task{Key: "chat-7", Fn: func() (any, error) {
			defer wg.Done()
			if atomic.AddInt32(&running, 1) > 1 {
				overlap = true
			}
			time.Sleep(time.Millisecond)
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			atomic.AddInt32(&running, -1)
			return nil, nil
		}})
		require.NoError(t, err)
	}
	wg.Wait()

	assert.False(t, overlap)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestDifferentKeysRunInParallel(t *testing.T) {
	pool := NewWorkerPool(8, 8)
	defer pool.Close()

	// ищем два ключа, попадающих в разные очереди
	a := "0"
	b := ""
	for i := 1; i < 100; i++ {
		if pool.queueFor(strconv.Itoa(i)) != pool.queueFor(a) {
			b = strconv.Itoa(i)
			break
		}
	}
	require.NotEmpty(t, b)

	release := make(chan struct{})
	started := make(chan struct{}, 2)
	for _, key := range []string{a, b} {
		require.NoError(t, pool.Submit(Task{Key: key, Fn: func() (any, error) {
			started <- struct{}{}
			<-release
			return nil, nil
		}}))
	}
	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("tasks with different keys did not run concurrently")
		}
	}
	close(release)
}

func TestSubmitAfterClose(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	pool.Close()
	pool.Close()
	assert.ErrorIs(t, pool.Submit(Task{Key: "x", Fn: func() (any, error) { return nil, nil }}), ErrClosed)
}

func TestCloseDrainsQueuedTasks(t *testing.T) {
	pool := NewWorkerPool(1, 8)
	var done int32
	for i := 0; i < 5; i++ {
		require.NoError(t, pool.Submit(Task{Key: "k", Fn: func() (any, error) {
			atomic.AddInt32(&done, 1)
			return nil, nil
		}}))
	}
	pool.Close()
	assert.Equal(t, int32(5), atomic.LoadInt32(&done))
}
