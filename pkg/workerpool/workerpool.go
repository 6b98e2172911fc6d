package workerpool

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
)

// ErrClosed возвращается при отправке задачи в закрытый пул.
var ErrClosed = errors.New("workerpool: pool is closed")

// Task описывает задачу для пула.
// Задачи с одинаковым Key выполняются одним воркером строго по очереди,
// задачи с разными ключами идут параллельно.
// ResultC — канал для возврата результата (если нужен)
type Task struct {
	Key     string
	Fn      func() (any, error)
	ResultC chan Result
}

type Result struct {
	Value any
	Err   error
}

type WorkerPool struct {
	queues []chan Task
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewWorkerPool создаёт пул с N воркерами, у каждого своя очередь на queueSize задач.
func NewWorkerPool(workerCount int, queueSize int) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		queues: make([]chan Task, workerCount),
		ctx:    ctx,
		cancel: cancel,
	}
	for i := range wp.queues {
		wp.queues[i] = make(chan Task, queueSize)
		wp.wg.Add(1)
		go wp.worker(wp.queues[i])
	}
	return wp
}

func (wp *WorkerPool) worker(tasks chan Task) {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.ctx.Done():
			return
		case task, ok := <-tasks:
			if !ok {
				return
			}
			res, err := task.Fn()
			if task.ResultC != nil {
				task.ResultC <- Result{Value: res, Err: err}
			}
		}
	}
}

func (wp *WorkerPool) queueFor(key string) chan Task {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return wp.queues[h.Sum32()%uint32(len(wp.queues))]
}

// Submit ставит задачу в очередь воркера, отвечающего за её ключ.
func (wp *WorkerPool) Submit(task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrClosed
	}
	select {
	case wp.queueFor(task.Key) <- task:
		return nil
	case <-wp.ctx.Done():
		return ErrClosed
	}
}

// Close завершает работу пула: новые задачи не принимаются, уже поставленные дорабатываются.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	if wp.closed {
		wp.mu.Unlock()
		return
	}
	wp.closed = true
	for _, q := range wp.queues {
		close(q)
	}
	wp.mu.Unlock()
	wp.wg.Wait()
	wp.cancel()
}
