package service

import (
	"datepicker-bot/pkg/workerpool"
)

// AsyncService выполняет обработку callback-ов в пуле.
// Задачи одного разговора (одного key) идут строго по очереди.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

func (a *AsyncService) SubmitAsync(key string, fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	err := a.Pool.Submit(workerpool.Task{
		Key:     key,
		Fn:      fn,
		ResultC: resCh,
	})
	if err != nil {
		return nil, err
	}
	res := <-resCh
	return res.Value, res.Err
}
