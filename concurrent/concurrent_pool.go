package concurrent

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

//通用任务协程池，报警事件处理使用
var ErrExexcutorCapacity = errors.New("协程池容量不合法")
var ErrExexcutorClosed = errors.New("协程池已关闭")

type Executor struct {
	sync.Mutex
	capacity int
	active   int
	workers  chan *worker
	ctx      context.Context
	cancel   context.CancelFunc
	closed   atomic.Bool
}

func (e *Executor) IsClose() bool {
	return e.closed.Load()
}

func NewExecutor(capacity int) *Executor {
	if capacity <= 0 {
		capacity = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Executor{
		capacity: capacity,
		workers:  make(chan *worker, capacity),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (e *Executor) Capacity() int {
	return e.capacity
}

func (e *Executor) getWorker() (*worker, error) {
	select {
	case w := <-e.workers:
		return w, nil
	default:
	}
	e.Lock()
	if e.active < e.capacity {
		e.active++
		e.Unlock()
		w := &worker{
			e:        e,
			taskChan: make(chan func()),
		}
		w.run()
		return w, nil
	}
	e.Unlock()
	select {
	case w := <-e.workers:
		return w, nil
	case <-e.ctx.Done():
		return nil, ErrExexcutorClosed
	}
}

func (e *Executor) recoverWorker(w *worker) {
	e.workers <- w
}

//无空闲协程时阻塞等待
func (e *Executor) Submit(task func()) error {
	if e.closed.Load() {
		return ErrExexcutorClosed
	}
	w, err := e.getWorker()
	if err != nil {
		return err
	}
	select {
	case w.taskChan <- task:
		return nil
	case <-e.ctx.Done():
		return ErrExexcutorClosed
	}
}

func (e *Executor) SubmitSyncBatch(tasks []func()) (err error) {
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, t := range tasks {
		cb := t
		err = e.Submit(func() {
			defer wg.Done()
			cb()
		})
		if err != nil {
			wg.Done()
		}
	}
	wg.Wait()
	return
}

//已交给协程的任务继续执行，不再接收新任务
func (e *Executor) Close() {
	if !e.closed.CompareAndSwap(false, true) {
		return
	}
	e.cancel()
}

type worker struct {
	e        *Executor
	taskChan chan func()
}

func (w *worker) run() {
	go func() {
		for {
			select {
			case <-w.e.ctx.Done():
				return
			case task := <-w.taskChan:
				if task != nil {
					task()
				}
				w.e.recoverWorker(w)
			}
		}
	}()
}
