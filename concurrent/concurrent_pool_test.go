package concurrent

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestExecutorBoundsConcurrency(t *testing.T) {
	e := NewExecutor(3)
	defer e.Close()

	var running, peak int32
	tasks := make([]func(), 20)
	for i := range tasks {
		tasks[i] = func() {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&running, -1)
		}
	}
	if err := e.SubmitSyncBatch(tasks); err != nil {
		t.Fatal(err)
	}
	if peak > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak)
	}
}

func TestExecutorClosed(t *testing.T) {
	e := NewExecutor(0)
	if e.Capacity() != 1 {
		t.Errorf("capacity = %d", e.Capacity())
	}
	var wg sync.WaitGroup
	wg.Add(1)
	if err := e.Submit(wg.Done); err != nil {
		t.Fatal(err)
	}
	wg.Wait()
	e.Close()
	e.Close()
	if !e.IsClose() {
		t.Error("IsClose = false")
	}
	if err := e.Submit(func() {}); !errors.Is(err, ErrExexcutorClosed) {
		t.Errorf("err = %v", err)
	}
}
