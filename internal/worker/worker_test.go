package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoolRunsTasks(t *testing.T) {
	p := NewPool(3)
	var n int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		p.Submit(func() {
			atomic.AddInt32(&n, 1)
			wg.Done()
		})
	}
	wg.Wait()
	p.Stop()
	require.Equal(t, int32(10), atomic.LoadInt32(&n))
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	p := NewPool(0)
	done := make(chan struct{})
	p.Submit(func() { close(done) })
	<-done
	p.Stop()
}

func TestPoolSubmitDropsWhenFull(t *testing.T) {
	p := NewPool(1)
	gate := make(chan struct{})
	started := make(chan struct{})
	p.Submit(func() { close(started); <-gate })
	<-started

	var n int32
	for i := 0; i < queueSize; i++ {
		p.Submit(func() { atomic.AddInt32(&n, 1) })
	}

	// 佇列已滿，再 Submit 必須立即返回並丟棄任務
	done := make(chan struct{})
	go func() {
		p.Submit(func() { atomic.AddInt32(&n, 1) })
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit blocked on a full queue")
	}

	close(gate)
	p.Stop()
	require.Equal(t, int32(queueSize), atomic.LoadInt32(&n))
}

func TestPoolIgnoresNilTask(t *testing.T) {
	p := NewPool(1)
	p.Submit(nil)
	done := make(chan struct{})
	p.Submit(func() { close(done) })
	<-done
	p.Stop()
}
