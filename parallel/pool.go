// Package parallel runs independent drawing tasks over a fixed set of
// workers. Ring radii are disjoint point sets, so tasks never need to
// synchronize with each other.
package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

type Pool struct {
	wg     sync.WaitGroup
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

// Start launches numWorkers goroutines feeding from a shared task
// channel. For numWorkers below 2 the pool degenerates to running tasks
// inline on the caller, which keeps the single-threaded default path free
// of goroutines entirely. Values below 1 mean one worker per CPU.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}
	if numWorkers < 2 {
		return pool
	}

	tasks := make(chan func(), numWorkers)
	for i := 0; i < numWorkers; i++ {
		pool.wg.Add(1)
		go func() {
			defer pool.wg.Done()
			for f := range tasks {
				f()
			}
		}()
	}

	pool.Do = func(f func()) {
		tasks <- f
	}
	pool.Cancel = sync.OnceFunc(func() { close(tasks) })
	pool.Wait = func(done bool) {
		if done {
			pool.Cancel()
		}
		pool.wg.Wait()
	}

	return pool
}

// ForEachInt runs fn(i) for every i in [from, to] on the pool and blocks
// until all of them finish. The pool is spent afterwards.
func (p *Pool) ForEachInt(from, to int, fn func(int)) {
	for i := from; i <= to; i++ {
		i := i
		p.Do(func() { fn(i) })
	}
	p.Wait(true)
}
