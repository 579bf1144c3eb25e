// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// parallel.go — label-correcting fixpoint on a worker pool.
//
// Shared state guarded by one mutex: the active-node queue, the in-queue
// flags, the neighborhood lock flags and the count of busy workers.
//
// A worker takes the first queued node n whose unit {n} ∪ heads(n) has no
// locked member, locks the whole unit, releases the mutex and expands n
// exactly like the sequential loop. Every write of the expansion lands in
// n or one of its heads, so disjoint units proceed concurrently. Units are
// acquired all-or-nothing under the mutex; no partial lock is ever held,
// which rules out lock-order deadlocks.
//
// Idle workers wait on a condition variable. The run terminates when the
// queue is empty and no worker is busy; cancellation wakes every waiter.

package pareto

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// pool is the shared scheduler state of a parallel run.
type pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []int
	inQueue []bool
	locked  []bool
	units   [][]int // units[n] = n followed by its distinct heads
	busy    int
	done    bool
}

// newPool precomputes every neighborhood unit.
func (e *engine) newPool() *pool {
	n := e.g.NodeCount()
	p := &pool{
		inQueue: make([]bool, n),
		locked:  make([]bool, n),
		units:   make([][]int, n),
	}
	p.cond = sync.NewCond(&p.mu)

	seen := make([]int, n)
	for i := range seen {
		seen[i] = -1
	}
	for u := 0; u < n; u++ {
		unit := []int{u}
		seen[u] = u
		for _, id := range e.g.Incident(u) {
			if v := e.head(u, id); v >= 0 && seen[v] != u {
				seen[v] = u
				unit = append(unit, v)
			}
		}
		p.units[u] = unit
	}

	return p
}

// lockable reports whether no member of n's unit is locked. Caller holds mu.
func (p *pool) lockable(n int) bool {
	for _, m := range p.units[n] {
		if p.locked[m] {
			return false
		}
	}

	return true
}

// setUnit flips the lock flags of n's unit. Caller holds mu.
func (p *pool) setUnit(n int, v bool) {
	for _, m := range p.units[n] {
		p.locked[m] = v
	}
}

// take blocks until a node can be processed, returning -1 on termination.
func (p *pool) take(ctx context.Context) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for {
		if err := ctx.Err(); err != nil {
			p.done = true
			p.cond.Broadcast()
			return -1, err
		}
		if p.done {
			return -1, nil
		}
		for i, n := range p.queue {
			if !p.lockable(n) {
				continue
			}
			p.queue = append(p.queue[:i], p.queue[i+1:]...)
			p.inQueue[n] = false
			p.setUnit(n, true)
			p.busy++
			return n, nil
		}
		if len(p.queue) == 0 && p.busy == 0 {
			p.done = true
			p.cond.Broadcast()
			return -1, nil
		}
		p.cond.Wait()
	}
}

// release unlocks n's unit and enqueues the changed heads.
func (p *pool) release(n int, changed []int, src, dst int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setUnit(n, false)
	p.busy--
	for _, v := range changed {
		if v == src || v == dst || p.inQueue[v] {
			continue
		}
		p.inQueue[v] = true
		p.queue = append(p.queue, v)
	}
	p.cond.Broadcast()
}

// runParallel drives the worker pool and returns the merged statistics.
func (e *engine) runParallel(ctx context.Context, threads int) (Stats, error) {
	p := e.newPool()
	p.queue = append(p.queue, e.src)
	p.inQueue[e.src] = true

	stop := context.AfterFunc(ctx, func() {
		p.mu.Lock()
		p.cond.Broadcast()
		p.mu.Unlock()
	})
	defer stop()

	workers := make([]*worker, threads)
	var g errgroup.Group
	for i := range workers {
		w := newWorker(e.dim)
		workers[i] = w
		g.Go(func() error {
			var changed []int
			collect := func(v int) { changed = append(changed, v) }
			for {
				n, err := p.take(ctx)
				if err != nil || n < 0 {
					return err
				}
				changed = changed[:0]
				e.expandNode(n, w, collect)
				p.release(n, changed, e.src, e.dst)
			}
		})
	}
	err := g.Wait()

	var total Stats
	for _, w := range workers {
		total.add(w.stats)
	}

	return total, err
}
