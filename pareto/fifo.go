// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// fifo.go — sequential label-correcting fixpoint.
//
// Loop: dequeue n, clear its in-queue flag, expand its pending labels into
// every usable neighbor, enqueue neighbors that changed (never the source,
// never the target), settle n. The run ends when the queue is empty, which
// is a dominance fixpoint. The target is never expanded.

package pareto

import "context"

// runFIFO drives the sequential scheduler and returns the merged statistics.
func (e *engine) runFIFO(ctx context.Context) (Stats, error) {
	w := newWorker(e.dim)
	queue := []int{e.src}
	e.entries[e.src].inQueue = true

	enqueue := func(v int) {
		if v == e.dst {
			return
		}
		if ent := &e.entries[v]; !ent.inQueue {
			ent.inQueue = true
			queue = append(queue, v)
		}
	}

	for head := 0; head < len(queue); head++ {
		if err := ctx.Err(); err != nil {
			return w.stats, err
		}
		n := queue[head]
		e.entries[n].inQueue = false
		e.expandNode(n, w, enqueue)

		// Reclaim the consumed prefix once it dominates the backing array.
		if head > 1024 && head*2 > len(queue) {
			queue = append(queue[:0], queue[head+1:]...)
			head = -1
		}
	}

	return w.stats, nil
}
