// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// invalidate.go — tree deletion.
//
// When a label is evicted after it has already been extended, every label
// built on it carries a cost prefix that is itself dominated. A breadth-first
// walk over the recorded successors marks all of them deleted. Marked labels
// stay in their arenas (other labels may still point at them) and are swept
// from slot lists lazily; the extension loop never extends a deleted label.

package pareto

// invalidate purges every descendant of r. r itself is already deleted.
func (e *engine) invalidate(r ref, st *Stats) {
	root := e.at(r)
	if len(root.succ) == 0 {
		return
	}
	st.RecursiveDeletions++

	queue := root.succ
	root.succ = nil
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		l := e.at(cur)
		if l.deleted {
			continue
		}
		l.deleted = true
		st.TreeDeletedLabels++
		queue = append(queue, l.succ...)
		l.succ = nil
	}
}
