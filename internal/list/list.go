// Package list implements a singly-linked push structure with a lock-free,
// never-blocking head insert. It is the substrate for the profiling registry,
// the name table, and the event log.
//
// Only Push is safe against arbitrary concurrency. Every other operation
// assumes a single designated consumer: walking is safe while producers keep
// pushing, but Pop, Reverse, and Clear must not race with each other or with
// a concurrent walk. Callers quiesce producers first or accept the documented
// approximation.
package list

import (
	"iter"
	"sync/atomic"
)

type node[T any] struct {
	next *node[T]
	item T
}

// List is a lock-free singly-linked structure ordered newest-first: the most
// recently pushed item is at the head. The zero value is an empty list.
type List[T any] struct {
	head atomic.Pointer[node[T]]
}

// Push links v at the head using a compare-and-retry loop. It is lock-free
// and safe to call from any number of goroutines.
func (l *List[T]) Push(v T) {
	n := &node[T]{item: v}
	for {
		n.next = l.head.Load()
		if l.head.CompareAndSwap(n.next, n) {
			return
		}
	}
}

// All returns a lazy iterator over the items reachable from the head at call
// time, newest-pushed first. Iteration is safe against concurrent Push (a
// walker sees a consistent snapshot from the head it read) but not against
// Pop, Reverse, or Clear.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.Load(); n != nil; n = n.next {
			if !yield(n.item) {
				return
			}
		}
	}
}

// Len walks the list and counts its nodes. Under concurrent Push the result
// is a lower bound as of a recent moment.
func (l *List[T]) Len() int {
	n := 0
	for p := l.head.Load(); p != nil; p = p.next {
		n++
	}
	return n
}

// PopHead unlinks and returns the most recently pushed item. It is intended
// for draining in arrival order after Reverse, by a single consumer with no
// producer active.
func (l *List[T]) PopHead() (T, bool) {
	p := l.head.Load()
	if p == nil {
		var zero T
		return zero, false
	}
	l.head.Store(p.next)
	return p.item, true
}

// PopTail walks to the end and unlinks the oldest-pushed item. O(n), and
// approximate if a push lands while the walk is in flight: the single
// designated consumer may miss the true tail by a step, which retention
// trimming tolerates.
func (l *List[T]) PopTail() (T, bool) {
	var prev *node[T]
	p := l.head.Load()
	if p == nil {
		var zero T
		return zero, false
	}
	for p.next != nil {
		prev = p
		p = p.next
	}
	if prev == nil {
		// p is still the head unless a push raced in; losing that race
		// leaves the new head intact and drops only p.
		l.head.CompareAndSwap(p, nil)
	} else {
		prev.next = nil
	}
	return p.item, true
}

// Reverse relinks the nodes in place so the oldest-pushed item becomes the
// head. It must only run while no producer is active.
func (l *List[T]) Reverse() {
	var prev *node[T]
	p := l.head.Load()
	for p != nil {
		next := p.next
		p.next = prev
		prev = p
		p = next
	}
	l.head.Store(prev)
}

// Clear unconditionally drops every node.
func (l *List[T]) Clear() {
	l.head.Store(nil)
}
