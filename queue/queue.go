// SPDX-License-Identifier: MIT

// Package queue provides a generic, unbounded FIFO queue.
//
// The queue is not safe for concurrent use; callers that share one across
// goroutines must synchronize externally.
package queue

// compactThreshold is the number of consumed head slots after which Pop
// copies the live tail to the front of a fresh buffer.
const compactThreshold = 64

// Queue is a slice-backed FIFO. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	items []T // items[head:] are live, oldest first
	head  int // index of the oldest live item
}

// New returns an empty queue with room for capacity items before growing.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Push appends v at the tail.
// Complexity: amortized O(1).
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Pop removes and returns the oldest item, or ErrEmpty.
// Complexity: amortized O(1).
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.Len() == 0 {
		return zero, ErrEmpty
	}
	v := q.items[q.head]
	q.items[q.head] = zero // drop the reference for the GC
	q.head++

	switch {
	case q.head == len(q.items):
		// drained: reuse the buffer from the start
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.items):
		live := make([]T, len(q.items)-q.head, cap(q.items)/2+1)
		copy(live, q.items[q.head:])
		q.items = live
		q.head = 0
	}

	return v, nil
}

// Peek returns the oldest item without removing it, or ErrEmpty.
func (q *Queue[T]) Peek() (T, error) {
	if q.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.items[q.head], nil
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether Len() == 0.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }
