// Package queue provides a typed stack/queue over an ef-ds deque.
package queue

import "github.com/ef-ds/deque"

// Q supports both stack (Push/Pop) and queue (Enqueue/Dequeue) access.
// All operations are O(1) amortized.
type Q[T any] struct {
	d *deque.Deque
}

// New creates an empty Q.
func New[T any]() *Q[T] {
	return &Q[T]{d: deque.New()}
}

// Push adds an item to the top of the stack.
func (q *Q[T]) Push(item T) {
	q.d.PushBack(item)
}

// Pop removes and returns the top item of the stack.
func (q *Q[T]) Pop() (T, bool) {
	v, ok := q.d.PopBack()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Enqueue adds an item to the end of the queue.
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the first item of the queue.
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Peek returns the first item of the queue without removing it.
func (q *Q[T]) Peek() (T, bool) {
	v, ok := q.d.Front()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Len returns the number of stored items.
func (q *Q[T]) Len() int {
	return q.d.Len()
}

// Clear removes all items.
func (q *Q[T]) Clear() {
	q.d.Init()
}
