// Package queue implements a singly linked FIFO queue with a tail
// pointer for O(1) push at the back.
package queue

import "iter"

type node[T any] struct {
	v    T
	next *node[T]
}

type Queue[T any] struct {
	head, tail *node[T]
	length     int
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Len() int {
	return q.length
}

func (q *Queue[T]) IsEmpty() bool {
	return q.length == 0
}

// Push appends v at the back.
func (q *Queue[T]) Push(v T) {
	n := &node[T]{v: v}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++
}

// Pop removes and returns the value at the front.
// ok is false if the queue is empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	n := q.head
	if n == nil {
		return
	}
	q.head = n.next
	if q.head == nil {
		// no node left, reset tail too
		q.tail = nil
	}
	n.next = nil
	q.length--
	return n.v, true
}

// Peek returns a pointer to the front value for in-place access,
// or nil if the queue is empty.
func (q *Queue[T]) Peek() *T {
	if q.head == nil {
		return nil
	}
	return &q.head.v
}

// Clear drops every node, one link per iteration.
func (q *Queue[T]) Clear() {
	n := q.head
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	q.head = nil
	q.tail = nil
	q.length = 0
}

// Values iterates front to back without consuming the queue.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.v) {
				return
			}
		}
	}
}

// Drain pops values front to back as it is iterated. Stopping early
// leaves the rest of the queue in place.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
