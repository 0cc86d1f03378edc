// Package persist implements an immutable singly linked list with
// structure sharing: Prepend and Tail return new list heads over the
// same nodes, so no operation ever mutates an existing list.
package persist

import "iter"

type node[T any] struct {
	v    T
	next *node[T]
}

// List is a value type. The zero value is the empty list.
type List[T any] struct {
	head   *node[T]
	length int
}

func New[T any]() List[T] {
	return List[T]{}
}

// Of builds a list holding vs in order.
func Of[T any](vs ...T) List[T] {
	l := New[T]()
	for i := len(vs) - 1; i >= 0; i-- {
		l = l.Prepend(vs[i])
	}
	return l
}

func (l List[T]) Len() int {
	return l.length
}

func (l List[T]) IsEmpty() bool {
	return l.length == 0
}

// Prepend returns a new list with v at the front. The receiver is
// unchanged and shares every node with the result.
func (l List[T]) Prepend(v T) List[T] {
	return List[T]{
		head:   &node[T]{v: v, next: l.head},
		length: l.length + 1,
	}
}

// Tail returns the list without its first value. The tail of the empty
// list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return List[T]{}
	}
	return List[T]{head: l.head.next, length: l.length - 1}
}

// Head returns the first value. ok is false if the list is empty.
func (l List[T]) Head() (v T, ok bool) {
	if l.head == nil {
		return
	}
	return l.head.v, true
}

// Values iterates front to back.
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.v) {
				return
			}
		}
	}
}
