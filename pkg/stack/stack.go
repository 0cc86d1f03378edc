// Package stack implements a singly linked LIFO stack.
package stack

import "iter"

type node[T any] struct {
	v    T
	next *node[T]
}

type Stack[T any] struct {
	head   *node[T]
	length int
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Len() int {
	return s.length
}

func (s *Stack[T]) IsEmpty() bool {
	return s.length == 0
}

func (s *Stack[T]) Push(v T) {
	s.head = &node[T]{v: v, next: s.head}
	s.length++
}

// Pop removes and returns the most recently pushed value.
// ok is false if the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := s.head
	if n == nil {
		return
	}
	s.head = n.next
	n.next = nil
	s.length--
	return n.v, true
}

// Peek returns a pointer to the top value for in-place access,
// or nil if the stack is empty.
func (s *Stack[T]) Peek() *T {
	if s.head == nil {
		return nil
	}
	return &s.head.v
}

// Clear drops every node, one link per iteration.
func (s *Stack[T]) Clear() {
	n := s.head
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	s.head = nil
	s.length = 0
}

// Values iterates top to bottom without consuming the stack.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.v) {
				return
			}
		}
	}
}

// Drain pops values top to bottom as it is iterated. Stopping early
// leaves the rest of the stack in place.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
