// Package deque implements a doubly linked deque with O(1) operations at
// both ends, stable element handles and a cursor for interior mutation.
//
// Unlike container/list there is no ring sentinel: the chain is nil
// terminated at both ends and the list header tracks front, back and
// length directly.
package deque

import (
	"fmt"
	"iter"
	"strings"
)

// Elem is a node of a List. An Elem belongs to at most one list at a time.
// Value may be read and written in place while the elem is linked.
type Elem[T any] struct {
	Value T

	prev, next *Elem[T]
	list       *List[T]
}

// Next returns the following elem, or nil at the back.
func (e *Elem[T]) Next() *Elem[T] {
	return e.next
}

// Prev returns the preceding elem, or nil at the front.
func (e *Elem[T]) Prev() *Elem[T] {
	return e.prev
}

type List[T any] struct {
	front, back *Elem[T]
	length      int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// Of builds a list holding vs in order.
func Of[T any](vs ...T) *List[T] {
	l := New[T]()
	for _, v := range vs {
		l.PushBack(v)
	}
	return l
}

// Front returns the first elem, or nil if the list is empty.
func (l *List[T]) Front() *Elem[T] {
	return l.front
}

// Back returns the last elem, or nil if the list is empty.
func (l *List[T]) Back() *Elem[T] {
	return l.back
}

func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *List[T]) PushFront(v T) *Elem[T] {
	e := &Elem[T]{Value: v, list: l}

	if l.front == nil {
		l.front = e
		l.back = e
	} else {
		e.next = l.front
		l.front.prev = e
		l.front = e
	}

	l.length++
	return e
}

func (l *List[T]) PushBack(v T) *Elem[T] {
	e := &Elem[T]{Value: v, list: l}

	if l.back == nil {
		l.front = e
		l.back = e
	} else {
		e.prev = l.back
		l.back.next = e
		l.back = e
	}

	l.length++
	return e
}

// PopFront detaches the first elem and returns its value.
// ok is false if the list is empty.
func (l *List[T]) PopFront() (v T, ok bool) {
	e := l.front
	if e == nil {
		return
	}

	l.front = e.next
	if l.front != nil {
		l.front.prev = nil
	} else {
		l.back = nil
	}

	e.next = nil
	e.list = nil
	l.length--
	return e.Value, true
}

// PopBack detaches the last elem and returns its value.
// ok is false if the list is empty.
func (l *List[T]) PopBack() (v T, ok bool) {
	e := l.back
	if e == nil {
		return
	}

	l.back = e.prev
	if l.back != nil {
		l.back.next = nil
	} else {
		l.front = nil
	}

	e.prev = nil
	e.list = nil
	l.length--
	return e.Value, true
}

// Remove detaches e from the list and returns its value.
// Panics if e belongs to another list. After Remove the elem is free
// and its Next/Prev return nil.
func (l *List[T]) Remove(e *Elem[T]) T {
	if e.list != l {
		panic("deque: elem does not belong to this list")
	}

	p, n := e.prev, e.next

	if p != nil {
		p.next = n
	} else {
		l.front = n
	}

	if n != nil {
		n.prev = p
	} else {
		l.back = p
	}

	e.prev = nil
	e.next = nil
	e.list = nil

	l.length--
	return e.Value
}

// InsertBefore splices a new elem holding v directly before mark.
// Panics if mark belongs to another list.
func (l *List[T]) InsertBefore(v T, mark *Elem[T]) *Elem[T] {
	if mark.list != l {
		panic("deque: elem does not belong to this list")
	}
	if mark.prev == nil {
		return l.PushFront(v)
	}

	e := &Elem[T]{Value: v, list: l, prev: mark.prev, next: mark}
	mark.prev.next = e
	mark.prev = e
	l.length++
	return e
}

// InsertAfter splices a new elem holding v directly after mark.
// Panics if mark belongs to another list.
func (l *List[T]) InsertAfter(v T, mark *Elem[T]) *Elem[T] {
	if mark.list != l {
		panic("deque: elem does not belong to this list")
	}
	if mark.next == nil {
		return l.PushBack(v)
	}

	e := &Elem[T]{Value: v, list: l, prev: mark, next: mark.next}
	mark.next.prev = e
	mark.next = e
	l.length++
	return e
}

// MoveToFront moves an existing elem to the front in O(1).
// Does not change length.
func (l *List[T]) MoveToFront(e *Elem[T]) {
	if e.list != l {
		panic("deque: elem does not belong to this list")
	}

	if l.front == e {
		return
	}

	p, n := e.prev, e.next

	// detach
	p.next = n
	if n != nil {
		n.prev = p
	} else {
		l.back = p
	}

	// attach at front
	e.prev = nil
	e.next = l.front

	l.front.prev = e
	l.front = e
}

// MoveToBack moves an existing elem to the back in O(1).
// Does not change length.
func (l *List[T]) MoveToBack(e *Elem[T]) {
	if e.list != l {
		panic("deque: elem does not belong to this list")
	}

	if l.back == e {
		return
	}

	p, n := e.prev, e.next

	// detach
	if p != nil {
		p.next = n
	} else {
		l.front = n
	}
	n.prev = p

	// attach at back
	e.prev = l.back
	e.next = nil

	l.back.next = e
	l.back = e
}

// Clear detaches every elem, leaving the list empty. Links are severed
// one node per iteration so an elem handle still held by the caller does
// not keep the rest of the chain reachable.
func (l *List[T]) Clear() {
	e := l.front
	for e != nil {
		next := e.next
		e.prev = nil
		e.next = nil
		e.list = nil
		e = next
	}
	l.front = nil
	l.back = nil
	l.length = 0
}

// Clone returns a deep copy: fresh elems holding the same values.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for e := l.front; e != nil; e = e.next {
		c.PushBack(e.Value)
	}
	return c
}

// Values iterates front to back. The list must not be mutated during
// iteration, except through elem handles' Value fields.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.front; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward iterates back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.back; e != nil; e = e.prev {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Drain iterates front to back, detaching each elem as it is yielded.
// Stopping early leaves the remaining elems in the list.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := l.PopFront()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// PushBackAll appends every value of seq in order.
func (l *List[T]) PushBackAll(seq iter.Seq[T]) {
	for v := range seq {
		l.PushBack(v)
	}
}

// AppendTo appends the list's values to dst and returns the result.
func (l *List[T]) AppendTo(dst []T) []T {
	for e := l.front; e != nil; e = e.next {
		dst = append(dst, e.Value)
	}
	return dst
}

// EqualFunc reports whether l and o have the same length and pairwise
// equal values under eq.
func (l *List[T]) EqualFunc(o *List[T], eq func(a, b T) bool) bool {
	if l.length != o.length {
		return false
	}
	b := o.front
	for a := l.front; a != nil; a = a.next {
		if !eq(a.Value, b.Value) {
			return false
		}
		b = b.next
	}
	return true
}

// Equal reports whether a and b have the same length and pairwise equal
// values in order.
func Equal[T comparable](a, b *List[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for e := l.front; e != nil; e = e.next {
		if e != l.front {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", e.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}
