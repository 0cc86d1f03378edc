package queue

import (
	"slices"
	"testing"
)

func Test_queue_pushAndPop(t *testing.T) {
	q := New[int]()

	if _, ok := q.Pop(); ok {
		t.Fatal("pop on empty queue returned a value")
	}

	q.Push(1)
	q.Push(2)
	q.Push(3)

	if v, _ := q.Pop(); v != 1 {
		t.Fatalf("want 1, got %d", v)
	}
	if v, _ := q.Pop(); v != 2 {
		t.Fatalf("want 2, got %d", v)
	}

	q.Push(4)
	q.Push(5)

	if v, _ := q.Pop(); v != 3 {
		t.Fatalf("want 3, got %d", v)
	}
	if v, _ := q.Pop(); v != 4 {
		t.Fatalf("want 4, got %d", v)
	}
	if v, _ := q.Pop(); v != 5 {
		t.Fatalf("want 5, got %d", v)
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("pop on exhausted queue returned a value")
	}

	// Check the exhaustion case fixed the tail pointer right
	q.Push(6)
	q.Push(7)
	if v, _ := q.Pop(); v != 6 {
		t.Fatalf("want 6, got %d", v)
	}
	if v, _ := q.Pop(); v != 7 {
		t.Fatalf("want 7, got %d", v)
	}
}

func Test_queue_peekAndIterate(t *testing.T) {
	q := New[int]()
	if q.Peek() != nil {
		t.Fatal("peek on empty queue must be nil")
	}

	q.Push(3)
	q.Push(4)
	*q.Peek() *= 10

	var got []int
	for v := range q.Values() {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{30, 4}) {
		t.Fatalf("unexpected order %v", got)
	}
	if q.Len() != 2 {
		t.Fatal("Values must not consume the queue")
	}

	got = got[:0]
	for v := range q.Drain() {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{30, 4}) || !q.IsEmpty() {
		t.Fatalf("unexpected drain %v, len %d", got, q.Len())
	}
}

func Test_queue_largeClear(t *testing.T) {
	const n = 100_000
	q := New[int]()
	for i := 0; i < n; i++ {
		q.Push(i)
	}
	q.Clear()
	if !q.IsEmpty() {
		t.Fatal("clear left nodes behind")
	}
	q.Push(1)
	if v, _ := q.Pop(); v != 1 {
		t.Fatal("queue unusable after clear")
	}
}
