package deque

// Cursor points at an elem of a List, or at the ghost slot, a single
// virtual position sitting between back and front. The ghost slot makes
// traversal wrap around: MoveNext from the back lands on the ghost, and
// MoveNext again re-enters at the front.
//
// The cursor borrows the list. Mutating the list other than through the
// cursor itself invalidates the cursor.
type Cursor[T any] struct {
	list *List[T]
	at   *Elem[T] // nil at the ghost slot
	idx  int      // distance from front, valid only when at != nil
}

// NewCursor returns a cursor positioned at the ghost slot.
func (l *List[T]) NewCursor() *Cursor[T] {
	return &Cursor[T]{list: l}
}

// Current returns the elem the cursor points at, or nil at the ghost slot.
func (c *Cursor[T]) Current() *Elem[T] {
	return c.at
}

// Index returns the current elem's distance from the front.
// ok is false at the ghost slot.
func (c *Cursor[T]) Index() (i int, ok bool) {
	if c.at == nil {
		return 0, false
	}
	return c.idx, true
}

// MoveNext advances the cursor one position toward the back. From the
// back it lands on the ghost slot; from the ghost slot it re-enters at
// the front. On an empty list the cursor stays at the ghost slot.
func (c *Cursor[T]) MoveNext() {
	if c.at == nil {
		c.at = c.list.front
		c.idx = 0
		return
	}
	c.at = c.at.next
	c.idx++
}

// MovePrev advances the cursor one position toward the front, with the
// symmetric ghost slot wraparound.
func (c *Cursor[T]) MovePrev() {
	if c.at == nil {
		c.at = c.list.back
		c.idx = c.list.length - 1
		return
	}
	c.at = c.at.prev
	c.idx--
}

// InsertBefore splices a new elem holding v before the cursor's
// position. At the ghost slot this appends at the back.
func (c *Cursor[T]) InsertBefore(v T) *Elem[T] {
	if c.at == nil {
		return c.list.PushBack(v)
	}
	e := c.list.InsertBefore(v, c.at)
	c.idx++
	return e
}

// InsertAfter splices a new elem holding v after the cursor's position.
// At the ghost slot this prepends at the front.
func (c *Cursor[T]) InsertAfter(v T) *Elem[T] {
	if c.at == nil {
		return c.list.PushFront(v)
	}
	return c.list.InsertAfter(v, c.at)
}

// Remove detaches the current elem, returns its value and moves the
// cursor to the elem that followed it (the ghost slot if the removed
// elem was the back). ok is false at the ghost slot.
func (c *Cursor[T]) Remove() (v T, ok bool) {
	if c.at == nil {
		return
	}
	next := c.at.next
	v = c.list.Remove(c.at)
	c.at = next // keeps idx: the follower inherits the removed elem's index
	return v, true
}
