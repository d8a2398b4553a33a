// Package deque provides a small double-ended queue.
package deque

// Deque is a double-ended queue. The front is index 0 of Items.
type Deque[T any] struct {
	items []T
}

// New creates a deque holding items, front first. The slice is copied.
func New[T any](items ...T) *Deque[T] {
	d := &Deque[T]{items: make([]T, 0, len(items))}
	d.items = append(d.items, items...)
	return d
}

// PushFront adds value at the front.
func (d *Deque[T]) PushFront(value T) {
	var zero T
	d.items = append(d.items, zero)
	copy(d.items[1:], d.items)
	d.items[0] = value
}

// PushBack adds value at the back.
func (d *Deque[T]) PushBack(value T) {
	d.items = append(d.items, value)
}

// PopFront removes and returns the front value.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d == nil || len(d.items) == 0 {
		return zero, false
	}
	value := d.items[0]
	d.items[0] = zero
	d.items = d.items[1:]
	return value, true
}

// PopBack removes and returns the back value.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d == nil || len(d.items) == 0 {
		return zero, false
	}
	last := len(d.items) - 1
	value := d.items[last]
	d.items[last] = zero
	d.items = d.items[:last]
	return value, true
}

// Front returns the front value without removing it.
func (d *Deque[T]) Front() (T, bool) {
	var zero T
	if d == nil || len(d.items) == 0 {
		return zero, false
	}
	return d.items[0], true
}

// Len reports the number of values held.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// Items returns a copy of the values, front first.
func (d *Deque[T]) Items() []T {
	if d == nil {
		return nil
	}
	out := make([]T, len(d.items))
	copy(out, d.items)
	return out
}

// Clone returns an independent copy.
func (d *Deque[T]) Clone() *Deque[T] {
	return New(d.Items()...)
}
