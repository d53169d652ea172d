// Package queue implements a FIFO ring buffer used for token streams.
package queue

const minSize = 3

// Queue is a growable ring buffer. Capacity is always 2^n, one slot is kept free.
type Queue[T any] struct {
	items      []T
	size       int
	head, tail int
	zero       T
}

func New[T any](items ...T) *Queue[T] {
	result := &Queue[T]{}
	l := len(items)
	result.tail = l
	result.size = computeSize(l)
	result.items = make([]T, result.size+1)
	copy(result.items, items)
	return result
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head == q.tail
}

func (q *Queue[T]) Len() int {
	return (q.tail + q.size + 1 - q.head) & q.size
}

// Items returns queued items in FIFO order. The result may share memory with the queue.
func (q *Queue[T]) Items() []T {
	if q.tail >= q.head {
		return q.items[q.head:q.tail]
	}

	result := make([]T, q.Len())
	n := copy(result, q.items[q.head:])
	copy(result[n:], q.items[:q.tail])
	return result
}

func (q *Queue[T]) Append(item T) *Queue[T] {
	q.items[q.tail] = item
	q.tail = (q.tail + 1) & q.size
	if q.tail == q.head {
		q.grow()
	}
	return q
}

// Front returns the first item without removing it.
func (q *Queue[T]) Front() (T, bool) {
	if q.head == q.tail {
		return q.zero, false
	}

	return q.items[q.head], true
}

// First removes and returns the first item.
func (q *Queue[T]) First() (T, bool) {
	if q.head == q.tail {
		return q.zero, false
	}

	result := q.items[q.head]
	q.items[q.head] = q.zero
	q.head = (q.head + 1) & q.size
	return result, true
}

// computeSize returns the smallest 2^n - 1 that can hold length items plus a free slot.
func computeSize(length int) int {
	if length <= minSize {
		return minSize
	}

	length |= length >> 1
	length |= length >> 2
	length |= length >> 4
	length |= length >> 8
	length |= length >> 16
	return length | length>>32
}

func (q *Queue[T]) grow() {
	items := make([]T, (q.size+1)<<1)
	n := copy(items, q.items[q.head:])
	copy(items[n:], q.items[:q.head])
	q.head = 0
	q.tail = q.size + 1
	q.size = q.size + q.tail
	q.items = items
}
