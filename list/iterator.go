package list

// Iterator is an iterator over the values of a list, front to back. It can be
// used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    elem := it.Elem()
//	    // do something with elem...
//	}
//
// An Iterator borrows the chain of the list it came from and must only be
// used while that list is live (in particular, not after the list has been
// Released). Copying an Iterator yields an independent cursor at the same
// position; advancing one copy does not affect the other.
type Iterator[T any] struct {
	head  *node[T]
	nelem int
}

// Iterator returns an iterator positioned at the front of the list.
func (l List[T]) Iterator() Iterator[T] {
	return Iterator[T]{l.front, l.length}
}

// Elem returns the value at the current position.
func (it *Iterator[T]) Elem() T {
	return it.head.value
}

// HasElem returns whether the iterator is pointing to a value.
func (it *Iterator[T]) HasElem() bool {
	return it.nelem > 0
}

// Next moves the iterator to the next position. Calling Next on an exhausted
// iterator is a no-op.
func (it *Iterator[T]) Next() {
	if it.nelem == 0 {
		return
	}
	it.head = it.head.next
	it.nelem--
}

// Remaining returns the exact number of values the iterator has yet to
// produce. It starts at the length of the source list and decreases by one
// with each call to Next.
func (it *Iterator[T]) Remaining() int {
	return it.nelem
}
