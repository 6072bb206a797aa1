// Package list implements a persistent singly linked list, as seen in
// basically every functional language.
package list

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// List is a persistent list. The zero value is a valid empty list. Methods
// that appear to modify a list instead return a new List sharing nodes with
// the old one; no node is ever written to after construction. Sharing makes
// reads through any number of handles safe within a goroutine, but the owner
// counts used by Clone and Release are plain ints, so handles must not be
// cloned or released from multiple goroutines without external
// synchronization.
type List[T any] struct {
	front  *node[T]
	length int
}

// node is one cell of a chain. refs counts the owners of the node: List
// handles whose front it is, plus predecessor nodes whose next it is. Apart
// from the count, a node is written only at construction time and by Release
// once no other owner remains.
type node[T any] struct {
	value T
	next  *node[T]
	refs  int
}

// New returns an empty list.
func New[T any]() List[T] {
	return List[T]{}
}

// FromSlice builds a list by appending each element of xs in order. Append
// inserts at the front, so the front-to-back order of the result is the
// reverse of xs.
func FromSlice[T any](xs []T) List[T] {
	l := List[T]{}
	for _, x := range xs {
		l = l.pushFront(x)
	}
	return l
}

// Append returns a new list with val inserted at the front. The receiver is
// unchanged; both lists share every node below the new front.
func (l List[T]) Append(val T) List[T] {
	if l.front != nil {
		l.front.refs++
	}
	return l.pushFront(val)
}

// pushFront wraps val around the receiver's chain, moving the receiver's
// owner registration on its front to the new node's next link. The receiver
// must not be used again afterwards; build loops that overwrite their handle
// on every step use this so that interior nodes end up with exactly one
// owner.
func (l List[T]) pushFront(val T) List[T] {
	return List[T]{&node[T]{value: val, next: l.front, refs: 1}, l.length + 1}
}

// Head returns the first value in the list, if it exists. The second return
// value indicates whether it does.
func (l List[T]) Head() (T, bool) {
	if l.front == nil {
		var zero T
		return zero, false
	}
	return l.front.value, true
}

// Tail returns the list after the first value.
func (l List[T]) Tail() List[T] {
	return l.TailN(1)
}

// TailN returns the list after the first n values. If n >= l.Len(), the
// result is the empty list; if n <= 0, it is a clone of the whole list.
func (l List[T]) TailN(n int) List[T] {
	if n >= l.length {
		return List[T]{}
	}
	if n <= 0 {
		return l.Clone()
	}
	front := l.front
	for i := 0; i < n; i++ {
		front = front.next
	}
	front.refs++
	return List[T]{front, l.length - n}
}

// Last returns the final value in the list, if it exists, by walking the
// whole chain.
func (l List[T]) Last() (T, bool) {
	if l.front == nil {
		var zero T
		return zero, false
	}
	n := l.front
	for n.next != nil {
		n = n.next
	}
	return n.value, true
}

// LastN returns the list of the last n values. If n >= l.Len(), the result is
// a clone of the whole list.
func (l List[T]) LastN(n int) List[T] {
	if n >= l.length {
		return l.Clone()
	}
	return l.TailN(l.length - n)
}

// Len returns the number of values in the list.
func (l List[T]) Len() int {
	return l.length
}

// Empty reports whether the list has no values.
func (l List[T]) Empty() bool {
	return l.length == 0
}

// Clone returns a new handle for the same list, sharing the entire chain.
// Clone a handle instead of copying it by assignment whenever both copies may
// be Released independently; assignment copies do not register a new owner.
func (l List[T]) Clone() List[T] {
	if l.front != nil {
		l.front.refs++
	}
	return l
}

// Each calls f on each value of the list, front to back.
func (l List[T]) Each(f func(T)) {
	for n := l.front; n != nil; n = n.next {
		f(n.value)
	}
}

// Reverse returns a list with the values in the opposite order. The result is
// a fresh chain sharing no nodes with l.
func (l List[T]) Reverse() List[T] {
	out := List[T]{}
	for n := l.front; n != nil; n = n.next {
		out = out.pushFront(n.value)
	}
	return out
}

// Release gives up the handle's ownership of its chain and resets the handle
// to empty. Nodes owned by this handle alone are unlinked one at a time, with
// their values zeroed so that whatever they reference can be collected
// without waiting for the rest of the chain; the walk stops at the first node
// some other handle or list still owns, whose release is that owner's job.
// The walk is a loop, so releasing a chain of any length uses constant
// control-stack depth.
//
// Release is optional: a handle that is simply dropped is collected by the
// garbage collector as usual. Release at most once per handle, and only a
// handle produced by New, FromSlice, Append, Tail, TailN, LastN, Reverse or
// Clone. A loop like l = l.Append(x) abandons the superseded handle along
// with its owner registration, which later makes Release stop at the node
// that handle owned; Release the old handle before overwriting it when the
// chain should stay deterministically reclaimable.
func (l *List[T]) Release() {
	front := l.front
	l.front = nil
	l.length = 0
	for front != nil {
		front.refs--
		if front.refs > 0 {
			return
		}
		next := front.next
		var zero T
		front.value = zero
		front.next = nil
		front = next
	}
}

// String renders the list as [e0, e1, ..., en] from front to back, or [] when
// empty.
func (l List[T]) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for n := l.front; n != nil; n = n.next {
		if n != l.front {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v", n.value)
	}
	buf.WriteByte(']')
	return buf.String()
}

// MarshalJSON renders the list as a JSON array, front to back.
func (l List[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	index := 0
	for n := l.front; n != nil; n = n.next {
		if index > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := json.Marshal(n.value)
		if err != nil {
			return nil, &marshalError{index, err}
		}
		buf.Write(elemBytes)
		index++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

type marshalError struct {
	index int
	cause error
}

func (err *marshalError) Error() string {
	return fmt.Sprintf("element %d: %s", err.index, err.cause)
}
