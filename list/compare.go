package list

import (
	"cmp"

	"github.com/contain-rs/cons-list/hash"
)

// Equal reports whether a and b have the same length and equal values at
// every position, comparing front to back and stopping at the first
// difference. Its negation is exactly "not equal"; there is no separate
// inequality protocol.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares values with eq.
func EqualFunc[T, U any](a List[T], b List[U], eq func(T, U) bool) bool {
	if a.length != b.length {
		return false
	}
	x, y := a.front, b.front
	for x != nil {
		if !eq(x.value, y.value) {
			return false
		}
		x, y = x.next, y.next
	}
	return true
}

// Compare compares a and b lexicographically, front to back: the first
// unequal pair of values decides the order, and when one list is a prefix of
// the other, the shorter list comes first. Following the convention of
// strings.Compare, ord is -1 if a is less than b, 0 if they are equal, and +1
// if a is greater than b.
//
// ok is false when some compared pair of values admits no order (for
// floating-point element types, when either value is NaN). No order holds
// between the lists then: a is neither less than, equal to, greater than, nor
// less-or-greater than b, and ord is meaningless.
func Compare[T cmp.Ordered](a, b List[T]) (ord int, ok bool) {
	return CompareFunc(a, b, compareOrdered[T])
}

// CompareFunc is like Compare, but compares value pairs with cmp, which must
// report the order of its two arguments the same way Compare reports the
// order of two lists.
func CompareFunc[T, U any](a List[T], b List[U], cmp func(T, U) (int, bool)) (ord int, ok bool) {
	x, y := a.front, b.front
	for {
		switch {
		case x == nil && y == nil:
			return 0, true
		case x == nil:
			return -1, true
		case y == nil:
			return 1, true
		}
		ord, ok := cmp(x.value, y.value)
		if !ok {
			return 0, false
		}
		if ord != 0 {
			return ord, true
		}
		x, y = x.next, y.next
	}
}

func compareOrdered[T cmp.Ordered](x, y T) (int, bool) {
	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	case x == y:
		return 0, true
	}
	// Neither order holds and the values are not equal: a NaN is involved.
	return 0, false
}

// Hash returns a hash of the list, folding in the length and then each
// value's hash from front to back. Lists that are Equal hash identically;
// lists differing in length, order or content hash differently with high
// probability.
func Hash[T any](l List[T], hashElem func(T) uint32) uint32 {
	acc := hash.DJB(hash.UInt64(uint64(l.length)))
	for n := l.front; n != nil; n = n.next {
		acc = hash.DJBCombine(acc, hashElem(n.value))
	}
	return acc
}
