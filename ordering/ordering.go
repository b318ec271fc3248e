// Package ordering composes comparators from key extractors.
package ordering

import (
	"cmp"
	"slices"
)

// Comparator returns a negative number when a sorts before b, a positive
// number when it sorts after and zero when they tie.
type Comparator[T any] func(a, b T) int

// Key returns a Comparator ordering by the value extract returns, ascending.
func Key[T any, K cmp.Ordered](extract func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(extract(a), extract(b))
	}
}

// By returns a Comparator that consults keys in sequence; the first non-zero result wins.
func By[T any](keys ...Comparator[T]) Comparator[T] {
	chain := slices.Clone(keys)

	return func(a, b T) int {
		for _, key := range chain {
			if result := key(a, b); result != 0 {
				return result
			}
		}

		return 0
	}
}

// Reverse inverts c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Sort sorts items in place with c, keeping the relative order of ties.
func Sort[T any](items []T, c Comparator[T]) {
	slices.SortStableFunc(items, c)
}

// Sorted returns a sorted copy of items.
func Sorted[T any](items []T, c Comparator[T]) []T {
	out := slices.Clone(items)
	Sort(out, c)

	return out
}
