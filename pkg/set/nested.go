package set

import "gitlab.com/kyle_anderson/seqset/pkg/relation"

/* Relations over sets themselves, so that sets can be elements of other sets. */

/* Equality compares Unordered sets by size and mutual containment. */
type Equality[T any, E relation.Equality[T]] struct{}

func (Equality[T, E]) Equal(a, b *Unordered[T, E]) bool { return a.Equal(b) }

/*
Lexicographic orders Unordered sets by size, then element by element in
iteration order using O. Sets holding the same elements in a different order
are therefore distinct under it.
*/
type Lexicographic[T any, E relation.Equality[T], O relation.Ordering[T]] struct{}

func (Lexicographic[T, E, O]) Less(a, b *Unordered[T, E]) bool {
	return lexicographicLess[T, O](a.elems, b.elems)
}

type OrderedEquality[T any, O relation.Ordering[T]] struct{}

func (OrderedEquality[T, O]) Equal(a, b *Ordered[T, O]) bool { return a.Equal(b) }

/* OrderedLexicographic orders Ordered sets by size, then element by element using O. */
type OrderedLexicographic[T any, O relation.Ordering[T]] struct{}

func (OrderedLexicographic[T, O]) Less(a, b *Ordered[T, O]) bool {
	return lexicographicLess[T, O](a.elems, b.elems)
}

func lexicographicLess[T any, O relation.Ordering[T]](a, b []T) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	var o O
	for i := range a {
		switch {
		case o.Less(a[i], b[i]):
			return true
		case o.Less(b[i], a[i]):
			return false
		}
	}
	return false
}

/* OfSets builds an Unordered set whose elements are the given sets. */
func OfSets[T any, E relation.Equality[T]](sets ...*Unordered[T, E]) *Unordered[*Unordered[T, E], Equality[T, E]] {
	return NewUnordered[*Unordered[T, E], Equality[T, E]](sets...)
}

/*
CartesianProduct pairs every element of s with every element of other. Each pair
is itself an Unordered set, so {a, b} and {b, a} are the same pair and a pair of
equal elements collapses to a single element.
*/
func CartesianProduct[T any, E relation.Equality[T]](s *Unordered[T, E], other ImmutableSet[T]) *Unordered[*Unordered[T, E], Equality[T, E]] {
	out := NewUnordered[*Unordered[T, E], Equality[T, E]]()
	for _, a := range s.elems {
		each[T](other, func(b T) bool {
			out.Insert(NewUnordered[T, E](cloneElem(a), cloneElem(b)))
			return true
		})
	}
	return out
}

/* OrderedCartesianProduct is CartesianProduct for Ordered sets; every pair is sorted. */
func OrderedCartesianProduct[T any, O relation.Ordering[T]](s *Ordered[T, O], other ImmutableSet[T]) *Unordered[*Ordered[T, O], OrderedEquality[T, O]] {
	out := NewUnordered[*Ordered[T, O], OrderedEquality[T, O]]()
	for _, a := range s.elems {
		each[T](other, func(b T) bool {
			out.Insert(NewOrdered[T, O](cloneElem(a), cloneElem(b)))
			return true
		})
	}
	return out
}
