/*
Provides dense, slice-backed generic sets.

Two variants share one backing store: Unordered keeps insertion order and
compares elements with a pluggable equality relation, Ordered keeps its
elements sorted by a strict weak order and derives equality from it.
Lookups are linear scans, so element types only need to be comparable
through their relation, never hashable.
*/
package set

import "gitlab.com/kyle_anderson/go-utils/pkg/iterator"

type ImmutableSet[T any] interface {
	/* Sets should not return errors while being iterated through. */
	iterator.Iterable[T]
	Contains(T) bool
}

type Set[T any] interface {
	Add(T)
	Remove(T)
	Size() uint
	ImmutableSet[T]
}

/* Calls fn for each element of s until fn returns false. */
func each[T any](s iterator.Iterable[T], fn func(T) bool) {
	iter := s.It()
	defer iter.Close()
	for {
		elem, err := iter.Next()
		switch {
		case err == nil:
		case err.IsDone():
			return
		default:
			/* It is not expected for sets to return real errors during iteration. */
			panic(err)
		}
		if !fn(elem) {
			return
		}
	}
}

/* Performs a set difference, placing the items of the resultant set in `out`. */
func Difference[T any](out Set[T], s1, s2 ImmutableSet[T]) Set[T] {
	each[T](s1, func(elem T) bool {
		if !s2.Contains(elem) {
			out.Add(elem)
		}
		return true
	})
	return out
}

func Union[T any](out Set[T], sets ...ImmutableSet[T]) Set[T] {
	for _, s := range sets {
		each[T](s, func(elem T) bool {
			out.Add(elem)
			return true
		})
	}
	return out
}

/* Places the elements of the first set that every other set also contains in `out`. */
func Intersect[T any](out Set[T], sets ...ImmutableSet[T]) Set[T] {
	if len(sets) == 0 {
		return out
	}
	each[T](sets[0], func(elem T) bool {
		for _, other := range sets[1:] {
			if !other.Contains(elem) {
				return true
			}
		}
		out.Add(elem)
		return true
	})
	return out
}

/* Returns true if every element of s1 is contained in s2. */
func IsSubset[T any](s1, s2 ImmutableSet[T]) (isSubset bool) {
	isSubset = true
	each[T](s1, func(elem T) bool {
		isSubset = s2.Contains(elem)
		return isSubset
	})
	return
}

func Equals[T any](s1, s2 Set[T]) bool {
	return s1.Size() == s2.Size() && IsSubset[T](s1, s2) && IsSubset[T](s2, s1)
}
