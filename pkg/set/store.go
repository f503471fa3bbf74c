package set

import (
	"gitlab.com/kyle_anderson/go-utils/pkg/iterator"
	"golang.org/x/exp/slices"

	"gitlab.com/kyle_anderson/seqset/pkg/relation"
	"gitlab.com/kyle_anderson/seqset/pkg/render"
)

/*
Dense backing sequence shared by both set variants. Everything here depends only
on the equality relation E; where elements are placed is left to the variant
embedding the store.
*/
type store[T any, E relation.Equality[T]] struct {
	elems []T
}

/* Elements implementing cloner are deep-copied when their set is cloned. */
type cloner[T any] interface {
	Clone() T
}

func cloneElem[T any](v T) T {
	if c, ok := any(v).(cloner[T]); ok {
		return c.Clone()
	}
	return v
}

func cloneElems[T any](elems []T) []T {
	out := make([]T, len(elems))
	for i, v := range elems {
		out[i] = cloneElem(v)
	}
	return out
}

func (s *store[T, E]) equal(a, b T) bool {
	var e E
	return e.Equal(a, b)
}

func (s *store[T, E]) Len() int      { return len(s.elems) }
func (s *store[T, E]) Size() uint    { return uint(len(s.elems)) }
func (s *store[T, E]) IsEmpty() bool { return len(s.elems) == 0 }
func (s *store[T, E]) Clear()        { s.elems = nil }

/* Returns a copy of the elements in iteration order. */
func (s *store[T, E]) Elements() []T {
	return slices.Clone(s.elems)
}

/* Returns the element at position i. Panics if i is out of range. */
func (s *store[T, E]) At(i int) T {
	return s.elems[i]
}

/* Iterates over a snapshot, so mutating the set while iterating is safe. */
func (s *store[T, E]) It() iterator.Iterator[T] {
	return iterator.SliceIterator(s.Elements())
}

/* Returns the position of the first element equal to value, or -1. */
func (s *store[T, E]) Find(value T) int {
	for i, v := range s.elems {
		if s.equal(v, value) {
			return i
		}
	}
	return -1
}

func (s *store[T, E]) Count(value T) (n int) {
	for _, v := range s.elems {
		if s.equal(v, value) {
			n++
		}
	}
	return
}

func (s *store[T, E]) Contains(value T) bool {
	return s.Find(value) >= 0
}

/*
ContainsSet reports whether every element of other has an equal element here.
With strict set, other must also cover this set. Sizes are not compared.
*/
func (s *store[T, E]) ContainsSet(other ImmutableSet[T], strict bool) bool {
	if !IsSubset[T](other, s) {
		return false
	}
	return !strict || IsSubset[T](s, other)
}

func (s *store[T, E]) Covers(other ImmutableSet[T]) bool {
	return s.ContainsSet(other, false)
}

/* Equal reports whether both sets have the same size and contain each other. */
func (s *store[T, E]) Equal(other Set[T]) bool {
	return s.Size() == other.Size() && s.ContainsSet(other, true)
}

func (s *store[T, E]) SubsetEq(other ImmutableSet[T]) bool {
	return IsSubset[T](s, other)
}

/* Subset reports whether this set is a subset of other and other has an element this one lacks. */
func (s *store[T, E]) Subset(other ImmutableSet[T]) bool {
	return s.SubsetEq(other) && !IsSubset[T](other, s)
}

func (s *store[T, E]) SupersetEq(other ImmutableSet[T]) bool {
	return IsSubset[T](other, s)
}

func (s *store[T, E]) Superset(other ImmutableSet[T]) bool {
	return s.SupersetEq(other) && !IsSubset[T](s, other)
}

/* Removes the first element equal to value, returning the number removed. */
func (s *store[T, E]) Erase(value T) int {
	i := s.Find(value)
	if i < 0 {
		return 0
	}
	s.elems = slices.Delete(s.elems, i, i+1)
	return 1
}

/* Removes every element equal to value, returning the number removed. */
func (s *store[T, E]) EraseAll(value T) int {
	before := len(s.elems)
	s.elems = slices.DeleteFunc(s.elems, func(v T) bool { return s.equal(v, value) })
	return before - len(s.elems)
}

func (s *store[T, E]) Remove(value T) {
	s.EraseAll(value)
}

/* Drops every element equal to an earlier one, keeping first occurrences in place. */
func (s *store[T, E]) dedupe() {
	for i := 0; i < len(s.elems); i++ {
		for j := i + 1; j < len(s.elems); {
			if s.equal(s.elems[i], s.elems[j]) {
				s.elems = slices.Delete(s.elems, j, j+1)
			} else {
				j++
			}
		}
	}
}

/* Hands over the backing sequence, leaving the store empty. */
func (s *store[T, E]) take() []T {
	elems := s.elems
	s.elems = nil
	return elems
}

func (s *store[T, E]) String() string {
	return render.Render[T](s, render.Default())
}
