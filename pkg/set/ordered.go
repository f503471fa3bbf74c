package set

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"gitlab.com/kyle_anderson/seqset/pkg/relation"
)

/*
Ordered keeps its elements sorted by O at all times. Equality is derived from
the ordering: two elements are the same when neither is less than the other,
so equivalent but distinct values count as duplicates.
*/
type Ordered[T any, O relation.Ordering[T]] struct {
	store[T, relation.Equivalent[T, O]]
}

var _ Set[int] = (*Ordered[int, relation.Less[int]])(nil)

func NewOrdered[T any, O relation.Ordering[T]](values ...T) *Ordered[T, O] {
	s := &Ordered[T, O]{}
	s.elems = make([]T, 0, len(values))
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

/* Sorted builds an Ordered set in ascending natural order. */
func Sorted[T constraints.Ordered](values ...T) *Ordered[T, relation.Less[T]] {
	return NewOrdered[T, relation.Less[T]](values...)
}

func (s *Ordered[T, O]) fromElems(elems []T) *Ordered[T, O] {
	out := &Ordered[T, O]{}
	out.elems = elems
	return out
}

/* Returns the first position whose element is not less than value. */
func (s *Ordered[T, O]) position(value T) int {
	var o O
	i := 0
	for i < len(s.elems) && o.Less(s.elems[i], value) {
		i++
	}
	return i
}

/*
Inserts value at its sorted position unless an equivalent element is present.
Since the elements are sorted, the only candidate equivalent is the one at the
insertion point.
*/
func (s *Ordered[T, O]) Insert(value T) *Ordered[T, O] {
	var o O
	i := s.position(value)
	if i < len(s.elems) && !o.Less(value, s.elems[i]) {
		return s
	}
	s.elems = slices.Insert(s.elems, i, value)
	return s
}

/* Inserts value at its sorted position, ahead of any equivalent elements. */
func (s *Ordered[T, O]) InsertDuplicate(value T) *Ordered[T, O] {
	s.elems = slices.Insert(s.elems, s.position(value), value)
	return s
}

func (s *Ordered[T, O]) Add(value T) { s.Insert(value) }

func (s *Ordered[T, O]) Clone() *Ordered[T, O] {
	return s.fromElems(cloneElems(s.elems))
}

/* Moves the contents into a new set, leaving s empty. */
func (s *Ordered[T, O]) Take() *Ordered[T, O] {
	return s.fromElems(s.take())
}

func (s *Ordered[T, O]) Unique() *Ordered[T, O] {
	s.dedupe()
	return s
}

func (s *Ordered[T, O]) Union(other ImmutableSet[T]) *Ordered[T, O] {
	return s.Clone().UnionWith(other)
}

func (s *Ordered[T, O]) UnionWith(other ImmutableSet[T]) *Ordered[T, O] {
	each[T](other, func(v T) bool {
		s.Insert(v)
		return true
	})
	return s
}

func (s *Ordered[T, O]) Difference(other ImmutableSet[T]) *Ordered[T, O] {
	return s.Clone().DifferenceWith(other)
}

/* Removes every element equivalent to some element of other. Removal keeps the order. */
func (s *Ordered[T, O]) DifferenceWith(other ImmutableSet[T]) *Ordered[T, O] {
	each[T](other, func(v T) bool {
		s.EraseAll(v)
		return !s.IsEmpty()
	})
	return s
}

/* Keeps the elements of the smaller operand that the larger one contains, sorted. */
func (s *Ordered[T, O]) Intersection(other Set[T]) *Ordered[T, O] {
	out := s.fromElems(make([]T, 0, min(s.Len(), int(other.Size()))))
	if s.Size() <= other.Size() {
		/* Filtering a sorted sequence keeps it sorted. */
		for _, v := range s.elems {
			if other.Contains(v) {
				out.elems = append(out.elems, cloneElem(v))
			}
		}
		return out
	}
	each[T](other, func(v T) bool {
		if s.Contains(v) {
			out.Insert(cloneElem(v))
		}
		return true
	})
	return out
}

func (s *Ordered[T, O]) SymmetricDifference(other ImmutableSet[T]) *Ordered[T, O] {
	out := s.Difference(other)
	each[T](other, func(v T) bool {
		if !s.Contains(v) {
			out.Insert(cloneElem(v))
		}
		return true
	})
	return out
}
