package set

import "gitlab.com/kyle_anderson/seqset/pkg/relation"

/*
Unordered is an insertion-ordered set. Two elements are the same when E says so;
Insert keeps at most one element of each equality class.
*/
type Unordered[T any, E relation.Equality[T]] struct {
	store[T, E]
}

var _ Set[int] = (*Unordered[int, relation.Equal[int]])(nil)

func NewUnordered[T any, E relation.Equality[T]](values ...T) *Unordered[T, E] {
	s := &Unordered[T, E]{store[T, E]{make([]T, 0, len(values))}}
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

/* Of builds an Unordered set compared with ==. */
func Of[T comparable](values ...T) *Unordered[T, relation.Equal[T]] {
	return NewUnordered[T, relation.Equal[T]](values...)
}

/* Appends value unless an equal element is already present. */
func (s *Unordered[T, E]) Insert(value T) *Unordered[T, E] {
	if s.Find(value) < 0 {
		s.elems = append(s.elems, value)
	}
	return s
}

/* Appends value even if an equal element is already present. */
func (s *Unordered[T, E]) InsertDuplicate(value T) *Unordered[T, E] {
	s.elems = append(s.elems, value)
	return s
}

func (s *Unordered[T, E]) Add(value T) { s.Insert(value) }

/* Returns an independent copy. Elements with a Clone method are cloned as well. */
func (s *Unordered[T, E]) Clone() *Unordered[T, E] {
	return &Unordered[T, E]{store[T, E]{cloneElems(s.elems)}}
}

/* Moves the contents into a new set, leaving s empty. */
func (s *Unordered[T, E]) Take() *Unordered[T, E] {
	return &Unordered[T, E]{store[T, E]{s.take()}}
}

/* Removes later elements equal to an earlier one. */
func (s *Unordered[T, E]) Unique() *Unordered[T, E] {
	s.dedupe()
	return s
}

func (s *Unordered[T, E]) Union(other ImmutableSet[T]) *Unordered[T, E] {
	return s.Clone().UnionWith(other)
}

/* Inserts every element of other that is not already present, in other's order. */
func (s *Unordered[T, E]) UnionWith(other ImmutableSet[T]) *Unordered[T, E] {
	each[T](other, func(v T) bool {
		s.Insert(v)
		return true
	})
	return s
}

func (s *Unordered[T, E]) Difference(other ImmutableSet[T]) *Unordered[T, E] {
	return s.Clone().DifferenceWith(other)
}

/* Removes every element equal to some element of other. */
func (s *Unordered[T, E]) DifferenceWith(other ImmutableSet[T]) *Unordered[T, E] {
	each[T](other, func(v T) bool {
		s.EraseAll(v)
		return !s.IsEmpty()
	})
	return s
}

/*
Intersection keeps the elements of the smaller operand (s on a tie) that the
larger one contains, in the smaller operand's order.
*/
func (s *Unordered[T, E]) Intersection(other Set[T]) *Unordered[T, E] {
	out := &Unordered[T, E]{store[T, E]{make([]T, 0, min(s.Len(), int(other.Size())))}}
	if s.Size() <= other.Size() {
		for _, v := range s.elems {
			if other.Contains(v) {
				out.elems = append(out.elems, cloneElem(v))
			}
		}
		return out
	}
	/* Elements of other are only distinct under other's relation. */
	each[T](other, func(v T) bool {
		if s.Contains(v) {
			out.Insert(cloneElem(v))
		}
		return true
	})
	return out
}

/* Returns the elements found in exactly one of s and other. */
func (s *Unordered[T, E]) SymmetricDifference(other ImmutableSet[T]) *Unordered[T, E] {
	out := s.Difference(other)
	each[T](other, func(v T) bool {
		if !s.Contains(v) {
			out.Insert(cloneElem(v))
		}
		return true
	})
	return out
}
