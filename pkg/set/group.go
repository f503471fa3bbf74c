/* Provides an immutable set view which is simply a group of sets. */

package set

import "gitlab.com/kyle_anderson/go-utils/pkg/iterator"

/*
Group is a read-only union of its member sets. Each member answers Contains with
its own relation, and It yields every member's elements in turn, so an element
held by several members appears once per member.
*/
type Group[T any] []ImmutableSet[T]

var _ ImmutableSet[int] = Group[int]{}

func (s Group[T]) Contains(elem T) (contained bool) {
	for i := 0; i < len(s) && !contained; i++ {
		contained = s[i].Contains(elem)
	}
	return
}

func (s Group[T]) It() iterator.Iterator[T] {
	return iterator.Flatten[T](
		iterator.Map[ImmutableSet[T]](iterator.SliceIterator([]ImmutableSet[T](s)), func(s ImmutableSet[T]) (iterator.Iterator[T], error) {
			return s.It(), nil
		}),
	)
}
