/*
Provides the comparison capabilities used by the set containers.

A relation is a zero-size type passed as a type parameter. The containers
instantiate its zero value and call it, so the choice of relation is resolved
at compile time rather than stored in each container.
*/
package relation

import "golang.org/x/exp/constraints"

/*
Equality decides when two values are the same for set purposes.
Implementations must be symmetric: Equal(a, b) == Equal(b, a).
*/
type Equality[T any] interface {
	Equal(a, b T) bool
}

/*
Ordering is a strict weak order over T. Implementations must be irreflexive,
asymmetric and transitive, and incomparability must be transitive.
*/
type Ordering[T any] interface {
	Less(a, b T) bool
}

/* Equal compares with ==. */
type Equal[T comparable] struct{}

func (Equal[T]) Equal(a, b T) bool { return a == b }

/* Less is the natural ascending order. */
type Less[T constraints.Ordered] struct{}

func (Less[T]) Less(a, b T) bool { return a < b }

/* Greater is the natural descending order. */
type Greater[T constraints.Ordered] struct{}

func (Greater[T]) Less(a, b T) bool { return a > b }

/*
Equivalent derives an equality from an ordering: two values are equal
when neither is less than the other.
*/
type Equivalent[T any, O Ordering[T]] struct{}

func (Equivalent[T, O]) Equal(a, b T) bool {
	var o O
	return !o.Less(a, b) && !o.Less(b, a)
}
