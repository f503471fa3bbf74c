package relation

/*
IsSymmetric reports whether E is symmetric over every pair drawn from samples.
This is a probe for callers writing their own relations; a true result over a
sample is evidence, not proof.
*/
func IsSymmetric[T any, E Equality[T]](samples ...T) bool {
	var e E
	for _, a := range samples {
		for _, b := range samples {
			if e.Equal(a, b) != e.Equal(b, a) {
				return false
			}
		}
	}
	return true
}

/*
IsStrictWeakOrder reports whether O behaves as a strict weak order over samples:
irreflexive, asymmetric, transitive, with transitive incomparability.
*/
func IsStrictWeakOrder[T any, O Ordering[T]](samples ...T) bool {
	var o O
	var eq Equivalent[T, O]
	for _, a := range samples {
		if o.Less(a, a) {
			return false
		}
		for _, b := range samples {
			if o.Less(a, b) && o.Less(b, a) {
				return false
			}
			for _, c := range samples {
				if o.Less(a, b) && o.Less(b, c) && !o.Less(a, c) {
					return false
				}
				if eq.Equal(a, b) && eq.Equal(b, c) && !eq.Equal(a, c) {
					return false
				}
			}
		}
	}
	return true
}
