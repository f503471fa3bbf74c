package set

import "gitlab.com/kyle_anderson/seqset/pkg/relation"

/* Upper bound on the capacity reserved up front for a combination result. */
const maxReservedCombinations = 1 << 12

/*
Calls visit with every k-element selection of the positions [0, n), in
lexicographic order. The indices slice is reused between calls, so visit must
not retain it.
*/
func forEachCombination(n, k int, visit func(indices []int)) error {
	if k < 0 || k > n {
		return &ErrOutOfRange{K: k, Size: n}
	}
	counters := make([]int, k)
	for i := range counters {
		counters[i] = i
	}
	for {
		visit(counters)
		if !advanceCounters(counters, n) {
			return nil
		}
	}
}

/*
Moves to the next selection: bumps the rightmost counter that still has room
and resets every counter after it to consecutive successors.
Returns false once the last selection has been visited.
*/
func advanceCounters(counters []int, n int) bool {
	k := len(counters)
	i := k - 1
	/* Counter i is at its limit when the counters after it can no longer fit. */
	for i >= 0 && counters[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	counters[i]++
	for j := i + 1; j < k; j++ {
		counters[j] = counters[j-1] + 1
	}
	return true
}

/* Returns C(n, k), saturating at limit. */
func binomial(n, k, limit int) int {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	result := 1
	for i := 1; i <= k; i++ {
		/* Exact at every step: result is C(n-k+i-1, i-1) before the multiply. */
		result = result * (n - k + i) / i
		if result >= limit {
			return limit
		}
	}
	return result
}

/*
Combinations returns every selection of k elements of s by position, in
lexicographic position order. Selections are not merged even when their contents
compare equal, so the result always holds C(s.Len(), k) sets.
Fails with *ErrOutOfRange when k is negative or exceeds s.Len().
*/
func Combinations[T any, E relation.Equality[T]](s *Unordered[T, E], k int) (*Unordered[*Unordered[T, E], Equality[T, E]], error) {
	out := &Unordered[*Unordered[T, E], Equality[T, E]]{}
	out.elems = make([]*Unordered[T, E], 0, binomial(s.Len(), k, maxReservedCombinations))
	err := forEachCombination(s.Len(), k, func(indices []int) {
		sub := &Unordered[T, E]{store[T, E]{make([]T, 0, k)}}
		for _, i := range indices {
			sub.InsertDuplicate(cloneElem(s.elems[i]))
		}
		out.InsertDuplicate(sub)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* OrderedCombinations is Combinations for Ordered sets; every selection is itself sorted. */
func OrderedCombinations[T any, O relation.Ordering[T]](s *Ordered[T, O], k int) (*Unordered[*Ordered[T, O], OrderedEquality[T, O]], error) {
	out := &Unordered[*Ordered[T, O], OrderedEquality[T, O]]{}
	out.elems = make([]*Ordered[T, O], 0, binomial(s.Len(), k, maxReservedCombinations))
	err := forEachCombination(s.Len(), k, func(indices []int) {
		sub := s.fromElems(make([]T, 0, k))
		for _, i := range indices {
			/* Indices ascend, so appending keeps the selection sorted. */
			sub.elems = append(sub.elems, cloneElem(s.elems[i]))
		}
		out.InsertDuplicate(sub)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
