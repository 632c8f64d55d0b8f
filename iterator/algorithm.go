package iterator

// Equal reports whether [first1, last1) and the range starting at first2
// hold equal values. The second range must be at least as long as the first.
func Equal[I Readable[I, T], T any](first1, last1, first2 I, eq func(a, b T) bool) bool {
	for ; !first1.Equal(last1); first1, first2 = first1.Next(), first2.Next() {
		if !eq(first1.Get(), first2.Get()) {
			return false
		}
	}
	return true
}

// LexicographicalCompare reports whether [first1, last1) orders before
// [first2, last2). A proper prefix orders before the longer range.
func LexicographicalCompare[I Readable[I, T], T any](first1, last1, first2, last2 I, less func(a, b T) bool) bool {
	for ; !first2.Equal(last2); first1, first2 = first1.Next(), first2.Next() {
		if first1.Equal(last1) {
			return true
		}
		a, b := first1.Get(), first2.Get()
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
	}
	return false
}
