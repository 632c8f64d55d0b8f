package iterator

// Reverse adapts a bidirectional position to traverse a range backwards.
//
// A reverse iterator constructed from base refers to the element just before
// base, i.e. Reverse(end) denotes the last element and Reverse(begin) is the
// end of the reversed range.
type Reverse[I Bidirectional[I]] struct {
	base I
}

// MakeReverse wraps base.
func MakeReverse[I Bidirectional[I]](base I) Reverse[I] {
	return Reverse[I]{base: base}
}

// Base returns the underlying position.
func (r Reverse[I]) Base() I {
	return r.base
}

// Current returns the forward position of the element r refers to.
func (r Reverse[I]) Current() I {
	return r.base.Prev()
}

// Next moves towards the beginning of the underlying range.
func (r Reverse[I]) Next() Reverse[I] {
	return Reverse[I]{base: r.base.Prev()}
}

// Prev moves towards the end of the underlying range.
func (r Reverse[I]) Prev() Reverse[I] {
	return Reverse[I]{base: r.base.Next()}
}

// Equal compares the underlying positions.
func (r Reverse[I]) Equal(other Reverse[I]) bool {
	return r.base.Equal(other.base)
}
