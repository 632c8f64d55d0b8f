package iterator

import (
	"slices"
	"testing"
)

// listPos is a bidirectional position over a slice, deliberately lacking
// random access.
type listPos struct {
	s []int
	i int
}

func (p listPos) Next() listPos        { return listPos{p.s, p.i + 1} }
func (p listPos) Prev() listPos        { return listPos{p.s, p.i - 1} }
func (p listPos) Equal(o listPos) bool { return p.i == o.i }
func (p listPos) Get() int             { return p.s[p.i] }

// slicePos adds random access to listPos.
type slicePos struct {
	s []int
	i int
}

func (p slicePos) Next() slicePos        { return slicePos{p.s, p.i + 1} }
func (p slicePos) Prev() slicePos        { return slicePos{p.s, p.i - 1} }
func (p slicePos) Equal(o slicePos) bool { return p.i == o.i }
func (p slicePos) Get() int              { return p.s[p.i] }
func (p slicePos) Add(n int) slicePos    { return slicePos{p.s, p.i + n} }
func (p slicePos) Sub(o slicePos) int    { return p.i - o.i }
func (p slicePos) Less(o slicePos) bool  { return p.i < o.i }

func intEq(a, b int) bool   { return a == b }
func intLess(a, b int) bool { return a < b }

func TestDistanceAndAdvanceBidirectional(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	first, last := listPos{s, 0}, listPos{s, len(s)}
	if d := Distance(first, last); d != 5 {
		t.Fatalf("distance = %d, want 5", d)
	}
	it := Advance(first, 3)
	if it.Get() != 4 {
		t.Fatalf("advance(3) -> %d, want 4", it.Get())
	}
	it = Advance(it, -2)
	if it.Get() != 2 {
		t.Fatalf("advance(-2) -> %d, want 2", it.Get())
	}
}

func TestDistanceAndAdvanceRandomAccess(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	first, last := slicePos{s, 0}, slicePos{s, len(s)}
	if d := Distance(first, last); d != 5 {
		t.Fatalf("distance = %d, want 5", d)
	}
	if it := Advance(first, 4); it.Get() != 5 {
		t.Fatalf("advance(4) -> %d, want 5", it.Get())
	}
}

func TestReverseTraversal(t *testing.T) {
	s := []int{1, 2, 3}
	rbegin := MakeReverse(listPos{s, len(s)})
	rend := MakeReverse(listPos{s, 0})
	var got []int
	for r := rbegin; !r.Equal(rend); r = r.Next() {
		got = append(got, r.Current().Get())
	}
	if !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatalf("reverse traversal = %v", got)
	}
	if r := rend.Prev(); r.Current().Get() != 1 {
		t.Fatalf("rend.Prev() should refer to first element")
	}
	if Distance(rbegin, rend) != 3 {
		t.Fatalf("reverse distance should be 3")
	}
}

func TestAll(t *testing.T) {
	s := []int{7, 8, 9}
	var got []int
	for v := range All[listPos, int](listPos{s, 0}, listPos{s, 3}) {
		got = append(got, v)
		if v == 8 {
			break
		}
	}
	if !slices.Equal(got, []int{7, 8}) {
		t.Fatalf("All with early stop = %v", got)
	}
}

func TestEqualAndLexicographicalCompare(t *testing.T) {
	type tc struct {
		a, b []int
		eq   bool
		less bool
	}
	cases := []tc{
		{a: []int{}, b: []int{}, eq: true, less: false},
		{a: []int{1, 2}, b: []int{1, 2}, eq: true, less: false},
		{a: []int{1, 2}, b: []int{1, 3}, eq: false, less: true},
		{a: []int{1}, b: []int{1, 0}, eq: false, less: true},
		{a: []int{2}, b: []int{1, 9}, eq: false, less: false},
	}
	for _, c := range cases {
		a0, a1 := slicePos{c.a, 0}, slicePos{c.a, len(c.a)}
		b0, b1 := slicePos{c.b, 0}, slicePos{c.b, len(c.b)}
		eq := len(c.a) == len(c.b) && Equal(a0, a1, b0, intEq)
		if eq != c.eq {
			t.Errorf("Equal(%v, %v) = %v, want %v", c.a, c.b, eq, c.eq)
		}
		if less := LexicographicalCompare(a0, a1, b0, b1, intLess); less != c.less {
			t.Errorf("Less(%v, %v) = %v, want %v", c.a, c.b, less, c.less)
		}
	}
}
