package containers

import (
	"errors"
	"math/rand"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/containers/bst"
	"github.com/npillmayer/containers/iterator"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mapKeys[K, V any](m *Map[K, V]) []K {
	var keys []K
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

func intMap(t *testing.T, keys ...int) *Map[int, string] {
	t.Helper()
	m := NewMap[int, string]()
	for _, k := range keys {
		if _, _, err := m.Insert(k, ""); err != nil {
			t.Fatalf("insert %d failed: %v", k, err)
		}
	}
	return m
}

func TestMapScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	m := intMap(t, 5, 3, 8, 1, 4, 7, 9)
	if got := mapKeys(m); !slices.Equal(got, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Fatalf("unexpected order: %v", got)
	}
	if n := m.EraseKey(5); n != 1 {
		t.Fatalf("expected one entry erased, got %d", n)
	}
	if got := mapKeys(m); !slices.Equal(got, []int{1, 3, 4, 7, 8, 9}) {
		t.Fatalf("unexpected order after erase: %v", got)
	}
	if err := m.Tree().Check(); err != nil {
		t.Fatalf("tree check failed: %v", err)
	}
}

func TestMapInsertAndIndex(t *testing.T) {
	m := NewMap[string, int]()
	it, ok, err := m.Insert("a", 1)
	if err != nil || !ok || it.Key() != "a" {
		t.Fatalf("unexpected insert result: ok=%v err=%v", ok, err)
	}
	it, ok, _ = m.Insert("a", 2)
	if ok || it.Value() != 1 {
		t.Fatalf("duplicate insert must keep the existing value")
	}
	p, err := m.Index("b")
	if err != nil || *p != 0 || m.Len() != 2 {
		t.Fatalf("expected Index to insert a zero value")
	}
	*p = 42
	if v, err := m.At("b"); err != nil || v != 42 {
		t.Fatalf("At(b) = %d, %v", v, err)
	}
	if _, err := m.At("z"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if m.Count("a") != 1 || m.Count("z") != 0 {
		t.Fatalf("unexpected counts")
	}
	if it, err := m.InsertHint(m.End(), "c", 3); err != nil || it.Key() != "c" {
		t.Fatalf("InsertHint failed: %v", err)
	}
}

func TestMapEraseVariants(t *testing.T) {
	m := intMap(t, 1, 2, 3, 4, 5, 6)
	next := m.Erase(m.Find(3))
	if next.Key() != 4 {
		t.Fatalf("expected erase to return the following position, got %d", next.Key())
	}
	if !m.Erase(m.End()).IsEnd() {
		t.Fatalf("expected erasing End to be a no-op")
	}
	last := m.EraseRange(m.Find(2), m.Find(5))
	if last.Key() != 5 {
		t.Fatalf("unexpected position after range erase")
	}
	if got := mapKeys(m); !slices.Equal(got, []int{1, 5, 6}) {
		t.Fatalf("unexpected keys: %v", got)
	}
	if m.EraseKey(42) != 0 {
		t.Fatalf("expected nothing erased for absent key")
	}
	m.EraseRange(m.Begin(), m.End())
	if !m.IsEmpty() || !m.Begin().Equal(m.End()) {
		t.Fatalf("expected empty map")
	}
}

func TestMapBoundsAndEqualRange(t *testing.T) {
	m := intMap(t, 10, 20, 30)
	lo, hi := m.EqualRange(20)
	if lo.Key() != 20 || hi.Key() != 30 || iterator.Distance(lo, hi) != 1 {
		t.Fatalf("unexpected equal range for present key")
	}
	lo, hi = m.EqualRange(25)
	if !lo.Equal(hi) || lo.Key() != 30 {
		t.Fatalf("expected empty equal range for absent key")
	}
	if !m.LowerBound(31).Equal(m.End()) || !m.UpperBound(30).Equal(m.End()) {
		t.Fatalf("expected End beyond the maximum")
	}
}

func TestMapReverseIteration(t *testing.T) {
	m := intMap(t, 2, 1, 3)
	var got []int
	for r := m.RBegin(); !r.Equal(m.REnd()); r = r.Next() {
		got = append(got, r.Current().Key())
	}
	if !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatalf("unexpected reverse order: %v", got)
	}
}

func TestMapCustomComparator(t *testing.T) {
	m, err := NewMapFunc[string, int](func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Insert("Beta", 2)
	m.Insert("alpha", 1)
	if _, ok, _ := m.Insert("ALPHA", 3); ok {
		t.Fatalf("expected equivalent key to be rejected")
	}
	if got := mapKeys(m); !slices.Equal(got, []string{"alpha", "Beta"}) {
		t.Fatalf("unexpected order: %v", got)
	}
	if !m.KeyLess()("a", "B") {
		t.Fatalf("expected KeyLess to expose the comparator")
	}
	if _, err := NewMapFunc[int, int](nil); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestMapCopyIsolation(t *testing.T) {
	m := intMap(t, 5, 3, 8)
	c, err := m.Clone()
	if err != nil {
		t.Fatalf("clone failed: %v", err)
	}
	if !MapsEqual(m, c) {
		t.Fatalf("expected clone to equal the original")
	}
	c.EraseKey(3)
	p, _ := c.Index(8)
	*p = "changed"
	if MapsEqual(m, c) || m.Len() != 3 || m.Find(8).Value() != "" {
		t.Fatalf("mutating the clone must not affect the original")
	}
	other := intMap(t, 100)
	if err := other.Assign(m); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if !MapsEqual(m, other) {
		t.Fatalf("expected assigned map to equal the source")
	}
}

func TestMapSwap(t *testing.T) {
	a, b := intMap(t, 1, 2), intMap(t, 9)
	it := a.Find(2)
	a.Swap(b)
	if got := mapKeys(a); !slices.Equal(got, []int{9}) {
		t.Fatalf("unexpected keys after swap: %v", got)
	}
	if !b.Find(2).Equal(it) {
		t.Fatalf("expected positions to move along with their entries")
	}
}

func TestMapInsertRangeAndAll(t *testing.T) {
	src := intMap(t, 1, 2, 3, 4)
	dst := intMap(t, 3)
	if err := dst.InsertRange(src.Find(2), src.End()); err != nil {
		t.Fatalf("insert range failed: %v", err)
	}
	if got := mapKeys(dst); !slices.Equal(got, []int{2, 3, 4}) {
		t.Fatalf("unexpected keys: %v", got)
	}
	if err := dst.InsertAll(src.All()); err != nil || dst.Len() != 4 {
		t.Fatalf("InsertAll failed: len=%d err=%v", dst.Len(), err)
	}
	less := dst.ValueLess()
	if !less(dst.Begin().Get(), dst.Begin().Next().Get()) {
		t.Fatalf("expected ValueLess to order by key")
	}
}

func TestMapAllocationFailure(t *testing.T) {
	a := alloc.NewTracking[bst.Node[int, int]]()
	cfg := bst.OrderedConfig[int, int]()
	cfg.Allocator = a
	m, err := NewMapWithConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Insert(1, 1)
	a.FailAllocationAfter(0)
	if _, _, err := m.Insert(2, 2); !errors.Is(err, alloc.ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	if _, err := m.Index(3); !errors.Is(err, alloc.ErrAllocation) {
		t.Fatalf("expected ErrAllocation from Index, got %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("failed inserts must not change the map")
	}
	a.FailAllocationAfter(-1)
	m.Dispose()
	if a.Live() != 0 || a.Slots() != 0 {
		t.Fatalf("leak after dispose: live=%d slots=%d", a.Live(), a.Slots())
	}
}

func TestMapAgainstBuiltinMap(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	m := NewMap[int, int]()
	model := make(map[int]int)
	for step := 0; step < 3000; step++ {
		k := r.Intn(200)
		if r.Intn(3) == 0 {
			delete(model, k)
			m.EraseKey(k)
		} else {
			p, err := m.Index(k)
			if err != nil {
				t.Fatalf("index failed: %v", err)
			}
			*p = step
			model[k] = step
		}
	}
	keys := make([]int, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	if got := mapKeys(m); !slices.Equal(got, keys) {
		t.Fatalf("keys differ from model")
	}
	for k, v := range model {
		if got, err := m.At(k); err != nil || got != v {
			t.Fatalf("At(%d) = %d, %v; want %d", k, got, err, v)
		}
	}
	if err := m.Tree().Check(); err != nil {
		t.Fatalf("tree check failed: %v", err)
	}
}
