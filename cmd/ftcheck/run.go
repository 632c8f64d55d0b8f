package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"sort"
	"time"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/containers/bst"
	"github.com/npillmayer/containers/buffer"
)

// Options controls a run of ftcheck.
type Options struct {
	Steps   int    // random operations per check
	Seed    int64  // seed for the operation sequences
	Dotfile string // if set, write the last map's tree in Graphviz format
	Print   bool   // print the last map's tree to stdout
}

// Result is the outcome of a single check.
type Result struct {
	Suite   string
	Name    string
	Steps   int
	Err     error
	Elapsed time.Duration
}

// Passed is true if the check did not find a discrepancy.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Summary counts check results.
type Summary struct {
	Passed, Failed int
	Steps          int
	Elapsed        time.Duration
}

// Add accounts for r.
func (s *Summary) Add(r Result) {
	if r.Passed() {
		s.Passed++
	} else {
		s.Failed++
	}
	s.Steps += r.Steps
	s.Elapsed += r.Elapsed
}

type intMap = containers.Map[int, int]

type check struct {
	suite, name string
	run         func(r *rand.Rand, steps int) (int, *intMap, error)
}

var checks = []check{
	{"map", "random operations", checkMapOperations},
	{"map", "bounds", checkMapBounds},
	{"map", "allocation failure", checkMapAllocationFailure},
	{"map", "copy isolation", checkMapCopy},
	{"vector", "random operations", checkVectorOperations},
	{"vector", "growth", checkVectorGrowth},
	{"vector", "construction failure", checkVectorConstructionFailure},
}

// runChecks executes all checks in sequence, handing every result to
// publish. It returns the map of the last map check, if any.
func runChecks(opts Options, publish func(Result)) *intMap {
	var last *intMap
	for i, c := range checks {
		r := rand.New(rand.NewSource(opts.Seed + int64(i)))
		start := time.Now()
		n, m, err := c.run(r, opts.Steps)
		if m != nil {
			last = m
		}
		tracer().Debugf("check %s/%s: %d steps, err=%v", c.suite, c.name, n, err)
		publish(Result{
			Suite:   c.suite,
			Name:    c.name,
			Steps:   n,
			Err:     err,
			Elapsed: time.Since(start),
		})
	}
	return last
}

// emitTree outputs the tree of m as requested by opts.
func emitTree(opts Options, m *intMap, w io.Writer) error {
	if opts.Print {
		bst.Fprint(w, m.Tree())
	}
	if opts.Dotfile == "" {
		return nil
	}
	f, err := os.Create(opts.Dotfile)
	if err != nil {
		return err
	}
	if err := bst.ToDot(m.Tree(), f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// --- Map checks ------------------------------------------------------------

func newTrackedMap() (*intMap, *alloc.Tracking[bst.Node[int, int]], error) {
	a := alloc.NewTracking[bst.Node[int, int]]()
	cfg := bst.OrderedConfig[int, int]()
	cfg.Allocator = a
	m, err := containers.NewMapWithConfig(cfg)
	return m, a, err
}

// sameAsModel compares the entries of m in iteration order with the sorted
// entries of model.
func sameAsModel(m *intMap, model map[int]int) error {
	if m.Len() != len(model) {
		return fmt.Errorf("map has %d entries, model has %d", m.Len(), len(model))
	}
	keys := make([]int, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	i := 0
	for k, v := range m.All() {
		if k != keys[i] || v != model[k] {
			return fmt.Errorf("entry #%d is (%d,%d), model has (%d,%d)", i, k, v, keys[i], model[keys[i]])
		}
		i++
	}
	return m.Tree().Check()
}

func checkMapOperations(r *rand.Rand, steps int) (int, *intMap, error) {
	m, a, err := newTrackedMap()
	if err != nil {
		return 0, nil, err
	}
	model := make(map[int]int)
	keyrange := steps/4 + 1
	for step := 0; step < steps; step++ {
		k := r.Intn(keyrange)
		switch r.Intn(4) {
		case 0:
			n := m.EraseKey(k)
			if _, ok := model[k]; ok != (n == 1) {
				return step, m, fmt.Errorf("erase of %d removed %d entries", k, n)
			}
			delete(model, k)
		case 1:
			_, inserted, err := m.Insert(k, step)
			if err != nil {
				return step, m, err
			}
			if _, ok := model[k]; ok == inserted {
				return step, m, fmt.Errorf("insert of %d reported inserted=%v", k, inserted)
			}
			if inserted {
				model[k] = step
			}
		case 2:
			p, err := m.Index(k)
			if err != nil {
				return step, m, err
			}
			*p = step
			model[k] = step
		case 3:
			it := m.Find(k)
			v, ok := model[k]
			if it.IsEnd() == ok || (ok && it.Value() != v) {
				return step, m, fmt.Errorf("find of %d disagrees with model", k)
			}
		}
		if step%64 == 0 {
			if err := sameAsModel(m, model); err != nil {
				return step, m, err
			}
		}
	}
	if err := sameAsModel(m, model); err != nil {
		return steps, m, err
	}
	if a.Live() != m.Len()+1 || len(a.Violations()) > 0 {
		return steps, m, fmt.Errorf("allocator reports %d live nodes for %d entries: %v",
			a.Live(), m.Len(), a.Violations())
	}
	return steps, m, nil
}

func checkMapBounds(r *rand.Rand, steps int) (int, *intMap, error) {
	m := containers.NewMap[int, int]()
	var keys []int
	for i := 0; i < steps/8+1; i++ {
		k := r.Intn(steps + 1)
		if _, inserted, _ := m.Insert(k, -k); inserted {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)
	for step := 0; step < steps; step++ {
		k := r.Intn(steps+10) - 5
		lo := sort.SearchInts(keys, k)
		hi := sort.Search(len(keys), func(i int) bool { return keys[i] > k })
		if err := atIndex(m, m.LowerBound(k), keys, lo); err != nil {
			return step, m, fmt.Errorf("lower bound of %d: %w", k, err)
		}
		if err := atIndex(m, m.UpperBound(k), keys, hi); err != nil {
			return step, m, fmt.Errorf("upper bound of %d: %w", k, err)
		}
	}
	return steps, m, nil
}

func atIndex(m *intMap, it containers.MapIterator[int, int], keys []int, i int) error {
	if i == len(keys) {
		if !it.Equal(m.End()) {
			return fmt.Errorf("expected end, have %d", it.Key())
		}
		return nil
	}
	if it.IsEnd() || it.Key() != keys[i] {
		return fmt.Errorf("expected %d", keys[i])
	}
	return nil
}

func checkMapAllocationFailure(r *rand.Rand, steps int) (int, *intMap, error) {
	m, a, err := newTrackedMap()
	if err != nil {
		return 0, nil, err
	}
	model := make(map[int]int)
	for step := 0; step < steps; step++ {
		k := r.Intn(steps)
		fail := r.Intn(5) == 0
		if fail {
			a.FailAllocationAfter(0)
		}
		_, inserted, err := m.Insert(k, step)
		a.FailAllocationAfter(-1)
		_, present := model[k]
		switch {
		case present && (inserted || err != nil):
			return step, m, fmt.Errorf("duplicate key %d must neither allocate nor fail", k)
		case !present && fail && !errors.Is(err, alloc.ErrAllocation):
			return step, m, fmt.Errorf("expected allocation failure for %d, have %v", k, err)
		case !present && !fail && err != nil:
			return step, m, err
		case inserted:
			model[k] = step
		}
	}
	if err := sameAsModel(m, model); err != nil {
		return steps, m, err
	}
	m.Dispose()
	if a.Live() != 0 || a.Slots() != 0 {
		return steps, nil, fmt.Errorf("leak after dispose: %d live, %d slots", a.Live(), a.Slots())
	}
	return steps, nil, nil
}

func checkMapCopy(r *rand.Rand, steps int) (int, *intMap, error) {
	m := containers.NewMap[int, int]()
	for i := 0; i < steps/4+1; i++ {
		m.Insert(r.Intn(steps+1), i)
	}
	c, err := m.Clone()
	if err != nil {
		return 0, nil, err
	}
	if !containers.MapsEqual(m, c) {
		return 0, nil, errors.New("clone differs from original")
	}
	n := m.Len()
	c.Erase(c.Begin())
	if p, err := c.Index(-1); err == nil {
		*p = 1
	}
	if m.Len() != n || m.Count(-1) != 0 || containers.MapsEqual(m, c) {
		return 1, nil, errors.New("modifying the clone changed the original")
	}
	if err := m.Assign(c); err != nil || !containers.MapsEqual(m, c) {
		return 2, nil, fmt.Errorf("assign failed: %v", err)
	}
	return 2, nil, nil
}

// --- Vector checks ---------------------------------------------------------

func newTrackedVector() (*containers.Vector[int], *alloc.Tracking[int], error) {
	a := alloc.NewTracking[int]()
	v, err := containers.NewVector(buffer.Config[int]{Allocator: a})
	return v, a, err
}

func sameAsSlice(v *containers.Vector[int], a *alloc.Tracking[int], model []int) error {
	if !slices.Equal(v.Data(), model) {
		return fmt.Errorf("vector holds %v, model %v", v.Data(), model)
	}
	if v.Cap() < v.Len() {
		return fmt.Errorf("capacity %d below length %d", v.Cap(), v.Len())
	}
	if a.Live() != v.Len() || a.Slots() != v.Cap() || len(a.Violations()) > 0 {
		return fmt.Errorf("allocator reports %d live values in %d slots for len=%d cap=%d: %v",
			a.Live(), a.Slots(), v.Len(), v.Cap(), a.Violations())
	}
	return nil
}

func checkVectorOperations(r *rand.Rand, steps int) (int, *intMap, error) {
	v, a, err := newTrackedVector()
	if err != nil {
		return 0, nil, err
	}
	var model []int
	for step := 0; step < steps; step++ {
		pos := 0
		if len(model) > 0 {
			pos = r.Intn(len(model) + 1)
		}
		switch op := r.Intn(6); {
		case op == 0 && len(model) > 0:
			v.PopBack()
			model = model[:len(model)-1]
		case op == 1 && pos < len(model):
			v.Erase(v.Begin().Add(pos))
			model = slices.Delete(model, pos, pos+1)
		case op == 2:
			n := r.Intn(4)
			if _, err = v.InsertN(v.Begin().Add(pos), n, step); err != nil {
				return step, nil, err
			}
			model = slices.Insert(model, pos, slices.Repeat([]int{step}, n)...)
		case op == 3:
			if _, err = v.InsertRange(v.Begin().Add(pos), v.Begin(), v.Begin().Add(pos)); err != nil {
				return step, nil, err
			}
			model = slices.Insert(model, pos, slices.Clone(model[:pos])...)
		case op == 4 && len(model) > 64:
			if err = v.Resize(len(model)/2, 0); err != nil {
				return step, nil, err
			}
			model = model[:len(model)/2]
		default:
			if err = v.PushBack(step); err != nil {
				return step, nil, err
			}
			model = append(model, step)
		}
		if err := sameAsSlice(v, a, model); err != nil {
			return step, nil, err
		}
	}
	v.Dispose()
	if a.Slots() != 0 {
		return steps, nil, fmt.Errorf("leak after dispose: %d slots", a.Slots())
	}
	return steps, nil, nil
}

func checkVectorGrowth(r *rand.Rand, steps int) (int, *intMap, error) {
	var v containers.Vector[int]
	capacity := 0
	for step := 0; step < steps; step++ {
		if err := v.PushBack(r.Int()); err != nil {
			return step, nil, err
		}
		if step == capacity {
			capacity = max(2*capacity, 1)
		}
		if v.Cap() != capacity {
			return step, nil, fmt.Errorf("capacity is %d after %d pushes, expected %d",
				v.Cap(), step+1, capacity)
		}
	}
	c := v.Cap()
	v.Clear()
	if v.Cap() != c {
		return steps, nil, errors.New("clear released capacity")
	}
	return steps, nil, nil
}

func checkVectorConstructionFailure(r *rand.Rand, steps int) (int, *intMap, error) {
	v, a, err := newTrackedVector()
	if err != nil {
		return 0, nil, err
	}
	var model []int
	for step := 0; step < steps; step++ {
		pos := 0
		if len(model) > 0 {
			pos = r.Intn(len(model) + 1)
		}
		n := r.Intn(5) + 1
		fail := r.Intn(3) == 0
		if fail {
			a.FailConstructionAfter(r.Intn(n))
		}
		_, err := v.InsertN(v.Begin().Add(pos), n, step)
		a.FailConstructionAfter(-1)
		if fail {
			if !errors.Is(err, alloc.ErrConstruct) {
				return step, nil, fmt.Errorf("expected construction failure, have %v", err)
			}
		} else if err != nil {
			return step, nil, err
		} else {
			model = slices.Insert(model, pos, slices.Repeat([]int{step}, n)...)
		}
		if err := sameAsSlice(v, a, model); err != nil {
			return step, nil, err
		}
	}
	return steps, nil, nil
}
