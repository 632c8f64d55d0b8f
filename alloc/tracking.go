package alloc

import "fmt"

// Tracking is an allocator which keeps books about storage and live values,
// and which may be told to fail after a number of successful calls.
//
// Tracking is not safe for concurrent use.
type Tracking[T any] struct {
	heap        Heap[T]
	maxSize     int             // 0 means: use the heap's limit
	slots       int             // outstanding allocated slots
	allocations int             // successful calls to Allocate
	live        map[*T]struct{} // constructed, not yet destroyed
	violations  []string        // protocol errors observed
	failAlloc   int             // fail once allocations reaches this count, if > 0
	failCons    int             // fail once constructions reaches this count, if > 0
	conses      int             // successful calls to Construct
}

var _ Allocator[int] = (*Tracking[int])(nil)

// NewTracking creates a tracking allocator without any failure injection.
func NewTracking[T any]() *Tracking[T] {
	return &Tracking[T]{live: make(map[*T]struct{})}
}

// LimitSize lowers the maximum slot count reported by MaxSize.
func (a *Tracking[T]) LimitSize(n int) *Tracking[T] {
	a.maxSize = n
	return a
}

// FailAllocationAfter lets the allocator succeed n more times for Allocate,
// failing every call thereafter. n < 0 switches failure injection off.
func (a *Tracking[T]) FailAllocationAfter(n int) *Tracking[T] {
	if n < 0 {
		a.failAlloc = 0
		return a
	}
	a.failAlloc = a.allocations + n + 1
	return a
}

// FailConstructionAfter lets the allocator succeed n more times for Construct,
// failing every call thereafter. n < 0 switches failure injection off.
func (a *Tracking[T]) FailConstructionAfter(n int) *Tracking[T] {
	if n < 0 {
		a.failCons = 0
		return a
	}
	a.failCons = a.conses + n + 1
	return a
}

// MaxSize is part of interface Allocator.
func (a *Tracking[T]) MaxSize() int {
	if a.maxSize > 0 {
		return a.maxSize
	}
	return a.heap.MaxSize()
}

// Allocate is part of interface Allocator.
func (a *Tracking[T]) Allocate(n int) ([]T, error) {
	if n > a.MaxSize() {
		return nil, fmt.Errorf("%w: %d > %d", ErrLength, n, a.MaxSize())
	}
	if a.failAlloc > 0 && a.allocations+1 >= a.failAlloc {
		tracer().Debugf("tracking allocator: injected allocation failure for %d slots", n)
		return nil, fmt.Errorf("%w: injected failure for %d slots", ErrAllocation, n)
	}
	mem, err := a.heap.Allocate(n)
	if err != nil {
		return nil, err
	}
	a.allocations++
	a.slots += n
	return mem, nil
}

// Deallocate is part of interface Allocator.
func (a *Tracking[T]) Deallocate(mem []T, n int) {
	if len(mem) != n {
		a.violate("deallocate length mismatch (%d != %d)", len(mem), n)
	}
	for i := range mem {
		if _, ok := a.live[&mem[i]]; ok {
			a.violate("deallocating storage with live slot %d", i)
			delete(a.live, &mem[i])
		}
	}
	a.slots -= len(mem)
}

// Construct is part of interface Allocator.
func (a *Tracking[T]) Construct(p *T, val T) error {
	if a.failCons > 0 && a.conses+1 >= a.failCons {
		tracer().Debugf("tracking allocator: injected construction failure")
		return fmt.Errorf("%w: injected failure", ErrConstruct)
	}
	if _, ok := a.live[p]; ok {
		a.violate("constructing over a live slot")
	}
	a.conses++
	a.live[p] = struct{}{}
	return a.heap.Construct(p, val)
}

// Destroy is part of interface Allocator.
func (a *Tracking[T]) Destroy(p *T) {
	if _, ok := a.live[p]; !ok {
		a.violate("destroying a slot which is not live")
	}
	delete(a.live, p)
	a.heap.Destroy(p)
}

// Live returns the number of constructed values not yet destroyed.
func (a *Tracking[T]) Live() int {
	return len(a.live)
}

// Slots returns the number of allocated slots not yet deallocated.
func (a *Tracking[T]) Slots() int {
	return a.slots
}

// Allocations returns the number of successful Allocate calls.
func (a *Tracking[T]) Allocations() int {
	return a.allocations
}

// Violations returns a description of every protocol error observed, e.g.
// destroying a slot twice or deallocating storage which still holds live values.
func (a *Tracking[T]) Violations() []string {
	return a.violations
}

func (a *Tracking[T]) violate(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf("tracking allocator: %s", msg)
	a.violations = append(a.violations, msg)
}
