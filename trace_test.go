package containers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/containers/bst"
	"github.com/npillmayer/containers/buffer"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// captureCoreTrace routes the core tracer into a buffer for the duration of
// a test.
func captureCoreTrace(t *testing.T) *bytes.Buffer {
	t.Helper()
	saved := gtrace.CoreTracer
	var out bytes.Buffer
	tr := gologadapter.New()
	tr.SetOutput(&out)
	tr.SetTraceLevel(tracing.LevelDebug)
	gtrace.CoreTracer = tr
	t.Cleanup(func() { gtrace.CoreTracer = saved })
	return &out
}

func TestMapTracesFailuresAndErasure(t *testing.T) {
	out := captureCoreTrace(t)
	a := alloc.NewTracking[bst.Node[int, int]]()
	cfg := bst.OrderedConfig[int, int]()
	cfg.Allocator = a
	m, err := NewMapWithConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Insert(3, 3)
	a.FailAllocationAfter(0)
	if _, _, err := m.Insert(4, 4); err == nil {
		t.Fatalf("expected insert to fail")
	}
	if _, err := m.Index(5); err == nil {
		t.Fatalf("expected index to fail")
	}
	a.FailAllocationAfter(-1)
	m.Erase(m.Find(3))
	log := out.String()
	for _, want := range []string{"[map=insert]", "[map=index]", "allocation failed", "erase key 3"} {
		if !strings.Contains(log, want) {
			t.Errorf("expected trace to contain %q, have:\n%s", want, log)
		}
	}
}

func TestVectorTracesFailures(t *testing.T) {
	out := captureCoreTrace(t)
	a := alloc.NewTracking[int]().LimitSize(2)
	v, err := NewVector(buffer.Config[int]{Allocator: a})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Reserve(3); err == nil {
		t.Fatalf("expected reserve to fail")
	}
	if _, err := v.InsertN(v.Begin(), 3, 1); err == nil {
		t.Fatalf("expected insert to fail")
	}
	log := out.String()
	for _, want := range []string{"[vector=reserve]", "[vector=insert]"} {
		if !strings.Contains(log, want) {
			t.Errorf("expected trace to contain %q, have:\n%s", want, log)
		}
	}
}
