package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/forge3d/forge/pkg/math3"
)

func TestNewEdgeRejectsNilEndpoint(t *testing.T) {
	v := NewVertex(math3.Vec3{})
	if _, err := NewEdge(v, nil); !errors.Is(err, ErrNilVertex) {
		t.Errorf("expected ErrNilVertex, got %v", err)
	}
	if _, err := NewEdge(nil, v); !errors.Is(err, ErrNilVertex) {
		t.Errorf("expected ErrNilVertex, got %v", err)
	}
	if v.Position.Subscribers() != 0 {
		t.Errorf("expected no subscriptions after rejected construction, got %d",
			v.Position.Subscribers())
	}
}

func TestEdgeLengthScenario(t *testing.T) {
	a := NewVertex(math3.Vec3{})
	b := NewVertex(math3.Vec3{X: 3})

	edge, err := NewEdge(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer edge.Dispose()

	if got := edge.Length.Get(); got != 3.0 {
		t.Fatalf("expected length 3.0, got %v", got)
	}

	fired := 0
	sub := edge.Length.Subscribe(func(float64) { fired++ })
	defer sub.Release()
	fired = 0

	// Reassigning the end vertex updates the length via exactly one
	// notification.
	c := NewVertex(math3.Vec3{X: 3, Y: 4})
	edge.SetB(c)
	if fired != 1 {
		t.Errorf("expected exactly one notification, got %d", fired)
	}
	if got := edge.Length.Get(); got != 5.0 {
		t.Errorf("expected length 5.0, got %v", got)
	}

	// The replaced vertex is no longer watched.
	b.SetPosition(math3.Vec3{X: 100})
	if fired != 1 {
		t.Errorf("expected no effect from replaced endpoint, got %d notifications", fired)
	}

	// Moving a current endpoint still drives recomputation.
	c.SetPosition(math3.Vec3{X: 6, Y: 8})
	if fired != 2 {
		t.Errorf("expected notification from current endpoint, got %d", fired)
	}
	if got := edge.Length.Get(); got != 10.0 {
		t.Errorf("expected length 10.0, got %v", got)
	}
}

func TestEdgeZeroLength(t *testing.T) {
	a := NewVertex(math3.Vec3{X: 1, Y: 1, Z: 1})
	b := NewVertex(math3.Vec3{X: 1, Y: 1, Z: 1})

	edge, err := NewEdge(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer edge.Dispose()

	if got := edge.Length.Get(); got != 0 || math.IsNaN(got) {
		t.Errorf("expected well-defined zero length, got %v", got)
	}
}

func TestEdgeUnorderedEquality(t *testing.T) {
	a := NewVertex(math3.Vec3{})
	b := NewVertex(math3.Vec3{X: 1})

	ab, err := NewEdge(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer ab.Dispose()
	ba, err := NewEdge(b, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer ba.Dispose()

	// Same endpoints in opposite order compare equal and hash identically.
	if !ab.Equal(ba) {
		t.Error("expected unordered endpoint equality")
	}
	if ab.Key() != ba.Key() {
		t.Error("expected identical keys for opposite orders")
	}

	seen := map[EdgeKey]int{}
	seen[ab.Key()]++
	seen[ba.Key()]++
	if len(seen) != 1 || seen[ab.Key()] != 2 {
		t.Errorf("expected the two edges to share one map slot, got %v", seen)
	}

	c := NewVertex(math3.Vec3{Y: 1})
	ac, err := NewEdge(a, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer ac.Dispose()
	if ab.Equal(ac) {
		t.Error("expected edges over different endpoints to compare unequal")
	}
}

func TestEdgeDisposeLeavesVertices(t *testing.T) {
	a := NewVertex(math3.Vec3{})
	b := NewVertex(math3.Vec3{X: 2})

	edge, err := NewEdge(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edge.Dispose()
	if a.Disposed() || b.Disposed() {
		t.Error("expected vertices to survive edge disposal")
	}
	if a.Position.Subscribers() != 0 || b.Position.Subscribers() != 0 {
		t.Errorf("expected endpoint subscriptions released, got %d and %d",
			a.Position.Subscribers(), b.Position.Subscribers())
	}

	// Mutating a disposed edge's slots is a no-op.
	edge.SetA(b)
	if edge.A.Get() != a {
		t.Error("expected slot frozen after disposal")
	}
}
