package entity

import (
	"errors"
	"fmt"

	"github.com/forge3d/forge/pkg/math3"
	"github.com/forge3d/forge/pkg/signal"
)

// ErrNilVertex is returned when a geometric entity is constructed over a nil
// vertex reference.
var ErrNilVertex = errors.New("entity: nil vertex")

// Edge is a segment between two vertex entities. The endpoints are
// reassignable: Length follows whichever vertices currently fill the A and B
// slots, resubscribing when a slot is reassigned.
type Edge struct {
	*EditorObject

	// A and B are the endpoint slots.
	A *signal.Signal[*Vertex]
	B *signal.Signal[*Vertex]

	// Length is the distance between the current endpoints' positions. It
	// re-emits whenever either endpoint moves or a slot is reassigned.
	Length *signal.Derived[float64]
}

// NewEdge creates an edge between two vertices. Nil endpoints are rejected
// before anything is constructed.
func NewEdge(a, b *Vertex) (*Edge, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: edge requires both endpoints", ErrNilVertex)
	}

	e := &Edge{
		EditorObject: NewEditorObject("Edge"),
		A:            signal.New(a),
		B:            signal.New(b),
	}
	e.ownDispose(e.A.Dispose)
	e.ownDispose(e.B.Dispose)

	posA := signal.Switch(e.A, vertexPosition)
	posB := signal.Switch(e.B, vertexPosition)
	e.Length = signal.Combine2[math3.Vec3, math3.Vec3, float64](posA, posB,
		func(pa, pb math3.Vec3) float64 {
			return pb.Sub(pa).Length()
		})
	e.own(posA)
	e.own(posB)
	e.ownDispose(e.Length.Dispose)
	return e, nil
}

func vertexPosition(v *Vertex) signal.Source[math3.Vec3] {
	return v.Position
}

// SetA reassigns the first endpoint slot. A nil vertex is ignored.
func (e *Edge) SetA(v *Vertex) {
	if v == nil {
		return
	}
	e.A.Set(v)
}

// SetB reassigns the second endpoint slot. A nil vertex is ignored.
func (e *Edge) SetB(v *Vertex) {
	if v == nil {
		return
	}
	e.B.Set(v)
}

// EdgeKey is the canonical, order-independent key of an edge's endpoint
// identities. Two edges over the same vertices in either order produce the
// same key, so EdgeKey is usable as a map key for hashing edges.
type EdgeKey struct {
	Lo, Hi uint64
}

// Key returns the edge's canonical endpoint-identity key.
func (e *Edge) Key() EdgeKey {
	a, b := e.A.Get().ID(), e.B.Get().ID()
	if a > b {
		a, b = b, a
	}
	return EdgeKey{Lo: a, Hi: b}
}

// Equal reports unordered equality over the two endpoint identities.
func (e *Edge) Equal(other *Edge) bool {
	return other != nil && e.Key() == other.Key()
}
