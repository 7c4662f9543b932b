package entity

import (
	"github.com/forge3d/forge/pkg/math3"
	"github.com/forge3d/forge/pkg/signal"
)

// PositionTolerance is the per-component tolerance used for value-based
// vertex equality.
const PositionTolerance = 1e-6

// Vertex is a point entity. Faces and edges hold shared references to
// vertices they do not own: a vertex may back multiple faces and edges at
// once, and disposing a face or edge never disposes its vertices.
type Vertex struct {
	*EditorObject

	// Position is the vertex's location.
	Position *signal.Signal[math3.Vec3]
}

// NewVertex creates a vertex at the given position.
func NewVertex(position math3.Vec3) *Vertex {
	v := &Vertex{
		EditorObject: NewEditorObject("Vertex"),
		Position:     signal.New(position),
	}
	v.ownDispose(v.Position.Dispose)
	return v
}

// SetPosition moves the vertex.
func (v *Vertex) SetPosition(p math3.Vec3) {
	v.Position.Set(p)
}

// Translate moves the vertex by delta.
func (v *Vertex) Translate(delta math3.Vec3) {
	v.Position.Update(func(p math3.Vec3) math3.Vec3 {
		return p.Add(delta)
	})
}

// Equal reports value-based equality: positions within PositionTolerance.
func (v *Vertex) Equal(other *Vertex) bool {
	return other != nil && v.Position.Get().ApproxEqual(other.Position.Get(), PositionTolerance)
}
