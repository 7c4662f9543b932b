package entity

import (
	"github.com/forge3d/forge/pkg/math3"
	"github.com/forge3d/forge/pkg/signal"
)

// Transform is a position/rotation/scale component whose composed matrix
// recomputes whenever any of the three inputs changes.
type Transform struct {
	*EditorObject

	// Position is the translation component.
	Position *signal.Signal[math3.Vec3]

	// Rotation holds Euler angles in degrees, applied in Z·Y·X order.
	Rotation *signal.Signal[math3.Vec3]

	// Scale is the per-axis scale.
	Scale *signal.Signal[math3.Vec3]

	// Matrix is the composed T·R·S transform.
	Matrix *signal.Derived[math3.Mat4]
}

// NewTransform creates an identity transform.
func NewTransform() *Transform {
	t := &Transform{
		EditorObject: NewEditorObject("Transform"),
		Position:     signal.New(math3.Vec3{}),
		Rotation:     signal.New(math3.Vec3{}),
		Scale:        signal.New(math3.Vec3{X: 1, Y: 1, Z: 1}),
	}
	t.ownDispose(t.Position.Dispose)
	t.ownDispose(t.Rotation.Dispose)
	t.ownDispose(t.Scale.Dispose)

	t.Matrix = signal.Combine3(t.Position, t.Rotation, t.Scale, math3.TRS)
	t.ownDispose(t.Matrix.Dispose)
	return t
}

// SetPosition sets the translation component.
func (t *Transform) SetPosition(p math3.Vec3) {
	t.Position.Set(p)
}

// Translate moves the transform by delta.
func (t *Transform) Translate(delta math3.Vec3) {
	t.Position.Update(func(p math3.Vec3) math3.Vec3 {
		return p.Add(delta)
	})
}

// SetRotation sets the Euler angles in degrees.
func (t *Transform) SetRotation(deg math3.Vec3) {
	t.Rotation.Set(deg)
}

// Rotate adds delta (degrees) to the current Euler angles.
func (t *Transform) Rotate(delta math3.Vec3) {
	t.Rotation.Update(func(r math3.Vec3) math3.Vec3 {
		return r.Add(delta)
	})
}

// SetScale sets the per-axis scale.
func (t *Transform) SetScale(s math3.Vec3) {
	t.Scale.Set(s)
}
