package entity

import (
	"github.com/forge3d/forge/pkg/math3"
	"github.com/forge3d/forge/pkg/signal"
)

// BoundingBox is an axis-aligned box component. Center and Size recompute
// whenever either corner changes; coincident corners are valid and yield a
// zero-size box.
type BoundingBox struct {
	*EditorObject

	// Min and Max are the box corners. Mutators canonicalize them so that
	// Min <= Max holds per component.
	Min *signal.Signal[math3.Vec3]
	Max *signal.Signal[math3.Vec3]

	// Center is the box midpoint.
	Center *signal.Derived[math3.Vec3]

	// Size is the per-axis extent, never negative.
	Size *signal.Derived[math3.Vec3]
}

// NewBoundingBox creates a box spanning the two corners, canonicalized per
// component.
func NewBoundingBox(min, max math3.Vec3) *BoundingBox {
	b := &BoundingBox{
		EditorObject: NewEditorObject("BoundingBox"),
		Min:          signal.New(min.Min(max)),
		Max:          signal.New(min.Max(max)),
	}
	b.ownDispose(b.Min.Dispose)
	b.ownDispose(b.Max.Dispose)

	b.Center = signal.Combine2(b.Min, b.Max, func(lo, hi math3.Vec3) math3.Vec3 {
		return lo.Add(hi).Scale(0.5)
	})
	b.Size = signal.Combine2(b.Min, b.Max, func(lo, hi math3.Vec3) math3.Vec3 {
		return hi.Sub(lo)
	})
	b.ownDispose(b.Center.Dispose)
	b.ownDispose(b.Size.Dispose)
	return b
}

// SetMinMax replaces both corners, canonicalized per component.
func (b *BoundingBox) SetMinMax(min, max math3.Vec3) {
	b.Min.Set(min.Min(max))
	b.Max.Set(min.Max(max))
}

// Encapsulate grows the box to include point.
func (b *BoundingBox) Encapsulate(point math3.Vec3) {
	b.Min.Update(func(lo math3.Vec3) math3.Vec3 { return lo.Min(point) })
	b.Max.Update(func(hi math3.Vec3) math3.Vec3 { return hi.Max(point) })
}

// Expand grows the box by amount on every side. Negative amounts shrink it,
// collapsing at the center rather than inverting.
func (b *BoundingBox) Expand(amount float64) {
	center := b.Center.Get()
	half := b.Size.Get().Scale(0.5)
	grown := math3.Vec3{
		X: max(half.X+amount, 0),
		Y: max(half.Y+amount, 0),
		Z: max(half.Z+amount, 0),
	}
	b.Min.Set(center.Sub(grown))
	b.Max.Set(center.Add(grown))
}

// Contains reports whether point lies inside the box, inclusive.
func (b *BoundingBox) Contains(point math3.Vec3) bool {
	lo, hi := b.Min.Get(), b.Max.Get()
	return point.X >= lo.X && point.X <= hi.X &&
		point.Y >= lo.Y && point.Y <= hi.Y &&
		point.Z >= lo.Z && point.Z <= hi.Z
}

// Intersects reports whether the boxes overlap, inclusive of touching.
func (b *BoundingBox) Intersects(other *BoundingBox) bool {
	if other == nil {
		return false
	}
	alo, ahi := b.Min.Get(), b.Max.Get()
	blo, bhi := other.Min.Get(), other.Max.Get()
	return alo.X <= bhi.X && ahi.X >= blo.X &&
		alo.Y <= bhi.Y && ahi.Y >= blo.Y &&
		alo.Z <= bhi.Z && ahi.Z >= blo.Z
}
