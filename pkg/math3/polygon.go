package math3

// NormalOf returns the unit normal of the polygon described by positions,
// computed with Newell's method. Fewer than three positions, or positions
// that are collinear or coincident, yield the zero vector.
func NormalOf(positions []Vec3) Vec3 {
	return newellSum(positions).Normalized()
}

// AreaOf returns the area of the polygon described by positions. Degenerate
// polygons (fewer than three distinct positions) have zero area.
func AreaOf(positions []Vec3) float64 {
	return newellSum(positions).Length() / 2
}

// CentroidOf returns the arithmetic mean of positions, or the zero vector
// for an empty slice.
func CentroidOf(positions []Vec3) Vec3 {
	if len(positions) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, p := range positions {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(positions)))
}

// newellSum accumulates the Newell normal over the polygon edges. Its length
// is twice the polygon area and its direction the (unnormalized) normal.
func newellSum(positions []Vec3) Vec3 {
	if len(positions) < 3 {
		return Vec3{}
	}
	var n Vec3
	for i, cur := range positions {
		next := positions[(i+1)%len(positions)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n
}
