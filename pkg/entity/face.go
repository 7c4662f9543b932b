package entity

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/forge3d/forge/pkg/math3"
	"github.com/forge3d/forge/pkg/signal"
)

// ErrTooFewVertices is returned when a face would be left with fewer than
// three vertices.
var ErrTooFewVertices = errors.New("entity: face requires at least 3 vertices")

// Face is a polygon over shared vertex references. Normal, Area and
// Centroid follow every current vertex's position; when the vertex list
// itself is edited, the set of watched position streams changes with it.
// Disposing a face never disposes its vertices.
type Face struct {
	*EditorObject

	// Vertices is the face's vertex list, in winding order.
	Vertices *signal.Signal[[]*Vertex]

	// Normal is the unit polygon normal, zero for degenerate faces.
	Normal *signal.Derived[math3.Vec3]

	// Area is the polygon area, zero for degenerate faces.
	Area *signal.Derived[float64]

	// Centroid is the mean of the vertex positions.
	Centroid *signal.Derived[math3.Vec3]
}

// NewFace creates a face over the given vertices. Fewer than three vertices,
// or a nil vertex, is rejected before any signal is created or any
// subscription registered: a failed construction leaves nothing behind.
func NewFace(vertices ...*Vertex) (*Face, error) {
	if err := validateVertices(vertices); err != nil {
		return nil, err
	}

	f := &Face{
		EditorObject: NewEditorObject("Face"),
		Vertices:     signal.New(copyVertices(vertices)),
	}
	f.ownDispose(f.Vertices.Dispose)

	f.Normal = signal.DynamicMerge(f.Vertices, vertexPosition, math3.NormalOf)
	f.Area = signal.DynamicMerge(f.Vertices, vertexPosition, math3.AreaOf)
	f.Centroid = signal.DynamicMerge(f.Vertices, vertexPosition, math3.CentroidOf)
	f.ownDispose(f.Normal.Dispose)
	f.ownDispose(f.Area.Dispose)
	f.ownDispose(f.Centroid.Dispose)
	return f, nil
}

// AddVertex appends a vertex to the list. A nil vertex is ignored.
func (f *Face) AddVertex(v *Vertex) {
	if v == nil {
		return
	}
	f.Vertices.Update(func(vs []*Vertex) []*Vertex {
		return append(copyVertices(vs), v)
	})
}

// RemoveVertexAt removes the vertex at index i. Removals that would leave
// the face with fewer than three vertices, or an out-of-range index, are
// rejected.
func (f *Face) RemoveVertexAt(i int) error {
	current := f.Vertices.Get()
	if i < 0 || i >= len(current) {
		return fmt.Errorf("entity: vertex index %d out of range [0,%d)", i, len(current))
	}
	if len(current)-1 < 3 {
		return fmt.Errorf("%w: cannot remove vertex %d", ErrTooFewVertices, i)
	}
	next := make([]*Vertex, 0, len(current)-1)
	next = append(next, current[:i]...)
	next = append(next, current[i+1:]...)
	f.Vertices.Set(next)
	return nil
}

// SetVertices replaces the vertex list wholesale. Fewer than three vertices,
// or a nil vertex, is rejected and the current list is left untouched.
func (f *Face) SetVertices(vertices []*Vertex) error {
	if err := validateVertices(vertices); err != nil {
		return err
	}
	f.Vertices.Set(copyVertices(vertices))
	return nil
}

// Key returns the canonical key of the face's vertex identity set,
// independent of winding order. Faces over the same vertex set produce the
// same key, so Key is usable for hashing faces.
func (f *Face) Key() string {
	vs := f.Vertices.Get()
	ids := make([]uint64, len(vs))
	for i, v := range vs {
		ids[i] = v.ID()
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	var sb strings.Builder
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.FormatUint(id, 10))
	}
	return sb.String()
}

// Equal reports set-based equality over the face's vertex identities,
// independent of order.
func (f *Face) Equal(other *Face) bool {
	return other != nil && f.Key() == other.Key()
}

func validateVertices(vertices []*Vertex) error {
	if len(vertices) < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewVertices, len(vertices))
	}
	for i, v := range vertices {
		if v == nil {
			return fmt.Errorf("%w: at index %d", ErrNilVertex, i)
		}
	}
	return nil
}

func copyVertices(vertices []*Vertex) []*Vertex {
	out := make([]*Vertex, len(vertices))
	copy(out, vertices)
	return out
}
