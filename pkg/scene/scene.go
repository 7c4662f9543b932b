// Package scene provides the container collaborator for editor entities: it
// owns entities, maintains their container back-references, and drives their
// disposal hooks. It also exposes operational surfaces for hosts: a
// Prometheus collector for scene gauges and OpenTelemetry spans around named
// edits.
package scene

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/forge3d/forge/pkg/entity"
)

var tracer = otel.Tracer("github.com/forge3d/forge/pkg/scene")

// Scene owns a set of editor entities. Adding an entity sets its container
// back-reference; removing it (or disposing the scene) calls its disposal
// hook. A scene follows the engine's single-threaded model.
type Scene struct {
	name     string
	entities []*entity.EditorObject
	byID     map[uint64]*entity.EditorObject
	disposed bool
}

// New creates an empty scene.
func New(name string) *Scene {
	return &Scene{
		name: name,
		byID: make(map[uint64]*entity.EditorObject),
	}
}

// Name returns the scene's name.
func (s *Scene) Name() string {
	return s.name
}

// Add places an entity under this scene and sets its container
// back-reference. Nil entities, disposed entities, and entities already in
// the scene are ignored.
func (s *Scene) Add(o *entity.EditorObject) {
	if s.disposed || o == nil || o.Disposed() {
		return
	}
	if _, ok := s.byID[o.ID()]; ok {
		return
	}
	s.entities = append(s.entities, o)
	s.byID[o.ID()] = o
	o.SetContainer(s)
}

// Remove detaches an entity from the scene and calls its disposal hook, per
// the container contract. Removing an entity not in the scene is a no-op.
func (s *Scene) Remove(o *entity.EditorObject) {
	if o == nil {
		return
	}
	if _, ok := s.byID[o.ID()]; !ok {
		return
	}
	delete(s.byID, o.ID())
	for i, e := range s.entities {
		if e == o {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
	o.SetContainer(nil)
	o.Dispose()
}

// Get looks up an entity by identity.
func (s *Scene) Get(id uint64) (*entity.EditorObject, bool) {
	o, ok := s.byID[id]
	return o, ok
}

// Len returns the number of entities in the scene.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Each visits every entity in insertion order. Returning false stops the
// walk.
func (s *Scene) Each(fn func(*entity.EditorObject) bool) {
	for _, o := range s.entities {
		if !fn(o) {
			return
		}
	}
}

// Apply runs a named edit against the scene under an OpenTelemetry span.
// The edit function performs ordinary entity mutations; propagation happens
// synchronously inside it, so the span covers the full fan-out.
func (s *Scene) Apply(ctx context.Context, name string, fn func()) {
	_, span := tracer.Start(ctx, "scene.apply", trace.WithAttributes(
		attribute.String("scene.name", s.name),
		attribute.String("scene.edit", name),
		attribute.Int("scene.entities", len(s.entities)),
	))
	defer span.End()
	fn()
}

// Dispose removes and disposes every entity in reverse insertion order,
// then marks the scene dead. Dispose is idempotent.
func (s *Scene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for i := len(s.entities) - 1; i >= 0; i-- {
		o := s.entities[i]
		o.SetContainer(nil)
		o.Dispose()
	}
	s.entities = nil
	s.byID = nil
}

// Disposed reports whether the scene has been disposed.
func (s *Scene) Disposed() bool {
	return s.disposed
}

var _ entity.Container = (*Scene)(nil)
