package scene

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/forge3d/forge/pkg/entity"
	"github.com/forge3d/forge/pkg/math3"
)

func TestSceneAddSetsBackReference(t *testing.T) {
	s := New("main")
	o := entity.NewEditorObject("cube")

	s.Add(o)
	if o.Container() != s {
		t.Error("expected container back-reference set")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 entity, got %d", s.Len())
	}

	// Adding twice is a no-op.
	s.Add(o)
	if s.Len() != 1 {
		t.Errorf("expected duplicate add ignored, got %d", s.Len())
	}

	got, ok := s.Get(o.ID())
	if !ok || got != o {
		t.Error("expected lookup by identity")
	}
}

func TestSceneRemoveDisposes(t *testing.T) {
	s := New("main")
	o := entity.NewEditorObject("cube")
	s.Add(o)

	s.Remove(o)
	if !o.Disposed() {
		t.Error("expected removal to call the disposal hook")
	}
	if o.Container() != nil {
		t.Error("expected back-reference cleared")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty scene, got %d", s.Len())
	}

	// Removing an entity not in the scene is a no-op.
	s.Remove(entity.NewEditorObject("other"))
	s.Remove(nil)
}

func TestSceneDispose(t *testing.T) {
	s := New("main")
	a := entity.NewEditorObject("a")
	b := entity.NewEditorObject("b")
	s.Add(a)
	s.Add(b)

	s.Dispose()
	s.Dispose()
	if !a.Disposed() || !b.Disposed() {
		t.Error("expected all entities disposed with the scene")
	}
	if !s.Disposed() {
		t.Error("expected scene to report disposed")
	}

	// A dead scene accepts no new entities.
	s.Add(entity.NewEditorObject("late"))
	if s.Len() != 0 {
		t.Errorf("expected no entities after disposal, got %d", s.Len())
	}
}

func TestSceneEach(t *testing.T) {
	s := New("main")
	s.Add(entity.NewEditorObject("a"))
	s.Add(entity.NewEditorObject("b"))
	s.Add(entity.NewEditorObject("c"))

	visited := 0
	s.Each(func(*entity.EditorObject) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("expected early stop after 2 visits, got %d", visited)
	}
}

func TestSceneApply(t *testing.T) {
	s := New("main")
	v := entity.NewVertex(math3.Vec3{})
	s.Add(v.EditorObject)

	ran := false
	s.Apply(context.Background(), "move-vertex", func() {
		v.SetPosition(math3.Vec3{X: 1})
		ran = true
	})
	if !ran {
		t.Error("expected edit function to run")
	}
	if v.Position.Get() != (math3.Vec3{X: 1}) {
		t.Errorf("expected mutation applied, got %v", v.Position.Get())
	}
}

func TestCollector(t *testing.T) {
	s := New("metrics")
	s.Add(entity.NewEditorObject("a"))
	s.Add(entity.NewEditorObject("b"))

	reg := prometheus.NewRegistry()
	if err := reg.Register(NewCollector(s)); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("unexpected gather error: %v", err)
	}

	found := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			found[mf.GetName()] = m.GetGauge().GetValue()
		}
	}
	if got := found["forge_scene_entities"]; got != 2 {
		t.Errorf("expected forge_scene_entities 2, got %v", got)
	}
	if _, ok := found["forge_scene_subscriptions"]; !ok {
		t.Error("expected forge_scene_subscriptions gauge")
	}
}

func TestCollectorOptions(t *testing.T) {
	s := New("opts")
	reg := prometheus.NewRegistry()
	c := NewCollector(s,
		WithNamespace("editor"),
		WithConstLabels(prometheus.Labels{"instance": "test"}),
	)
	if err := reg.Register(c); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("unexpected gather error: %v", err)
	}
	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	if !names["editor_scene_entities"] {
		t.Errorf("expected namespaced metric, got %v", names)
	}
}
