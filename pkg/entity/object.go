// Package entity provides the editor's domain objects: observable entities
// whose plain properties are signals and whose derived properties (edge
// length, face normal and area, transform matrix, bounding-box center and
// size) recompute automatically through the engine in pkg/signal.
//
// Single-writer discipline: an entity's mutator methods only ever write the
// entity's own signals, never another entity's. Derived properties read
// other entities' signals through subscriptions the entity owns and releases
// on disposal.
package entity

import "github.com/forge3d/forge/pkg/signal"

// Container is the collaborator that can own a component: at most one per
// component at a time. The component's reference to it is informational, not
// ownership. The container must call Dispose when it is destroyed or the
// component is removed from it.
type Container interface {
	Remove(*EditorObject)
}

// EditorObject is the base of every editor entity: a process-unique
// identity, observable name/enabled/tags/user-data properties, an optional
// container back-reference, and an ownership bag for everything the entity
// must release on disposal.
//
// Identity is stable for the entity's lifetime and never reused. Generic
// entities compare by identity; geometric subtypes override equality with
// their own value-based policy.
type EditorObject struct {
	id uint64

	// Name is the entity's display name.
	Name *signal.Signal[string]

	// Enabled reports whether the entity participates in the scene.
	Enabled *signal.Signal[bool]

	// Tags is the entity's tag set.
	Tags *signal.Signal[map[string]struct{}]

	// UserData carries arbitrary per-entity annotations.
	UserData *signal.Signal[map[string]any]

	container Container
	bag       signal.Bag
	disposed  bool
}

// NewEditorObject creates a generic entity with the given name, enabled,
// with no tags and no user data.
func NewEditorObject(name string) *EditorObject {
	o := &EditorObject{
		id:       signal.NextID(),
		Name:     signal.New(name),
		Enabled:  signal.New(true),
		Tags:     signal.New(map[string]struct{}{}),
		UserData: signal.New(map[string]any{}),
	}
	o.bag.Defer(o.Name.Dispose)
	o.bag.Defer(o.Enabled.Dispose)
	o.bag.Defer(o.Tags.Dispose)
	o.bag.Defer(o.UserData.Dispose)
	return o
}

// ID returns the entity's process-unique identifier.
func (o *EditorObject) ID() uint64 {
	return o.id
}

// Equal reports identity-based equality.
func (o *EditorObject) Equal(other *EditorObject) bool {
	return other != nil && o.id == other.id
}

// SetName sets the display name.
func (o *EditorObject) SetName(name string) {
	o.Name.Set(name)
}

// SetEnabled toggles participation in the scene.
func (o *EditorObject) SetEnabled(enabled bool) {
	o.Enabled.Set(enabled)
}

// AddTag adds tag to the entity's tag set. The set signal fires even if the
// tag was already present.
func (o *EditorObject) AddTag(tag string) {
	o.Tags.Update(func(tags map[string]struct{}) map[string]struct{} {
		next := make(map[string]struct{}, len(tags)+1)
		for t := range tags {
			next[t] = struct{}{}
		}
		next[tag] = struct{}{}
		return next
	})
}

// RemoveTag removes tag from the entity's tag set.
func (o *EditorObject) RemoveTag(tag string) {
	o.Tags.Update(func(tags map[string]struct{}) map[string]struct{} {
		next := make(map[string]struct{}, len(tags))
		for t := range tags {
			if t != tag {
				next[t] = struct{}{}
			}
		}
		return next
	})
}

// HasTag reports whether the entity carries tag.
func (o *EditorObject) HasTag(tag string) bool {
	_, ok := o.Tags.Get()[tag]
	return ok
}

// SetUserData stores an annotation under key.
func (o *EditorObject) SetUserData(key string, value any) {
	o.UserData.Update(func(data map[string]any) map[string]any {
		next := make(map[string]any, len(data)+1)
		for k, v := range data {
			next[k] = v
		}
		next[key] = value
		return next
	})
}

// DeleteUserData removes the annotation under key.
func (o *EditorObject) DeleteUserData(key string) {
	o.UserData.Update(func(data map[string]any) map[string]any {
		next := make(map[string]any, len(data))
		for k, v := range data {
			if k != key {
				next[k] = v
			}
		}
		return next
	})
}

// UserDataValue looks up the annotation under key.
func (o *EditorObject) UserDataValue(key string) (any, bool) {
	v, ok := o.UserData.Get()[key]
	return v, ok
}

// Container returns the owning container, or nil.
func (o *EditorObject) Container() Container {
	return o.container
}

// SetContainer sets or clears the back-reference to the owning container.
func (o *EditorObject) SetContainer(c Container) {
	o.container = c
}

// Dispose releases every subscription the entity created and disposes every
// signal it owns, in an order tolerant of referenced entities having been
// disposed first. Dispose is idempotent; operations on a disposed entity's
// signals are no-ops.
func (o *EditorObject) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	o.container = nil
	o.bag.Release()
}

// Disposed reports whether the entity has been disposed.
func (o *EditorObject) Disposed() bool {
	return o.disposed
}

// own places a handle under the entity's ownership; it is released on
// disposal, after handles owned later and before the base signals.
func (o *EditorObject) own(r signal.Releasable) {
	o.bag.Add(r)
}

// ownDispose registers a teardown function, typically a signal's Dispose.
func (o *EditorObject) ownDispose(fn func()) {
	o.bag.Defer(fn)
}
