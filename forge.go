// Package forge provides the public API for the forge reactive 3D editor
// domain model.
//
// This is the recommended import for most hosts:
//
//	import "github.com/forge3d/forge"
//
// Usage:
//
//	position := forge.NewSignal(math3.Vec3{})
//	sub := position.Subscribe(func(p math3.Vec3) { ... })
//	defer sub.Release()
//
// The engine lives in pkg/signal, the geometry math in pkg/math3, the
// entity types in pkg/entity, and the container collaborator in pkg/scene.
package forge

import (
	"github.com/forge3d/forge/pkg/signal"
)

// =============================================================================
// Engine re-exports (pkg/signal)
// =============================================================================

// Signal is a mutable reactive cell with replay-one subscription semantics.
type Signal[T any] = signal.Signal[T]

// Derived is a read-only reactive value computed from upstream sources.
type Derived[T any] = signal.Derived[T]

// Source is the read surface shared by Signal and Derived.
type Source[T any] = signal.Source[T]

// Subscription releases exactly one listener registration.
type Subscription = signal.Subscription

// Bag is an ownership scope releasing its handles in reverse order.
type Bag = signal.Bag

// Releasable is anything that can be released exactly once.
type Releasable = signal.Releasable

// NewSignal creates a signal holding the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return signal.New(initial)
}

// Map derives a value by transforming a single source.
func Map[S, T any](src Source[S], fn func(S) T) *Derived[T] {
	return signal.Map(src, fn)
}

// Combine2 derives a value from the latest values of two sources.
func Combine2[A, B, R any](a Source[A], b Source[B], fn func(A, B) R) *Derived[R] {
	return signal.Combine2(a, b, fn)
}

// Combine3 derives a value from the latest values of three sources.
func Combine3[A, B, C, R any](a Source[A], b Source[B], c Source[C], fn func(A, B, C) R) *Derived[R] {
	return signal.Combine3(a, b, c, fn)
}

// CombineSlice derives a value from a fixed ordered sequence of sources.
func CombineSlice[T, R any](sources []Source[T], fn func([]T) R) *Derived[R] {
	return signal.CombineSlice(sources, fn)
}

// Merge unions the events of a fixed set of sources into one stream.
func Merge[T any](sources ...Source[T]) (*Derived[T], error) {
	return signal.Merge(sources...)
}

// Switch derives a value from a single reassignable source slot.
func Switch[S, T any](slot Source[S], sel func(S) Source[T]) *Derived[T] {
	return signal.Switch(slot, sel)
}

// DynamicMerge derives a value from a collection of member sources whose
// membership can change over time.
func DynamicMerge[M, T, R any](collection Source[[]M], pick func(M) Source[T], derive func([]T) R) *Derived[R] {
	return signal.DynamicMerge(collection, pick, derive)
}
