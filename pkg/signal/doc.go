// Package signal provides the reactive value-propagation engine for forge.
//
// A Signal[T] is a mutable cell holding a current value. Subscribing to a
// signal immediately delivers the current value (replay-one), and every Set
// synchronously notifies all subscribers in subscription order. Derived
// values are built with combinators:
//
//	pos := signal.New(math3.Vec3{})
//	doubled := signal.Map(pos, func(v math3.Vec3) math3.Vec3 { return v.Scale(2) })
//
//	length := signal.Combine2(a, b, func(pa, pb math3.Vec3) float64 {
//	    return pb.Sub(pa).Length()
//	})
//
// DynamicMerge derives a value from a collection of member signals whose
// membership can change over time, re-subscribing atomically on every
// membership change. Switch is its single-slot analogue for a source whose
// identity can be reassigned.
//
// # Delivery model
//
// Propagation is synchronous and depth-first: a Set call fully completes its
// fan-out, including transitively triggered recomputation, before returning.
// Set always notifies, even when the new value equals the old one; consumers
// that need deduplication can layer it on top.
//
// # Concurrency
//
// The engine is single-threaded by contract. A signal has exactly one writer
// and arbitrarily many subscribers; concurrent mutation from multiple
// goroutines is not supported. Hosts that need multi-threading must add an
// external serialization discipline (one engine per logical thread, or a
// single owning lock per scene).
package signal
