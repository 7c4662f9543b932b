package signal

// Switch derives a value from a single reassignable slot: sel picks the
// inner source out of the slot's current value, and the derived value
// follows the inner source. When the slot itself fires (the inner source is
// reassigned), the old inner subscription is released, the new inner source
// is attached, and its current value is emitted exactly once. A firing of
// the previous inner source after the swap has no effect.
//
// Switch is the single-slot analogue of DynamicMerge.
func Switch[S, T any](slot Source[S], sel func(S) Source[T]) *Derived[T] {
	inner := sel(slot.Get())
	d := newDerived(inner.Get())

	forward := func(v T) {
		d.set(v)
	}
	d.dynamic = []*Subscription{inner.subscribeSilent(forward)}

	d.upstream.Add(slot.subscribeSilent(func(v S) {
		next := sel(v)
		d.swapDynamic([]*Subscription{next.subscribeSilent(forward)})
		d.set(next.Get())
	}))
	return d
}
