package signal

// Combine2 derives a value from the latest values of two sources. Every
// source is guaranteed a current value, so an initial combined value is
// computed at construction. Whenever either source fires, the combination is
// recomputed from the latest value of both sources and emitted—exactly one
// emission per upstream firing, with no equality deduplication.
func Combine2[A, B, R any](a Source[A], b Source[B], fn func(A, B) R) *Derived[R] {
	d := newDerived(fn(a.Get(), b.Get()))
	recompute := func() {
		d.set(fn(a.Get(), b.Get()))
	}
	d.upstream.Add(a.subscribeSilent(func(A) { recompute() }))
	d.upstream.Add(b.subscribeSilent(func(B) { recompute() }))
	return d
}

// Combine3 derives a value from the latest values of three sources.
func Combine3[A, B, C, R any](a Source[A], b Source[B], c Source[C], fn func(A, B, C) R) *Derived[R] {
	d := newDerived(fn(a.Get(), b.Get(), c.Get()))
	recompute := func() {
		d.set(fn(a.Get(), b.Get(), c.Get()))
	}
	d.upstream.Add(a.subscribeSilent(func(A) { recompute() }))
	d.upstream.Add(b.subscribeSilent(func(B) { recompute() }))
	d.upstream.Add(c.subscribeSilent(func(C) { recompute() }))
	return d
}

// CombineSlice derives a value from the latest values of a fixed, ordered
// sequence of homogeneous sources. An empty sequence yields fn's zero-input
// result and never recomputes.
func CombineSlice[T, R any](sources []Source[T], fn func([]T) R) *Derived[R] {
	latest := func() []T {
		values := make([]T, len(sources))
		for i, src := range sources {
			values[i] = src.Get()
		}
		return values
	}
	d := newDerived(fn(latest()))
	recompute := func() {
		d.set(fn(latest()))
	}
	for _, src := range sources {
		d.upstream.Add(src.subscribeSilent(func(T) { recompute() }))
	}
	return d
}
