package signal

// Map derives a value by transforming a single source. The derived value is
// fn(current) at construction and re-emits fn(v) for every upstream firing.
func Map[S, T any](src Source[S], fn func(S) T) *Derived[T] {
	d := newDerived(fn(src.Get()))
	d.upstream.Add(src.subscribeSilent(func(v S) {
		d.set(fn(v))
	}))
	return d
}
