package signal

import (
	"errors"
	"fmt"
)

// ErrNoSources is returned when a combinator is constructed over an empty
// fixed source set.
var ErrNoSources = errors.New("signal: no sources")

// Merge unions the events of a fixed set of sources into one stream: every
// firing of any source is re-emitted as the merged value. A signal is never
// valueless, so the merged stream adopts the first source's current value as
// its initial value; merging zero sources is rejected.
func Merge[T any](sources ...Source[T]) (*Derived[T], error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: merge requires at least one source", ErrNoSources)
	}
	d := newDerived(sources[0].Get())
	for _, src := range sources {
		d.upstream.Add(src.subscribeSilent(func(v T) {
			d.set(v)
		}))
	}
	return d, nil
}
