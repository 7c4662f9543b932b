package signal

import "context"

// entry is one listener registration on a signal. The released flag is
// checked during fan-out so that a listener released mid-notification is
// skipped instead of called on a dead registration.
type entry[T any] struct {
	fn       func(T)
	sub      *Subscription
	released bool
}

// Signal is a mutable reactive cell: it holds a current value, exposes it
// synchronously through Get, and notifies subscribers on every Set.
//
// A signal is never valueless: it is created with an initial value and every
// Subscribe call delivers the current value before any future update.
type Signal[T any] struct {
	id       uint64
	value    T
	subs     []*entry[T]
	disposed bool
}

// New creates a signal holding the given initial value. It never fails.
func New[T any](initial T) *Signal[T] {
	signalsCreated.Add(context.Background(), 1)
	return &Signal[T]{
		id:    NextID(),
		value: initial,
	}
}

// ID returns the process-unique identifier of this signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

// Get returns the current value. It has no side effects.
func (s *Signal[T]) Get() T {
	return s.value
}

// Set replaces the current value and synchronously notifies every registered
// listener, in subscription order, with the new value. Set always notifies,
// even when the new value equals the old one. Set on a disposed signal is a
// no-op.
func (s *Signal[T]) Set(value T) {
	if s.disposed {
		return
	}
	s.value = value
	s.notify(value)
}

// Update replaces the current value with fn(current) and notifies, like Set.
func (s *Signal[T]) Update(fn func(T) T) {
	if s.disposed {
		return
	}
	s.Set(fn(s.value))
}

// Subscribe registers fn, immediately invokes it once with the current
// value, and returns the handle that releases the registration. Subscribing
// to a disposed signal is a no-op that returns an inert, already-released
// handle.
func (s *Signal[T]) Subscribe(fn func(T)) *Subscription {
	sub := s.subscribeSilent(fn)
	if !sub.Released() {
		notificationsDelivered.Add(context.Background(), 1)
		fn(s.value)
	}
	return sub
}

// subscribeSilent registers fn without the replay delivery. Combinators use
// it to attach to upstream sources without producing a spurious emission,
// which is what makes the DynamicMerge membership swap observably atomic.
func (s *Signal[T]) subscribeSilent(fn func(T)) *Subscription {
	if s.disposed || fn == nil {
		return releasedSubscription()
	}

	e := &entry[T]{fn: fn}
	e.sub = &Subscription{detach: func() {
		e.released = true
		s.remove(e)
	}}
	s.subs = append(s.subs, e)
	liveSubscriptions.Add(1)
	return e.sub
}

// Dispose releases all listeners without notifying them further and marks
// the signal dead. Any derived value depending solely on this signal stays
// permanently at its last computed value. Dispose is idempotent.
func (s *Signal[T]) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for _, e := range s.subs {
		if !e.released {
			e.released = true
			e.sub.released = true
			liveSubscriptions.Add(-1)
			subscriptionsReleased.Add(context.Background(), 1)
		}
	}
	s.subs = nil
}

// Disposed reports whether the signal has been disposed.
func (s *Signal[T]) Disposed() bool {
	return s.disposed
}

// Subscribers returns the number of currently attached listeners.
func (s *Signal[T]) Subscribers() int {
	return len(s.subs)
}

// notify delivers value to every listener registered at the start of the
// fan-out, in subscription order. The snapshot means listeners subscribing
// during a notification are not called for that same update (they still get
// the immediate replay from Subscribe). Listeners released during delivery
// are skipped; delivery stops if the signal is disposed mid-fan-out.
func (s *Signal[T]) notify(value T) {
	if len(s.subs) == 0 {
		return
	}
	snapshot := make([]*entry[T], len(s.subs))
	copy(snapshot, s.subs)

	for _, e := range snapshot {
		if s.disposed {
			break
		}
		if e.released {
			continue
		}
		notificationsDelivered.Add(context.Background(), 1)
		e.fn(value)
	}
}

// remove splices an entry out of the subscriber list. Splicing (rather than
// swap-removal) keeps notification order equal to subscription order for the
// remaining listeners.
func (s *Signal[T]) remove(target *entry[T]) {
	for i, e := range s.subs {
		if e == target {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
