package signal

import (
	"context"
	"sync/atomic"
)

// liveSubscriptions counts subscriptions that have been registered and not
// yet released across the whole engine. Exposed for leak checks and the
// scene metrics collector.
var liveSubscriptions atomic.Int64

// LiveSubscriptions reports the number of currently attached subscriptions
// across all signals in the process.
func LiveSubscriptions() int64 {
	return liveSubscriptions.Load()
}

// Subscription is the handle returned by every subscribe operation. Releasing
// it detaches exactly one listener registration. Release is idempotent and
// safe in any order, including against a source that has already been
// disposed.
type Subscription struct {
	detach   func()
	released bool
}

// released returns an inert handle, used when subscribing to a disposed
// signal. Releasing it has no effect.
func releasedSubscription() *Subscription {
	return &Subscription{released: true}
}

// Release detaches the listener this handle names. Calling Release more than
// once has no additional effect.
func (s *Subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	if s.detach != nil {
		s.detach()
	}
	liveSubscriptions.Add(-1)
	subscriptionsReleased.Add(context.Background(), 1)
}

// Released reports whether this handle has been released (or its source
// disposed).
func (s *Subscription) Released() bool {
	return s == nil || s.released
}

// Releasable is anything that can be released exactly once. Subscription,
// Derived and Bag all implement it.
type Releasable interface {
	Release()
}
