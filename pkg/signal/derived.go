package signal

// Source is the read side shared by Signal and Derived: a current value plus
// subscription with replay. Combinators accept any Source so derived values
// can be layered on other derived values.
type Source[T any] interface {
	// Get returns the current value.
	Get() T

	// Subscribe registers fn, immediately delivers the current value, and
	// returns the handle releasing the registration.
	Subscribe(fn func(T)) *Subscription

	// subscribeSilent registers fn without the replay delivery. Internal to
	// the engine; it is what keeps combinator re-subscription atomic.
	subscribeSilent(fn func(T)) *Subscription
}

// Derived is a read-only reactive value computed from one or more upstream
// sources. It exposes the same read surface as Signal but has no public Set;
// only the combinator that built it writes to the backing cell.
//
// Releasing a Derived detaches every upstream subscription it holds. The
// derived then stays permanently at its last computed value: Get and
// Subscribe keep working, but no recomputation ever happens again. The same
// happens implicitly when every upstream source is disposed.
type Derived[T any] struct {
	cell *Signal[T]

	// upstream holds the fixed subscriptions created at construction.
	upstream Bag

	// dynamic holds the member subscriptions of DynamicMerge and Switch,
	// replaced wholesale on every membership change.
	dynamic []*Subscription

	released bool
}

func newDerived[T any](initial T) *Derived[T] {
	return &Derived[T]{cell: New(initial)}
}

// ID returns the process-unique identifier of the backing cell.
func (d *Derived[T]) ID() uint64 {
	return d.cell.ID()
}

// Get returns the current derived value.
func (d *Derived[T]) Get() T {
	return d.cell.Get()
}

// Subscribe registers fn on the derived value with replay-one semantics.
func (d *Derived[T]) Subscribe(fn func(T)) *Subscription {
	return d.cell.Subscribe(fn)
}

func (d *Derived[T]) subscribeSilent(fn func(T)) *Subscription {
	return d.cell.subscribeSilent(fn)
}

// Subscribers returns the number of listeners attached to the derived value.
func (d *Derived[T]) Subscribers() int {
	return d.cell.Subscribers()
}

// Release detaches all upstream subscriptions, freezing the derived at its
// last computed value. It is idempotent and safe when upstream sources have
// already been disposed.
func (d *Derived[T]) Release() {
	if d.released {
		return
	}
	d.released = true
	d.swapDynamic(nil)
	d.upstream.Release()
}

// Dispose releases the upstream subscriptions and additionally disposes the
// backing cell, detaching downstream listeners. Used by entity teardown.
func (d *Derived[T]) Dispose() {
	d.Release()
	d.cell.Dispose()
}

// set writes the backing cell. Only combinators call it.
func (d *Derived[T]) set(value T) {
	d.cell.Set(value)
}

// swapDynamic releases every current member subscription and installs the
// replacement set. Old members can no longer deliver once this returns.
func (d *Derived[T]) swapDynamic(next []*Subscription) {
	for i := len(d.dynamic) - 1; i >= 0; i-- {
		d.dynamic[i].Release()
	}
	d.dynamic = next
}

var (
	_ Source[int] = (*Signal[int])(nil)
	_ Source[int] = (*Derived[int])(nil)
)
