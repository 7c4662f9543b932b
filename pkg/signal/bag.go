package signal

// Bag is an ownership scope for releasable handles. An entity adds every
// subscription and derived value it creates to its bag; disposing the entity
// releases them all in reverse insertion order.
//
// Release is idempotent, and releasing a bag whose members were already
// released individually (or whose sources were disposed) is safe. Adding to
// an already-released bag releases the handle immediately.
type Bag struct {
	items    []Releasable
	released bool
}

// Add places a handle under this bag's ownership.
func (b *Bag) Add(r Releasable) {
	if r == nil {
		return
	}
	if b.released {
		r.Release()
		return
	}
	b.items = append(b.items, r)
}

// Defer registers an arbitrary teardown function to run when the bag is
// released. Used for signal disposal, which is not itself a Releasable.
func (b *Bag) Defer(fn func()) {
	if fn == nil {
		return
	}
	b.Add(releaseFunc(fn))
}

// Release releases every member in reverse insertion order. Calling Release
// again has no effect.
func (b *Bag) Release() {
	if b.released {
		return
	}
	b.released = true
	for i := len(b.items) - 1; i >= 0; i-- {
		b.items[i].Release()
	}
	b.items = nil
}

// Released reports whether the bag has been released.
func (b *Bag) Released() bool {
	return b.released
}

// Len returns the number of handles currently owned by the bag.
func (b *Bag) Len() int {
	return len(b.items)
}

type releaseFunc func()

func (f releaseFunc) Release() { f() }
