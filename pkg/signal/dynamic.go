package signal

// DynamicMerge derives a value from a collection of member sources whose
// membership can change over time. pick selects each member's source out of
// the collection's elements; derive computes the result from the members'
// latest values.
//
// Contract:
//
//  1. At construction the current collection is read, every member source is
//     attached, and an initial value is computed.
//  2. When any member fires, derive runs over the current member values and
//     the result is emitted.
//  3. When the collection itself fires (membership changed), every
//     subscription to the old member set is released, every member of the
//     new set is attached silently, and exactly one recomputation is
//     emitted. No update from a removed member is observed after the swap
//     begins, and no update from a newly attached member is missed.
//  4. Releasing the derived value detaches the collection subscription and
//     every current member subscription.
//
// An empty collection yields derive's zero-input result rather than failing.
func DynamicMerge[M, T, R any](collection Source[[]M], pick func(M) Source[T], derive func([]T) R) *Derived[R] {
	latest := func() []T {
		members := collection.Get()
		values := make([]T, len(members))
		for i, m := range members {
			values[i] = pick(m).Get()
		}
		return values
	}

	d := newDerived(derive(latest()))
	recompute := func() {
		d.set(derive(latest()))
	}

	attach := func(members []M) []*Subscription {
		subs := make([]*Subscription, 0, len(members))
		for _, m := range members {
			subs = append(subs, pick(m).subscribeSilent(func(T) { recompute() }))
		}
		return subs
	}

	d.dynamic = attach(collection.Get())
	d.upstream.Add(collection.subscribeSilent(func(members []M) {
		d.swapDynamic(attach(members))
		recompute()
	}))
	return d
}
