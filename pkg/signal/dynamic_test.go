package signal

import "testing"

// members turns plain signals into the Source slice form DynamicMerge takes.
func members(sigs ...*Signal[int]) []Source[int] {
	out := make([]Source[int], len(sigs))
	for i, s := range sigs {
		out[i] = s
	}
	return out
}

func identity(s Source[int]) Source[int] { return s }

func sumOf(vs []int) int {
	total := 0
	for _, v := range vs {
		total += v
	}
	return total
}

func TestDynamicMergeInitial(t *testing.T) {
	a := New(1)
	b := New(2)
	collection := New(members(a, b))

	sum := DynamicMerge(collection, identity, sumOf)
	defer sum.Dispose()

	if sum.Get() != 3 {
		t.Errorf("expected initial derived value 3, got %d", sum.Get())
	}
}

func TestDynamicMergeMemberFiring(t *testing.T) {
	a := New(1)
	b := New(2)
	collection := New(members(a, b))

	sum := DynamicMerge(collection, identity, sumOf)
	defer sum.Dispose()

	fired := 0
	sub := sum.Subscribe(func(int) { fired++ })
	defer sub.Release()
	fired = 0

	a.Set(10)
	if sum.Get() != 12 {
		t.Errorf("expected 12, got %d", sum.Get())
	}
	b.Set(20)
	if sum.Get() != 30 {
		t.Errorf("expected 30, got %d", sum.Get())
	}
	if fired != 2 {
		t.Errorf("expected one emission per member set, got %d", fired)
	}
}

func TestDynamicMergeNonMemberHasNoEffect(t *testing.T) {
	a := New(1)
	outsider := New(100)
	collection := New(members(a))

	sum := DynamicMerge(collection, identity, sumOf)
	defer sum.Dispose()

	fired := 0
	sub := sum.Subscribe(func(int) { fired++ })
	defer sub.Release()
	fired = 0

	outsider.Set(200)
	if fired != 0 {
		t.Errorf("expected no effect from a non-member firing, got %d emissions", fired)
	}
}

func TestDynamicMergeMembershipSwap(t *testing.T) {
	a := New(1)
	b := New(2)
	c := New(100)
	collection := New(members(a, b))

	sum := DynamicMerge(collection, identity, sumOf)
	defer sum.Dispose()

	fired := 0
	sub := sum.Subscribe(func(int) { fired++ })
	defer sub.Release()
	fired = 0

	// Replace the membership entirely: exactly one emission for the swap.
	collection.Set(members(b, c))
	if fired != 1 {
		t.Fatalf("expected exactly one emission on membership change, got %d", fired)
	}
	if sum.Get() != 102 {
		t.Errorf("expected recomputation over new members 102, got %d", sum.Get())
	}

	// Old member firing has no effect.
	a.Set(999)
	if fired != 1 {
		t.Errorf("expected no emission from removed member, got %d", fired)
	}
	if got := a.Subscribers(); got != 0 {
		t.Errorf("expected stale subscription released, got %d", got)
	}

	// New member firing recomputes.
	c.Set(200)
	if fired != 2 {
		t.Errorf("expected emission from new member, got %d", fired)
	}
	if sum.Get() != 202 {
		t.Errorf("expected 202, got %d", sum.Get())
	}

	// Surviving member still attached exactly once.
	b.Set(3)
	if sum.Get() != 203 {
		t.Errorf("expected 203, got %d", sum.Get())
	}
	if fired != 3 {
		t.Errorf("expected single attachment for surviving member, got %d emissions", fired)
	}
}

func TestDynamicMergeEmptyCollection(t *testing.T) {
	collection := New(members())

	sum := DynamicMerge(collection, identity, sumOf)
	defer sum.Dispose()

	if sum.Get() != 0 {
		t.Errorf("expected zero-input derive result, got %d", sum.Get())
	}

	// Growing from empty works.
	a := New(5)
	collection.Set(members(a))
	if sum.Get() != 5 {
		t.Errorf("expected 5 after growing membership, got %d", sum.Get())
	}

	// Shrinking back to empty yields the degenerate result again.
	collection.Set(members())
	if sum.Get() != 0 {
		t.Errorf("expected 0 after shrinking to empty, got %d", sum.Get())
	}
	if a.Subscribers() != 0 {
		t.Errorf("expected removed member detached, got %d subscribers", a.Subscribers())
	}
}

func TestDynamicMergeRelease(t *testing.T) {
	a := New(1)
	b := New(2)
	collection := New(members(a, b))

	sum := DynamicMerge(collection, identity, sumOf)
	sum.Release()
	sum.Release()

	if a.Subscribers() != 0 || b.Subscribers() != 0 {
		t.Errorf("expected member subscriptions released, got %d and %d",
			a.Subscribers(), b.Subscribers())
	}
	if collection.Subscribers() != 0 {
		t.Errorf("expected collection subscription released, got %d", collection.Subscribers())
	}

	// Frozen at last value; membership changes no longer propagate.
	collection.Set(members(a))
	if sum.Get() != 3 {
		t.Errorf("expected frozen value 3, got %d", sum.Get())
	}
}

func TestDynamicMergeDisposedMember(t *testing.T) {
	a := New(1)
	b := New(2)
	collection := New(members(a, b))

	sum := DynamicMerge(collection, identity, sumOf)
	defer sum.Dispose()

	// Disposing a member independently must not break the swap or release.
	a.Dispose()
	collection.Set(members(b))
	if sum.Get() != 2 {
		t.Errorf("expected 2 after swap past disposed member, got %d", sum.Get())
	}
}

func TestSwitchFollowsSlot(t *testing.T) {
	first := New(1)
	second := New(10)
	slot := New(first)

	value := Switch(slot, func(s *Signal[int]) Source[int] { return s })
	defer value.Dispose()

	if value.Get() != 1 {
		t.Fatalf("expected initial inner value 1, got %d", value.Get())
	}

	fired := 0
	sub := value.Subscribe(func(int) { fired++ })
	defer sub.Release()
	fired = 0

	first.Set(2)
	if value.Get() != 2 || fired != 1 {
		t.Fatalf("expected inner update to propagate once, got value %d after %d emissions",
			value.Get(), fired)
	}

	// Reassign the slot: exactly one emission with the new inner's value.
	slot.Set(second)
	if fired != 2 {
		t.Errorf("expected exactly one emission on reassignment, got %d total", fired)
	}
	if value.Get() != 10 {
		t.Errorf("expected 10 from new inner source, got %d", value.Get())
	}

	// Old inner firing has no effect.
	first.Set(99)
	if fired != 2 {
		t.Errorf("expected no emission from old inner source, got %d total", fired)
	}
	if first.Subscribers() != 0 {
		t.Errorf("expected old inner detached, got %d subscribers", first.Subscribers())
	}

	second.Set(20)
	if value.Get() != 20 || fired != 3 {
		t.Errorf("expected new inner to propagate, got value %d after %d emissions",
			value.Get(), fired)
	}
}

func TestSwitchRelease(t *testing.T) {
	inner := New(1)
	slot := New(inner)

	value := Switch(slot, func(s *Signal[int]) Source[int] { return s })
	value.Release()

	if inner.Subscribers() != 0 || slot.Subscribers() != 0 {
		t.Errorf("expected all subscriptions released, got inner=%d slot=%d",
			inner.Subscribers(), slot.Subscribers())
	}
}
