package signal

import "sync/atomic"

// globalIDCounter is the source of unique IDs for all reactive primitives.
var globalIDCounter uint64

// NextID returns the next process-unique ID. IDs are monotonically
// increasing and never reused; the entity layer uses them for identity.
func NextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
