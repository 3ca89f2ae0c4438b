package callstackidx

// Counters is the set of process-wide diagnostic counters (allocations,
// frees, tree depth, unique entries) that every Tree a Dispatcher creates
// reports into through a shared pointer, rather than package-level
// mutable state.
type Counters struct {
	NumAllocs        uint64
	NumFrees         uint64
	LeafFrees        uint64
	MaxDepth         uint64
	NumUniqueEntries uint64
}

// Alloc records one node/handle/bucket allocation.
func (c *Counters) Alloc() {
	c.NumAllocs++
}

// Free records one node/handle/bucket release. leaf marks a leaf-specific
// free, tracked separately from inner-node frees.
func (c *Counters) Free(leaf bool) {
	c.NumFrees++
	if leaf {
		c.LeafFrees++
	}
}

// Depth records that a path of the given length (in nodes) was observed,
// updating the running maximum.
func (c *Counters) Depth(d uint64) {
	if d > c.MaxDepth {
		c.MaxDepth = d
	}
}

// Unique records the discovery of one more distinct entry (called by the
// hash backend each time it stores a new distinct key, inline or hashed).
func (c *Counters) Unique() {
	c.NumUniqueEntries++
}
