package callchain

import (
	"github.com/stackagg/callstackidx"
	"github.com/stackagg/callstackidx/mapintern"
)

// Tree is the linux-callchain implementation of the callstackidx.Tree
// contract. Unlike ART and hash, it does not consume the byte-stream
// view: it walks the Frame slice directly, interning each frame's map
// pointer through interner.
type Tree struct {
	root      Root
	interner  *mapintern.Interner
	counters  *callstackidx.Counters
	total     uint64
	full      uint64
}

// New returns an empty callchain tree. interner is shared across every
// tree the dispatcher creates for this backend, since map handles are
// process-wide state.
func New(counters *callstackidx.Counters, interner *mapintern.Interner) *Tree {
	return &Tree{counters: counters, interner: interner}
}

// Insert drives a cursor of frames through the tree, descending one child
// per frame and creating any missing nodes along the way.
func (t *Tree) Insert(frames []callstackidx.Frame) {
	t.total++
	if len(frames) == 0 {
		return
	}

	cur := &t.root.node
	termNew := false
	for _, f := range frames {
		k := key{ip: f.IP, sym: t.interner.Intern(f.Map)}
		child, isNew := cur.findOrInsert(k)
		if isNew {
			t.counters.Alloc()
		}
		termNew = isNew
		cur.cumCount++
		cur = child
	}
	cur.count++
	cur.cumCount++
	t.counters.Depth(uint64(len(frames)))

	if !termNew && cur.count > 1 {
		t.full++
	}
}

// Stats returns this tree's aggregate counters.
func (t *Tree) Stats() callstackidx.TreeStats {
	return callstackidx.TreeStats{Total: t.total, FullMatches: t.full}
}

// Put releases the tree; callchain keeps no external resources to close.
func (t *Tree) Put() {}

// Lookup returns the count recorded at the node frames' path terminates
// on, and whether that exact path has ever been inserted. It never
// mutates the tree or the interner.
func (t *Tree) Lookup(frames []callstackidx.Frame) (uint64, bool) {
	if len(frames) == 0 {
		return 0, false
	}
	cur := &t.root.node
	for _, f := range frames {
		sym, ok := t.interner.Lookup(f.Map)
		if !ok {
			return 0, false
		}
		child := cur.find(key{ip: f.IP, sym: sym})
		if child == nil {
			return 0, false
		}
		cur = child
	}
	return cur.count, cur.count > 0
}
