package art

import (
	"bytes"

	"github.com/stackagg/callstackidx"
)

// Tree is the ART implementation of the callstackidx.Tree contract.
type Tree struct {
	root     any // nil, *leaf, or innerNode
	counters *callstackidx.Counters
	total    uint64
	full     uint64
}

// New returns an empty ART tree sharing counters with its dispatcher.
func New(counters *callstackidx.Counters) *Tree {
	return &Tree{counters: counters}
}

// Insert records one sample's frames.
func (t *Tree) Insert(frames []callstackidx.Frame) {
	key := callstackidx.StreamBytes(frames)
	t.total++
	if t.insert(key) {
		t.full++
	}
}

// Stats returns this tree's aggregate counters.
func (t *Tree) Stats() callstackidx.TreeStats {
	return callstackidx.TreeStats{Total: t.total, FullMatches: t.full}
}

// Put releases the tree; ART keeps no external resources to close.
func (t *Tree) Put() {}

// insert walks/splits the tree for key, returning true if key was already
// present (a "full match" repeat of a previously seen stack).
func (t *Tree) insert(key []byte) bool {
	if t.root == nil {
		t.root = newLeaf(key)
		t.counters.Alloc()
		t.counters.Depth(1)
		return false
	}
	newRoot, depth, match := t.insertAt(t.root, key, 1)
	t.root = newRoot
	t.counters.Depth(depth)
	return match
}

// insertAt inserts key (the portion of the stream not yet consumed by an
// ancestor's prefix) under node, returning the possibly-replaced node, the
// node-depth of the path just walked, and whether key already existed.
func (t *Tree) insertAt(node any, key []byte, depth uint64) (any, uint64, bool) {
	if lf, ok := node.(*leaf); ok {
		return t.doLeaf(lf, key, depth)
	}
	return t.doInner(node.(innerNode), key, depth)
}

// doLeaf handles insertion at an existing leaf: either the key matches
// exactly (increment its count), or the two keys diverge at some point and
// must be split into a new inner node holding both as children (lazy leaf
// expansion).
func (t *Tree) doLeaf(lf *leaf, key []byte, depth uint64) (any, uint64, bool) {
	if bytes.Equal(lf.key, key) {
		lf.cnt++
		return lf, depth, true
	}

	common := commonPrefixLen(lf.key, key)
	split := newNode4(clone(key[:common]))
	t.counters.Alloc()

	lf.key = lf.key[common:]
	key = key[common:]

	// lf.key and key cannot both be empty here: bytes.Equal already
	// rejected that case above.
	if len(lf.key) == 0 {
		// The existing leaf's key is a strict prefix of the new key: it
		// terminates exactly at split.
		split.cnt = lf.cnt
		t.counters.Free(true)
		nl := newLeaf(key)
		t.counters.Alloc()
		split.addChild(key[0], nl)
		return split, depth + 1, false
	}
	if len(key) == 0 {
		// The new key is a strict prefix of the existing leaf's key: it
		// terminates exactly at split, and lf (already shortened to its
		// remaining suffix above) is reused as-is so its accumulated count
		// survives the split.
		split.cnt = 1
		split.addChild(lf.key[0], lf)
		return split, depth + 1, false
	}

	split.addChild(lf.key[0], lf)
	nl := newLeaf(key)
	t.counters.Alloc()
	split.addChild(key[0], nl)
	return split, depth + 1, false
}

// doInner handles insertion at an inner node: key's prefix against the
// node's compressed prefix may (a) match fully, consuming it and
// recursing into a child or terminating on this node; or (b) diverge
// partway, forcing a new split node above both.
func (t *Tree) doInner(n innerNode, key []byte, depth uint64) (any, uint64, bool) {
	h := n.hdr()
	common := commonPrefixLen(h.prefix, key)

	if common < len(h.prefix) {
		// Diverges inside this node's prefix: split above it.
		split := newNode4(clone(key[:common]))
		t.counters.Alloc()

		h.prefix = h.prefix[common:]
		key = key[common:]
		split.addChild(h.prefix[0], n)

		if len(key) == 0 {
			split.cnt = 1
			return split, depth + 1, false
		}
		nl := newLeaf(key)
		t.counters.Alloc()
		split.addChild(key[0], nl)
		return split, depth + 1, false
	}

	// Prefix fully consumed.
	key = key[common:]
	if len(key) == 0 {
		match := n.hdr().cnt > 0
		n.hdr().cnt++
		return n, depth + 1, match
	}

	slot := n.findChild(key[0])
	if slot == nil {
		if n.full() {
			n = n.grow()
			slot = n.findChild(key[0])
		}
		nl := newLeaf(key)
		t.counters.Alloc()
		if slot != nil {
			*slot = nl
		} else {
			n.addChild(key[0], nl)
		}
		return n, depth + 1, false
	}

	child, childDepth, match := t.insertAt(*slot, key, depth+1)
	*slot = child
	return n, childDepth, match
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
