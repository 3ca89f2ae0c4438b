package art

import (
	"bytes"

	"github.com/stackagg/callstackidx"
)

// Lookup returns the count recorded against frames' exact byte-stream key
// and whether that key has ever terminated a path in this tree. It never
// mutates the tree; it mirrors the insert traversal read-only.
func (t *Tree) Lookup(frames []callstackidx.Frame) (uint64, bool) {
	return lookup(t.root, callstackidx.StreamBytes(frames))
}

func lookup(node any, key []byte) (uint64, bool) {
	switch n := node.(type) {
	case nil:
		return 0, false
	case *leaf:
		if bytes.Equal(n.key, key) {
			return n.cnt, true
		}
		return 0, false
	case innerNode:
		h := n.hdr()
		if len(key) < len(h.prefix) || !bytes.Equal(h.prefix, key[:len(h.prefix)]) {
			return 0, false
		}
		key = key[len(h.prefix):]
		if len(key) == 0 {
			return h.cnt, h.cnt > 0
		}
		slot := n.findChild(key[0])
		if slot == nil {
			return 0, false
		}
		return lookup(*slot, key)
	}
	return 0, false
}
