package art

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

// Dump writes a human-readable tree walk to w: one line per node, indented
// by depth, with the node's kind, prefix and count. It is a debugging aid,
// not part of the Tree contract.
func (t *Tree) Dump(w io.Writer) {
	dump(w, t.root, 0)
}

func dump(w io.Writer, node any, depth int) {
	indent := func() {
		for i := 0; i < depth; i++ {
			fmt.Fprint(w, "  ")
		}
	}
	switch n := node.(type) {
	case nil:
		return
	case *leaf:
		indent()
		fmt.Fprintf(w, "leaf key=%x cnt=%d\n", n.key, n.cnt)
	case innerNode:
		indent()
		fmt.Fprintf(w, "%T prefix=%x cnt=%d size=%d\n", n, n.hdr().prefix, n.hdr().cnt, n.size())
		n.each(func(key byte, child any) {
			dump(w, child, depth+1)
		})
	}
}

// SpewDump renders the full node graph with go-spew, for tests that need
// to compare tree shape verbatim against another build. Pointer addresses
// and slice capacities are left out so two equal shapes render the same.
func (t *Tree) SpewDump(w io.Writer) {
	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true, DisableCapacities: true}
	cfg.Fdump(w, t.root)
}
