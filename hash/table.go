// Package hash implements a two-tier hash-table backend: a small inline
// slice checked first, escalating to a fixed 2^16-bucket single-slot
// hashed array once the inline capacity is exceeded.
//
// Each bucket holds exactly one entry — there is no chaining, so a
// second distinct key hashing to an occupied bucket is treated as a
// collision rather than appended to a chain.
package hash

import (
	"bytes"
	"fmt"

	"github.com/stackagg/callstackidx"
)

// nInline bounds the inline fast path: trees with at most this many
// distinct stacks never touch the hashed table at all.
const nInline = 3

// numBuckets is the fixed hashed-table size; it never grows.
const numBuckets = 1 << 16

type entry struct {
	key []byte
	cnt uint64
}

// Tree is the hash-table implementation of the callstackidx.Tree contract.
type Tree struct {
	counters *callstackidx.Counters

	inline  [nInline]entry
	inlineN int
	escaped bool
	buckets []*entry // one slot per bucket, nil when empty

	total uint64
	full  uint64
}

// New returns an empty hash tree sharing counters with its dispatcher.
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

// Put releases the tree's bucket array.
func (t *Tree) Put() {
	if t.buckets != nil {
		t.counters.Free(false)
		t.buckets = nil
	}
}

func (t *Tree) insert(key []byte) bool {
	if !t.escaped {
		for i := 0; i < t.inlineN; i++ {
			if bytes.Equal(t.inline[i].key, key) {
				t.inline[i].cnt++
				t.counters.Depth(1)
				return true
			}
		}
		if t.inlineN < nInline {
			t.inline[t.inlineN] = entry{key: clone(key), cnt: 1}
			t.inlineN++
			t.counters.Alloc()
			t.counters.Unique()
			t.counters.Depth(1)
			return false
		}
		t.escalate()
	}
	return t.insertHashed(key)
}

// escalate migrates the inline entries into a freshly allocated hashed
// table. The tree never shrinks back to inline mode once it grows past
// nInline distinct stacks.
func (t *Tree) escalate() {
	t.buckets = make([]*entry, numBuckets)
	t.counters.Alloc()
	for i := 0; i < t.inlineN; i++ {
		e := t.inline[i]
		b := jenkinsOneAtATime(e.key) % numBuckets
		if t.buckets[b] != nil {
			collide(b, t.buckets[b].key, e.key)
		}
		t.buckets[b] = &entry{key: e.key, cnt: e.cnt}
		t.counters.Alloc()
	}
	t.escaped = true
}

// insertHashed inserts key into the single-slot bucket array. A bucket
// already holding a different key is a genuine collision.
func (t *Tree) insertHashed(key []byte) bool {
	b := jenkinsOneAtATime(key) % numBuckets
	e := t.buckets[b]
	if e == nil {
		t.buckets[b] = &entry{key: clone(key), cnt: 1}
		t.counters.Alloc()
		t.counters.Unique()
		t.counters.Depth(1)
		return false
	}
	if !bytes.Equal(e.key, key) {
		collide(b, e.key, key)
	}
	e.cnt++
	t.counters.Depth(1)
	return true
}

// collide reports a hash collision: two distinct keys hashing to the same
// bucket. It panics rather than silently overwriting or corrupting the
// existing entry's count, so a hashing or sizing bug surfaces immediately
// instead of producing wrong aggregate counts.
func collide(bucket uint32, existing, incoming []byte) {
	panic(fmt.Sprintf("hash: collision in bucket %d: %x vs %x", bucket, existing, incoming))
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Lookup returns the count recorded for frames' exact key and whether
// that key has ever been inserted. It never mutates the tree.
func (t *Tree) Lookup(frames []callstackidx.Frame) (uint64, bool) {
	key := callstackidx.StreamBytes(frames)

	if !t.escaped {
		for i := 0; i < t.inlineN; i++ {
			if bytes.Equal(t.inline[i].key, key) {
				return t.inline[i].cnt, true
			}
		}
		return 0, false
	}
	e := t.buckets[jenkinsOneAtATime(key)%numBuckets]
	if e != nil && bytes.Equal(e.key, key) {
		return e.cnt, true
	}
	return 0, false
}
