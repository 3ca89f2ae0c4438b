// Package omap implements a generic ordered map keyed by an ordered type,
// backed by github.com/google/btree's generic B-tree. It gives ascending
// iteration and O(log n) get/put without hand-rolling a balanced tree.
package omap

import "github.com/google/btree"

// Map is an ordered map from K to V, iterable in ascending key order.
type Map[K cmp, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

// cmp is satisfied by any type with a natural `<` ordering.
type cmp interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

type entry[K cmp, V any] struct {
	key K
	val V
}

const degree = 32

// New returns an empty ordered map.
func New[K cmp, V any]() *Map[K, V] {
	less := func(a, b entry[K, V]) bool { return a.key < b.key }
	return &Map[K, V]{tree: btree.NewG[entry[K, V]](degree, less)}
}

// Get returns the value stored for key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.tree.Get(entry[K, V]{key: key})
	return e.val, ok
}

// Put inserts or overwrites the value stored for key.
func (m *Map[K, V]) Put(key K, val V) {
	m.tree.ReplaceOrInsert(entry[K, V]{key: key, val: val})
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Ascend calls fn for every entry in ascending key order until fn returns
// false or entries are exhausted.
func (m *Map[K, V]) Ascend(fn func(key K, val V) bool) {
	m.tree.Ascend(func(e entry[K, V]) bool {
		return fn(e.key, e.val)
	})
}
