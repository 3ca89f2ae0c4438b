// Package mapintern hands out canonical handles for map pointers: any two
// equal raw map values intern to the same MapSymbol for the life of the
// process. A one-slot "last handle" cache sits in front of a small LRU
// cache, in front of canonical ordered storage, since consecutive samples
// most often share the same mapped region.
package mapintern

import (
	"github.com/hashicorp/golang-lru/v2"
	"github.com/stackagg/callstackidx/internal/omap"
)

// MapSymbol is the canonical handle returned for a map pointer. Two
// MapSymbols compare equal iff they were interned from the same pointer.
type MapSymbol struct {
	Map uint64
}

// lruCapacity bounds the secondary cache. Small enough to stay cheap,
// large enough to absorb a handful of hot maps beyond the one-slot cache.
const lruCapacity = 8

// Interner hands out canonical MapSymbols for raw map pointers.
type Interner struct {
	byPtr *omap.Map[uint64, MapSymbol]
	last  struct {
		ptr uint64
		sym MapSymbol
		ok  bool
	}
	lru *lru.Cache[uint64, MapSymbol]
}

// New returns an empty interner.
func New() *Interner {
	cache, _ := lru.New[uint64, MapSymbol](lruCapacity)
	return &Interner{
		byPtr: omap.New[uint64, MapSymbol](),
		lru:   cache,
	}
}

// Intern returns the canonical MapSymbol for ptr, creating one on first
// sight.
func (in *Interner) Intern(ptr uint64) MapSymbol {
	if in.last.ok && in.last.ptr == ptr {
		return in.last.sym
	}
	if sym, ok := in.lru.Get(ptr); ok {
		in.setLast(ptr, sym)
		return sym
	}
	if sym, ok := in.byPtr.Get(ptr); ok {
		in.lru.Add(ptr, sym)
		in.setLast(ptr, sym)
		return sym
	}
	sym := MapSymbol{Map: ptr}
	in.byPtr.Put(ptr, sym)
	in.lru.Add(ptr, sym)
	in.setLast(ptr, sym)
	return sym
}

func (in *Interner) setLast(ptr uint64, sym MapSymbol) {
	in.last.ptr = ptr
	in.last.sym = sym
	in.last.ok = true
}

// Lookup returns the canonical MapSymbol already interned for ptr, if
// any, without interning a new one. Unlike Intern, it never mutates the
// interner's caches.
func (in *Interner) Lookup(ptr uint64) (MapSymbol, bool) {
	if in.last.ok && in.last.ptr == ptr {
		return in.last.sym, true
	}
	if sym, ok := in.lru.Peek(ptr); ok {
		return sym, true
	}
	return in.byPtr.Get(ptr)
}

// Len returns the number of distinct maps interned so far.
func (in *Interner) Len() int {
	return in.byPtr.Len()
}
