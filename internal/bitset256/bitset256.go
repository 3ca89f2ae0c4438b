// Package bitset256 implements a fixed 256-bit set, used by the ART
// backend's wider inner-node variants to track which of their 256 possible
// selector bytes are occupied without scanning all of them.
//
// Adapted from the popcount-compressed sparse array idea in
// github.com/metacubex/bart's internal/sparse package: there it backs
// storage (only occupied slots are allocated); here it backs iteration
// only (storage stays a flat array per the ART contract), so the set is
// self-contained instead of depending on an external bitset package.
package bitset256

import "math/bits"

// Set is a fixed 256-bit set.
type Set [4]uint64

// Add marks i as a member.
func (s *Set) Add(i byte) {
	s[i>>6] |= 1 << (i & 63)
}

// Remove clears membership of i.
func (s *Set) Remove(i byte) {
	s[i>>6] &^= 1 << (i & 63)
}

// Test reports whether i is a member.
func (s *Set) Test(i byte) bool {
	return s[i>>6]&(1<<(i&63)) != 0
}

// Len returns the number of members.
func (s *Set) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Range calls fn for every member, in ascending order, until fn returns
// false or members are exhausted.
func (s *Set) Range(fn func(i byte) bool) {
	for word := 0; word < 4; word++ {
		w := s[word]
		for w != 0 {
			b := bits.TrailingZeros64(w)
			i := byte(word<<6 + b)
			if !fn(i) {
				return
			}
			w &= w - 1
		}
	}
}
