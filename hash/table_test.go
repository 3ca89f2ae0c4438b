package hash

import (
	"math/rand"
	"testing"

	"github.com/armon/go-radix"
	"github.com/stackagg/callstackidx"
	"github.com/stretchr/testify/require"
)

func frames(ips ...uint64) []callstackidx.Frame {
	fs := make([]callstackidx.Frame, len(ips))
	for i, ip := range ips {
		fs[i] = callstackidx.Frame{IP: ip, Map: 1}
	}
	return fs
}

func TestInlineFastPathStaysInline(t *testing.T) {
	counters := &callstackidx.Counters{}
	tr := New(counters)

	tr.Insert(frames(1))
	tr.Insert(frames(2))
	tr.Insert(frames(3))

	require.False(t, tr.escaped)
	require.EqualValues(t, 3, tr.Stats().Total)
}

func TestEscalationPastInlineCapacity(t *testing.T) {
	counters := &callstackidx.Counters{}
	tr := New(counters)

	for i := 0; i < nInline+5; i++ {
		tr.Insert(frames(uint64(i)))
	}

	require.True(t, tr.escaped)
	require.EqualValues(t, nInline+5, tr.Stats().Total)
}

func TestRepeatAcrossEscalationIsFullMatch(t *testing.T) {
	counters := &callstackidx.Counters{}
	tr := New(counters)

	tr.Insert(frames(1))
	tr.Insert(frames(2))
	tr.Insert(frames(3))
	tr.Insert(frames(4)) // triggers escalation
	tr.Insert(frames(1)) // must still be recognized post-escalation

	require.EqualValues(t, 1, tr.Stats().FullMatches)
}

// Differential test: the set of distinct keys and their counts must match
// an armon/go-radix oracle built over the same random population.
func TestHashMatchesRadixOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	counters := &callstackidx.Counters{}
	tr := New(counters)
	oracle := radix.New()

	want := map[string]int{}
	for i := 0; i < 300; i++ {
		n := 1 + rng.Intn(4)
		ips := make([]uint64, n)
		for j := range ips {
			ips[j] = uint64(rng.Intn(8)) + 1
		}
		fs := frames(ips...)
		tr.Insert(fs)

		key := string(callstackidx.StreamBytes(fs))
		want[key]++
		oracle.Insert(key, want[key])
	}

	require.Equal(t, len(want), oracle.Len())

	for k, v := range want {
		got, ok := tr.Lookup(keyFrames(k))
		require.True(t, ok, "key %x missing from tree", k)
		require.EqualValues(t, v, got, "key %x count mismatch", k)
	}
}

// keyFrames reconstructs the []callstackidx.Frame whose StreamBytes
// encoding is exactly k, for re-querying the tree under test by a raw
// byte-stream key captured from the oracle loop.
func keyFrames(k string) []callstackidx.Frame {
	const frameSize = 16
	raw := []byte(k)
	n := len(raw) / frameSize
	fs := make([]callstackidx.Frame, n)
	for i := 0; i < n; i++ {
		off := i * frameSize
		fs[i] = callstackidx.Frame{
			IP:  callstackidx.ByteOrder.Uint64(raw[off : off+8]),
			Map: callstackidx.ByteOrder.Uint64(raw[off+8 : off+16]),
		}
	}
	return fs
}

// S7: disjoint keys retain independent, individually queryable counts, and
// their counts sum to the total number of insertions.
func TestHashLookupDisjointKeys(t *testing.T) {
	counters := &callstackidx.Counters{}
	tr := New(counters)

	k1 := frames(10, 20)
	k2 := frames(30, 40, 50)
	k3 := frames(60)

	for i := 0; i < 5; i++ {
		tr.Insert(k1)
	}
	for i := 0; i < 3; i++ {
		tr.Insert(k2)
	}
	for i := 0; i < 7; i++ {
		tr.Insert(k3)
	}

	c1, ok1 := tr.Lookup(k1)
	c2, ok2 := tr.Lookup(k2)
	c3, ok3 := tr.Lookup(k3)

	require.True(t, ok1)
	require.True(t, ok2)
	require.True(t, ok3)
	require.EqualValues(t, 5, c1)
	require.EqualValues(t, 3, c2)
	require.EqualValues(t, 7, c3)
	require.EqualValues(t, 15, c1+c2+c3)
}
