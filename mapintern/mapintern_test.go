package mapintern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternIsCanonicalPerPointer(t *testing.T) {
	in := New()
	a := in.Intern(100)
	b := in.Intern(100)
	require.Equal(t, a, b)
	require.Equal(t, 1, in.Len())
}

func TestInternDistinctPointersDistinctHandles(t *testing.T) {
	in := New()
	a := in.Intern(1)
	b := in.Intern(2)
	require.NotEqual(t, a, b)
	require.Equal(t, 2, in.Len())
}

func TestInternSurvivesLastSlotEviction(t *testing.T) {
	in := New()
	a := in.Intern(1)
	for i := uint64(2); i < 20; i++ {
		in.Intern(i)
	}
	got := in.Intern(1)
	require.Equal(t, a, got)
	require.Equal(t, 19, in.Len())
}

func TestLookupFindsInternedHandle(t *testing.T) {
	in := New()
	want := in.Intern(42)

	got, ok := in.Lookup(42)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestLookupNeverInternsAnUnseenPointer(t *testing.T) {
	in := New()
	in.Intern(1)

	_, ok := in.Lookup(999)
	require.False(t, ok)
	require.Equal(t, 1, in.Len(), "Lookup must not mint a handle for an unseen pointer")

	_, ok = in.Lookup(999)
	require.False(t, ok, "repeated misses must stay misses")
}
