package bitset256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddTestRemove(t *testing.T) {
	var s Set
	require.False(t, s.Test(5))
	s.Add(5)
	require.True(t, s.Test(5))
	require.Equal(t, 1, s.Len())
	s.Remove(5)
	require.False(t, s.Test(5))
	require.Equal(t, 0, s.Len())
}

func TestRangeAscendingAndEarlyStop(t *testing.T) {
	var s Set
	for _, i := range []byte{200, 1, 64, 63, 255} {
		s.Add(i)
	}
	var got []byte
	s.Range(func(i byte) bool {
		got = append(got, i)
		return true
	})
	require.Equal(t, []byte{1, 63, 64, 200, 255}, got)

	var first byte
	seen := 0
	s.Range(func(i byte) bool {
		seen++
		first = i
		return false
	})
	require.Equal(t, 1, seen)
	require.Equal(t, byte(1), first)
}

func TestLenAcrossAllWords(t *testing.T) {
	var s Set
	for i := 0; i < 256; i += 7 {
		s.Add(byte(i))
	}
	count := 0
	for i := 0; i < 256; i += 7 {
		count++
	}
	require.Equal(t, count, s.Len())
}
