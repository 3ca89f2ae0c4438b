package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJenkinsDeterministicAndSensitiveToInput(t *testing.T) {
	a := jenkinsOneAtATime([]byte("abc"))
	b := jenkinsOneAtATime([]byte("abc"))
	require.Equal(t, a, b)

	c := jenkinsOneAtATime([]byte("abd"))
	require.NotEqual(t, a, c)
}

func TestJenkinsEmptyKey(t *testing.T) {
	require.Equal(t, uint32(0), jenkinsOneAtATime(nil))
}
