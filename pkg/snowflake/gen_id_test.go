package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencer_Increasing(t *testing.T) {
	s, err := NewSequencer(7)
	require.NoError(t, err)

	prev, err := s.Next()
	require.NoError(t, err)
	for i := 0; i < 500; i++ {
		id, err := s.Next()
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}
