package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTag(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"friends", true},
		{"owesMoney", true},
		{"2024", true},
		{"", false},
		{" ", false},
		{"hubby*", false},
		{"two words", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, err := NewTag(tt.input)
			if !tt.valid {
				require.Error(t, err)
				assert.Equal(t, MessageTagConstraints, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, tag.Name())
			assert.Equal(t, "["+tt.input+"]", tag.String())
		})
	}
}

func TestSameTag(t *testing.T) {
	assert.True(t, SameTag(mustTag("friends"), mustTag("friends")))
	assert.False(t, SameTag(mustTag("friends"), mustTag("Friends")))
}
