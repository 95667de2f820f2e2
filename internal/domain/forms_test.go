package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoginOut(t *testing.T) {
	out := NewLoginOut("alice")
	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, "Login successful", out.Message)
}

func TestNewImageInfo(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  float64
	}{
		{name: "empty", bytes: 0, want: 0},
		{name: "one kilobyte", bytes: 1024, want: 1},
		{name: "rounds to two decimals", bytes: 1500, want: 1.46},
		{name: "rounds up", bytes: 2047, want: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := NewImageInfo("cat.png", "image/png", tc.bytes)
			assert.Equal(t, "cat.png", info.Filename)
			assert.Equal(t, "image/png", info.Format)
			assert.InDelta(t, tc.want, info.SizeKB, 0.0001)
		})
	}
}
