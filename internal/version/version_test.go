package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{name: "release", info: Info{Version: "v1.2.0", Commit: "abcdef0123"}, want: "v1.2.0"},
		{name: "dev with commit", info: Info{Version: "dev", Commit: "abcdef0123"}, want: "dev-abcdef0"},
		{name: "dev short commit", info: Info{Version: "dev", Commit: "abc"}, want: "dev-abc"},
		{name: "dev unknown", info: Info{Version: "dev", Commit: "unknown"}, want: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Short())
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
	assert.Contains(t, info.String(), info.Short())
}
