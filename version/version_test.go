package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	i := Info{Version: "v1.2.0", CommitHash: "abcdef0123", BuildTime: "2026-01-02"}
	assert.Equal(t, "cligen v1.2.0 (commit abcdef0, built 2026-01-02)", i.String())
	assert.Equal(t, "abcdef0", i.Short())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestRelease(t *testing.T) {
	assert.True(t, Info{Version: "v0.3.0"}.Release())
	assert.False(t, Info{Version: "dev"}.Release())
	assert.False(t, Info{}.Release())
	assert.False(t, Info{Version: "v0.3.1-0.20260101-abcdef+dirty"}.Release())
}

func TestGet(t *testing.T) {
	i := Get()
	assert.NotEmpty(t, i.Version)
	assert.True(t, strings.HasPrefix(i.GoVersion, "go"))
	assert.Contains(t, i.Platform, "/")
}
