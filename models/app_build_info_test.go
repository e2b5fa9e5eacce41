package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-03-01", "abc123")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-03-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: 1.4.0\nBuild date: 2026-03-01\nBuild commit: abc123\n", info.String())
}

func TestNewAppBuildInfo_Empty(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
