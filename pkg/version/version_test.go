package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsVersion(t *testing.T) {
	// Get should return the embedded VERSION content.
	got := Get()
	assert.Equal(t, Version, got)
}

func TestVersionNotEmpty(t *testing.T) {
	assert.NotEmpty(t, Get())
}
