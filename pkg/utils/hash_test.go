package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", HashString(""))
	assert.Len(t, HashString("jane@example.com"), 64)
}

func TestHashEmailNormalizes(t *testing.T) {
	assert.Equal(t, HashEmail("jane@example.com"), HashEmail("  Jane@Example.COM "))
	assert.NotEqual(t, HashEmail("jane@example.com"), HashEmail("john@example.com"))
}
