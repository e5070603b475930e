package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, demo(&out, zap.NewNop(), 4))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Initial array: [3 2 1 0]\n"), text)
	assert.Equal(t, 4, strings.Count(text, "Is heap after removal: Yes"))
	assert.NotContains(t, text, ": No")
	assert.Contains(t, text, "Top value expected: 0\nTop value actual: 0\n")
	assert.True(t, strings.HasSuffix(text, "After removal: []\nIs heap after removal: Yes\n"), text)
}

func TestDemo_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, demo(&out, zap.NewNop(), 0))
	assert.Equal(t, "Initial array: []\n", out.String())
}
