package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownFormatterPassesThrough(t *testing.T) {
	comment := "## ✅ DNS\n\nNo DNS issues detected!"

	got, err := NewFormatter().Format(comment)

	require.NoError(t, err)
	assert.Equal(t, comment, got)
}

func TestTerminalFormatterRendersMarkdown(t *testing.T) {
	comment := "## ✅ DNS\n\nNo DNS issues detected!"

	got, err := NewTerminalFormatter("notty", 80).Format(comment)

	require.NoError(t, err)
	assert.Contains(t, got, "DNS")
	assert.Contains(t, got, "No DNS issues detected!")
	assert.NotEqual(t, comment, got)
}

func TestTerminalFormatterDefaultsToAutoStyle(t *testing.T) {
	f := NewTerminalFormatter("", 0)

	assert.Equal(t, StyleAuto, f.style)
}
