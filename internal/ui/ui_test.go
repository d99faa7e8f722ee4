package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "█████ 100%", ProgressBar(3, 3, 5))
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { _ = SetTheme("classic") })

	require.NoError(t, SetTheme("MONO"))
	assert.Equal(t, "mono", Current().Name)
	assert.Equal(t, "[x]", Current().BoxChecked)

	require.NoError(t, SetTheme("neon"))
	assert.Equal(t, "neon", Current().Name)

	err := SetTheme("sepia")
	assert.ErrorContains(t, err, "unknown theme")
	assert.Equal(t, "neon", Current().Name)
}

func TestPanelAndMessages(t *testing.T) {
	t.Cleanup(func() { _ = SetTheme("classic") })
	require.NoError(t, SetTheme("mono"))

	var buf bytes.Buffer
	Panel(&buf, []string{"one", "two"})
	out := buf.String()
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.True(t, strings.HasPrefix(out, "┌"), out)

	buf.Reset()
	OK(&buf, "added")
	assert.Equal(t, "x added\n", buf.String())

	buf.Reset()
	Fail(&buf, "nope")
	assert.Equal(t, "✖ nope\n", buf.String())
}
