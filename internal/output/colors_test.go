package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorSchemes(t *testing.T) {
	defaultScheme := DefaultColorScheme()
	assert.NotNil(t, defaultScheme.Input)
	assert.NotNil(t, defaultScheme.OS)
	assert.NotNil(t, defaultScheme.Browser)

	noColorScheme := NoColorScheme()
	assert.Equal(t, "Windows", noColorScheme.OS.Sprint("Windows"))
	assert.Equal(t, "Chrome", noColorScheme.Browser.Sprint("Chrome"))
	assert.Equal(t, "ua", noColorScheme.Input.Sprint("ua"))
}

func TestErrorIcon(t *testing.T) {
	assert.Equal(t, "✗", ErrorIcon(true))
	assert.Contains(t, ErrorIcon(false), "✗")
}

func TestUseColors(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))
	assert.False(t, UseColors(&buf, false))
	assert.False(t, UseColors(os.Stdout, true))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, UseColors(os.Stdout, false))
}
