package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryLoadsEmbeddedSheet(t *testing.T) {
	for _, name := range []string{"Title", "Success", "Warning", "Error", "Muted", "Command"} {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, Names(), name)
		})
	}
}

func TestRenderUnknownStyleIsPlain(t *testing.T) {
	assert.Equal(t, "hello", Render("NoSuchStyle", "hello"))
}

func TestRenderPreservesText(t *testing.T) {
	// styling may add escape codes depending on the terminal, but the text
	// itself must survive
	out := Render("Success", "done")
	assert.Contains(t, out, "done")
}
