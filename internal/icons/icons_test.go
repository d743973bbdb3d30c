package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"space-lab/internal/catalog"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, Cpu, Resolve("Cpu"))
	assert.Equal(t, Expand, Resolve("Maximize2"))
	assert.Equal(t, Box, Resolve("DoesNotExist"))
	assert.Equal(t, Box, Resolve(""))
	assert.False(t, Known("cpu"), "names are case sensitive")
}

func TestCatalogIconsResolve(t *testing.T) {
	c, err := catalog.Default()
	assert.NoError(t, err)
	for _, m := range c.Models {
		for _, p := range m.Parts {
			assert.True(t, Known(p.IconName), "model %s part %s icon %q", m.ID, p.ID, p.IconName)
		}
	}
	for _, f := range c.Portal.Features {
		assert.True(t, Known(f.Icon), f.Icon)
	}
}

func TestGlyphString(t *testing.T) {
	assert.Equal(t, "Fan", Fan.String())
	assert.Equal(t, "X", Close.String())
}
