package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	c, ok := Hex("#3b82f6")
	assert.True(t, ok)
	assert.Equal(t, RGBA{0x3b, 0x82, 0xf6, 255}, c)

	c, ok = Hex("#fff")
	assert.True(t, ok)
	assert.Equal(t, RGBA{255, 255, 255, 255}, c)

	_, ok = Hex("blue")
	assert.False(t, ok)
	_, ok = Hex("#12345")
	assert.False(t, ok)
}

func TestSwatch(t *testing.T) {
	tests := []struct {
		token string
		want  RGBA
	}{
		{"bg-blue-500", RGBA{0x3b, 0x82, 0xf6, 255}},
		{"red-500", RGBA{0xef, 0x44, 0x44, 255}},
		{"#000000", RGBA{0, 0, 0, 255}},
		{"bg-chartreuse-900", Neutral},
		{"", Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Swatch(tt.token))
		})
	}
}

func TestEmissive(t *testing.T) {
	base := RGBA{100, 50, 0, 200}
	assert.Equal(t, base, Emissive(base, 0))

	lit := Emissive(base, 0.3)
	assert.Equal(t, uint8(130), lit.R)
	assert.Equal(t, uint8(65), lit.G)
	assert.Equal(t, uint8(0), lit.B)
	assert.Equal(t, uint8(200), lit.A)

	white := RGBA{255, 255, 255, 255}
	assert.Equal(t, white, Emissive(white, 0.3))
}

func TestMixEndpoints(t *testing.T) {
	a := RGBA{255, 0, 0, 255}
	b := RGBA{0, 0, 255, 255}
	assert.Equal(t, a, Mix(a, b, 0))
	assert.Equal(t, b, Mix(a, b, 1))
}
