package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColorMatchesServerPalette(t *testing.T) {
	// 20% off the default green, the accent shade on every segment
	assert.Equal(t, "#1acc5e", DarkenColor("#4DFF91", 20))
}

func TestDarkenColorClampsAtBlack(t *testing.T) {
	assert.Equal(t, "#000000", DarkenColor("#100000", 20))
}

func TestDarkenColorPassesThroughGarbage(t *testing.T) {
	assert.Equal(t, "red", DarkenColor("red", 20))
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#ff4757")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x47, B: 0x57, A: 0xff}, c)

	for _, bad := range []string{"", "#fff", "ff4757", "#zzzzzz", "#ff47570"} {
		_, ok := ParseHexColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestSkinColor(t *testing.T) {
	assert.Equal(t, "#ffd700", SkinColor("gold"))
	assert.Equal(t, defaultSnakeColor, SkinColor("default"))
	assert.Equal(t, defaultSnakeColor, SkinColor("no-such-skin"))
}
