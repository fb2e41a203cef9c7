package ui

import (
	"fmt"
	"image/color"
	"strconv"
)

const defaultSnakeColor = "#4dff91"

// Skin mirrors the shop catalog of the account service.
type Skin struct {
	Id    string
	Name  string
	Price int
	Color string
}

var Skins = []Skin{
	{"green", "Green Snake", 100, "#00ff00"},
	{"blue", "Blue Snake", 150, "#0099ff"},
	{"red", "Red Snake", 200, "#ff4757"},
	{"purple", "Purple Snake", 300, "#9d4edd"},
	{"orange", "Orange Snake", 400, "#ff9900"},
	{"pink", "Pink Snake", 500, "#ff66cc"},
	{"gold", "Golden Snake", 1000, "#ffd700"},
}

// SkinColor maps a skin id to the body color sent in join_room.
func SkinColor(skin string) string {
	if skin == "default" {
		return defaultSnakeColor
	}
	for _, s := range Skins {
		if s.Id == skin {
			return s.Color
		}
	}
	return defaultSnakeColor
}

// ParseHexColor reads "#rrggbb". Anything else reports false and the
// caller falls back to the default color instead of failing a frame.
func ParseHexColor(s string) (color.RGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}, true
}

// DarkenColor reduces every channel by round(2.55*percent), clamped to
// [0,255]. Body segment corner accents use it to shade the base color
// without a second sprite.
func DarkenColor(hex string, percent int) string {
	c, ok := ParseHexColor(hex)
	if !ok {
		return hex
	}
	amt := int(2.55*float64(percent) + 0.5)
	return fmt.Sprintf("#%02x%02x%02x", clampChan(int(c.R)-amt), clampChan(int(c.G)-amt), clampChan(int(c.B)-amt))
}

func clampChan(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
