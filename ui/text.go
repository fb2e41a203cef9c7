package ui

import (
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	Face      font.Face // regular UI text
	SmallFace font.Face // in-field labels (usernames)
	BigFace   font.Face // headings
)

func init() {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("ui: parse font: %v", err)
	}
	const dpi = 72
	Face = truetype.NewFace(tt, &truetype.Options{Size: 14, DPI: dpi, Hinting: font.HintingFull})
	SmallFace = truetype.NewFace(tt, &truetype.Options{Size: 11, DPI: dpi, Hinting: font.HintingFull})
	BigFace = truetype.NewFace(tt, &truetype.Options{Size: 26, DPI: dpi, Hinting: font.HintingFull})
}

// textWidth measures a string in whole pixels for centering.
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}
