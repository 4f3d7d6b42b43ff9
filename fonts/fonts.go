// Package fonts holds the text faces used by the HUD.
package fonts

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDLarge FontName = "hud-large"
	HUDSmall FontName = "hud-small"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadDefaults registers the HUD faces backed by Go Regular.
func LoadDefaults() error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load go regular: %w", err)
	}
	LoadFontWithSize(HUD, source, 14)
	LoadFontWithSize(HUDLarge, source, 28)
	LoadFontWithSize(HUDSmall, source, 11)
	return nil
}

func LoadFontWithSize(name FontName, source *text.GoTextFaceSource, size float64) {
	fonts[name] = &text.GoTextFace{Source: source, Size: size}
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
