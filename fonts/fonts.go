package fonts

import (
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the HUD faces over the bundled Go Regular font.
func LoadDefaults() {
	LoadFontWithSize(HUD, goregular.TTF, 18)
	LoadFontWithSize(Title, goregular.TTF, 40)
	LoadFontWithSize(Small, goregular.TTF, 12)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

// LoadFontWithSize parses ttf and registers a face under name. On a parse
// error the name keeps resolving to the fixed fallback face.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: font %s: %v", name, err)
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		return basicfont.Face7x13
	}
	return f
}
