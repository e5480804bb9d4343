package render

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontFile is the multilingual font tried first by the default chain.
const DefaultFontFile = "NotoSansCJK-Regular.ttc"

// FaceLoader attempts to produce a usable font face at the given point size.
// Loaders are evaluated in order; one returning an error falls through to the
// next, so rendering continues even when every large-font attempt fails.
type FaceLoader func(size float64) (font.Face, error)

// FileFace loads a TrueType/OpenType font from disk.
func FileFace(path string) FaceLoader {
	return func(size float64) (font.Face, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		ft, err := opentype.Parse(data)
		if err != nil {
			return nil, err
		}
		return opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: 72})
	}
}

// GoRegularFace resizes the embedded Go Regular font.
func GoRegularFace() FaceLoader {
	return func(size float64) (font.Face, error) {
		ft, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, err
		}
		return opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: 72})
	}
}

// BasicFace always succeeds with the built-in fixed-size face.
func BasicFace() FaceLoader {
	return func(float64) (font.Face, error) {
		return basicfont.Face7x13, nil
	}
}

// DefaultFontChain returns the standard fallback order: named multilingual
// font file, embedded Go Regular at the requested size, built-in fixed face.
func DefaultFontChain() []FaceLoader {
	return []FaceLoader{
		FileFace(DefaultFontFile),
		GoRegularFace(),
		BasicFace(),
	}
}

// loadFace walks the chain and returns the first face that loads. The
// built-in fixed face is the terminal fallback even for an empty chain.
func loadFace(chain []FaceLoader, size float64) font.Face {
	for _, load := range chain {
		if face, err := load(size); err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}
