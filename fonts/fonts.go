// Package fonts turns the game's TTF into text faces of any size.
package fonts

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Set caches faces of one font by pixel size.
type Set struct {
	font  *truetype.Font
	faces map[int]text.Face
}

// New parses ttf, falling back to Go Regular when it is missing or broken.
func New(ttf []byte) *Set {
	f, err := truetype.Parse(ttf)
	if len(ttf) == 0 || err != nil {
		if len(ttf) > 0 {
			log.Warn("game font unusable, using fallback", "error", err)
		}
		f, _ = truetype.Parse(goregular.TTF)
	}
	return &Set{font: f, faces: make(map[int]text.Face)}
}

// Face returns a face of about size pixels.
func (s *Set) Face(size float64) text.Face {
	px := max(int(math.Round(size)), 1)
	if face, ok := s.faces[px]; ok {
		return face
	}
	face := text.NewGoXFace(truetype.NewFace(s.font, &truetype.Options{
		Size:    float64(px),
		Hinting: font.HintingFull,
	}))
	s.faces[px] = face
	return face
}

// LineHeight is the distance between baselines for a face of the given size.
func (s *Set) LineHeight(size float64) float64 {
	m := s.Face(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
