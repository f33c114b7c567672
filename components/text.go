package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type Align int

const (
	AlignCenter Align = iota
	AlignStart        // Left or top
)

// TextData is a label drawn at the entity's transform. Size is in pixels of a
// window config.C.BaseTextH tall; Color is not premultiplied.
type TextData struct {
	Content string
	Size    float64
	Color   color.NRGBA
	AlignX  Align
	AlignY  Align
	Hidden  bool
}

var Text = donburi.NewComponentType[TextData]()
