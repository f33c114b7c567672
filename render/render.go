// Package render draws the simulation world with ebiten.
package render

import (
	"cmp"
	"image/color"
	"slices"
	"strings"

	"github.com/automoto/flyshoot/assets"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/fonts"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/image/colornames"
)

var (
	sprites = donburi.NewQuery(filter.Contains(components.Transform, components.Sprite))
	labels  = donburi.NewQuery(filter.Contains(components.Transform, components.Text))
)

// Drawn in place of sprites whose sheet failed to load.
var placeholders = map[cfg.SpriteID]color.RGBA{
	cfg.SpritePlayer:        colornames.Lightskyblue,
	cfg.SpritePlayerExhaust: colornames.Gold,
	cfg.SpriteEnemy:         colornames.Orangered,
	cfg.SpriteEnemyExhaust:  colornames.Gold,
	cfg.SpritePlayerBullet:  colornames.Cyan,
	cfg.SpriteEnemyBullet:   colornames.Magenta,
	cfg.SpriteExplosion:     colornames.Orange,
	cfg.SpriteBackground:    colornames.Midnightblue,
}

// Renderer draws sprites and labels back to front by Z.
type Renderer struct {
	lib   *assets.Library
	fonts *fonts.Set

	drawOp ebiten.DrawImageOptions
	items  []item
}

type item struct {
	z      float64
	entry  *donburi.Entry
	isText bool
}

func New(lib *assets.Library) *Renderer {
	return &Renderer{lib: lib}
}

// Draw renders the world onto screen. It is registered as an ecs renderer.
func (r *Renderer) Draw(ecs *ecs.ECS, screen *ebiten.Image) {
	w := ecs.World
	screen.Fill(colornames.Black)
	if r.fonts == nil && r.lib.Done() {
		r.fonts = fonts.New(r.lib.Font())
	}
	v := newView(screen)

	r.items = r.items[:0]
	sprites.Each(w, func(e *donburi.Entry) {
		r.items = append(r.items, item{z: components.Transform.Get(e).Z, entry: e})
	})
	labels.Each(w, func(e *donburi.Entry) {
		r.items = append(r.items, item{z: components.Transform.Get(e).Z, entry: e, isText: true})
	})
	slices.SortStableFunc(r.items, func(a, b item) int {
		return cmp.Compare(a.z, b.z)
	})

	for _, it := range r.items {
		if it.isText {
			r.drawText(screen, v, it.entry)
		} else {
			r.drawSprite(screen, v, it.entry)
		}
	}

	if assetsEntry, ok := components.Assets.First(w); ok {
		a := components.Assets.Get(assetsEntry)
		if !a.Done {
			r.drawLoading(screen, v)
		} else if len(a.Failures) > 0 {
			r.drawFailures(screen, v, a.Failures)
		}
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, v view, e *donburi.Entry) {
	s := components.Sprite.Get(e)
	if s.Hidden {
		return
	}
	t := components.Transform.Get(e)
	center := v.point(t.Position)
	w, h := s.Size.X*v.scale, s.Size.Y*v.scale

	img := r.lib.Frame(s.ID, s.Frame)
	if img == nil {
		vector.FillRect(screen, float32(center.X-w/2), float32(center.Y-h/2), float32(w), float32(h), placeholders[s.ID], false)
		return
	}

	b := img.Bounds()
	op := &r.drawOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if s.FlipX {
		op.GeoM.Scale(-1, 1)
	}
	// Field angles turn counterclockwise; screen y is flipped.
	op.GeoM.Rotate(-t.Rotation)
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(s.Tint)
	screen.DrawImage(img, op)
}

func (r *Renderer) drawText(screen *ebiten.Image, v view, e *donburi.Entry) {
	label := components.Text.Get(e)
	if label.Hidden || label.Content == "" || r.fonts == nil {
		return
	}
	size := label.Size * v.textScale
	pos := v.point(components.Transform.Get(e).Position)

	op := &text.DrawOptions{}
	op.LineSpacing = r.fonts.LineHeight(size)
	op.PrimaryAlign = align(label.AlignX)
	op.SecondaryAlign = align(label.AlignY)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(label.Color)
	text.Draw(screen, label.Content, r.fonts.Face(size), op)
}

func align(a components.Align) text.Align {
	if a == components.AlignStart {
		return text.AlignStart
	}
	return text.AlignCenter
}

// drawLoading uses the debug font; the game font is not loaded yet.
func (r *Renderer) drawLoading(screen *ebiten.Image, v view) {
	mid := v.point(cfg.Field.Middle())
	ebitenutil.DebugPrintAt(screen, "LOADING...", int(mid.X)-30, int(mid.Y))
}

// drawFailures lists the assets that could not be loaded in a red banner.
func (r *Renderer) drawFailures(screen *ebiten.Image, v view, failures []string) {
	msg := "MISSING ASSETS:\n" + strings.Join(failures, "\n")
	lines := len(failures) + 1
	size := 18 * v.textScale
	lineH := size * 1.3
	if r.fonts != nil {
		lineH = r.fonts.LineHeight(size)
	}
	height := float32(lineH*float64(lines) + 8)
	vector.FillRect(screen, 0, float32(v.height)-height, float32(v.width), height, color.RGBA{R: 120, A: 200}, false)
	if r.fonts == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LineSpacing = lineH
	op.GeoM.Translate(8, v.height-float64(height)+4)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, msg, r.fonts.Face(size), op)
}

// view maps field units to screen pixels for one frame.
type view struct {
	width, height float64
	scale         float64 // Pixels per field unit
	textScale     float64
}

func newView(screen *ebiten.Image) view {
	b := screen.Bounds()
	h := float64(b.Dy())
	return view{
		width:     float64(b.Dx()),
		height:    h,
		scale:     h / cfg.Field.Height,
		textScale: h / cfg.C.BaseTextH,
	}
}

// point converts a field position (y up) to screen pixels (y down).
func (v view) point(p gamemath.Vec2) gamemath.Vec2 {
	return gamemath.V(p.X*v.scale, v.height-p.Y*v.scale)
}
