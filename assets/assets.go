// Package assets loads the game's images, sounds and font from a directory
// on disk. Loading runs in the background and never fails as a whole: every
// file that cannot be read is recorded and the game draws placeholders.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync/atomic"

	cfg "github.com/automoto/flyshoot/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Library holds everything read from the assets directory. Its maps are
// written only by the loader goroutine and read only after Done reports true.
type Library struct {
	dir string

	decoded map[cfg.SpriteID]image.Image
	sfx     map[cfg.SoundID][]byte
	music   map[cfg.MusicID][]byte
	font    []byte
	errs    []error

	images map[cfg.SpriteID]*ebiten.Image
	frames map[frameKey]*ebiten.Image

	done atomic.Bool
}

type frameKey struct {
	id    cfg.SpriteID
	frame int
}

// Load starts reading dir in the background and returns immediately. An
// empty dir yields an empty library with no failures.
func Load(dir string) *Library {
	l := newLibrary(dir)
	go l.load()
	return l
}

func newLibrary(dir string) *Library {
	return &Library{
		dir:     dir,
		decoded: make(map[cfg.SpriteID]image.Image),
		sfx:     make(map[cfg.SoundID][]byte),
		music:   make(map[cfg.MusicID][]byte),
		images:  make(map[cfg.SpriteID]*ebiten.Image),
		frames:  make(map[frameKey]*ebiten.Image),
	}
}

func (l *Library) load() {
	defer l.done.Store(true)
	if l.dir == "" {
		return
	}

	for id, sheet := range cfg.Sheets {
		img, err := l.readImage(sheet.Path)
		if err != nil {
			l.errs = append(l.errs, err)
			continue
		}
		l.decoded[id] = img
	}
	for id, path := range cfg.Sound.SFXPaths {
		if data, err := l.read(path); err != nil {
			l.errs = append(l.errs, err)
		} else {
			l.sfx[id] = data
		}
	}
	for id, path := range cfg.Sound.MusicPaths {
		if data, err := l.read(path); err != nil {
			l.errs = append(l.errs, err)
		} else {
			l.music[id] = data
		}
	}
	if data, err := l.read(cfg.FontPath); err != nil {
		l.errs = append(l.errs, err)
	} else {
		l.font = data
	}
}

func (l *Library) read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (l *Library) readImage(name string) (image.Image, error) {
	data, err := l.read(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return img, nil
}

// Done reports whether the loader finished, successfully or not.
func (l *Library) Done() bool {
	return l.done.Load()
}

// Err joins every load failure, or returns nil.
func (l *Library) Err() error {
	if !l.Done() {
		return nil
	}
	return errors.Join(l.errs...)
}

// Failures lists one message per file that could not be loaded.
func (l *Library) Failures() []string {
	if !l.Done() {
		return nil
	}
	msgs := make([]string, 0, len(l.errs))
	for _, err := range l.errs {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// Frame returns one cell of a sprite sheet, or nil when the sheet is missing.
// Sheets are read left to right, top to bottom.
func (l *Library) Frame(id cfg.SpriteID, frame int) *ebiten.Image {
	if !l.Done() {
		return nil
	}
	key := frameKey{id, frame}
	if img, ok := l.frames[key]; ok {
		return img
	}

	sheet := l.image(id)
	if sheet == nil {
		return nil
	}
	sc := cfg.Sheets[id]
	cols, rows := max(sc.Columns, 1), max(sc.Rows, 1)
	frame = min(max(frame, 0), cols*rows-1)

	b := sheet.Bounds()
	fw, fh := b.Dx()/cols, b.Dy()/rows
	x, y := b.Min.X+frame%cols*fw, b.Min.Y+frame/cols*fh
	img := sheet.SubImage(image.Rect(x, y, x+fw, y+fh)).(*ebiten.Image)
	l.frames[key] = img
	return img
}

// image uploads a decoded sheet to the GPU on first use.
func (l *Library) image(id cfg.SpriteID) *ebiten.Image {
	if img, ok := l.images[id]; ok {
		return img
	}
	decoded, ok := l.decoded[id]
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(decoded)
	l.images[id] = img
	return img
}

// Font returns the raw TTF data, or nil when it could not be read.
func (l *Library) Font() []byte {
	if !l.Done() {
		return nil
	}
	return l.font
}
