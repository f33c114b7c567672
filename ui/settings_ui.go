// Package ui holds the in-game settings overlay.
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/flyshoot/settings"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const volumeStep = 0.1

// SettingsUI is the overlay toggled with Escape. Every change is applied
// through OnChange right away.
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings settings.Settings

	OnChange func(settings.Settings)
	OnClose  func()

	musicLabel    *widget.Label
	sfxLabel      *widget.Label
	muteLabel     *widget.Label
	screenLabel   *widget.Label
	hitboxesLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

func NewSettingsUI(current settings.Settings, onChange func(settings.Settings), onClose func()) *SettingsUI {
	sui := &SettingsUI{
		Settings: current,
		OnChange: onChange,
		OnClose:  onClose,
	}
	sui.loadFonts()
	sui.buildUI()
	sui.refresh()
	return sui
}

func (sui *SettingsUI) loadFonts() {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	sui.titleFace = &text.GoTextFace{Source: source, Size: 40}
	sui.normalFace = &text.GoTextFace{Source: source, Size: 26}
}

func (sui *SettingsUI) buildUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 40, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	))

	sui.musicLabel = sui.addRow(panel,
		sui.button("-", func() { sui.Settings.MusicVolume = stepVolume(sui.Settings.MusicVolume, -volumeStep) }),
		sui.button("+", func() { sui.Settings.MusicVolume = stepVolume(sui.Settings.MusicVolume, volumeStep) }),
	)
	sui.sfxLabel = sui.addRow(panel,
		sui.button("-", func() { sui.Settings.SFXVolume = stepVolume(sui.Settings.SFXVolume, -volumeStep) }),
		sui.button("+", func() { sui.Settings.SFXVolume = stepVolume(sui.Settings.SFXVolume, volumeStep) }),
	)
	sui.muteLabel = sui.addRow(panel,
		sui.button("Toggle", func() { sui.Settings.Muted = !sui.Settings.Muted }),
	)
	sui.screenLabel = sui.addRow(panel,
		sui.button("Toggle", func() { sui.Settings.Fullscreen = !sui.Settings.Fullscreen }),
	)
	sui.hitboxesLabel = sui.addRow(panel,
		sui.button("Toggle", func() { sui.Settings.ShowHitboxes = !sui.Settings.ShowHitboxes }),
	)

	closeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 40)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Close", &sui.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnClose != nil {
				sui.OnClose()
			}
		}),
	)
	panel.AddChild(closeButton)

	root.AddChild(panel)
	sui.UI = &ebitenui.UI{Container: root}
}

// addRow appends a label followed by buttons and returns the label.
func (sui *SettingsUI) addRow(panel *widget.Container, buttons ...*widget.Button) *widget.Label {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	label := widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(280, 0))),
	)
	row.AddChild(label)
	for _, b := range buttons {
		row.AddChild(b)
	}
	panel.AddChild(row)
	return label
}

// button runs change, then refreshes the labels and reports the new settings.
func (sui *SettingsUI) button(label string, change func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 36)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &sui.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			change()
			sui.refresh()
			if sui.OnChange != nil {
				sui.OnChange(sui.Settings)
			}
		}),
	)
}

// SetSettings replaces the values shown without reporting a change.
func (sui *SettingsUI) SetSettings(s settings.Settings) {
	sui.Settings = s
	sui.refresh()
}

func (sui *SettingsUI) refresh() {
	s := sui.Settings
	sui.musicLabel.Label = fmt.Sprintf("Music: %d%%", percent(s.MusicVolume))
	sui.sfxLabel.Label = fmt.Sprintf("Effects: %d%%", percent(s.SFXVolume))
	sui.muteLabel.Label = "Muted: " + onOff(s.Muted)
	sui.screenLabel.Label = "Fullscreen: " + onOff(s.Fullscreen)
	sui.hitboxesLabel.Label = "Hit boxes: " + onOff(s.ShowHitboxes)
}

func (sui *SettingsUI) Update() {
	sui.UI.Update()
}

func (sui *SettingsUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{220, 220, 220, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{150, 150, 150, 255},
	}
}

func stepVolume(v, step float64) float64 {
	return min(max(v+step, 0), 1)
}

func percent(v float64) int {
	return int(v*100 + 0.5)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
