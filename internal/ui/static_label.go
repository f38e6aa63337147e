package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// StaticLabel is a short caption rasterised once into an image, used for
// tick labels that never change. It avoids a text object per tick on
// sliders that re-layout on every drag event.
type StaticLabel struct {
	text string
	col  color.Color
	img  *canvas.Image
	size fyne.Size
}

// NewStaticLabel rasterises text with the current theme font and colour.
func NewStaticLabel(text string) *StaticLabel {
	l := &StaticLabel{text: text, col: theme.ForegroundColor()}
	l.render()
	return l
}

// CanvasObject exposes the underlying canvas.Image for layout containers.
func (l *StaticLabel) CanvasObject() fyne.CanvasObject { return l.img }

// Size is the natural size of the rasterised caption.
func (l *StaticLabel) Size() fyne.Size { return l.size }

// Text returns the caption.
func (l *StaticLabel) Text() string { return l.text }

// CenterAt places the caption so its top edge centre sits at (x, y).
func (l *StaticLabel) CenterAt(x, y float32) {
	l.img.Resize(l.size)
	l.img.Move(fyne.NewPos(x-l.size.Width/2, y))
}

func (l *StaticLabel) render() {
	face := pickFace(0.7)
	if closer, ok := face.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	d := &font.Drawer{Face: face}
	adv := d.MeasureString(l.text)
	pad := 2
	metrics := face.Metrics()
	w := adv.Ceil() + pad
	h := (metrics.Ascent + metrics.Descent).Ceil() + pad
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = dst
	d.Src = image.NewUniform(color.NRGBAModel.Convert(l.col))
	d.Dot = fixed.P(pad/2, metrics.Ascent.Ceil()+pad/2)
	d.DrawString(l.text)

	img := canvas.NewImageFromImage(dst)
	img.FillMode = canvas.ImageFillContain
	scale := float32(currentScale())
	l.size = fyne.NewSize(float32(w)/scale, float32(h)/scale)
	img.SetMinSize(l.size)
	l.img = img
}

// pickFace loads the current theme font scaled to the given share of the
// theme text size, falling back to a bitmap face when unavailable.
func pickFace(share float64) font.Face {
	res := theme.TextFont()
	targetPt := float64(theme.TextSize())
	if targetPt <= 0 {
		targetPt = 14
	}
	targetPt *= currentScale() * share
	if targetPt < 6 {
		targetPt = 6
	}
	if res != nil {
		if data := res.Content(); len(data) > 0 {
			if ttf, err := opentype.Parse(data); err == nil {
				if face, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: targetPt, DPI: 96, Hinting: font.HintingFull}); err == nil {
					return face
				}
			}
		}
	}
	return basicfont.Face7x13
}
