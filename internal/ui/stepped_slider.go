package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/pricesliders/internal/logging"
	"github.com/edward-ap/pricesliders/internal/sliders"
)

const (
	stepTrackHeight float32 = 6
	tickWidth       float32 = 2
	tickHeight      float32 = 8
	tickLabelGap    float32 = 2
)

// SteppedSlider is a horizontal slider that snaps between discrete steps.
// The thumb follows the pointer during a drag and settles one step toward
// the release side when the drag ends. Variants with a gradient draw the fill
// as a red-to-green sweep and show labelled ticks under the track.
type SteppedSlider struct {
	widget.BaseWidget
	ThumbSize float32
	OnChanged func(sliders.StepFeedback)

	variant sliders.Variant
	model   *sliders.StepSlider
}

// NewSteppedSlider creates a slider for the given variant.
func NewSteppedSlider(v sliders.Variant) *SteppedSlider {
	m := v.NewSlider()
	s := &SteppedSlider{ThumbSize: DefaultThumbSize, variant: v, model: m}
	m.OnChange(func(fb sliders.StepFeedback) {
		if s.OnChanged != nil {
			s.OnChanged(fb)
		}
	})
	s.ExtendBaseWidget(s)
	return s
}

// NewFuelSlider creates the 4-step fuel gauge.
func NewFuelSlider() *SteppedSlider { return NewSteppedSlider(sliders.Fuel()) }

func (s *SteppedSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &steppedSliderRenderer{
		s:     s,
		track: canvas.NewRectangle(theme.ShadowColor()),
		fill:  canvas.NewRectangle(theme.PrimaryColor()),
		thumb: canvas.NewCircle(theme.ForegroundColor()),
	}
	r.track.CornerRadius = 3
	r.fill.CornerRadius = 3
	r.objs = []fyne.CanvasObject{r.track}
	if s.variant.Gradient {
		r.stops = gradientStops(fuelHueEmpty, fuelHueFull, fuelSegments)
		for i := 0; i < len(r.stops)-1; i++ {
			g := canvas.NewHorizontalGradient(r.stops[i], r.stops[i+1])
			r.segments = append(r.segments, g)
			r.objs = append(r.objs, g)
		}
	} else {
		r.objs = append(r.objs, r.fill)
	}
	for _, t := range s.variant.Ticks {
		mark := canvas.NewRectangle(theme.DisabledColor())
		lbl := NewStaticLabel(t.Label)
		r.ticks = append(r.ticks, mark)
		r.labels = append(r.labels, lbl)
		r.objs = append(r.objs, mark, lbl.CanvasObject())
	}
	r.objs = append(r.objs, r.thumb)
	return r
}

// Variant returns the configuration the slider was built with.
func (s *SteppedSlider) Variant() sliders.Variant { return s.variant }

// Model exposes the underlying stepping engine.
func (s *SteppedSlider) Model() *sliders.StepSlider { return s.model }

// Step returns the current step.
func (s *SteppedSlider) Step() int { return s.model.Step() }

// SetStep jumps to step n, clamped to the valid range.
func (s *SteppedSlider) SetStep(n int) {
	s.model.SetStep(n)
	s.Refresh()
}

// Dragged tracks the pointer; the step is only resolved on DragEnd.
func (s *SteppedSlider) Dragged(e *fyne.DragEvent) {
	if e == nil {
		return
	}
	s.model.Drag(float64(e.Dragged.DX))
	s.Refresh()
}

// DragEnd resolves the gesture into at most one step of movement.
func (s *SteppedSlider) DragEnd() {
	before := s.model.Step()
	s.model.EndDrag()
	logging.L().Debug().
		Str("slider", s.variant.Name).
		Int("from", before).
		Int("to", s.model.Step()).
		Msg("step resolved")
	s.Refresh()
}

// CancelDrag drops the gesture and returns the thumb to its step.
func (s *SteppedSlider) CancelDrag() {
	if s.model.State() != sliders.Dragging {
		return
	}
	s.model.CancelDrag()
	logging.L().Trace().Str("slider", s.variant.Name).Msg("drag cancelled")
	s.Refresh()
}

type steppedSliderRenderer struct {
	s        *SteppedSlider
	track    *canvas.Rectangle
	fill     *canvas.Rectangle
	thumb    *canvas.Circle
	segments []*canvas.LinearGradient
	stops    []color.NRGBA
	ticks    []*canvas.Rectangle
	labels   []*StaticLabel
	objs     []fyne.CanvasObject

	laidOut   bool
	lastTrack float32
	lastThumb float32
}

func (r *steppedSliderRenderer) Layout(sz fyne.Size) {
	thumb := thumbOrDefault(r.s.ThumbSize)
	if !r.laidOut || sz.Width != r.lastTrack || thumb != r.lastThumb {
		r.laidOut, r.lastTrack, r.lastThumb = true, sz.Width, thumb
		r.s.model.Layout(float64(sz.Width), float64(thumb))
	}
	fb := r.s.model.Feedback()
	cy := thumb / 2
	left := thumb / 2
	span := clampFloat32(sz.Width-thumb, 0, sz.Width)

	r.track.Move(fyne.NewPos(left, cy-stepTrackHeight/2))
	r.track.Resize(fyne.NewSize(span, stepTrackHeight))

	fillW := clampFloat32(float32(fb.FillExtent)-left, 0, span)
	if len(r.segments) > 0 {
		r.layoutGradient(left, cy, span, fillW)
	} else {
		r.fill.Move(fyne.NewPos(left, cy-stepTrackHeight/2))
		r.fill.Resize(fyne.NewSize(fillW, stepTrackHeight))
	}

	xs := r.s.variant.TickPositions(float64(sz.Width), float64(thumb))
	tickY := cy + thumb/2
	for i, mark := range r.ticks {
		x := float32(xs[i])
		mark.Move(fyne.NewPos(x-tickWidth/2, tickY))
		mark.Resize(fyne.NewSize(tickWidth, tickHeight))
		r.labels[i].CenterAt(x, tickY+tickHeight+tickLabelGap)
	}

	tx := float32(fb.ThumbCenterX)
	r.thumb.Resize(fyne.NewSize(thumb, thumb))
	r.thumb.Move(fyne.NewPos(tx-thumb/2, cy-thumb/2))
}

// layoutGradient lays the gradient segments end to end across the track and
// cuts the fill at fillW, blending the last visible segment's end colour so
// the cut matches the full sweep at that point.
func (r *steppedSliderRenderer) layoutGradient(left, cy, span, fillW float32) {
	n := len(r.segments)
	segW := span / float32(n)
	for i, g := range r.segments {
		x0 := float32(i) * segW
		if segW <= 0 || fillW <= x0 {
			g.Hide()
			continue
		}
		w := fillW - x0
		if w > segW {
			w = segW
		}
		g.StartColor = r.stops[i]
		g.EndColor = lerpNRGBA(r.stops[i], r.stops[i+1], float64(w/segW))
		g.Move(fyne.NewPos(left+x0, cy-stepTrackHeight/2))
		g.Resize(fyne.NewSize(w, stepTrackHeight))
		g.Show()
	}
}

func (r *steppedSliderRenderer) MinSize() fyne.Size {
	thumb := thumbOrDefault(r.s.ThumbSize)
	h := thumb
	if len(r.ticks) > 0 {
		var lh float32
		for _, l := range r.labels {
			if l.Size().Height > lh {
				lh = l.Size().Height
			}
		}
		h += tickHeight + tickLabelGap + lh
	}
	steps := float32(r.s.model.StepCount())
	return fyne.NewSize(thumb*(steps+1), h)
}

func (r *steppedSliderRenderer) Refresh() {
	r.track.FillColor = theme.ShadowColor()
	r.fill.FillColor = theme.PrimaryColor()
	r.thumb.FillColor = theme.ForegroundColor()
	for _, m := range r.ticks {
		m.FillColor = theme.DisabledColor()
	}
	r.Layout(r.s.Size())
	for _, o := range r.objs {
		canvas.Refresh(o)
	}
}

func (r *steppedSliderRenderer) Destroy() {}

func (r *steppedSliderRenderer) Objects() []fyne.CanvasObject { return r.objs }
