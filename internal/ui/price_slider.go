package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/pricesliders/internal/logging"
	"github.com/edward-ap/pricesliders/internal/sliders"
)

const (
	priceTrackHeight   float32 = 5
	priceFillHeight    float32 = 6
	priceDividerWidth  float32 = 2
	priceDividerHeight float32 = 22
	priceLabelGap      float32 = 4
)

// PriceSlider is a horizontal price picker: a thumb over a track split at a
// suggested price, with the suggestion marked above the track and the
// current price shown under the thumb.
type PriceSlider struct {
	widget.BaseWidget
	ThumbSize float32
	OnChanged func(sliders.PriceFeedback)

	model *sliders.PriceSlider
}

// NewPriceSlider creates a price slider over [min, max] with the divider at
// suggested. It fails when suggested lies outside the range.
func NewPriceSlider(min, max, suggested float64, opts ...sliders.PriceOption) (*PriceSlider, error) {
	opts = append(opts, sliders.WithSuggestedPrice(suggested))
	m, err := sliders.NewPriceSlider(min, max, opts...)
	if err != nil {
		return nil, err
	}
	s := &PriceSlider{ThumbSize: DefaultThumbSize, model: m}
	m.OnChange(func(fb sliders.PriceFeedback) {
		if s.OnChanged != nil {
			s.OnChanged(fb)
		}
	})
	s.ExtendBaseWidget(s)
	return s, nil
}

func (s *PriceSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &priceSliderRenderer{
		s:          s,
		track:      canvas.NewRectangle(theme.ShadowColor()),
		fill:       canvas.NewRectangle(theme.PrimaryColor()),
		divider:    canvas.NewRectangle(theme.PrimaryColor()),
		thumb:      canvas.NewCircle(theme.ForegroundColor()),
		suggestion: canvas.NewText("", theme.ForegroundColor()),
		price:      canvas.NewText("", theme.ErrorColor()),
	}
	r.track.CornerRadius = 3
	r.fill.CornerRadius = 3
	r.suggestion.Alignment = fyne.TextAlignCenter
	r.price.Alignment = fyne.TextAlignCenter
	r.price.TextStyle = fyne.TextStyle{Bold: true}
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.suggestion, r.divider, r.thumb, r.price}
	return r
}

// Model exposes the underlying slider state.
func (s *PriceSlider) Model() *sliders.PriceSlider { return s.model }

// Value returns the current price.
func (s *PriceSlider) Value() float64 { return s.model.Value() }

// SetValue moves the thumb to v and refreshes.
func (s *PriceSlider) SetValue(v float64) {
	s.model.SetValue(v)
	s.Refresh()
}

// SetSuggestedPrice moves the divider; see sliders.PriceSlider.
func (s *PriceSlider) SetSuggestedPrice(p float64) error {
	if err := s.model.SetSuggestedPrice(p); err != nil {
		return err
	}
	s.Refresh()
	return nil
}

// SetRange replaces the bounds; see sliders.PriceSlider.
func (s *PriceSlider) SetRange(min, max float64) error {
	if err := s.model.SetRange(min, max); err != nil {
		return err
	}
	s.Refresh()
	return nil
}

// Dragged moves the thumb by the horizontal delta of the pointer.
func (s *PriceSlider) Dragged(e *fyne.DragEvent) {
	if e == nil {
		return
	}
	s.model.Drag(float64(e.Dragged.DX))
	s.Refresh()
}

// DragEnd commits the value reached by the drag.
func (s *PriceSlider) DragEnd() {
	s.model.EndDrag()
	logging.L().Debug().Str("slider", "price").Float64("value", s.model.Value()).Msg("drag ended")
	s.Refresh()
}

// CancelDrag restores the value the slider had when the drag began.
func (s *PriceSlider) CancelDrag() {
	if s.model.State() != sliders.Dragging {
		return
	}
	s.model.CancelDrag()
	logging.L().Debug().Str("slider", "price").Float64("value", s.model.Value()).Msg("drag cancelled")
	s.Refresh()
}

type priceSliderRenderer struct {
	s          *PriceSlider
	track      *canvas.Rectangle
	fill       *canvas.Rectangle
	divider    *canvas.Rectangle
	thumb      *canvas.Circle
	suggestion *canvas.Text
	price      *canvas.Text
	objs       []fyne.CanvasObject

	laidOut   bool
	lastTrack float32
	lastThumb float32
}

func (r *priceSliderRenderer) Layout(sz fyne.Size) {
	thumb := thumbOrDefault(r.s.ThumbSize)
	if !r.laidOut || sz.Width != r.lastTrack || thumb != r.lastThumb {
		r.laidOut, r.lastTrack, r.lastThumb = true, sz.Width, thumb
		r.s.model.Layout(float64(sz.Width), float64(thumb))
	}
	fb := r.s.model.Feedback()

	r.suggestion.Text = fb.SuggestionLabel
	r.price.Text = fb.Label
	labelH := r.suggestion.MinSize().Height

	// rows: suggestion label, track band, price label
	band := priceDividerHeight
	if thumb > band {
		band = thumb
	}
	cy := labelH + band/2

	r.track.Move(fyne.NewPos(thumb/2, cy-priceTrackHeight/2))
	r.track.Resize(fyne.NewSize(clampFloat32(sz.Width-thumb, 0, sz.Width), priceTrackHeight))

	r.fill.Move(fyne.NewPos(thumb/2, cy-priceFillHeight/2))
	r.fill.Resize(fyne.NewSize(float32(fb.FillExtent), priceFillHeight))

	px := float32(fb.PivotX)
	r.divider.Move(fyne.NewPos(px-priceDividerWidth/2, cy-priceDividerHeight/2))
	r.divider.Resize(fyne.NewSize(priceDividerWidth, priceDividerHeight))

	r.suggestion.Resize(r.suggestion.MinSize())
	r.suggestion.Move(fyne.NewPos(px-r.suggestion.Size().Width/2, 0))

	tx := float32(fb.ThumbCenterX)
	r.thumb.Resize(fyne.NewSize(thumb, thumb))
	r.thumb.Move(fyne.NewPos(tx-thumb/2, cy-thumb/2))

	// keep the price under the thumb but inside the widget
	pw := r.price.MinSize().Width
	r.price.Resize(r.price.MinSize())
	r.price.Move(fyne.NewPos(clampFloat32(tx-pw/2, 0, sz.Width-pw), cy+band/2+priceLabelGap))
}

func (r *priceSliderRenderer) MinSize() fyne.Size {
	thumb := thumbOrDefault(r.s.ThumbSize)
	band := priceDividerHeight
	if thumb > band {
		band = thumb
	}
	labelH := r.suggestion.MinSize().Height
	w := thumb * 4
	if pw := r.price.MinSize().Width + thumb; pw > w {
		w = pw
	}
	return fyne.NewSize(w, labelH*2+band+priceLabelGap)
}

func (r *priceSliderRenderer) Refresh() {
	r.track.FillColor = theme.ShadowColor()
	r.fill.FillColor = theme.PrimaryColor()
	r.divider.FillColor = theme.PrimaryColor()
	r.thumb.FillColor = theme.ForegroundColor()
	r.suggestion.Color = theme.ForegroundColor()
	r.price.Color = theme.ErrorColor()
	r.Layout(r.s.Size())
	for _, o := range r.objs {
		canvas.Refresh(o)
	}
}

func (r *priceSliderRenderer) Destroy() {}

func (r *priceSliderRenderer) Objects() []fyne.CanvasObject { return r.objs }
