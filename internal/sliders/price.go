package sliders

import "strconv"

const (
	// DefaultMinPrice is the lower bound used when none is configured.
	DefaultMinPrice = 0
	// DefaultMaxPrice is the upper bound used when none is configured.
	DefaultMaxPrice = 400
	// PricePrefix is prepended to the formatted value label.
	PricePrefix = "R$ "
)

// PriceFeedback is everything the presentation layer needs to draw the
// price slider after a state change. Lengths are in track pixels.
type PriceFeedback struct {
	Value float64
	// ThumbOffset is the thumb inset from the right end of the draggable
	// span, in [-(trackLength-thumbLength), 0].
	ThumbOffset float64
	// ThumbCenterX is the thumb centre measured from the left track edge.
	ThumbCenterX float64
	// FillExtent is the width of the selected part of the inset track.
	FillExtent float64
	// PivotX is where the suggestion divider sits.
	PivotX          float64
	Label           string
	SuggestionLabel string
	State           GestureState
}

// PriceOption customises a PriceSlider at construction time.
type PriceOption func(*PriceSlider)

// WithResetOnRangeChange makes SetRange and SetSuggestedPrice jump the value
// back to the maximum instead of keeping it re-clamped.
func WithResetOnRangeChange(reset bool) PriceOption {
	return func(s *PriceSlider) { s.resetOnRangeChange = reset }
}

// WithSuggestedPrice sets the initial pivot. The value must lie inside the
// range passed to NewPriceSlider.
func WithSuggestedPrice(p float64) PriceOption {
	return func(s *PriceSlider) { s.pendingPivot = &p }
}

// PriceSlider is the continuous slider model: a thumb dragged along a track
// whose value space is split at the suggested price.
type PriceSlider struct {
	split       SplitRange
	value       float64
	trackLength float64
	thumbLength float64
	offset      float64

	// sample is the drag delta not yet applied to offset.
	sample     float64
	state      GestureState
	startValue float64

	resetOnRangeChange bool
	pendingPivot       *float64
	observers          []func(PriceFeedback)
}

// NewPriceSlider builds a price slider over [min, max]. The suggested price
// and the value both default to the rounded maximum.
func NewPriceSlider(min, max float64, opts ...PriceOption) (*PriceSlider, error) {
	r, err := NewRange(min, max)
	if err != nil {
		return nil, err
	}
	s := &PriceSlider{}
	for _, opt := range opts {
		opt(s)
	}
	pivot := r.Clamp(RoundHalfEven(max))
	if s.pendingPivot != nil {
		pivot = *s.pendingPivot
		s.pendingPivot = nil
	}
	split, err := NewSplitRange(min, max, pivot)
	if err != nil {
		return nil, err
	}
	s.split = split
	s.value = s.roundedMax()
	return s, nil
}

// OnChange registers an observer called after every state change.
func (s *PriceSlider) OnChange(f func(PriceFeedback)) {
	if f != nil {
		s.observers = append(s.observers, f)
	}
}

// Value returns the current value.
func (s *PriceSlider) Value() float64 { return s.value }

// Offset returns the current thumb offset.
func (s *PriceSlider) Offset() float64 { return s.offset }

// SplitRange returns the active split range.
func (s *PriceSlider) SplitRange() SplitRange { return s.split }

// SuggestedPrice returns the pivot.
func (s *PriceSlider) SuggestedPrice() float64 { return s.split.Pivot }

// State returns the gesture state.
func (s *PriceSlider) State() GestureState { return s.state }

// Layout records new track geometry and re-derives the thumb offset from the
// current value. Safe to call on every layout pass.
func (s *PriceSlider) Layout(trackLength, thumbLength float64) {
	s.trackLength = nonNegative(trackLength)
	s.thumbLength = nonNegative(thumbLength)
	s.reposition()
	s.emit()
}

// BeginDrag starts a gesture and remembers the value to restore on cancel.
func (s *PriceSlider) BeginDrag() {
	if s.state == Dragging {
		return
	}
	s.state = Dragging
	s.sample = 0
	s.startValue = s.value
}

// Drag applies a horizontal delta (positive = rightward). The offset is
// clamped to the draggable span and the unconsumed part of the delta is
// dropped, so reversing direction after hitting an end responds at once.
func (s *PriceSlider) Drag(dx float64) {
	if s.state == Idle {
		s.BeginDrag()
	}
	s.sample += finite(dx, 0)
	size := s.size()
	if size <= 0 {
		s.sample = 0
		s.offset = 0
		s.value = s.split.Overall.Min
		s.emit()
		return
	}
	s.offset = clampFloat64(s.offset+s.sample, -size, 0)
	s.sample = 0
	s.value = s.normalize(s.split.ValueAt(OffsetPercent(s.offset, size)))
	s.emit()
}

// EndDrag finishes the gesture, keeping the value reached.
func (s *PriceSlider) EndDrag() {
	if s.state == Idle {
		return
	}
	s.state = Idle
	s.sample = 0
	s.emit()
}

// CancelDrag aborts the gesture and restores the pre-gesture value. The
// range or track may have changed mid-gesture, so the value is re-clamped
// and the thumb placed from the current geometry.
func (s *PriceSlider) CancelDrag() {
	if s.state == Idle {
		return
	}
	s.state = Idle
	s.sample = 0
	s.value = s.normalize(s.startValue)
	s.reposition()
	s.emit()
}

// SetValue moves the slider to v, clamped to the range and rounded, and
// repositions the thumb through the inverse mapping.
func (s *PriceSlider) SetValue(v float64) {
	v = s.normalize(finite(v, s.value))
	if v == s.value {
		return
	}
	s.value = v
	s.reposition()
	s.emit()
}

// SetRange replaces the overall bounds. The suggested price is pulled into
// the new range when it falls outside.
func (s *PriceSlider) SetRange(min, max float64) error {
	r, err := NewRange(min, max)
	if err != nil {
		return err
	}
	split, err := NewSplitRange(min, max, r.Clamp(s.split.Pivot))
	if err != nil {
		return err
	}
	s.applySplit(split)
	return nil
}

// SetSuggestedPrice moves the pivot. A price outside the current range is
// rejected and leaves the slider untouched.
func (s *PriceSlider) SetSuggestedPrice(p float64) error {
	split, err := NewSplitRange(s.split.Overall.Min, s.split.Overall.Max, p)
	if err != nil {
		return err
	}
	s.applySplit(split)
	return nil
}

// Feedback returns the render feedback for the current state.
func (s *PriceSlider) Feedback() PriceFeedback {
	size := s.size()
	if size < 0 {
		size = 0
	}
	fill := size + s.offset
	return PriceFeedback{
		Value:           s.value,
		ThumbOffset:     s.offset,
		ThumbCenterX:    fill + s.thumbLength/2,
		FillExtent:      fill,
		PivotX:          s.trackLength / 2,
		Label:           FormatPrice(s.value),
		SuggestionLabel: strconv.Itoa(int(RoundHalfEven(s.split.Pivot))),
		State:           s.state,
	}
}

// FormatPrice renders a value the way the price label shows it.
func FormatPrice(v float64) string {
	return PricePrefix + strconv.FormatFloat(RoundHalfEven(v), 'f', 0, 64)
}

func (s *PriceSlider) applySplit(split SplitRange) {
	s.split = split
	if s.resetOnRangeChange {
		s.value = s.roundedMax()
	} else {
		s.value = s.normalize(s.value)
	}
	s.reposition()
	s.emit()
}

func (s *PriceSlider) size() float64 { return s.trackLength - s.thumbLength }

func (s *PriceSlider) roundedMax() float64 {
	return s.split.Overall.Clamp(RoundHalfEven(s.split.Overall.Max))
}

// normalize rounds and clamps; rounding can step past non-integer bounds.
func (s *PriceSlider) normalize(v float64) float64 {
	return s.split.Overall.Clamp(RoundHalfEven(s.split.Overall.Clamp(v)))
}

func (s *PriceSlider) reposition() {
	s.offset = PercentOffset(s.split.PercentOf(s.value), s.size())
}

func (s *PriceSlider) emit() {
	if len(s.observers) == 0 {
		return
	}
	fb := s.Feedback()
	for _, f := range s.observers {
		f(fb)
	}
}
