package sliders

// StepFeedback is what the presentation layer needs to draw a stepped
// slider. ThumbCenterX follows the pointer while dragging; Step only changes
// when a gesture ends.
type StepFeedback struct {
	Step         int
	StepCount    int
	ThumbCenterX float64
	FillExtent   float64
	State        GestureState
}

// StepSlider is the discrete stepping engine. A whole gesture resolves into
// at most one step of movement, decided when the gesture ends.
type StepSlider struct {
	steps         int
	current       int
	trackLength   float64
	thumbDiameter float64
	rangeSpace    float64

	state       GestureState
	translation float64
	observers   []func(StepFeedback)
}

// NewStepSlider builds an engine with the given number of steps (at least
// one). The thumb starts on the middle step.
func NewStepSlider(steps int) *StepSlider {
	if steps < 1 {
		steps = 1
	}
	return &StepSlider{steps: steps, current: steps / 2}
}

// OnChange registers an observer called after every state change.
func (s *StepSlider) OnChange(f func(StepFeedback)) {
	if f != nil {
		s.observers = append(s.observers, f)
	}
}

// Step returns the current step index in [0, StepCount()].
func (s *StepSlider) Step() int { return s.current }

// StepCount returns the number of segments on the track.
func (s *StepSlider) StepCount() int { return s.steps }

// State returns the gesture state.
func (s *StepSlider) State() GestureState { return s.state }

// RangeSpace returns the pixel distance between two adjacent anchors.
func (s *StepSlider) RangeSpace() float64 { return s.rangeSpace }

// Anchor returns the offset of step n from the first anchor.
func (s *StepSlider) Anchor(n int) float64 { return float64(n) * s.rangeSpace }

// Layout records the track geometry and re-derives rangeSpace. Idempotent.
func (s *StepSlider) Layout(trackLength, thumbDiameter float64) {
	s.trackLength = nonNegative(trackLength)
	s.thumbDiameter = nonNegative(thumbDiameter)
	span := s.trackLength - s.thumbDiameter
	if span < 0 {
		span = 0
	}
	s.rangeSpace = span / float64(s.steps)
	s.emit()
}

// SetStep moves directly to step n, clamped to [0, StepCount()].
func (s *StepSlider) SetStep(n int) {
	n = clampStep(n, s.steps)
	if n == s.current {
		return
	}
	s.current = n
	s.emit()
}

// BeginDrag starts tracking a gesture.
func (s *StepSlider) BeginDrag() {
	if s.state == Dragging {
		return
	}
	s.state = Dragging
	s.translation = 0
}

// Drag accumulates translation. The step itself is left alone until EndDrag.
func (s *StepSlider) Drag(dx float64) {
	if s.state == Idle {
		s.BeginDrag()
	}
	s.translation += finite(dx, 0)
	s.emit()
}

// EndDrag resolves the gesture: the thumb moves one step toward the side the
// pointer was released on, however far it travelled.
func (s *StepSlider) EndDrag() {
	if s.state == Idle {
		return
	}
	target := s.clampCenter(RoundHalfEven(s.anchorCenter(s.current) + s.translation))
	anchor := RoundHalfEven(s.anchorCenter(s.current))
	next := s.current
	switch {
	case target > anchor:
		next++
	case target < anchor:
		next--
	}
	s.current = clampStep(next, s.steps)
	s.state = Idle
	s.translation = 0
	s.emit()
}

// CancelDrag discards the gesture without touching the step.
func (s *StepSlider) CancelDrag() {
	if s.state == Idle {
		return
	}
	s.state = Idle
	s.translation = 0
	s.emit()
}

// Feedback returns the render feedback for the current state.
func (s *StepSlider) Feedback() StepFeedback {
	rest := s.anchorCenter(s.current)
	center := rest
	if s.state == Dragging {
		center = s.clampCenter(rest + s.translation)
	}
	return StepFeedback{
		Step:         s.current,
		StepCount:    s.steps,
		ThumbCenterX: center,
		FillExtent:   rest,
		State:        s.state,
	}
}

// anchorCenter is the thumb centre, in track coordinates, resting on step n.
func (s *StepSlider) anchorCenter(n int) float64 {
	return s.Anchor(n) + s.thumbDiameter/2
}

// clampCenter keeps the whole thumb on the track.
func (s *StepSlider) clampCenter(x float64) float64 {
	r := s.thumbDiameter / 2
	return clampFloat64(x, r, s.trackLength-r)
}

func clampStep(n, steps int) int {
	if n < 0 {
		return 0
	}
	if n > steps {
		return steps
	}
	return n
}

func (s *StepSlider) emit() {
	if len(s.observers) == 0 {
		return
	}
	fb := s.Feedback()
	for _, f := range s.observers {
		f(fb)
	}
}
