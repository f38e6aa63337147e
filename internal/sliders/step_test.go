package sliders

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLaidOutSteps returns an engine whose anchors are exactly 100px apart.
func newLaidOutSteps(steps int) *StepSlider {
	s := NewStepSlider(steps)
	s.Layout(float64(steps)*100+24, 24)
	return s
}

func gesture(s *StepSlider, deltas ...float64) {
	s.BeginDrag()
	for _, d := range deltas {
		s.Drag(d)
	}
	s.EndDrag()
}

func TestStepSliderDefaults(t *testing.T) {
	s := newLaidOutSteps(4)

	assert.Equal(t, 2, s.Step())
	assert.Equal(t, 4, s.StepCount())
	assert.Equal(t, 100.0, s.RangeSpace())
	assert.Equal(t, 200.0, s.Anchor(2))

	fb := s.Feedback()
	assert.Equal(t, 212.0, fb.ThumbCenterX)
	assert.Equal(t, 212.0, fb.FillExtent)

	floor := NewStepSlider(0)
	assert.Equal(t, 1, floor.StepCount(), "step count floors at one")
	assert.Equal(t, 0, floor.Step())
}

func TestStepSliderOneStepPerGesture(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		want   int
	}{
		{name: "short drag right", deltas: []float64{30}, want: 3},
		{name: "between anchors still advances", deltas: []float64{60, 25}, want: 3},
		{name: "far drag right moves only one", deltas: []float64{1000}, want: 3},
		{name: "short drag left", deltas: []float64{-10}, want: 1},
		{name: "far drag left moves only one", deltas: []float64{-900}, want: 1},
		{name: "out and back", deltas: []float64{80, -80}, want: 2},
		{name: "sub-pixel jitter ignored", deltas: []float64{0.3}, want: 2},
		{name: "no movement", deltas: nil, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newLaidOutSteps(4)
			gesture(s, tt.deltas...)
			assert.Equal(t, tt.want, s.Step())
			assert.Equal(t, Idle, s.State())
		})
	}
}

func TestStepSliderStopsAtEnds(t *testing.T) {
	s := newLaidOutSteps(4)

	for i := 0; i < 6; i++ {
		gesture(s, 500)
	}
	assert.Equal(t, 4, s.Step())
	assert.Equal(t, 412.0, s.Feedback().ThumbCenterX)

	for i := 0; i < 6; i++ {
		gesture(s, -500)
	}
	assert.Equal(t, 0, s.Step())
	assert.Equal(t, 12.0, s.Feedback().ThumbCenterX)
}

func TestStepSliderNoMutationWhileDragging(t *testing.T) {
	s := newLaidOutSteps(4)
	var seen []StepFeedback
	s.OnChange(func(fb StepFeedback) { seen = append(seen, fb) })

	s.BeginDrag()
	s.Drag(40)
	s.Drag(40)

	require.Len(t, seen, 2)
	for _, fb := range seen {
		assert.Equal(t, 2, fb.Step)
		assert.Equal(t, Dragging, fb.State)
	}
	assert.Equal(t, 292.0, seen[1].ThumbCenterX, "thumb follows the pointer")
	assert.Equal(t, 212.0, seen[1].FillExtent, "fill stays on the resting anchor")

	s.EndDrag()
	require.Len(t, seen, 3)
	assert.Equal(t, 3, seen[2].Step)
	assert.Equal(t, 312.0, seen[2].ThumbCenterX)
}

func TestStepSliderCancel(t *testing.T) {
	s := newLaidOutSteps(4)

	s.BeginDrag()
	s.Drag(250)
	s.CancelDrag()

	assert.Equal(t, 2, s.Step())
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, 212.0, s.Feedback().ThumbCenterX)

	// the next gesture starts from zero translation
	gesture(s)
	assert.Equal(t, 2, s.Step())
}

func TestStepSliderRandomGesturesStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, steps := range []int{1, 2, 4, 5, 9} {
		s := newLaidOutSteps(steps)
		for i := 0; i < 500; i++ {
			before := s.Step()
			var total float64
			s.BeginDrag()
			for j := rng.Intn(4); j >= 0; j-- {
				d := (rng.Float64() - 0.5) * 600
				total += d
				s.Drag(d)
			}
			if rng.Intn(5) == 0 {
				s.CancelDrag()
				require.Equal(t, before, s.Step())
				continue
			}
			s.EndDrag()

			after := s.Step()
			require.GreaterOrEqual(t, after, 0)
			require.LessOrEqual(t, after, steps)
			require.LessOrEqual(t, math.Abs(float64(after-before)), 1.0)
			if after > before {
				require.Positive(t, total)
			}
			if after < before {
				require.Negative(t, total)
			}
		}
	}
}

func TestStepSliderEmptyTrack(t *testing.T) {
	s := NewStepSlider(4)
	s.Layout(0, 24)

	gesture(s, 100)
	fb := s.Feedback()
	assert.False(t, math.IsNaN(fb.ThumbCenterX))
	assert.Equal(t, 0.0, s.RangeSpace())
	assert.GreaterOrEqual(t, s.Step(), 0)
	assert.LessOrEqual(t, s.Step(), 4)
}

func TestStepSliderSetStepClamps(t *testing.T) {
	s := newLaidOutSteps(4)

	s.SetStep(9)
	assert.Equal(t, 4, s.Step())
	s.SetStep(-3)
	assert.Equal(t, 0, s.Step())
}

func TestStepSliderRelayoutIsIdempotent(t *testing.T) {
	s := newLaidOutSteps(4)
	gesture(s, 10)
	first := s.Feedback()

	s.Layout(424, 24)
	s.Layout(424, 24)

	assert.Equal(t, first, s.Feedback())
}

func TestFuelVariantTicks(t *testing.T) {
	v := Fuel()
	s := v.NewSlider()

	assert.Equal(t, FuelSteps, s.StepCount())
	assert.Equal(t, 2, s.Step())
	assert.True(t, v.Gradient)

	labels := make([]string, 0, len(v.Ticks))
	for _, tick := range v.Ticks {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"E", "1/4", "1/2", "3/4", "F"}, labels)
	assert.Equal(t, []float64{12, 112, 212, 312, 412}, v.TickPositions(424, 24))
	assert.Equal(t, []float64{12, 12, 12, 12, 12}, v.TickPositions(0, 24))
}

func TestGenericVariant(t *testing.T) {
	v := Generic(6)
	assert.Equal(t, 6, v.NewSlider().StepCount())
	assert.Empty(t, v.Ticks)
	assert.False(t, v.Gradient)
	assert.Equal(t, 1, Generic(-2).Steps)
}
