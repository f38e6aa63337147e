// Package sliders holds the geometry and state models behind the price and
// stepped slider widgets. It has no GUI dependency so the drag math can be
// exercised independently from the widget layer.
package sliders

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRange is returned when a range has Min >= Max.
	ErrInvalidRange = errors.New("invalid range")
	// ErrPivotOutOfRange is returned when a split pivot falls outside its range.
	ErrPivotOutOfRange = errors.New("pivot outside range")
)

// Range is a closed numeric interval with Min < Max.
type Range struct {
	Min float64
	Max float64
}

// NewRange validates and builds a Range.
func NewRange(min, max float64) (Range, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min >= max {
		return Range{}, fmt.Errorf("%w: min %v, max %v", ErrInvalidRange, min, max)
	}
	return Range{Min: min, Max: max}, nil
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Clamp constrains v to the range.
func (r Range) Clamp(v float64) float64 { return clampFloat64(v, r.Min, r.Max) }

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// SplitRange divides an overall range at Pivot into a lower and an upper
// sub-range, each mapped onto one half of the track.
type SplitRange struct {
	Overall Range
	Pivot   float64
}

// NewSplitRange builds a split range. A pivot outside [min, max] is a caller
// bug and is rejected rather than clamped.
func NewSplitRange(min, max, pivot float64) (SplitRange, error) {
	r, err := NewRange(min, max)
	if err != nil {
		return SplitRange{}, err
	}
	if math.IsNaN(pivot) || !r.Contains(pivot) {
		return SplitRange{}, fmt.Errorf("%w: pivot %v not in [%v, %v]", ErrPivotOutOfRange, pivot, min, max)
	}
	return SplitRange{Overall: r, Pivot: pivot}, nil
}

// Lower returns {Min, Pivot}. The span is zero when the pivot sits on Min.
func (s SplitRange) Lower() Range { return Range{Min: s.Overall.Min, Max: s.Pivot} }

// Upper returns {Pivot, Max}. The span is zero when the pivot sits on Max.
func (s SplitRange) Upper() Range { return Range{Min: s.Pivot, Max: s.Overall.Max} }

// ValueAt maps a track fraction in [0, 1] to a value. Fractions above 0.5
// land in the upper sub-range; 0.5 itself maps to the pivot.
func (s SplitRange) ValueAt(percent float64) float64 {
	percent = clampFloat64(percent, 0, 1)
	sub, local := s.Lower(), percent*2
	if percent > 0.5 {
		sub, local = s.Upper(), (percent-0.5)*2
	}
	return local*sub.Span() + sub.Min
}

// PercentOf is the inverse of ValueAt. Values above the pivot resolve
// against the upper sub-range, the rest against the lower one. A degenerate
// sub-range maps its whole half to the pivot, so a pivot sitting on an end
// resolves to that end of the track.
func (s SplitRange) PercentOf(value float64) float64 {
	value = s.Overall.Clamp(value)
	if value > s.Pivot {
		up := s.Upper()
		return 0.5 + (value-up.Min)/up.Span()/2
	}
	if value == s.Overall.Max {
		return 1
	}
	low := s.Lower()
	if low.Span() <= 0 {
		return 0
	}
	return (value - low.Min) / low.Span() / 2
}

// OffsetPercent converts a thumb offset, measured as a negative inset from
// the right edge of the draggable span, into a fraction in [0, 1]. A
// non-positive size has no draggable range and yields 0.
func OffsetPercent(offset, size float64) float64 {
	if size <= 0 {
		return 0
	}
	return clampFloat64(1+offset/size, 0, 1)
}

// PercentOffset is the inverse of OffsetPercent.
func PercentOffset(percent, size float64) float64 {
	if size <= 0 {
		return 0
	}
	return (clampFloat64(percent, 0, 1) - 1) * size
}

// RoundHalfEven rounds to the nearest integer, ties to even.
func RoundHalfEven(v float64) float64 { return math.RoundToEven(v) }

// clampFloat64 constrains v to the [min, max] interval.
func clampFloat64(v, min, max float64) float64 {
	if max <= min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// nonNegative sanitises a length coming from a layout pass.
func nonNegative(v float64) float64 {
	v = finite(v, 0)
	if v < 0 {
		return 0
	}
	return v
}

// finite replaces NaN and infinities with fallback so geometry fed from a
// layout pass can never poison the derived state.
func finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
