package sliders

// FuelSteps is the fixed step count of the fuel gauge.
const FuelSteps = 4

// Tick is a static, labelled mark along a stepped track. Fraction is the
// position across the anchor span, 0 for the first anchor and 1 for the last.
type Tick struct {
	Fraction float64
	Label    string
}

// Variant selects how a stepped slider is configured and decorated. All
// variants share the same StepSlider engine.
type Variant struct {
	Name     string
	Steps    int
	Ticks    []Tick
	Gradient bool
}

// Generic returns a plain N-step variant with a flat fill and no ticks.
func Generic(steps int) Variant {
	if steps < 1 {
		steps = 1
	}
	return Variant{Name: "stepped", Steps: steps}
}

// Fuel returns the 4-step fuel gauge: gradient fill and five labelled ticks.
func Fuel() Variant {
	return Variant{
		Name:  "fuel",
		Steps: FuelSteps,
		Ticks: []Tick{
			{Fraction: 0, Label: "E"},
			{Fraction: 0.25, Label: "1/4"},
			{Fraction: 0.5, Label: "1/2"},
			{Fraction: 0.75, Label: "3/4"},
			{Fraction: 1, Label: "F"},
		},
		Gradient: true,
	}
}

// NewSlider builds the stepping engine for this variant.
func (v Variant) NewSlider() *StepSlider { return NewStepSlider(v.Steps) }

// TickPositions returns the x of every tick for the given geometry, aligned
// with the step anchors so ticks sit under the resting thumb centres.
func (v Variant) TickPositions(trackLength, thumbDiameter float64) []float64 {
	trackLength = nonNegative(trackLength)
	thumbDiameter = nonNegative(thumbDiameter)
	span := trackLength - thumbDiameter
	if span < 0 {
		span = 0
	}
	out := make([]float64, len(v.Ticks))
	for i, t := range v.Ticks {
		out[i] = thumbDiameter/2 + clampFloat64(t.Fraction, 0, 1)*span
	}
	return out
}
