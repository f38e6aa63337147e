package sliderapp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/edward-ap/pricesliders/internal/sliders"
)

var errEmptyPrice = errors.New("price is empty")

// fuelLevels names the fuel steps after their tick labels.
var fuelLevels = func() []string {
	ticks := sliders.Fuel().Ticks
	out := make([]string, len(ticks))
	for i, t := range ticks {
		out[i] = t.Label
	}
	return out
}()

// statusText summarises the three sliders in one line.
func statusText(price sliders.PriceFeedback, steps, fuel sliders.StepFeedback) string {
	level := strconv.Itoa(fuel.Step)
	if fuel.Step >= 0 && fuel.Step < len(fuelLevels) {
		level = fuelLevels[fuel.Step]
	}
	return fmt.Sprintf("%s  |  step %d/%d  |  fuel %s", price.Label, steps.Step, steps.StepCount, level)
}

// parsePrice accepts "250", "250.5", "R$ 250" or "250,5".
func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), strings.TrimSpace(sliders.PricePrefix)))
	if s == "" {
		return 0, errEmptyPrice
	}
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return v, nil
}
