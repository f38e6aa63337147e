package sliderapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edward-ap/pricesliders/internal/sliders"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"250", 250},
		{" 250.5 ", 250.5},
		{"R$ 120", 120},
		{"99,9", 99.9},
	}
	for _, tt := range tests {
		got, err := parsePrice(tt.in)
		require.NoError(t, err, "parsePrice(%q)", tt.in)
		assert.Equal(t, tt.want, got, "parsePrice(%q)", tt.in)
	}

	_, err := parsePrice("  ")
	assert.ErrorIs(t, err, errEmptyPrice)
	_, err = parsePrice("abc")
	assert.Error(t, err)
}

func TestStatusText(t *testing.T) {
	price := sliders.PriceFeedback{Label: "R$ 200"}
	steps := sliders.StepFeedback{Step: 3, StepCount: 5}

	assert.Equal(t, "R$ 200  |  step 3/5  |  fuel 1/2", statusText(price, steps, sliders.StepFeedback{Step: 2}))
	assert.Equal(t, "R$ 200  |  step 3/5  |  fuel F", statusText(price, steps, sliders.StepFeedback{Step: 4}))
	assert.Equal(t, "R$ 200  |  step 3/5  |  fuel 9", statusText(price, steps, sliders.StepFeedback{Step: 9}))
}
