// Package sliderapp wires configuration, logging and the slider widgets
// together into the PriceSliders demo window.
package sliderapp

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	config "github.com/edward-ap/pricesliders/internal/config"
	"github.com/edward-ap/pricesliders/internal/sliders"
	ui "github.com/edward-ap/pricesliders/internal/ui"
)

// App owns the fyne application, the window and the three sliders.
type App struct {
	fa  fyne.App
	w   fyne.Window
	cfg *config.Config
	log zerolog.Logger

	price   *ui.PriceSlider
	stepped *ui.SteppedSlider
	fuel    *ui.SteppedSlider

	status    binding.String
	suggested *escapeEntry
}

// NewApp builds the window from cfg. It only fails when the configured
// price range cannot back a slider, which applyRuntimeDefaults prevents for
// configs obtained through the config package.
func NewApp(cfg *config.Config, log zerolog.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := []sliders.PriceOption{sliders.WithResetOnRangeChange(cfg.ResetOnRangeChange)}
	price, err := ui.NewPriceSlider(cfg.MinPrice, cfg.MaxPrice, cfg.SuggestedPrice, opts...)
	if err != nil {
		return nil, fmt.Errorf("build price slider: %w", err)
	}

	fa := app.NewWithID(config.AppID)
	fa.Settings().SetTheme(theme.DarkTheme())
	ui.UseSliderTheme()

	w := fa.NewWindow("PriceSliders")
	w.SetMaster()
	w.Resize(fyne.NewSize(float32(cfg.WindowW), float32(cfg.WindowH)))

	a := &App{
		fa:      fa,
		w:       w,
		cfg:     cfg,
		log:     log,
		price:   price,
		stepped: ui.NewSteppedSlider(sliders.Generic(cfg.StepCount)),
		fuel:    ui.NewFuelSlider(),
		status:  binding.NewString(),
	}
	a.wire()
	w.SetContent(a.buildUI())

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		if err := config.SaveWindowSize(int(sz.Width), int(sz.Height)); err != nil {
			a.log.Warn().Err(err).Msg("save window size")
		}
		w.Close()
	})
	w.Canvas().SetOnTypedKey(func(ke *fyne.KeyEvent) {
		if ke != nil && ke.Name == fyne.KeyEscape {
			a.cancelDrags()
		}
	})
	return a, nil
}

// Run shows the window and blocks until it closes.
func (a *App) Run() {
	a.log.Info().
		Float64("min", a.cfg.MinPrice).
		Float64("max", a.cfg.MaxPrice).
		Float64("suggested", a.cfg.SuggestedPrice).
		Int("steps", a.cfg.StepCount).
		Msg("starting")
	a.w.ShowAndRun()
}

func (a *App) wire() {
	update := func() {
		_ = a.status.Set(statusText(a.price.Model().Feedback(), a.stepped.Model().Feedback(), a.fuel.Model().Feedback()))
	}
	a.price.OnChanged = func(fb sliders.PriceFeedback) {
		a.log.Trace().Float64("value", fb.Value).Float64("offset", fb.ThumbOffset).Msg("price")
		update()
	}
	a.stepped.OnChanged = func(fb sliders.StepFeedback) {
		a.log.Trace().Int("step", fb.Step).Stringer("state", fb.State).Msg("stepped")
		update()
	}
	a.fuel.OnChanged = func(fb sliders.StepFeedback) {
		a.log.Trace().Int("step", fb.Step).Stringer("state", fb.State).Msg("fuel")
		update()
	}
	update()
}

func (a *App) buildUI() fyne.CanvasObject {
	a.suggested = newEscapeEntry(a.cancelDrags)
	a.suggested.SetText(fmt.Sprintf("%.0f", a.price.Model().SuggestedPrice()))
	apply := widget.NewButtonWithIcon("", theme.ConfirmIcon(), a.applySuggested)
	a.suggested.OnSubmitted = func(string) { a.applySuggested() }

	suggestRow := container.NewBorder(nil, nil, widget.NewLabel("Suggested"), apply, a.suggested)
	status := widget.NewLabelWithData(a.status)

	return container.NewPadded(container.NewVBox(
		widget.NewLabelWithStyle("Price", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.price,
		suggestRow,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Steps", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.stepped,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Fuel", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.fuel,
		widget.NewSeparator(),
		status,
	))
}

// applySuggested moves the price divider to the entry's value.
func (a *App) applySuggested() {
	p, err := parsePrice(a.suggested.Text)
	if err == nil {
		err = a.price.SetSuggestedPrice(p)
	}
	if err != nil {
		a.log.Warn().Err(err).Str("input", a.suggested.Text).Msg("suggested price rejected")
		dialog.ShowError(err, a.w)
		return
	}
	a.log.Debug().Float64("suggested", p).Msg("suggested price updated")
}

// cancelDrags aborts any drag in progress on every slider.
func (a *App) cancelDrags() {
	a.price.CancelDrag()
	a.stepped.CancelDrag()
	a.fuel.CancelDrag()
}
