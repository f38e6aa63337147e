package sliderapp

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// escapeEntry is a single-line entry that reports Escape before handling it.
// A focused widget receives typed keys instead of the canvas, so without this
// the window-level Escape handler never sees the key while the entry is active.
type escapeEntry struct {
	widget.Entry
	onEscape func()
}

func newEscapeEntry(onEscape func()) *escapeEntry {
	e := &escapeEntry{onEscape: onEscape}
	e.ExtendBaseWidget(e)
	return e
}

func (e *escapeEntry) TypedKey(ke *fyne.KeyEvent) {
	if ke != nil && ke.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
	}
	e.Entry.TypedKey(ke)
}
