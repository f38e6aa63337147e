package sliders

// GestureState tracks whether a single-pointer drag is in progress.
type GestureState int

const (
	// Idle means no drag is active.
	Idle GestureState = iota
	// Dragging means a drag began and has not ended or been cancelled.
	Dragging
)

func (g GestureState) String() string {
	switch g {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Gesture is the input contract shared by both slider models. Hosts forward
// pointer events here; Drag while Idle starts a gesture implicitly because
// some toolkits never report a separate begin event.
type Gesture interface {
	BeginDrag()
	Drag(dx float64)
	EndDrag()
	CancelDrag()
	State() GestureState
}

var (
	_ Gesture = (*PriceSlider)(nil)
	_ Gesture = (*StepSlider)(nil)
)
