package widget

import (
	"sync"

	"github.com/filipedpsilva/counter/errs"
	"github.com/filipedpsilva/counter/factory"
)

const (
	DefaultStartAt = "0"
	DefaultStep    = "1"
)

// State is what a front-end needs to draw the widget.
type State struct {
	StartAt string  `json:"start_at"`
	Step    string  `json:"step"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Sign    Sign    `json:"sign"`
}

// Widget is the state behind the "start at" and "step" inputs and the count
// button. Editing either input throws the running counter away. The next
// click starts a new one from the inputs.
//
// A Widget is safe for concurrent use.
type Widget struct {
	mu      sync.Mutex
	startAt string
	step    string
	count   func() float64
	reset   bool
	value   float64
}

func New() *Widget {
	return &Widget{
		startAt: DefaultStartAt,
		step:    DefaultStep,
		count:   factory.Factory[float64](),
		reset:   true,
	}
}

// SetStartAt handles a change of the "start at" input.
func (w *Widget) SetStartAt(raw string) error {
	if _, err := ParseNumber(raw); err != nil {
		return errs.NewBadInputError("start at").Wrap(err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.startAt = raw
	w.resetLocked()
	return nil
}

// SetStep handles a change of the "step" input.
func (w *Widget) SetStep(raw string) error {
	if _, err := ParseNumber(raw); err != nil {
		return errs.NewBadInputError("step").Wrap(err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = raw
	w.resetLocked()
	return nil
}

// SetInputs applies a change event for every input whose text differs from
// the current one. Nothing changes unless both values parse.
func (w *Widget) SetInputs(startAt, step string) error {
	if _, err := ParseNumber(startAt); err != nil {
		return errs.NewBadInputError("start at").Wrap(err)
	}
	if _, err := ParseNumber(step); err != nil {
		return errs.NewBadInputError("step").Wrap(err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if startAt != w.startAt {
		w.startAt = startAt
		w.resetLocked()
	}
	if step != w.step {
		w.step = step
		w.resetLocked()
	}
	return nil
}

// Increment handles a click on the count button.
func (w *Widget) Increment() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.reset {
		// inputs are validated before they are stored
		start, _ := ParseNumber(w.startAt)
		step, _ := ParseNumber(w.step)
		w.count = factory.Factory(factory.WithStart(start), factory.WithStep(step))
		w.reset = false
	}
	w.value = w.count()
	return w.stateLocked()
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

// resetLocked parks a zero counter until the next click and shows its value.
func (w *Widget) resetLocked() {
	w.count = factory.Factory(factory.WithStart(0.0), factory.WithStep(0.0))
	w.reset = true
	w.value = w.count()
}

func (w *Widget) stateLocked() State {
	return State{
		StartAt: w.startAt,
		Step:    w.step,
		Value:   w.value,
		Display: FormatNumber(w.value),
		Sign:    SignOf(w.value),
	}
}
