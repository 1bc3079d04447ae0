// Package simulate models the decorative upload and sync progress as an
// explicit state machine. The caller drives it with ticks; cancelling
// mid-flight returns to idle and later ticks are ignored, so nothing
// completes after the owning view has abandoned the operation.
package simulate

// State of a simulated operation
type State int

const (
	Idle State = iota
	Running
	Done
)

// Step is the percentage added per tick
const Step = 10

// Operation is a cancellable fixed-rate progress simulation
type Operation struct {
	state   State
	percent int
}

// State returns the current state
func (o *Operation) State() State { return o.state }

// Percent returns progress in [0, 100]
func (o *Operation) Percent() int { return o.percent }

// Start moves from idle to running at zero percent. Starting a running
// or finished operation resets it.
func (o *Operation) Start() {
	o.state = Running
	o.percent = 0
}

// Tick advances a running operation by one step. It reports whether the
// operation just completed on this tick. Ticks outside Running are
// ignored, which suppresses stale timer callbacks after a cancel.
func (o *Operation) Tick() (completed bool) {
	if o.state != Running {
		return false
	}
	o.percent += Step
	if o.percent >= 100 {
		o.percent = 100
		o.state = Done
		return true
	}
	return false
}

// Cancel abandons a running operation and returns to idle. Cancelling
// an idle or finished operation is a no-op.
func (o *Operation) Cancel() {
	if o.state == Running {
		o.state = Idle
		o.percent = 0
	}
}

// Reset returns the operation to idle regardless of state
func (o *Operation) Reset() {
	o.state = Idle
	o.percent = 0
}
