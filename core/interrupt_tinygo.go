//go:build tinygo

package core

import "runtime/interrupt"

// State is the saved PRIMASK
type State = interrupt.State

// disableInterrupts masks interrupts and returns the previous state
func disableInterrupts() State {
	return interrupt.Disable()
}

// restoreInterrupts puts back the state saved by disableInterrupts
func restoreInterrupts(state State) {
	interrupt.Restore(state)
}
