package core

// OscillatorState is the lifecycle of one clock source.
type OscillatorState uint8

const (
	OscillatorStopped OscillatorState = iota
	OscillatorStarting
	OscillatorRunning
)

func (s OscillatorState) String() string {
	switch s {
	case OscillatorStopped:
		return "stopped"
	case OscillatorStarting:
		return "starting"
	case OscillatorRunning:
		return "running"
	default:
		return "unknown"
	}
}

// LFClockSource selects the low frequency clock source (LFCLKSRC.SRC).
type LFClockSource uint32

const (
	LFClockRC    LFClockSource = 0 // internal 32 kHz RC oscillator
	LFClockXtal  LFClockSource = 1 // external 32 kHz crystal
	LFClockSynth LFClockSource = 2 // synthesized from HFCLK
)

func (s LFClockSource) String() string {
	switch s {
	case LFClockRC:
		return "rc"
	case LFClockXtal:
		return "xtal"
	case LFClockSynth:
		return "synth"
	default:
		return "unknown"
	}
}

// ClockState is a snapshot of both oscillators.
type ClockState struct {
	HF       OscillatorState
	LF       OscillatorState
	LFSource LFClockSource
}

// ClockRegisters is the capability handle for the CLOCK peripheral.
type ClockRegisters struct {
	TasksHFClkStart    Register32
	TasksLFClkStart    Register32
	TasksLFClkStop     Register32
	EventsHFClkStarted Register32
	EventsLFClkStarted Register32
	LFClkSrc           Register32
}

// ClockManager brings up the oscillators the other peripherals depend on.
type ClockManager struct {
	regs  ClockRegisters
	state ClockState
}

// NewClockManager wraps the CLOCK peripheral. It does not touch hardware.
func NewClockManager(regs ClockRegisters) *ClockManager {
	return &ClockManager{regs: regs}
}

// StartHighFrequency starts the 16 MHz crystal oscillator and spins until
// the hardware reports HFCLKSTARTED.
//
// It blocks indefinitely on hardware fault. There is no timeout.
func (c *ClockManager) StartHighFrequency() {
	c.regs.EventsHFClkStarted.Set(eventClear)
	c.state.HF = OscillatorStarting
	c.regs.TasksHFClkStart.Set(taskTrigger)

	for c.regs.EventsHFClkStarted.Get() == eventClear {
	}
	c.state.HF = OscillatorRunning
}

// StartLowFrequency selects the given source, starts the 32 kHz clock and
// spins until LFCLKSTARTED. The started event is consumed before returning
// so nothing downstream sees a stale flag.
//
// LFCLKSRC may only change while the clock is stopped, and the runtime may
// already have started it, so the clock is stopped first.
//
// It blocks indefinitely on hardware fault. There is no timeout.
func (c *ClockManager) StartLowFrequency(src LFClockSource) {
	c.regs.TasksLFClkStop.Set(taskTrigger)
	c.state.LF = OscillatorStopped
	c.regs.LFClkSrc.Set(uint32(src))
	c.state.LFSource = src
	c.regs.EventsLFClkStarted.Set(eventClear)
	c.state.LF = OscillatorStarting
	c.regs.TasksLFClkStart.Set(taskTrigger)

	for c.regs.EventsLFClkStarted.Get() == eventClear {
	}
	c.regs.EventsLFClkStarted.Set(eventClear)
	c.state.LF = OscillatorRunning
}

// State returns the current oscillator snapshot.
func (c *ClockManager) State() ClockState {
	return c.state
}

// HFRunning reports whether the high frequency oscillator is up.
func (c *ClockManager) HFRunning() bool {
	return c.state.HF == OscillatorRunning
}

// LFRunning reports whether the low frequency oscillator is up.
func (c *ClockManager) LFRunning() bool {
	return c.state.LF == OscillatorRunning
}
