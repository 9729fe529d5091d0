package core

// RTC event enable bits
const (
	rtcEvtenTick = 1 << 0
)

// RTCRegisters is the capability handle for one RTC instance.
type RTCRegisters struct {
	Prescaler  Register32
	EvtenSet   Register32
	TasksStart Register32
	// EventsTick is the address of EVENTS_TICK, used as a router source.
	EventsTick Endpoint
}

// Prescaler returns the RTC prescaler for a tick rate of targetHz driven by
// sourceHz. f = source / (prescaler + 1), and the division truncates, so the
// achieved rate is never below target.
//
// Precondition: 0 < targetHz <= sourceHz. Larger targets wrap around.
func Prescaler(sourceHz, targetHz uint32) uint32 {
	return sourceHz/targetHz - 1
}

// TickFrequency returns the tick rate a prescaler value achieves.
func TickFrequency(sourceHz, prescaler uint32) uint32 {
	return sourceHz / (prescaler + 1)
}

// TimerConfig holds the immutable tick configuration.
type TimerConfig struct {
	TickHz    uint32
	SourceHz  uint32
	Prescaler uint32
}

// PeriodicTimer is a free-running RTC emitting a TICK event at a fixed
// rate. Once started it cannot be stopped.
type PeriodicTimer struct {
	regs    RTCRegisters
	clocks  *ClockManager
	config  TimerConfig
	started bool
}

// NewPeriodicTimer wraps an RTC instance clocked from the low frequency
// oscillator managed by clocks.
func NewPeriodicTimer(regs RTCRegisters, clocks *ClockManager) *PeriodicTimer {
	return &PeriodicTimer{regs: regs, clocks: clocks}
}

// Configure writes the prescaler, enables the TICK event and starts the
// counter. The low frequency clock is the counter's source, so it must be
// running first.
func (t *PeriodicTimer) Configure(targetHz, sourceHz uint32) error {
	if t.started {
		return ErrTimerStarted
	}
	if t.clocks != nil && !t.clocks.LFRunning() {
		return ErrClockNotRunning
	}

	t.config = TimerConfig{
		TickHz:    targetHz,
		SourceHz:  sourceHz,
		Prescaler: Prescaler(sourceHz, targetHz),
	}
	t.regs.Prescaler.Set(t.config.Prescaler)
	t.regs.EvtenSet.Set(rtcEvtenTick)
	t.regs.TasksStart.Set(taskTrigger)
	t.started = true
	return nil
}

// Config returns the configuration written by Configure.
func (t *PeriodicTimer) Config() TimerConfig {
	return t.config
}

// Started reports whether the counter is running.
func (t *PeriodicTimer) Started() bool {
	return t.started
}

// TickEvent is the router source endpoint for this timer.
func (t *PeriodicTimer) TickEvent() Endpoint {
	return t.regs.EventsTick
}
