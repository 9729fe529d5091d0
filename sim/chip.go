package sim

import (
	"fmt"

	"rtcadc/core"
)

// Peripheral base addresses
const (
	clockBase = 0x40000000
	adcBase   = 0x40007000
	rtc0Base  = 0x4000B000
	ppiBase   = 0x4001F000

	ppiChannels = 16
)

// ClockBlock is the CLOCK peripheral.
type ClockBlock struct {
	TasksHFClkStart    *Register
	TasksLFClkStart    *Register
	TasksLFClkStop     *Register
	EventsHFClkStarted *Register
	EventsLFClkStarted *Register
	LFClkSrc           *Register

	// StartupPolls is how many reads of a STARTED event return 0 before
	// the oscillator comes up.
	StartupPolls int

	hfStarting, lfStarting bool
	hfPolls, lfPolls       int
	HFRunning, LFRunning   bool
	LFSource               core.LFClockSource
}

// RTCBlock is one RTC instance.
type RTCBlock struct {
	TasksStart *Register
	EventsTick *Register
	EvtenSet   *Register
	Prescaler  *Register

	Running bool
	Counter uint32
}

// PPIChannel is one interconnect channel.
type PPIChannel struct {
	EEP *Register
	TEP *Register
}

// PPIBlock is the programmable peripheral interconnect.
type PPIBlock struct {
	Channels [ppiChannels]PPIChannel
	CHENSet  *Register

	Enabled uint32
}

// ADCBlock is the ADC.
type ADCBlock struct {
	TasksStart *Register
	EventsEnd  *Register
	IntenSet   *Register
	Enable     *Register
	Config     *Register
	Result     *Register

	// Source returns the next conversion code. Bits above the configured
	// resolution are dropped, as the hardware has no more.
	Source func() uint32

	Conversions uint32
	Ignored     uint32 // START while disabled
	Overwritten uint32 // result replaced before the handler read it
}

// Chip is a simulated nRF51 with the peripherals the sampler uses.
type Chip struct {
	Clock ClockBlock
	RTC0  RTCBlock
	PPI   PPIBlock
	ADC   ADCBlock
	GPIO  *GPIO
	IRQ   *IRQLine

	registers map[uintptr]*Register
	tasks     map[uintptr]func()
	trace     []Access
	handler   func()
	inISR     bool
	pending   bool
}

// NewChip builds a chip in its reset state.
func NewChip() *Chip {
	c := &Chip{
		registers: make(map[uintptr]*Register),
		tasks:     make(map[uintptr]func()),
	}
	c.GPIO = newGPIO(c)
	c.IRQ = &IRQLine{chip: c}
	c.ADC.Source = func() uint32 { return 0 }

	c.Clock.TasksHFClkStart = c.newRegister("CLOCK.TASKS_HFCLKSTART", clockBase+0x000)
	c.Clock.TasksLFClkStart = c.newRegister("CLOCK.TASKS_LFCLKSTART", clockBase+0x008)
	c.Clock.TasksLFClkStop = c.newRegister("CLOCK.TASKS_LFCLKSTOP", clockBase+0x00C)
	c.Clock.EventsHFClkStarted = c.newRegister("CLOCK.EVENTS_HFCLKSTARTED", clockBase+0x100)
	c.Clock.EventsLFClkStarted = c.newRegister("CLOCK.EVENTS_LFCLKSTARTED", clockBase+0x104)
	c.Clock.LFClkSrc = c.newRegister("CLOCK.LFCLKSRC", clockBase+0x518)

	c.ADC.TasksStart = c.newRegister("ADC.TASKS_START", adcBase+0x000)
	c.ADC.EventsEnd = c.newRegister("ADC.EVENTS_END", adcBase+0x100)
	c.ADC.IntenSet = c.newRegister("ADC.INTENSET", adcBase+0x304)
	c.ADC.Enable = c.newRegister("ADC.ENABLE", adcBase+0x500)
	c.ADC.Config = c.newRegister("ADC.CONFIG", adcBase+0x504)
	c.ADC.Result = c.newRegister("ADC.RESULT", adcBase+0x508)

	c.RTC0.TasksStart = c.newRegister("RTC0.TASKS_START", rtc0Base+0x000)
	c.RTC0.EventsTick = c.newRegister("RTC0.EVENTS_TICK", rtc0Base+0x100)
	c.RTC0.EvtenSet = c.newRegister("RTC0.EVTENSET", rtc0Base+0x344)
	c.RTC0.Prescaler = c.newRegister("RTC0.PRESCALER", rtc0Base+0x508)

	c.PPI.CHENSet = c.newRegister("PPI.CHENSET", ppiBase+0x504)
	for i := range c.PPI.Channels {
		off := uintptr(0x510 + 8*i)
		c.PPI.Channels[i] = PPIChannel{
			EEP: c.newRegister(fmt.Sprintf("PPI.CH[%d].EEP", i), ppiBase+off),
			TEP: c.newRegister(fmt.Sprintf("PPI.CH[%d].TEP", i), ppiBase+off+4),
		}
	}

	c.wire()
	return c
}

func (c *Chip) wire() {
	// A start task on a running oscillator raises STARTED again.
	c.Clock.TasksHFClkStart.onWrite = func(v uint32) {
		if v == 0 {
			return
		}
		if c.Clock.HFRunning {
			c.Clock.EventsHFClkStarted.hw(1)
			return
		}
		c.Clock.hfStarting = true
		c.Clock.hfPolls = c.Clock.StartupPolls
	}
	c.Clock.EventsHFClkStarted.onRead = func() {
		if !c.Clock.hfStarting {
			return
		}
		if c.Clock.hfPolls > 0 {
			c.Clock.hfPolls--
			return
		}
		c.Clock.hfStarting = false
		c.Clock.HFRunning = true
		c.Clock.EventsHFClkStarted.hw(1)
	}
	c.Clock.TasksLFClkStart.onWrite = func(v uint32) {
		if v == 0 {
			return
		}
		if c.Clock.LFRunning {
			c.Clock.EventsLFClkStarted.hw(1)
			return
		}
		c.Clock.lfStarting = true
		c.Clock.lfPolls = c.Clock.StartupPolls
		c.Clock.LFSource = core.LFClockSource(c.Clock.LFClkSrc.value & 0x3)
	}
	c.Clock.TasksLFClkStop.onWrite = func(v uint32) {
		if v != 0 {
			c.Clock.lfStarting = false
			c.Clock.LFRunning = false
		}
	}
	c.Clock.EventsLFClkStarted.onRead = func() {
		if !c.Clock.lfStarting {
			return
		}
		if c.Clock.lfPolls > 0 {
			c.Clock.lfPolls--
			return
		}
		c.Clock.lfStarting = false
		c.Clock.LFRunning = true
		c.Clock.EventsLFClkStarted.hw(1)
	}

	c.RTC0.TasksStart.onWrite = func(v uint32) {
		if v != 0 {
			c.RTC0.Running = true
		}
	}

	c.PPI.CHENSet.onWrite = func(v uint32) {
		c.PPI.Enabled |= v
	}

	c.ADC.TasksStart.onWrite = func(v uint32) {
		if v != 0 {
			c.convert()
		}
	}
	c.tasks[c.ADC.TasksStart.addr] = c.convert
}

// TaskEndpoint registers a task by address so tests can route to
// something other than the ADC.
func (c *Chip) TaskEndpoint(name string, addr uintptr, fn func()) core.Endpoint {
	c.tasks[addr] = fn
	return core.Endpoint{Name: name, Addr: addr}
}

// Tick advances RTC0 by n prescaled ticks. Ticks only happen while the
// counter runs off a live LFCLK.
func (c *Chip) Tick(n int) {
	for ; n > 0; n-- {
		if !c.RTC0.Running || !c.Clock.LFRunning {
			return
		}
		c.RTC0.Counter++
		if c.RTC0.EvtenSet.value&1 == 0 {
			continue
		}
		c.RTC0.EventsTick.hw(1)
		c.route(c.RTC0.EventsTick.addr)
	}
}

// route fires every enabled channel whose EEP matches the event address.
func (c *Chip) route(event uintptr) {
	for ch := range c.PPI.Channels {
		if c.PPI.Enabled&(1<<ch) == 0 {
			continue
		}
		if uintptr(c.PPI.Channels[ch].EEP.value) != event {
			continue
		}
		if task, ok := c.tasks[uintptr(c.PPI.Channels[ch].TEP.value)]; ok {
			task()
		}
	}
}

// convert runs one conversion to completion.
func (c *Chip) convert() {
	if c.ADC.Enable.value != 1 {
		c.ADC.Ignored++
		return
	}
	res := core.Resolution(c.ADC.Config.value & 0x3)
	if c.ADC.EventsEnd.value != 0 {
		c.ADC.Overwritten++
	}
	c.ADC.Result.hw(c.ADC.Source() & res.MaxValue())
	c.ADC.Conversions++
	c.ADC.EventsEnd.hw(1)
	if c.ADC.IntenSet.value&1 != 0 {
		c.raise()
	}
}

// SetInterruptHandler installs the ADC interrupt vector.
func (c *Chip) SetInterruptHandler(fn func()) {
	c.handler = fn
}

// raise pends the ADC interrupt. The handler never nests: a completion
// during the handler pends one more run after it returns.
func (c *Chip) raise() {
	if !c.IRQ.enabled || c.handler == nil {
		return
	}
	if c.inISR {
		c.pending = true
		return
	}
	for {
		c.inISR = true
		c.record(Access{Reg: "IRQ.ENTER"})
		c.handler()
		c.record(Access{Reg: "IRQ.EXIT"})
		c.inISR = false
		if !c.pending {
			return
		}
		c.pending = false
	}
}

func (c *Chip) record(a Access) {
	c.trace = append(c.trace, a)
}

// Trace returns every recorded CPU access in order.
func (c *Chip) Trace() []Access {
	return c.trace
}

// ResetTrace drops the recorded accesses.
func (c *Chip) ResetTrace() {
	c.trace = nil
}

// Writes returns the names of the written registers, in order.
func (c *Chip) Writes() []string {
	var out []string
	for _, a := range c.trace {
		if a.Write {
			out = append(out, a.Reg)
		}
	}
	return out
}

// IRQLine is the ADC line in the NVIC.
type IRQLine struct {
	chip    *Chip
	enabled bool
}

// Enable unmasks the line.
func (i *IRQLine) Enable() {
	i.enabled = true
	i.chip.record(Access{Reg: "NVIC.ADC", Write: true, Value: 1})
}

// Enabled reports whether the line is unmasked.
func (i *IRQLine) Enabled() bool {
	return i.enabled
}
