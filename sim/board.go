package sim

import (
	"bytes"
	"strings"

	"rtcadc/core"
)

// Console is an in-memory transport.
type Console struct {
	OpenErr error

	opened bool
	buf    bytes.Buffer
}

// Open fails with OpenErr when it is set.
func (c *Console) Open() error {
	if c.OpenErr != nil {
		return c.OpenErr
	}
	c.opened = true
	return nil
}

// Write appends p to the console buffer.
func (c *Console) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

// Opened reports whether Open succeeded.
func (c *Console) Opened() bool {
	return c.opened
}

// Lines returns every complete CRLF-terminated line written so far.
func (c *Console) Lines() []string {
	text := c.buf.String()
	if i := strings.LastIndex(text, "\r\n"); i >= 0 {
		text = text[:i]
	} else {
		return nil
	}
	return strings.Split(text, "\r\n")
}

// Board returns the capability handles for this chip, writing to console.
func (c *Chip) Board(console *Console) core.Board {
	ppi := core.PPIRegisters{
		Channels: make([]core.PPIChannelRegisters, len(c.PPI.Channels)),
		CHENSet:  c.PPI.CHENSet,
	}
	for i, ch := range c.PPI.Channels {
		ppi.Channels[i] = core.PPIChannelRegisters{EEP: ch.EEP, TEP: ch.TEP}
	}
	return core.Board{
		Transport: console,
		GPIO:      c.GPIO,
		Clock: core.ClockRegisters{
			TasksHFClkStart:    c.Clock.TasksHFClkStart,
			TasksLFClkStart:    c.Clock.TasksLFClkStart,
			TasksLFClkStop:     c.Clock.TasksLFClkStop,
			EventsHFClkStarted: c.Clock.EventsHFClkStarted,
			EventsLFClkStarted: c.Clock.EventsLFClkStarted,
			LFClkSrc:           c.Clock.LFClkSrc,
		},
		RTC: core.RTCRegisters{
			Prescaler:  c.RTC0.Prescaler,
			EvtenSet:   c.RTC0.EvtenSet,
			TasksStart: c.RTC0.TasksStart,
			EventsTick: c.RTC0.EventsTick.Endpoint(),
		},
		PPI: ppi,
		ADC: core.ADCRegisters{
			TasksStart: c.ADC.TasksStart,
			EventsEnd:  c.ADC.EventsEnd,
			IntenSet:   c.ADC.IntenSet,
			Config:     c.ADC.Config,
			Enable:     c.ADC.Enable,
			Result:     c.ADC.Result,
			StartTasks: c.ADC.TasksStart.Endpoint(),
		},
		ADCIRQ: c.IRQ,
	}
}
