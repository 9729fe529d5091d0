package sim

import (
	"errors"
	"strconv"

	"rtcadc/core"
)

// PinMode is the simulated direction of a pin.
type PinMode uint8

const (
	PinUnconfigured PinMode = iota
	PinOutput
	PinInput
)

// ErrInvalidPin is returned for pins beyond P0.31.
var ErrInvalidPin = errors.New("sim: invalid pin")

const gpioPins = 32

// Pin is the state of one simulated pin.
type Pin struct {
	Mode  PinMode
	Pull  core.Pull
	Level bool
}

// GPIO is a simulated P0 port. It satisfies core.GPIODriver.
type GPIO struct {
	chip   *Chip
	pins   [gpioPins]Pin
	onRead func(core.GPIOPin)
}

func newGPIO(c *Chip) *GPIO {
	return &GPIO{chip: c}
}

// ConfigureOutput sets DIR for pin.
func (g *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	if pin >= gpioPins {
		return ErrInvalidPin
	}
	g.pins[pin].Mode = PinOutput
	g.chip.record(Access{Reg: "P0.DIRSET." + strconv.Itoa(int(pin)), Write: true, Value: 1})
	return nil
}

// ConfigureInput writes PIN_CNF for pin with the given pull.
func (g *GPIO) ConfigureInput(pin core.GPIOPin, pull core.Pull) error {
	if pin >= gpioPins {
		return ErrInvalidPin
	}
	g.pins[pin].Mode = PinInput
	g.pins[pin].Pull = pull
	g.chip.record(Access{Reg: "P0.PIN_CNF." + strconv.Itoa(int(pin)), Write: true, Value: uint32(pull)})
	return nil
}

// SetPin drives an output level.
func (g *GPIO) SetPin(pin core.GPIOPin, value bool) error {
	if pin >= gpioPins {
		return ErrInvalidPin
	}
	g.pins[pin].Level = value
	var v uint32
	if value {
		v = 1
	}
	g.chip.record(Access{Reg: "P0.OUT." + strconv.Itoa(int(pin)), Write: true, Value: v})
	return nil
}

// ReadPin returns the level on pin. Pins past P0.31 read low.
func (g *GPIO) ReadPin(pin core.GPIOPin) bool {
	if pin >= gpioPins {
		return false
	}
	if g.onRead != nil {
		g.onRead(pin)
	}
	level := g.pins[pin].Level
	var v uint32
	if level {
		v = 1
	}
	g.chip.record(Access{Reg: "P0.IN." + strconv.Itoa(int(pin)), Value: v})
	return level
}

// Drive sets an input level from outside the chip.
func (g *GPIO) Drive(pin core.GPIOPin, level bool) {
	g.pins[pin].Level = level
}

// Pin returns the state of a pin.
func (g *GPIO) Pin(pin core.GPIOPin) Pin {
	return g.pins[pin]
}

// OnRead runs fn before every pin read; tests use it to inject events in
// the middle of the interrupt handler.
func (g *GPIO) OnRead(fn func(core.GPIOPin)) {
	g.onRead = fn
}
