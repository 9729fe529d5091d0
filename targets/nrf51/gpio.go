//go:build nrf51

package main

import (
	"machine"

	"rtcadc/core"
)

// nRF51 has a single port, P0.00-P0.31
const gpioPinCount = 32

// NRFGPIODriver implements the GPIODriver interface for nRF51
type NRFGPIODriver struct{}

// NewNRFGPIODriver creates a new nRF51 GPIO driver
func NewNRFGPIODriver() *NRFGPIODriver {
	return &NRFGPIODriver{}
}

// ConfigureOutput configures a pin as a digital output
func (d *NRFGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	if pin >= gpioPinCount {
		return machine.ErrInvalidOutputPin
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

// ConfigureInput configures a pin as a digital input
func (d *NRFGPIODriver) ConfigureInput(pin core.GPIOPin, pull core.Pull) error {
	if pin >= gpioPinCount {
		return machine.ErrInvalidInputPin
	}

	mode := machine.PinInput
	switch pull {
	case core.PullUp:
		mode = machine.PinInputPullup
	case core.PullDown:
		mode = machine.PinInputPulldown
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: mode})
	return nil
}

// SetPin drives an output high or low
func (d *NRFGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	if pin >= gpioPinCount {
		return machine.ErrInvalidOutputPin
	}
	machine.Pin(pin).Set(value)
	return nil
}

// ReadPin reads IN directly; safe from the ADC interrupt
func (d *NRFGPIODriver) ReadPin(pin core.GPIOPin) bool {
	return machine.Pin(pin).Get()
}
