//go:build nrf51

package main

import "machine"

// UART0 pins and rate used by the board's serial console
const (
	uartTX   = machine.Pin(9)
	uartRX   = machine.Pin(11)
	uartBaud = 115200
)

// UARTTransport is the console the sample lines go out on.
// No flow control; a full TX path is the UART's problem.
type UARTTransport struct {
	uart   *machine.UART
	config machine.UARTConfig
}

// NewUARTTransport wraps UART0 with the board pins.
func NewUARTTransport() *UARTTransport {
	return &UARTTransport{
		uart: machine.UART0,
		config: machine.UARTConfig{
			BaudRate: uartBaud,
			TX:       uartTX,
			RX:       uartRX,
		},
	}
}

// Open configures the UART. UART0 always exists on the nRF51 and its pins
// are fixed, so there is nothing here that can fail at run time.
func (t *UARTTransport) Open() error {
	t.uart.Configure(t.config)
	return nil
}

func (t *UARTTransport) Write(p []byte) (int, error) {
	return t.uart.Write(p)
}
