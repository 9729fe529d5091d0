//go:build nrf51

package main

import (
	"device"
	"device/nrf"
	"runtime/interrupt"

	"rtcadc/core"
)

//go:generate tinygo flash -target=pca10028

func main() {
	transport := NewUARTTransport()
	core.SetDebugWriter(func(s string) {
		transport.Write([]byte("[DBG] " + s + "\r\n"))
	})
	core.SetDebugEnabled(debug)

	adcIRQ := interrupt.New(nrf.IRQ_ADC, func(interrupt.Interrupt) {
		core.HandleSampleInterrupt()
	})
	adcIRQ.SetPriority(0xc0)

	_, err := core.Boot(Board(transport, NewNRFGPIODriver(), adcIRQ), core.DefaultConfig())
	if err != nil {
		// Startup failures are fatal; there is no degraded mode.
		panic(err)
	}

	core.DumpBootTrace()
	core.Park(waitForInterrupt)
}

// waitForInterrupt sleeps the core until the next enabled interrupt.
func waitForInterrupt() {
	device.Asm("wfi")
}
