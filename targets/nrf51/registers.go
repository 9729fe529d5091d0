//go:build nrf51

package main

import (
	"device/nrf"
	"unsafe"

	"rtcadc/core"
)

// Board binds the memory-mapped nRF51 peripherals to the core handles.
// There is exactly one of each, so this is only called once from main.
func Board(transport core.Transport, gpio core.GPIODriver, adcIRQ core.IRQ) core.Board {
	ppi := core.PPIRegisters{CHENSet: &nrf.PPI.CHENSET}
	for i := 0; i < len(nrf.PPI.CH); i++ {
		ppi.Channels = append(ppi.Channels, core.PPIChannelRegisters{
			EEP: &nrf.PPI.CH[i].EEP,
			TEP: &nrf.PPI.CH[i].TEP,
		})
	}

	return core.Board{
		Transport: transport,
		GPIO:      gpio,
		Clock: core.ClockRegisters{
			TasksHFClkStart:    &nrf.CLOCK.TASKS_HFCLKSTART,
			TasksLFClkStart:    &nrf.CLOCK.TASKS_LFCLKSTART,
			TasksLFClkStop:     &nrf.CLOCK.TASKS_LFCLKSTOP,
			EventsHFClkStarted: &nrf.CLOCK.EVENTS_HFCLKSTARTED,
			EventsLFClkStarted: &nrf.CLOCK.EVENTS_LFCLKSTARTED,
			LFClkSrc:           &nrf.CLOCK.LFCLKSRC,
		},
		RTC: core.RTCRegisters{
			Prescaler:  &nrf.RTC0.PRESCALER,
			EvtenSet:   &nrf.RTC0.EVTENSET,
			TasksStart: &nrf.RTC0.TASKS_START,
			EventsTick: core.Endpoint{
				Name: "RTC0.EVENTS_TICK",
				Addr: uintptr(unsafe.Pointer(&nrf.RTC0.EVENTS_TICK)),
			},
		},
		PPI: ppi,
		ADC: core.ADCRegisters{
			TasksStart: &nrf.ADC.TASKS_START,
			EventsEnd:  &nrf.ADC.EVENTS_END,
			IntenSet:   &nrf.ADC.INTENSET,
			Config:     &nrf.ADC.CONFIG,
			Enable:     &nrf.ADC.ENABLE,
			Result:     &nrf.ADC.RESULT,
			StartTasks: core.Endpoint{
				Name: "ADC.TASKS_START",
				Addr: uintptr(unsafe.Pointer(&nrf.ADC.TASKS_START)),
			},
		},
		ADCIRQ: adcIRQ,
	}
}
