package sim

import (
	"testing"

	"rtcadc/core"
)

func TestRegisterAddresses(t *testing.T) {
	c := NewChip()
	testCases := []struct {
		reg  *Register
		addr uintptr
	}{
		{c.Clock.TasksHFClkStart, 0x40000000},
		{c.Clock.TasksLFClkStop, 0x4000000C},
		{c.Clock.LFClkSrc, 0x40000518},
		{c.ADC.TasksStart, 0x40007000},
		{c.ADC.Result, 0x40007508},
		{c.RTC0.EventsTick, 0x4000B100},
		{c.RTC0.Prescaler, 0x4000B508},
		{c.PPI.CHENSet, 0x4001F504},
		{c.PPI.Channels[0].EEP, 0x4001F510},
		{c.PPI.Channels[15].TEP, 0x4001F58C},
	}
	for _, tc := range testCases {
		if tc.reg.Addr() != tc.addr {
			t.Errorf("%s: expected %#x, got %#x", tc.reg.Name(), tc.addr, tc.reg.Addr())
		}
	}
}

func TestClockStartsAfterPolls(t *testing.T) {
	c := NewChip()
	c.Clock.StartupPolls = 2

	c.Clock.TasksHFClkStart.Set(1)
	for i := 0; i < 2; i++ {
		if c.Clock.EventsHFClkStarted.Get() != 0 {
			t.Fatalf("HFCLKSTARTED set after %d polls", i)
		}
	}
	if c.Clock.EventsHFClkStarted.Get() != 1 || !c.Clock.HFRunning {
		t.Error("HFCLK did not start")
	}
}

func TestTickRequiresRunningClock(t *testing.T) {
	c := NewChip()
	c.RTC0.EvtenSet.Set(1)
	c.RTC0.TasksStart.Set(1)

	c.Tick(5)
	if c.RTC0.Counter != 0 {
		t.Errorf("RTC counted %d ticks without LFCLK", c.RTC0.Counter)
	}

	c.Clock.TasksLFClkStart.Set(1)
	c.Clock.EventsLFClkStarted.Get()
	c.Tick(5)
	if c.RTC0.Counter != 5 {
		t.Errorf("Expected 5 ticks, got %d", c.RTC0.Counter)
	}
}

func TestRouteByAddress(t *testing.T) {
	c := NewChip()
	c.Clock.TasksLFClkStart.Set(1)
	c.Clock.EventsLFClkStarted.Get()
	c.RTC0.EvtenSet.Set(1)
	c.RTC0.TasksStart.Set(1)

	fired := 0
	ep := c.TaskEndpoint("TEST.TASK", 0x50000000, func() { fired++ })
	c.PPI.Channels[3].EEP.Set(uint32(c.RTC0.EventsTick.Addr()))
	c.PPI.Channels[3].TEP.Set(uint32(ep.Addr))

	c.Tick(2)
	if fired != 0 {
		t.Errorf("Disabled channel fired %d times", fired)
	}

	c.PPI.CHENSet.Set(1 << 3)
	c.Tick(2)
	if fired != 2 {
		t.Errorf("Expected 2 task firings, got %d", fired)
	}
}

func TestConvertMasksToResolution(t *testing.T) {
	c := NewChip()
	c.ADC.Source = func() uint32 { return 0xFFFF }
	c.ADC.Config.Set(uint32(core.Resolution8Bit))
	c.ADC.Enable.Set(1)

	c.ADC.TasksStart.Set(1)
	if got := c.ADC.Result.Value(); got != 255 {
		t.Errorf("Expected 8-bit result 255, got %d", got)
	}
	if c.ADC.EventsEnd.Value() != 1 {
		t.Error("END not raised")
	}

	c.ADC.TasksStart.Set(1)
	if c.ADC.Overwritten != 1 {
		t.Errorf("Expected one overwritten result, got %d", c.ADC.Overwritten)
	}
}

func TestInterruptNeedsNVIC(t *testing.T) {
	c := NewChip()
	calls := 0
	c.SetInterruptHandler(func() {
		calls++
		c.ADC.EventsEnd.Set(0)
	})
	c.ADC.Enable.Set(1)
	c.ADC.IntenSet.Set(1)

	c.ADC.TasksStart.Set(1)
	if calls != 0 {
		t.Error("Handler ran with the NVIC line masked")
	}

	c.IRQ.Enable()
	c.ADC.TasksStart.Set(1)
	if calls != 1 {
		t.Errorf("Expected 1 handler run, got %d", calls)
	}
}

func TestConsoleLines(t *testing.T) {
	var con Console
	con.Write([]byte("Hello!\r\n512 1 0\r\npart"))

	lines := con.Lines()
	if len(lines) != 2 || lines[0] != "Hello!" || lines[1] != "512 1 0" {
		t.Errorf("Unexpected lines %q", lines)
	}
}

func TestGPIORejectsInvalidPin(t *testing.T) {
	c := NewChip()
	if err := c.GPIO.ConfigureOutput(32); err != ErrInvalidPin {
		t.Errorf("Expected ErrInvalidPin, got %v", err)
	}
	if err := c.GPIO.ConfigureInput(40, core.PullNone); err != ErrInvalidPin {
		t.Errorf("Expected ErrInvalidPin, got %v", err)
	}
}

func TestClockRestartRaisesStarted(t *testing.T) {
	c := NewChip()
	c.Clock.TasksHFClkStart.Set(1)
	c.Clock.EventsHFClkStarted.Get()
	c.Clock.EventsHFClkStarted.Set(0)

	c.Clock.StartupPolls = 3
	c.Clock.TasksHFClkStart.Set(1)
	if c.Clock.EventsHFClkStarted.Get() != 1 {
		t.Error("HFCLKSTART on a running oscillator did not raise HFCLKSTARTED")
	}
}

func TestLFClockStopAllowsSourceChange(t *testing.T) {
	c := NewChip()
	c.Clock.LFClkSrc.Set(uint32(core.LFClockXtal))
	c.Clock.TasksLFClkStart.Set(1)
	c.Clock.EventsLFClkStarted.Get()
	if !c.Clock.LFRunning || c.Clock.LFSource != core.LFClockXtal {
		t.Fatalf("Expected LFCLK running on xtal, got running=%v src=%v", c.Clock.LFRunning, c.Clock.LFSource)
	}

	c.Clock.TasksLFClkStop.Set(1)
	if c.Clock.LFRunning {
		t.Fatal("LFCLK still running after stop")
	}
	c.Clock.LFClkSrc.Set(uint32(core.LFClockRC))
	c.Clock.EventsLFClkStarted.Set(0)
	c.Clock.TasksLFClkStart.Set(1)
	c.Clock.EventsLFClkStarted.Get()
	if !c.Clock.LFRunning || c.Clock.LFSource != core.LFClockRC {
		t.Errorf("Expected LFCLK running on rc, got running=%v src=%v", c.Clock.LFRunning, c.Clock.LFSource)
	}
}
