package core

// Register32 is a single 32-bit memory-mapped peripheral register.
// *volatile.Register32 satisfies it on hardware; sim.Register on the host.
type Register32 interface {
	Get() uint32
	Set(value uint32)
}

// Endpoint is the bus address of an event or task register. The Event
// Router only ever deals in addresses, exactly like the hardware does.
type Endpoint struct {
	Name string
	Addr uintptr
}

// IRQ is an interrupt line in the NVIC.
// interrupt.Interrupt satisfies it on TinyGo.
type IRQ interface {
	Enable()
}

// Task and event register values
const (
	taskTrigger  = 1
	eventClear   = 0
	eventPending = 1
)
