// Package sim is a host-side model of the nRF51 peripherals the sampling
// pipeline touches. Registers live at their datasheet addresses so the
// event router can be wired by address exactly as on silicon.
package sim

import "rtcadc/core"

// Access is one CPU access to a register, or a marker such as IRQ entry.
type Access struct {
	Reg   string
	Write bool
	Value uint32
}

// Register is a simulated 32-bit peripheral register. It satisfies
// core.Register32.
type Register struct {
	name  string
	addr  uintptr
	value uint32
	chip  *Chip

	onWrite func(uint32)
	onRead  func()
}

func (c *Chip) newRegister(name string, addr uintptr) *Register {
	r := &Register{name: name, addr: addr, chip: c}
	c.registers[addr] = r
	return r
}

// Get performs a CPU read.
func (r *Register) Get() uint32 {
	if r.onRead != nil {
		r.onRead()
	}
	r.chip.record(Access{Reg: r.name, Value: r.value})
	return r.value
}

// Set performs a CPU write.
func (r *Register) Set(value uint32) {
	r.value = value
	r.chip.record(Access{Reg: r.name, Write: true, Value: value})
	if r.onWrite != nil {
		r.onWrite(value)
	}
}

// Value returns the register contents without recording an access.
func (r *Register) Value() uint32 {
	return r.value
}

// Name returns the datasheet register name.
func (r *Register) Name() string {
	return r.name
}

// Addr returns the bus address.
func (r *Register) Addr() uintptr {
	return r.addr
}

// Endpoint returns the register as a router endpoint.
func (r *Register) Endpoint() core.Endpoint {
	return core.Endpoint{Name: r.name, Addr: r.addr}
}

// hw sets the register from the hardware side, which the CPU trace does
// not see.
func (r *Register) hw(value uint32) {
	r.value = value
}
