// ADC (successive approximation, nRF51 style) front end and sampler.
package core

// CONFIG register field positions
const (
	adcConfigResPos       = 0
	adcConfigInpselPos    = 2
	adcConfigRefselPos    = 5
	adcConfigPselPos      = 8
	adcConfigExtrefselPos = 16

	adcIntenEnd      = 1 << 0
	adcEnableEnabled = 1
)

// Resolution is the CONFIG.RES field.
type Resolution uint8

const (
	Resolution8Bit  Resolution = 0
	Resolution9Bit  Resolution = 1
	Resolution10Bit Resolution = 2
)

// Bits returns the conversion width.
func (r Resolution) Bits() uint8 {
	return 8 + uint8(r)
}

// MaxValue returns the full-scale raw code, 2^bits - 1.
func (r Resolution) MaxValue() uint32 {
	return uint32(1)<<r.Bits() - 1
}

// AnalogInput is an analog pin index (AIN0..AIN7).
type AnalogInput uint8

// AnalogInputCount is the width of CONFIG.PSEL.
const AnalogInputCount = 8

// InputScaling is the CONFIG.INPSEL field.
type InputScaling uint8

const (
	InputNoPrescaling         InputScaling = 0
	InputTwoThirdsPrescaling  InputScaling = 1
	InputOneThirdPrescaling   InputScaling = 2
	SupplyTwoThirdsPrescaling InputScaling = 5
	SupplyOneThirdPrescaling  InputScaling = 6
)

// ratio returns the prescaling as num/den applied to the input.
func (s InputScaling) ratio() (num, den uint32) {
	switch s {
	case InputTwoThirdsPrescaling, SupplyTwoThirdsPrescaling:
		return 2, 3
	case InputOneThirdPrescaling, SupplyOneThirdPrescaling:
		return 1, 3
	default:
		return 1, 1
	}
}

// Reference is the CONFIG.REFSEL field.
type Reference uint8

const (
	ReferenceBandgap        Reference = 0 // internal 1.2 V
	ReferenceExternal       Reference = 1
	ReferenceSupplyOneHalf  Reference = 2
	ReferenceSupplyOneThird Reference = 3
)

// BandgapMillivolts is the internal reference voltage.
const BandgapMillivolts = 1200

// ExternalReference is the CONFIG.EXTREFSEL field.
type ExternalReference uint8

const (
	ExternalReferenceNone  ExternalReference = 0
	ExternalReferenceAREF0 ExternalReference = 1
	ExternalReferenceAREF1 ExternalReference = 2
)

// SamplerConfig is the complete analog front end. It is written in one go.
type SamplerConfig struct {
	Input             AnalogInput
	Reference         Reference
	ExternalReference ExternalReference
	Scaling           InputScaling
	Resolution        Resolution

	// SupplyMillivolts is VDD, or the AREF voltage for ReferenceExternal.
	// Only used by Millivolts.
	SupplyMillivolts uint32
}

// Encode packs the configuration into the CONFIG register layout.
func (c SamplerConfig) Encode() uint32 {
	return uint32(c.Resolution)<<adcConfigResPos |
		uint32(c.Scaling)<<adcConfigInpselPos |
		uint32(c.Reference)<<adcConfigRefselPos |
		(uint32(1)<<c.Input)<<adcConfigPselPos |
		uint32(c.ExternalReference)<<adcConfigExtrefselPos
}

// MaxValue returns the largest raw code this configuration can produce.
func (c SamplerConfig) MaxValue() uint32 {
	return c.Resolution.MaxValue()
}

// ReferenceMillivolts returns the selected reference voltage.
func (c SamplerConfig) ReferenceMillivolts() uint32 {
	switch c.Reference {
	case ReferenceExternal:
		return c.SupplyMillivolts
	case ReferenceSupplyOneHalf:
		return c.SupplyMillivolts / 2
	case ReferenceSupplyOneThird:
		return c.SupplyMillivolts / 3
	default:
		return BandgapMillivolts
	}
}

// Millivolts converts a raw code back to the voltage at the input pin,
// undoing the prescaler.
func (c SamplerConfig) Millivolts(raw uint32) uint32 {
	num, den := c.Scaling.ratio()
	full := c.MaxValue()
	return uint32(uint64(raw) * uint64(c.ReferenceMillivolts()) * uint64(den) / (uint64(full) * uint64(num)))
}

// ADCRegisters is the capability handle for the ADC peripheral.
type ADCRegisters struct {
	TasksStart Register32
	EventsEnd  Register32
	IntenSet   Register32
	Config     Register32
	Enable     Register32
	Result     Register32
	// StartTasks is the address of TASKS_START, used as a router destination.
	StartTasks Endpoint
}

// Sampler drives the ADC. Configuration happens once, before Enable.
type Sampler struct {
	regs   ADCRegisters
	irq    IRQ
	clocks *ClockManager
	config SamplerConfig

	configured   bool
	interruptsOn bool
	enabled      bool
}

// NewSampler wraps the ADC. irq is the ADC line in the NVIC.
func NewSampler(regs ADCRegisters, irq IRQ, clocks *ClockManager) *Sampler {
	return &Sampler{regs: regs, irq: irq, clocks: clocks}
}

// Configure writes all front end parameters in a single CONFIG write. The
// hardware refuses partial reconfiguration while enabled, and accuracy
// depends on the high frequency crystal already running.
func (s *Sampler) Configure(cfg SamplerConfig) error {
	if s.enabled {
		return ErrSamplerEnabled
	}
	if cfg.Input >= AnalogInputCount {
		return ErrInvalidInput
	}
	if s.clocks != nil && !s.clocks.HFRunning() {
		return ErrClockNotRunning
	}
	s.regs.Config.Set(cfg.Encode())
	s.config = cfg
	s.configured = true
	return nil
}

// EnableCompletionInterrupt arms the END interrupt in the peripheral and
// the NVIC. Without it a completed conversion is silently dropped.
func (s *Sampler) EnableCompletionInterrupt() {
	s.regs.IntenSet.Set(adcIntenEnd)
	if s.irq != nil {
		s.irq.Enable()
	}
	s.interruptsOn = true
}

// Enable arms the peripheral to accept START tasks.
func (s *Sampler) Enable() error {
	if !s.configured {
		return ErrSamplerNotConfigured
	}
	s.regs.Enable.Set(adcEnableEnabled)
	s.enabled = true
	return nil
}

// Trigger issues a START task from software.
func (s *Sampler) Trigger() {
	s.regs.TasksStart.Set(taskTrigger)
}

// Config returns the front end written by Configure.
func (s *Sampler) Config() SamplerConfig {
	return s.config
}

// Configured reports whether CONFIG has been written.
func (s *Sampler) Configured() bool {
	return s.configured
}

// Enabled reports whether the peripheral accepts triggers.
func (s *Sampler) Enabled() bool {
	return s.enabled
}

// InterruptArmed reports whether completions reach the handler.
func (s *Sampler) InterruptArmed() bool {
	return s.interruptsOn
}

// StartTask is the router destination endpoint for this sampler.
func (s *Sampler) StartTask() Endpoint {
	return s.regs.StartTasks
}
