package core

// Config is the complete boot-time configuration. Nothing is persisted; the
// image rebuilds everything from these values on every reset.
type Config struct {
	LFClockHz  uint32
	TickHz     uint32
	LFSource   LFClockSource
	PPIChannel uint8
	ADC        SamplerConfig

	// Outputs are driven to their idle levels before anything else starts.
	Outputs []OutputLevel

	// LOP and LON are sampled once per conversion, no pull.
	LOP GPIOPin
	LON GPIOPin
}

// Board pins
const (
	PinShutdown  GPIOPin = 24
	PinLON       GPIOPin = 22
	PinLOP       GPIOPin = 23
	PinStatusOn  GPIOPin = 21
	PinStatusOff GPIOPin = 29
)

const (
	LFClockHz = 32768
	TickHz    = 234
)

// DefaultConfig returns the board configuration: 234 Hz ticks from the RC
// oscillator, AIN3 against the 1.2 V bandgap at one third prescaling and
// 10 bits, shutdown line held low.
func DefaultConfig() Config {
	return Config{
		LFClockHz:  LFClockHz,
		TickHz:     TickHz,
		LFSource:   LFClockRC,
		PPIChannel: 0,
		ADC: SamplerConfig{
			Input:             3,
			Reference:         ReferenceBandgap,
			ExternalReference: ExternalReferenceNone,
			Scaling:           InputOneThirdPrescaling,
			Resolution:        Resolution10Bit,
			SupplyMillivolts:  3000,
		},
		Outputs: []OutputLevel{
			{Pin: PinShutdown, High: false},
			{Pin: PinStatusOff, High: false},
			{Pin: PinStatusOn, High: true},
		},
		LOP: PinLOP,
		LON: PinLON,
	}
}

// Validate rejects a pin used for two roles. The tick ratio is the
// caller's responsibility and is not checked here.
func (c Config) Validate() error {
	seen := make(map[GPIOPin]bool, len(c.Outputs)+2)
	pins := []GPIOPin{c.LOP, c.LON}
	for _, out := range c.Outputs {
		pins = append(pins, out.Pin)
	}
	for _, pin := range pins {
		if seen[pin] {
			return ErrPinConflict
		}
		seen[pin] = true
	}
	return nil
}
