package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// Pull selects the input bias.
type Pull uint8

const (
	PullNone Pull = iota
	PullDown
	PullUp
)

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInput configures a pin as a digital input with the given bias
	ConfigureInput(pin GPIOPin, pull Pull) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// ReadPin reads the instantaneous pin level. It must be safe to call
	// from interrupt context.
	ReadPin(pin GPIOPin) bool
}

// OutputLevel is an output pin and the level it idles at.
type OutputLevel struct {
	Pin  GPIOPin
	High bool
}

// configureLines sets every output to its idle level and every input to
// floating, in that order.
func configureLines(gpio GPIODriver, outputs []OutputLevel, inputs ...GPIOPin) error {
	for _, out := range outputs {
		if err := gpio.ConfigureOutput(out.Pin); err != nil {
			return err
		}
		if err := gpio.SetPin(out.Pin, out.High); err != nil {
			return err
		}
	}
	for _, in := range inputs {
		if err := gpio.ConfigureInput(in, PullNone); err != nil {
			return err
		}
	}
	return nil
}
