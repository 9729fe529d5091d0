package core

// fakeReg is a register that logs writes into a shared journal.
type fakeReg struct {
	name    string
	value   uint32
	journal *[]string
	onRead  func(r *fakeReg)
	reads   int
}

func (r *fakeReg) Get() uint32 {
	r.reads++
	if r.onRead != nil {
		r.onRead(r)
	}
	return r.value
}

func (r *fakeReg) Set(value uint32) {
	r.value = value
	if r.journal != nil {
		*r.journal = append(*r.journal, r.name)
	}
}

func newFakeReg(name string, journal *[]string) *fakeReg {
	return &fakeReg{name: name, journal: journal}
}

// fakeIRQ counts NVIC enables.
type fakeIRQ struct {
	enabled int
}

func (i *fakeIRQ) Enable() {
	i.enabled++
}

// fakeGPIO is an in-memory GPIODriver.
type fakeGPIO struct {
	outputs map[GPIOPin]bool
	inputs  map[GPIOPin]Pull
	levels  map[GPIOPin]bool
	reads   []GPIOPin
	err     error
}

func newFakeGPIO() *fakeGPIO {
	return &fakeGPIO{
		outputs: make(map[GPIOPin]bool),
		inputs:  make(map[GPIOPin]Pull),
		levels:  make(map[GPIOPin]bool),
	}
}

func (g *fakeGPIO) ConfigureOutput(pin GPIOPin) error {
	if g.err != nil {
		return g.err
	}
	g.outputs[pin] = true
	return nil
}

func (g *fakeGPIO) ConfigureInput(pin GPIOPin, pull Pull) error {
	if g.err != nil {
		return g.err
	}
	g.inputs[pin] = pull
	return nil
}

func (g *fakeGPIO) SetPin(pin GPIOPin, value bool) error {
	g.levels[pin] = value
	return nil
}

func (g *fakeGPIO) ReadPin(pin GPIOPin) bool {
	g.reads = append(g.reads, pin)
	return g.levels[pin]
}

// runningClocks returns a clock manager with both oscillators up.
func runningClocks() *ClockManager {
	return &ClockManager{state: ClockState{HF: OscillatorRunning, LF: OscillatorRunning}}
}
