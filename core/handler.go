package core

import "io"

// SampleHandler services the ADC END interrupt. It is the only reader of
// the RESULT register.
type SampleHandler struct {
	endEvent Register32
	result   Register32
	gpio     GPIODriver
	lop      GPIOPin
	lon      GPIOPin
	sink     io.Writer

	// emit receives each record before it is written; tests hook it.
	emit func(SampleRecord)

	handled uint32
	line    [SampleLineMax]byte
}

// NewSampleHandler builds the handler for the given ADC and aux lines.
func NewSampleHandler(adc ADCRegisters, gpio GPIODriver, lop, lon GPIOPin, sink io.Writer) *SampleHandler {
	return &SampleHandler{
		endEvent: adc.EventsEnd,
		result:   adc.Result,
		gpio:     gpio,
		lop:      lop,
		lon:      lon,
		sink:     sink,
	}
}

// OnRecord registers a callback that sees every record, in interrupt
// context, before it goes to the sink.
func (h *SampleHandler) OnRecord(fn func(SampleRecord)) {
	h.emit = fn
}

// Handle runs in interrupt context. The END event is cleared first, before
// any other peripheral access, so a conversion finishing mid-handler
// re-pends the interrupt instead of being lost. Clearing an already clear
// event is harmless.
func (h *SampleHandler) Handle() {
	h.endEvent.Set(eventClear)

	rec := SampleRecord{
		LOP: h.gpio.ReadPin(h.lop),
		LON: h.gpio.ReadPin(h.lon),
	}
	rec.Raw = h.result.Get()

	h.handled++
	if h.emit != nil {
		h.emit(rec)
	}
	if h.sink != nil {
		// The sink owns backpressure; a short write is its problem.
		h.sink.Write(rec.AppendLine(h.line[:0]))
	}
}

// Handled returns the number of interrupts serviced.
func (h *SampleHandler) Handled() uint32 {
	return h.handled
}

// The vector table entry takes no arguments, so the handler is reached
// through this one slot.
var sampleHandler *SampleHandler

// SetSampleHandler installs h as the target of HandleSampleInterrupt. It
// must be called before the ADC interrupt is unmasked.
func SetSampleHandler(h *SampleHandler) {
	state := disableInterrupts()
	sampleHandler = h
	restoreInterrupts(state)
}

// MustSampleHandler returns the installed handler or panics if missing.
func MustSampleHandler() *SampleHandler {
	if sampleHandler == nil {
		panic(string(ErrHandlerMissing))
	}
	return sampleHandler
}

// HandleSampleInterrupt is the body of the ADC interrupt vector.
func HandleSampleInterrupt() {
	if h := sampleHandler; h != nil {
		h.Handle()
	}
}
